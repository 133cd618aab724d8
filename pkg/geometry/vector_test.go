package geometry

import (
	"math"
	"testing"
)

func TestVector4Add(t *testing.T) {
	v1 := NewVector4(1, 2, 3, 4)
	v2 := NewVector4(5, 6, 7, 8)
	result := v1.Add(v2)

	expected := NewVector4(6, 8, 10, 12)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector4Sub(t *testing.T) {
	v1 := NewVector4(5, 7, 9, 11)
	v2 := NewVector4(1, 2, 3, 4)
	result := v1.Sub(v2)

	expected := NewVector4(4, 5, 6, 7)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector4Length(t *testing.T) {
	v := NewVector4(1, 1, 1, 1)
	length := v.Length()

	expected := 2.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestVector4Distance(t *testing.T) {
	v1 := NewVector4(1, 1, 0, 0)
	v2 := NewVector4(1, 0, 1, 0)
	distance := v1.Distance(v2)

	expected := math.Sqrt2
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector4Dot(t *testing.T) {
	v1 := NewVector4(1, 2, 3, 4)
	v2 := NewVector4(5, 6, 7, 8)
	result := v1.Dot(v2)

	expected := 70.0 // 5 + 12 + 21 + 32
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVector4Coord(t *testing.T) {
	v := NewVector4(1, 2, 3, 4)
	for i, want := range []float64{1, 2, 3, 4} {
		if got := v.Coord(i); got != want {
			t.Errorf("Coord(%d): expected %v, got %v", i, want, got)
		}
	}
	if Vector4FromArray(v.Array()) != v {
		t.Errorf("Array round trip failed for %v", v)
	}
}

func TestVector2IsFinite(t *testing.T) {
	if !NewVector2(1, -2).IsFinite() {
		t.Error("expected finite vector")
	}
	if NewVector2(math.Inf(1), 0).IsFinite() {
		t.Error("expected +Inf to be non-finite")
	}
	if NewVector2(0, math.NaN()).IsFinite() {
		t.Error("expected NaN to be non-finite")
	}
}

func TestBoundingBox4Extend(t *testing.T) {
	bbox := NewBoundingBox4()

	bbox.Extend(NewVector4(1, 2, 3, -1))
	bbox.Extend(NewVector4(4, 5, 6, 2))
	bbox.Extend(NewVector4(-1, 0, 2, 0))

	expectedMin := NewVector4(-1, 0, 2, -1)
	expectedMax := NewVector4(4, 5, 6, 2)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
	if center := bbox.Center(); center != NewVector4(1.5, 2.5, 4, 0.5) {
		t.Errorf("Center failed: got %v", center)
	}
}
