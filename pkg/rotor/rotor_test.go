package rotor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/go4d/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []geometry.Vector4 {
	return []geometry.Vector4{
		geometry.NewVector4(1, 2, 3, 4),
		geometry.NewVector4(-0.5, 0.25, 1.5, -1),
		geometry.NewVector4(0, 0, 0, 1),
	}
}

func requireVectorsInDelta(t *testing.T, expected, actual []geometry.Vector4, delta float64) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		e, a := expected[i].Array(), actual[i].Array()
		for k := 0; k < 4; k++ {
			require.InDelta(t, e[k], a[k], delta, "vertex %d coord %d", i, k)
		}
	}
}

func TestRotate_ZeroAnglesIsIdentity(t *testing.T) {
	in := sample()
	out := Rotate(in, Angles{})
	requireVectorsInDelta(t, in, out, 1e-9)
}

func TestRotate_DoesNotMutateInput(t *testing.T) {
	in := sample()
	original := append([]geometry.Vector4(nil), in...)

	out := Rotate(in, Angles{0.3, -0.2, 1.1, 0.4, -0.7, 2.0})

	require.Equal(t, original, in)
	require.NotEqual(t, in, out)
	out[0].X = 99
	require.Equal(t, original[0], in[0])
}

func TestRotate_RowVectorConvention(t *testing.T) {
	out := Rotate([]geometry.Vector4{geometry.NewVector4(1, 0, 0, 0)}, Angles{XY: math.Pi / 2})
	requireVectorsInDelta(t, []geometry.Vector4{geometry.NewVector4(0, -1, 0, 0)}, out, 1e-12)
}

func TestRotate_OrderSensitive(t *testing.T) {
	v := geometry.NewVector4(1, 2, 3, 4)

	// XY then XZ (the fixed order)
	forward := Rotate([]geometry.Vector4{v}, Angles{XY: math.Pi / 2, XZ: math.Pi / 2})
	requireVectorsInDelta(t, []geometry.Vector4{geometry.NewVector4(3, -1, -2, 4)}, forward, 1e-12)

	// XZ then XY
	reverse := Apply(Apply(v, XZ, math.Pi/2), XY, math.Pi/2)
	requireVectorsInDelta(t, []geometry.Vector4{geometry.NewVector4(2, -3, -1, 4)}, []geometry.Vector4{reverse}, 1e-12)

	assert.Greater(t, forward[0].Distance(reverse), 1.0)
}

func TestRotate_MatchesMatrixProduct(t *testing.T) {
	angles := Angles{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}

	// Row vector v·M1·M2·…·M6
	product := mgl64.Ident4()
	for _, p := range Planes() {
		product = product.Mul4(PlaneMatrix(p, angles[p]))
	}
	combined := product.Transpose()

	in := sample()
	out := Rotate(in, angles)
	for i, v := range in {
		want := combined.Mul4x1(mgl64.Vec4(v.Array()))
		requireVectorsInDelta(t,
			[]geometry.Vector4{geometry.Vector4FromArray(want)},
			[]geometry.Vector4{out[i]}, 1e-12)
	}
}

func TestRotate_PreservesLength(t *testing.T) {
	in := sample()
	out := Rotate(in, Angles{1.3, -2.1, 0.7, 3.3, -0.4, 5.9})
	for i := range in {
		assert.InDelta(t, in[i].Length(), out[i].Length(), 1e-12)
	}
}

func TestPlaneMatrix_LeavesOrthogonalPlaneFixed(t *testing.T) {
	for _, p := range Planes() {
		m := PlaneMatrix(p, 0.8)
		a, b := p.Axes()
		for k := 0; k < 4; k++ {
			if k == a || k == b {
				continue
			}
			for j := 0; j < 4; j++ {
				want := 0.0
				if j == k {
					want = 1
				}
				require.Equal(t, want, m.At(k, j), "%s row %d col %d", p, k, j)
				require.Equal(t, want, m.At(j, k), "%s row %d col %d", p, j, k)
			}
		}
		require.True(t, m.Mul4(m.Transpose()).ApproxEqualThreshold(mgl64.Ident4(), 1e-12), "%s not orthonormal", p)
	}
}

func TestPlaneMatrix_ZeroAngle(t *testing.T) {
	for _, p := range Planes() {
		assert.Equal(t, mgl64.Ident4(), PlaneMatrix(p, 0), p.String())
	}
}

func TestParsePlane(t *testing.T) {
	for i, name := range []string{"xy", "XZ", " xw ", "Yz", "yw", "ZW"} {
		p, err := ParsePlane(name)
		require.NoError(t, err)
		assert.Equal(t, Plane(i), p)
	}
	_, err := ParsePlane("XQ")
	require.Error(t, err)

	assert.Equal(t, "YW", YW.String())
	assert.Equal(t, "Plane(9)", Plane(9).String())
	assert.False(t, Plane(-1).Valid())
}
