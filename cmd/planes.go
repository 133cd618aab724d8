package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/go4d/pkg/rotor"
)

// parsePlaneValues parses plane=value pairs such as "xw=0.01"
func parsePlaneValues(pairs []string) (map[rotor.Plane]float64, error) {
	values := make(map[rotor.Plane]float64, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("expected plane=value, got %q", pair)
		}
		plane, err := rotor.ParsePlane(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", plane, err)
		}
		values[plane] = value
	}
	return values, nil
}
