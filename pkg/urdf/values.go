package urdf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/urdfkit/pkg/math"
)

// Value decoding errors.
var (
	ErrBadVector = errors.New("vector requires at least 3 numeric components")
	ErrBadColor  = errors.New("color requires exactly 4 numeric components")
)

// parseFloats splits a whitespace-delimited string and parses every token
// as a float64.
func parseFloats(s string) ([]float64, error) {
	fields := strings.Fields(s)
	parts := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", f, err)
		}
		parts = append(parts, v)
	}
	return parts, nil
}

// parseVector3 decodes three floats from a whitespace-delimited string.
// With lastThree set, the final three tokens are taken instead of the
// first three (used for from/to axis shorthand). On failure the zero
// vector is returned.
func parseVector3(s string, lastThree bool) (math.Vec3, error) {
	parts, err := parseFloats(s)
	if err != nil {
		return math.Vec3{}, err
	}
	if len(parts) < 3 {
		return math.Vec3{}, fmt.Errorf("%w: got %d in %q", ErrBadVector, len(parts), s)
	}
	if lastThree {
		n := len(parts)
		return math.Vec3{X: parts[n-3], Y: parts[n-2], Z: parts[n-1]}, nil
	}
	return math.Vec3{X: parts[0], Y: parts[1], Z: parts[2]}, nil
}

// parseColor4 decodes an RGBA color from a whitespace-delimited string.
// On failure the zero color is returned.
func parseColor4(s string) (math.Color4, error) {
	parts, err := parseFloats(s)
	if err != nil {
		return math.Color4{}, err
	}
	if len(parts) != 4 {
		return math.Color4{}, fmt.Errorf("%w: got %d in %q", ErrBadColor, len(parts), s)
	}
	return math.Color4{R: parts[0], G: parts[1], B: parts[2], A: parts[3]}, nil
}
