package math

// Color4 is an RGBA color with float64 components.
type Color4 struct {
	R, G, B, A float64
}

// IsZero reports whether all components are zero.
func (c Color4) IsZero() bool {
	return c.R == 0 && c.G == 0 && c.B == 0 && c.A == 0
}
