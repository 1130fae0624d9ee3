package viewport

// Linear maps the position interval [D0, D1] onto the pixel interval
// [R0, R1]. Scales are values: rescaling or resizing builds a new one.
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

// NewBaseScale maps the domain onto the band of g. It refuses invalid
// geometry rather than producing a scale full of NaN.
func NewBaseScale(d Domain, g Geometry) (Linear, error) {
	if err := d.Validate(); err != nil {
		return Linear{}, err
	}
	if err := g.Validate(); err != nil {
		return Linear{}, err
	}
	r0, r1 := g.Band()
	return Linear{D0: float64(d.Min), D1: float64(d.Max), R0: r0, R1: r1}, nil
}

// Apply maps a position to pixels. A degenerate domain maps everything to
// the middle of the range.
func (s Linear) Apply(pos float64) float64 {
	if s.D1 == s.D0 {
		return (s.R0 + s.R1) / 2
	}
	return s.R0 + (pos-s.D0)/(s.D1-s.D0)*(s.R1-s.R0)
}

// Invert maps pixels back to a position.
func (s Linear) Invert(px float64) float64 {
	if s.R1 == s.R0 {
		return s.D0
	}
	return s.D0 + (px-s.R0)/(s.R1-s.R0)*(s.D1-s.D0)
}

// Domain returns the visible position interval.
func (s Linear) Domain() (lo, hi float64) { return s.D0, s.D1 }

// Range returns the pixel interval.
func (s Linear) Range() (r0, r1 float64) { return s.R0, s.R1 }

// IsFinite reports whether every bound of the scale is a finite number.
func (s Linear) IsFinite() bool {
	return finite(s.D0) && finite(s.D1) && finite(s.R0) && finite(s.R1)
}
