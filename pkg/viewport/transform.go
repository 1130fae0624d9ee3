package viewport

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance is the absolute difference under which two transform
// components are considered equal.
const Tolerance = 1e-6

// wheelFactor matches the browser default of 2^(-deltaY·0.002) per wheel event.
const wheelFactor = 0.002

// Transform is a horizontal zoom k about the frame origin followed by a
// translate x: px' = px·K + X.
type Transform struct {
	K float64 `json:"k"`
	X float64 `json:"x"`
}

// Identity is the unzoomed transform.
var Identity = Transform{K: 1}

// Equal reports whether t and o match within [Tolerance].
func (t Transform) Equal(o Transform) bool {
	return scalar.EqualWithinAbs(t.K, o.K, Tolerance) &&
		scalar.EqualWithinAbs(t.X, o.X, Tolerance)
}

// IsIdentity reports whether t equals [Identity].
func (t Transform) IsIdentity() bool { return t.Equal(Identity) }

// IsFinite reports whether both components are finite and k is positive.
func (t Transform) IsFinite() bool {
	return finite(t.K) && finite(t.X) && t.K > 0
}

// Apply maps an unzoomed pixel to its zoomed position.
func (t Transform) Apply(px float64) float64 { return px*t.K + t.X }

// Invert maps a zoomed pixel back to its unzoomed position.
func (t Transform) Invert(px float64) float64 { return (px - t.X) / t.K }

// Rescale returns the scale that shows s through t: same pixel range,
// narrowed position domain.
func (t Transform) Rescale(s Linear) Linear {
	return Linear{
		D0: s.Invert(t.Invert(s.R0)),
		D1: s.Invert(t.Invert(s.R1)),
		R0: s.R0,
		R1: s.R1,
	}
}

// ScaleAt zooms to k while keeping the pixel under px fixed.
func (t Transform) ScaleAt(k, px float64) Transform {
	p := t.Invert(px)
	return Transform{K: k, X: px - p*k}
}

// Wheel applies one wheel event of deltaY at pointer px.
func (t Transform) Wheel(deltaY, px float64) Transform {
	return t.ScaleAt(t.K*math.Pow(2, -deltaY*wheelFactor), px)
}

// Pan shifts the view by dx screen pixels.
func (t Transform) Pan(dx float64) Transform {
	return Transform{K: t.K, X: t.X + dx}
}

// String formats t the way the browser prints a zoom transform.
func (t Transform) String() string {
	return fmt.Sprintf("translate(%.3f) scale(%.4f)", t.X, t.K)
}
