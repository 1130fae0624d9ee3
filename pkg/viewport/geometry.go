package viewport

import (
	"math"

	"github.com/matzehuels/peptrack/pkg/errors"
)

// Geometry is a track's pixel layout along the position axis.
//
// Width changes on resize; the gutters are fixed per track kind. MaxZoom
// caps the zoom factor, with values below 1 meaning "uncapped".
type Geometry struct {
	Width       float64 `json:"width"`
	GutterLeft  float64 `json:"gutter_left"`
	GutterRight float64 `json:"gutter_right"`
	MaxZoom     float64 `json:"max_zoom,omitempty"`
}

// UnitBand is the frame tracks use to exchange transforms: a band of
// width 1 with no gutters.
var UnitBand = Geometry{Width: 1}

// Band returns the zoomable pixel interval [r0, r1].
func (g Geometry) Band() (r0, r1 float64) {
	return g.GutterLeft, g.Width - g.GutterRight
}

// BandWidth returns r1 - r0.
func (g Geometry) BandWidth() float64 {
	r0, r1 := g.Band()
	return r1 - r0
}

// WithWidth returns a copy of g with a new width.
func (g Geometry) WithWidth(w float64) Geometry {
	g.Width = w
	return g
}

// Validate returns a GEOMETRY_INVALID error for non-positive or non-finite
// widths, negative gutters and bands that are empty or inverted.
func (g Geometry) Validate() error {
	switch {
	case !finite(g.Width) || g.Width <= 0:
		return errors.New(errors.ErrCodeGeometry, "width must be positive, got %v", g.Width)
	case !finite(g.GutterLeft) || !finite(g.GutterRight) || g.GutterLeft < 0 || g.GutterRight < 0:
		return errors.New(errors.ErrCodeGeometry, "gutters must be non-negative, got %v/%v", g.GutterLeft, g.GutterRight)
	case g.BandWidth() <= 0:
		return errors.New(errors.ErrCodeGeometry, "gutters %v/%v leave no band in width %v", g.GutterLeft, g.GutterRight, g.Width)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
