package track

import "github.com/matzehuels/peptrack/pkg/viewport"

// Surface draws the marks and axis of a track. zoomed is the base scale
// seen through t, the pixel transform of the track.
type Surface interface {
	Draw(zoomed viewport.Linear, t viewport.Transform)
}

// SurfaceFunc adapts a function to [Surface].
type SurfaceFunc func(zoomed viewport.Linear, t viewport.Transform)

func (f SurfaceFunc) Draw(zoomed viewport.Linear, t viewport.Transform) { f(zoomed, t) }

type nopSurface struct{}

func (nopSurface) Draw(viewport.Linear, viewport.Transform) {}
