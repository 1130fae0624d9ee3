package track

import "github.com/matzehuels/peptrack/pkg/viewport"

// Gesture is a raw pointer or wheel event in the pixel frame of the track
// that received it.
type Gesture interface {
	// Propose returns the transform the gesture asks for, starting from the
	// interaction-surface baseline t. The zoom factor is already limited
	// to the scale extent of g; the translate is not clamped.
	Propose(t viewport.Transform, g viewport.Geometry) viewport.Transform
}

// Wheel zooms about PointerX. Negative DeltaY zooms in.
type Wheel struct {
	PointerX float64
	DeltaY   float64
}

func (w Wheel) Propose(t viewport.Transform, g viewport.Geometry) viewport.Transform {
	next := t.Wheel(w.DeltaY, w.PointerX)
	return t.ScaleAt(viewport.ClampK(g, next.K), w.PointerX)
}

// Drag pans by DX screen pixels.
type Drag struct {
	DX float64
}

func (d Drag) Propose(t viewport.Transform, _ viewport.Geometry) viewport.Transform {
	return t.Pan(d.DX)
}

// ZoomTo jumps to zoom K about PointerX, the programmatic form of a wheel.
type ZoomTo struct {
	K        float64
	PointerX float64
}

func (z ZoomTo) Propose(t viewport.Transform, g viewport.Geometry) viewport.Transform {
	return t.ScaleAt(viewport.ClampK(g, z.K), z.PointerX)
}
