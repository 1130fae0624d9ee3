package viewport

// Clamp returns the transform nearest to t that keeps the zoomed band of g
// inside the band: k in [1, g.MaxZoom] and x in [(1-k)·r1, (1-k)·r0].
// Non-finite input clamps to [Identity].
func Clamp(g Geometry, t Transform) Transform {
	if !t.IsFinite() {
		return Identity
	}
	k := ClampK(g, t.K)
	minX, maxX := TranslateExtent(g, k)
	x := t.X
	if x < minX {
		x = minX
	} else if x > maxX {
		x = maxX
	}
	return Transform{K: k, X: x}
}

// ClampK limits k to [1, g.MaxZoom].
func ClampK(g Geometry, k float64) float64 {
	if k < 1 {
		return 1
	}
	if g.MaxZoom >= 1 && k > g.MaxZoom {
		return g.MaxZoom
	}
	return k
}

// TranslateExtent returns the valid translate interval at zoom k.
func TranslateExtent(g Geometry, k float64) (minX, maxX float64) {
	// k=1 permits no panning.
	if k == 1 {
		return 0, 0
	}
	r0, r1 := g.Band()
	return (1 - k) * r1, (1 - k) * r0
}
