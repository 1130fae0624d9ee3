package viewport

// ToBand re-expresses a pixel transform of g in the band frame.
func ToBand(g Geometry, t Transform) Transform {
	r0, _ := g.Band()
	return Transform{K: t.K, X: (t.X + (t.K-1)*r0) / g.BandWidth()}
}

// FromBand re-expresses a band-frame transform in the pixel frame of g.
func FromBand(g Geometry, t Transform) Transform {
	r0, _ := g.Band()
	return Transform{K: t.K, X: t.X*g.BandWidth() - (t.K-1)*r0}
}

// Window returns the visible position interval of a band-frame transform.
func Window(d Domain, t Transform) (lo, hi float64) {
	span := float64(d.Span())
	lo = float64(d.Min) + t.Invert(0)*span
	hi = float64(d.Min) + t.Invert(1)*span
	return lo, hi
}

// PixelWindow returns the visible position interval of base seen through
// the pixel transform t.
func PixelWindow(base Linear, t Transform) (lo, hi float64) {
	return t.Rescale(base).Domain()
}
