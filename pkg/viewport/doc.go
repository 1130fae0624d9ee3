// Package viewport holds the coordinate math shared by every track of a
// dashboard: the position domain, per-track pixel geometry, linear base
// scales, zoom/pan transforms and the bounds clamp.
//
// # Frames
//
// A [Transform] is always expressed in some pixel frame. Each track works in
// its own frame, where the zoomable band is [GutterLeft, Width-GutterRight].
// Tracks exchange transforms in the band frame instead: the band is mapped
// to [0, 1] with no gutters, so one value describes the same visible window
// on every track whatever its width or gutters. [ToBand] and [FromBand]
// convert between the two.
//
//	g := viewport.Geometry{Width: 600, GutterLeft: 90, GutterRight: 20}
//	px := viewport.Clamp(g, viewport.Transform{K: 3, X: -650})
//	shared := viewport.ToBand(g, px)
//	lo, hi := viewport.Window(domain, shared)
//
// # Clamping
//
// [Clamp] keeps k in [1, MaxZoom] and the translate inside
// [(1-k)·r1, (1-k)·r0] so the zoomed band never exposes space outside the
// domain. It is idempotent and maps non-finite input to [Identity].
package viewport
