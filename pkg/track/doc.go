// Package track implements one position-indexed dashboard panel taking part
// in synchronized zoom and pan.
//
// A [Track] owns its geometry, its base scale and the last transform it
// applied. Marks and axes are drawn by an opaque [Surface]; the track only
// tells it which scale to draw with.
//
// # Roles
//
// The role of a track is decided per gesture. The track that receives a
// wheel or drag event originates: [Track.Originate] clamps the proposed
// transform, redraws and emits it. Every other track follows:
// [Track.SetZoom] clamps the incoming transform to its own geometry and
// redraws without emitting. Transforms cross track boundaries in the band
// frame of package viewport, so tracks with different widths and gutters
// show the same window.
//
// # States
//
// A track is [Idle], [Gesturing] or [ApplyingExternal]. Emits are
// suppressed while applying an external transform, external transforms are
// ignored while gesturing, and resizes are only accepted when idle.
package track
