// Package pkg provides the libraries behind peptrack, synchronized pan and
// zoom for the position-indexed tracks of an MHC-peptide binding dashboard.
//
// # Overview
//
// A dashboard shows one protein sequence through several tracks: a
// percentile heat-map, peptide bars, per-allele scan bars, stacked amino-acid
// frequencies and a reference/consensus ladder. Zooming or panning any of
// them moves all of them. The pkg directory is organized into four areas:
//
//  1. [viewport] - Geometry and transform math (domain, scales, clamping)
//  2. [track], [mediator], [dashboard] - The synchronization engine
//  3. [session], [config] - Loading dashboards and defaults
//  4. [render] - Surfaces that draw tracks (terminal strips, SVG axes, DOT)
//
// # Architecture
//
// A gesture flows through the engine like this:
//
//	wheel / drag on one track
//	         ↓
//	    [track] Originate (propose, clamp, redraw, emit)
//	         ↓
//	    [mediator] Relay (every other track, registration order)
//	         ↓
//	    [track] SetZoom (clamp to own geometry, redraw, never emit)
//
// Tracks exchange transforms in a normalized band frame so that tracks with
// different widths and gutters show the same window of positions.
//
// # Quick Start
//
//	d, _ := dashboard.New(viewport.Domain{Min: 1, Max: 566})
//	d.AddTrack(dashboard.TrackSpec{ID: "heatmap", Kind: track.KindHeatmap, Width: 960})
//	d.AddTrack(dashboard.TrackSpec{ID: "scan", Kind: track.KindScan, Width: 720})
//
//	d.Gesture("heatmap", track.Wheel{PointerX: 400, DeltaY: -240})
//	for _, v := range d.Snapshot().Tracks {
//	    fmt.Printf("%s [%.1f, %.1f]\n", v.ID, v.WindowLo, v.WindowHi)
//	}
//
// # Supporting Packages
//
// [errors] - Error codes shared by every package.
//
// [observability] - Hooks receiving originations, relays, peer failures and
// resizes.
//
// [buildinfo] - Version information stamped at build time.
//
// [viewport]: https://pkg.go.dev/github.com/matzehuels/peptrack/pkg/viewport
// [track]: https://pkg.go.dev/github.com/matzehuels/peptrack/pkg/track
// [mediator]: https://pkg.go.dev/github.com/matzehuels/peptrack/pkg/mediator
// [dashboard]: https://pkg.go.dev/github.com/matzehuels/peptrack/pkg/dashboard
// [session]: https://pkg.go.dev/github.com/matzehuels/peptrack/pkg/session
// [config]: https://pkg.go.dev/github.com/matzehuels/peptrack/pkg/config
// [render]: https://pkg.go.dev/github.com/matzehuels/peptrack/pkg/render
// [errors]: https://pkg.go.dev/github.com/matzehuels/peptrack/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/peptrack/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/peptrack/pkg/buildinfo
package pkg
