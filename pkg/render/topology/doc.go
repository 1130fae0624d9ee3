// Package topology renders the wiring of a dashboard as a node-link diagram.
//
// Every track appears as a box connected to the sync mediator; labels carry
// the track kind, width and visible window. The diagram is handy when a
// session misbehaves and one wants to see which tracks are registered and
// what they show.
//
//	dot := topology.ToDOT(dash.Snapshot(), topology.Options{Detailed: true})
//	svg, err := topology.RenderSVG(ctx, dot)
package topology
