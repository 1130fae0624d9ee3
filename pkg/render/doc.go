// Package render groups the surfaces and diagrams peptrack can draw.
//
// None of them draw data marks; they show where each track is looking.
//
//   - [strip]: a track surface drawing the zoomed position axis as terminal
//     cells, used by the interactive viewer
//   - [axis]: stacked SVG axes, one row per track, written after a replay
//   - [topology]: the mediator and its tracks as Graphviz DOT or SVG
//
// [strip]: https://pkg.go.dev/github.com/matzehuels/peptrack/pkg/render/strip
// [axis]: https://pkg.go.dev/github.com/matzehuels/peptrack/pkg/render/axis
// [topology]: https://pkg.go.dev/github.com/matzehuels/peptrack/pkg/render/topology
package render
