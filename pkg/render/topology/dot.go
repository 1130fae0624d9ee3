package topology

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/peptrack/pkg/dashboard"
)

// Options configures diagram generation.
type Options struct {
	// Detailed adds geometry and the visible window to track labels.
	Detailed bool
}

const mediatorNode = "mediator"

// trackNode is the node id of a track. The prefix keeps any track id apart
// from the mediator node.
func trackNode(id string) string { return "track:" + id }

// ToDOT converts a dashboard snapshot to Graphviz DOT. Relay edges run
// from the mediator to the tracks in registration order.
func ToDOT(s dashboard.Snapshot, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [label=%q, shape=ellipse, fillcolor=lightgrey];\n",
		mediatorNode, fmt.Sprintf("mediator\ndomain [%d, %d]", s.Domain.Min, s.Domain.Max))

	for _, v := range s.Tracks {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", trackNode(v.ID), fmtLabel(v, opts.Detailed))
	}

	buf.WriteString("\n")
	for i, v := range s.Tracks {
		fmt.Fprintf(&buf, "  %q -> %q [dir=both, label=\"%d\"];\n", mediatorNode, trackNode(v.ID), i+1)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(v dashboard.TrackView, detailed bool) string {
	if !detailed {
		return v.ID
	}
	parts := []string{
		v.ID,
		fmt.Sprintf("kind: %s", v.Kind),
		fmt.Sprintf("width: %.0f (%.0f/%.0f)", v.Geometry.Width, v.Geometry.GutterLeft, v.Geometry.GutterRight),
		fmt.Sprintf("k: %.2f", v.Band.K),
		fmt.Sprintf("window: [%.1f, %.1f]", v.WindowLo, v.WindowHi),
	}
	return strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz root element with one whose
// viewBox starts at the origin, so the SVG scales cleanly when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
