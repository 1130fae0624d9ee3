// Package axis exports the position axes of a dashboard as one SVG, one
// row per track, each drawn at the track's own width, gutters and zoom.
// Rows that line up vertically are the visible proof that tracks are in
// sync; marks and colours stay with the real track renderers.
package axis

import (
	"bytes"
	"fmt"
	"html"
	"math"

	"github.com/matzehuels/peptrack/pkg/render/strip"
	"github.com/matzehuels/peptrack/pkg/track"
	"github.com/matzehuels/peptrack/pkg/viewport"
)

// Row is one track to draw.
type Row struct {
	ID       string
	Geometry viewport.Geometry
	Zoomed   viewport.Linear
}

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	rowHeight float64
	fontSize  float64
	title     string
}

func WithRowHeight(h float64) SVGOption { return func(r *svgRenderer) { r.rowHeight = h } }
func WithTitle(s string) SVGOption      { return func(r *svgRenderer) { r.title = s } }

// RowsFrom builds rows from live tracks.
func RowsFrom(tracks []*track.Track) []Row {
	rows := make([]Row, 0, len(tracks))
	for _, t := range tracks {
		rows = append(rows, Row{
			ID:       t.ID(),
			Geometry: t.Geometry(),
			Zoomed:   t.PixelTransform().Rescale(t.BaseScale()),
		})
	}
	return rows
}

// RenderSVG draws every row's axis.
func RenderSVG(rows []Row, opts ...SVGOption) []byte {
	r := svgRenderer{rowHeight: 44, fontSize: 10}
	for _, opt := range opts {
		opt(&r)
	}

	width := 0.0
	for _, row := range rows {
		width = math.Max(width, row.Geometry.Width)
	}
	top := 0.0
	if r.title != "" {
		top = r.rowHeight / 2
	}
	height := top + r.rowHeight*float64(len(rows))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, `  <g font-family="'Roboto Mono', sans-serif" font-size="%.0f" fill="#424242">`+"\n", r.fontSize)
	if r.title != "" {
		fmt.Fprintf(&buf, `    <text x="%.1f" y="%.1f" text-anchor="middle" font-size="%.0f">%s</text>`+"\n",
			width/2, top-6, r.fontSize+2, html.EscapeString(r.title))
	}
	for i, row := range rows {
		renderRow(&buf, row, top+r.rowHeight*float64(i), r.rowHeight)
	}
	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

func renderRow(buf *bytes.Buffer, row Row, y, h float64) {
	r0, r1 := row.Geometry.Band()
	axisY := y + h*0.45

	fmt.Fprintf(buf, `    <g id="axis-%s">`+"\n", html.EscapeString(row.ID))
	fmt.Fprintf(buf, `      <text x="%.1f" y="%.1f" text-anchor="end">%s</text>`+"\n", r0-6, axisY+3, html.EscapeString(row.ID))
	fmt.Fprintf(buf, `      <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#424242" stroke-width="1.5"/>`+"\n", r0, axisY, r1, axisY)

	lo, hi := row.Zoomed.Domain()
	for _, v := range strip.Ticks(lo, hi, track.TickCount(row.Geometry.Width)) {
		x := row.Zoomed.Apply(v)
		if x < r0-0.5 || x > r1+0.5 {
			continue
		}
		fmt.Fprintf(buf, `      <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#424242" stroke-width="1.5"/>`+"\n", x, axisY, x, axisY+5)
		fmt.Fprintf(buf, `      <text x="%.1f" y="%.1f" text-anchor="middle">%d</text>`+"\n", x, axisY+16, int(math.Round(v)))
	}
	buf.WriteString("    </g>\n")
}
