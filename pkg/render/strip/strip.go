// Package strip draws a track's position axis as a line of terminal cells.
//
// A [Strip] is a track surface: the track hands it the zoomed scale on
// every redraw and [Strip.Render] turns the latest one into text. The
// interactive viewer stacks one strip per track so synchronized zoom is
// visible at a glance.
package strip

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/peptrack/pkg/track"
	"github.com/matzehuels/peptrack/pkg/viewport"
)

// Strip records the latest scale drawn by a track.
type Strip struct {
	zoomed viewport.Linear
	px     viewport.Transform
	draws  int
}

// New returns an empty strip.
func New() *Strip { return &Strip{px: viewport.Identity} }

// Draw implements track.Surface.
func (s *Strip) Draw(zoomed viewport.Linear, t viewport.Transform) {
	s.zoomed = zoomed
	s.px = t
	s.draws++
}

// Draws returns how often the strip was redrawn.
func (s *Strip) Draws() int { return s.draws }

// Scale returns the last zoomed scale.
func (s *Strip) Scale() viewport.Linear { return s.zoomed }

// Render draws the axis across cols cells: a rule with tick marks and a
// label line underneath.
func (s *Strip) Render(cols int) string {
	if cols < 2 || s.draws == 0 {
		return ""
	}
	rule := []rune(strings.Repeat("─", cols))
	labels := []rune(strings.Repeat(" ", cols))

	lo, hi := s.zoomed.Domain()
	ticks := Ticks(lo, hi, track.TickCount(float64(cols)*8))
	for _, v := range ticks {
		c := s.column(v, cols)
		if c < 0 || c >= cols {
			continue
		}
		rule[c] = '┬'
		text := []rune(strconv.Itoa(int(math.Round(v))))
		start := min(max(0, c-len(text)/2), cols-len(text))
		if start < 0 || !blank(labels, start-1, start+len(text)+1) {
			continue
		}
		copy(labels[start:], text)
	}
	return string(rule) + "\n" + string(labels)
}

func (s *Strip) column(v float64, cols int) int {
	r0, r1 := s.zoomed.Range()
	if r1 == r0 {
		return -1
	}
	f := (s.zoomed.Apply(v) - r0) / (r1 - r0)
	return int(math.Round(f * float64(cols-1)))
}

func blank(line []rune, from, to int) bool {
	for i := max(0, from); i < min(len(line), to); i++ {
		if line[i] != ' ' {
			return false
		}
	}
	return true
}

// Ticks returns about count evenly spaced round values covering [lo, hi],
// stepping by 1, 2 or 5 times a power of ten and never below 1.
func Ticks(lo, hi float64, count int) []float64 {
	if count <= 0 || !(hi > lo) {
		return nil
	}
	step := niceStep((hi - lo) / float64(count))
	var ticks []float64
	for v := math.Ceil(lo/step) * step; v <= hi+step*1e-9; v += step {
		ticks = append(ticks, v)
	}
	return ticks
}

func niceStep(raw float64) float64 {
	if raw <= 1 {
		return 1
	}
	pow := math.Pow(10, math.Floor(math.Log10(raw)))
	switch f := raw / pow; {
	case f <= 1:
		return pow
	case f <= 2:
		return 2 * pow
	case f <= 5:
		return 5 * pow
	}
	return 10 * pow
}
