package strip

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/matzehuels/peptrack/pkg/viewport"
)

func TestTicks(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
		count  int
		want   []float64
	}{
		{name: "tens", lo: 1, hi: 100, count: 10, want: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}},
		{name: "fives", lo: 40, hi: 80, count: 8, want: []float64{40, 45, 50, 55, 60, 65, 70, 75, 80}},
		{name: "unit floor", lo: 3.2, hi: 7.9, count: 15, want: []float64{4, 5, 6, 7}},
		{name: "empty range", lo: 5, hi: 5, count: 4},
		{name: "no ticks", lo: 1, hi: 9, count: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ticks(tt.lo, tt.hi, tt.count); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Ticks(%v, %v, %d) = %v, want %v", tt.lo, tt.hi, tt.count, got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	s := New()
	if got := s.Render(40); got != "" {
		t.Errorf("Render() before any draw = %q, want empty", got)
	}

	s.Draw(viewport.Linear{D0: 1, D1: 100, R0: 0, R1: 500}, viewport.Identity)
	out := s.Render(60)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Render() produced %d lines, want 2", len(lines))
	}
	if n := utf8.RuneCountInString(lines[0]); n != 60 {
		t.Errorf("rule is %d cells, want 60", n)
	}
	if !strings.Contains(lines[0], "┬") {
		t.Error("rule has no tick marks")
	}
	if !strings.Contains(lines[1], "40") {
		t.Errorf("labels %q missing 40", lines[1])
	}
	if s.Draws() != 1 {
		t.Errorf("Draws() = %d, want 1", s.Draws())
	}
}
