package cli

import (
	"io"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/peptrack/pkg/dashboard"
	"github.com/matzehuels/peptrack/pkg/session"
	"github.com/matzehuels/peptrack/pkg/track"
)

const testSession = `
name = "test"

[domain]
min = 1
max = 120

[[tracks]]
id = "heatmap"
kind = "heatmap"
width = 600

[[tracks]]
id = "scan"
kind = "scan"
width = 420

[[tracks]]
id = "aa"
kind = "stacked"
width = 900

[[steps]]
track = "heatmap"
action = "zoom"
k = 3
at = 60

[[steps]]
track = "scan"
action = "drag"
dx = -40
`

func newTestView(t *testing.T) ViewModel {
	t.Helper()
	s, err := session.Parse([]byte(testSession))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	c := New(io.Discard, log.InfoLevel)
	d, strips, err := c.buildWithStrips(s)
	if err != nil {
		t.Fatalf("buildWithStrips() error = %v", err)
	}
	if len(strips) != 3 {
		t.Fatalf("got %d strips, want 3", len(strips))
	}
	return NewViewModel(s.Name, d, strips)
}

func newTestDashboard(t *testing.T) *dashboard.Dashboard {
	return newTestView(t).Dash
}

func press(t *testing.T, m ViewModel, keys ...tea.KeyMsg) ViewModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		vm, ok := next.(ViewModel)
		if !ok {
			t.Fatalf("Update() returned %T", next)
		}
		m = vm
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewModelZoomKeepsTracksInSync(t *testing.T) {
	m := press(t, newTestView(t), runes("+"), runes("+"))

	if m.Err != nil {
		t.Fatalf("Err = %v", m.Err)
	}
	snap := m.Dash.Snapshot()
	if !snap.InSync(1e-6) {
		t.Errorf("tracks out of sync: %+v", snap.Tracks)
	}
	if k := snap.Tracks[0].Band.K; k <= 1 {
		t.Errorf("k = %v, want > 1", k)
	}
	if m.Status == "" {
		t.Error("Status should describe the gesture")
	}
}

func TestViewModelPan(t *testing.T) {
	m := press(t, newTestView(t), runes("+"), runes("+"), runes("+"))
	lo0, _ := m.Dash.Tracks()[1].Window()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	lo1, _ := m.Dash.Tracks()[1].Window()
	if lo1 <= lo0 {
		t.Errorf("right: window start %v -> %v, want increase", lo0, lo1)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	lo2, _ := m.Dash.Tracks()[1].Window()
	if lo2 >= lo1 {
		t.Errorf("left: window start %v -> %v, want decrease", lo1, lo2)
	}
	if !m.Dash.Snapshot().InSync(1e-6) {
		t.Error("tracks out of sync after panning")
	}
}

func TestViewModelReset(t *testing.T) {
	m := press(t, newTestView(t), runes("+"), runes("0"))
	for _, v := range m.Dash.Snapshot().Tracks {
		if math.Abs(v.WindowLo-1) > 1e-9 || math.Abs(v.WindowHi-120) > 1e-9 {
			t.Errorf("%s window = [%v, %v], want full domain", v.ID, v.WindowLo, v.WindowHi)
		}
	}
}

func TestViewModelSwitchTrack(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want int
	}{
		{"tab", []tea.KeyMsg{{Type: tea.KeyTab}}, 1},
		{"tab wraps", []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyTab}, {Type: tea.KeyTab}}, 0},
		{"shift+tab wraps", []tea.KeyMsg{{Type: tea.KeyShiftTab}}, 2},
		{"down", []tea.KeyMsg{{Type: tea.KeyDown}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(t, newTestView(t), tt.keys...)
			if m.Active != tt.want {
				t.Errorf("Active = %d, want %d", m.Active, tt.want)
			}
		})
	}
}

func TestViewModelResize(t *testing.T) {
	m := press(t, newTestView(t), runes("]"))
	if got := m.Dash.Tracks()[0].Geometry().Width; got < 659.9 || got > 660.1 {
		t.Errorf("width = %v, want 660", got)
	}
	if m.Err != nil {
		t.Errorf("Err = %v", m.Err)
	}
}

func TestViewModelQuit(t *testing.T) {
	m := newTestView(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestViewModelWindowSize(t *testing.T) {
	m := newTestView(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if got := next.(ViewModel).Cols; got != 98 {
		t.Errorf("Cols = %d, want 98", got)
	}
	next, _ = m.Update(tea.WindowSizeMsg{Width: 5, Height: 40})
	if got := next.(ViewModel).Cols; got != minStripCols {
		t.Errorf("Cols = %d, want %d", got, minStripCols)
	}
}

func TestViewModelView(t *testing.T) {
	out := press(t, newTestView(t), runes("+")).View()
	for _, want := range []string{"heatmap (heatmap)", "scan (scan)", "aa (stacked)", "in sync", "┬"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestViewModelStripsFollowTrackIDs(t *testing.T) {
	m := newTestView(t)
	if err := session.Apply(m.Dash, session.Step{Track: "heatmap", Action: session.ActionRemove}); err != nil {
		t.Fatalf("remove: %v", err)
	}
	m = press(t, m, runes("+"), runes("+"), tea.KeyMsg{Type: tea.KeyRight})

	out := m.View()
	if strings.Contains(out, "heatmap") {
		t.Error("View() should not list the removed track")
	}
	for _, tr := range m.Dash.Tracks() {
		st, ok := m.Strips[tr.ID()]
		if !ok {
			t.Fatalf("no strip for %s", tr.ID())
		}
		lo, hi := st.Scale().Domain()
		wlo, whi := tr.Window()
		if math.Abs(lo-wlo) > 1e-6 || math.Abs(hi-whi) > 1e-6 {
			t.Errorf("%s strip shows [%v, %v], track window [%v, %v]", tr.ID(), lo, hi, wlo, whi)
		}
		if !strings.Contains(out, st.Render(m.stripCols(tr))) {
			t.Errorf("View() should draw %s with its own strip", tr.ID())
		}
	}
}

func TestBuildWithStripsAssignsGeneratedIDs(t *testing.T) {
	s, err := session.Parse([]byte("[domain]\nmin = 1\nmax = 50\n\n[[tracks]]\nkind = \"area\"\nwidth = 300\n"))
	if err != nil {
		t.Fatal(err)
	}
	d, strips, err := testCLI().buildWithStrips(s)
	if err != nil {
		t.Fatal(err)
	}
	id := d.Tracks()[0].ID()
	if !strings.HasPrefix(id, string(track.KindArea)+"-") {
		t.Errorf("generated id = %q", id)
	}
	if _, ok := strips[id]; !ok || len(strips) != 1 {
		t.Errorf("strips = %v, want one keyed by %q", strips, id)
	}
}
