package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/peptrack/pkg/dashboard"
	"github.com/matzehuels/peptrack/pkg/errors"
	"github.com/matzehuels/peptrack/pkg/render/strip"
	"github.com/matzehuels/peptrack/pkg/track"
)

// Viewer styles
var (
	viewSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	viewNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	viewDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	viewErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	// wheelStep is the wheel delta sent per +/- key, one notch of a mouse wheel.
	wheelStep = 120
	// panCells is how many terminal cells one arrow key pans.
	panCells = 4
	// resizeFactor scales the active track's width per [ or ] key.
	resizeFactor = 1.1
	// minStripCols is the narrowest strip drawn.
	minStripCols = 20
)

// =============================================================================
// ViewModel - Interactive pan and zoom
// =============================================================================

// ViewModel is the bubbletea model driving a dashboard from the keyboard.
// The active track originates every gesture; the others follow.
type ViewModel struct {
	Title  string
	Dash   *dashboard.Dashboard
	Strips map[string]*strip.Strip
	Active int
	Cols   int
	Status string
	Err    error
}

// NewViewModel creates a viewer over d. strips maps track ids to their
// surfaces; tracks without one are listed without an axis.
func NewViewModel(title string, d *dashboard.Dashboard, strips map[string]*strip.Strip) ViewModel {
	return ViewModel{Title: title, Dash: d, Strips: strips, Cols: 80}
}

func (m ViewModel) Init() tea.Cmd {
	return nil
}

func (m ViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		tracks := m.Dash.Tracks()
		if len(tracks) == 0 {
			return m, tea.Quit
		}
		active := tracks[m.Active%len(tracks)]
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down", "j":
			m.Active = (m.Active + 1) % len(tracks)
			m.Status = ""
		case "shift+tab", "up", "k":
			m.Active = (m.Active + len(tracks) - 1) % len(tracks)
			m.Status = ""
		case "+", "=":
			m = m.gesture(active, track.Wheel{PointerX: center(active), DeltaY: -wheelStep})
		case "-", "_":
			m = m.gesture(active, track.Wheel{PointerX: center(active), DeltaY: wheelStep})
		case "left", "h":
			m = m.gesture(active, track.Drag{DX: m.cellPx(active) * panCells})
		case "right", "l":
			m = m.gesture(active, track.Drag{DX: -m.cellPx(active) * panCells})
		case "0":
			m = m.gesture(active, track.ZoomTo{K: 1, PointerX: center(active)})
		case "[":
			m = m.resize(active, active.Geometry().Width/resizeFactor)
		case "]":
			m = m.resize(active, active.Geometry().Width*resizeFactor)
		}
	case tea.WindowSizeMsg:
		m.Cols = max(minStripCols, msg.Width-2)
	}
	return m, nil
}

func (m ViewModel) gesture(t *track.Track, g track.Gesture) ViewModel {
	tr, err := m.Dash.Gesture(t.ID(), g)
	m.Err = err
	if err == nil {
		lo, hi := t.Window()
		m.Status = fmt.Sprintf("%s k=%.2f window [%.1f, %.1f]", t.ID(), tr.K, lo, hi)
	}
	return m
}

func (m ViewModel) resize(t *track.Track, width float64) ViewModel {
	m.Err = m.Dash.Resize(t.ID(), width)
	if m.Err == nil {
		m.Status = fmt.Sprintf("%s width %.0f", t.ID(), t.Geometry().Width)
	}
	return m
}

// cellPx is the pixel width of one terminal cell on t.
func (m ViewModel) cellPx(t *track.Track) float64 {
	r0, r1 := t.Geometry().Band()
	return (r1 - r0) / float64(max(1, m.Cols))
}

func center(t *track.Track) float64 {
	r0, r1 := t.Geometry().Band()
	return (r0 + r1) / 2
}

func (m ViewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("  ")
	b.WriteString(syncBadge(m.Dash.Snapshot()))
	b.WriteString("\n")
	b.WriteString(viewDimStyle.Render("tab switch  ←/→ pan  +/- zoom  0 reset  [/] resize  q quit"))
	b.WriteString("\n\n")

	for i, t := range m.Dash.Tracks() {
		lo, hi := t.Window()
		label := fmt.Sprintf("%s (%s)  [%.1f, %.1f]", t.ID(), t.Kind(), lo, hi)
		if i == m.Active {
			b.WriteString(viewSelectedStyle.Render("▸ " + label))
		} else {
			b.WriteString(viewNormalStyle.Render("  " + label))
		}
		b.WriteString("\n")
		if st, ok := m.Strips[t.ID()]; ok {
			b.WriteString(st.Render(m.stripCols(t)))
		}
		b.WriteString("\n\n")
	}

	switch {
	case m.Err != nil:
		b.WriteString(viewErrorStyle.Render(errors.UserMessage(m.Err)))
	case m.Status != "":
		b.WriteString(viewDimStyle.Render(m.Status))
	}
	b.WriteString("\n")
	return b.String()
}

// stripCols is the number of cells t's axis spans, proportional to its
// width.
func (m ViewModel) stripCols(t *track.Track) int {
	return max(minStripCols, int(float64(m.Cols)*t.Geometry().Width/m.widest()))
}

// widest returns the largest track width, used to draw narrower tracks
// proportionally shorter.
func (m ViewModel) widest() float64 {
	w := 1.0
	for _, t := range m.Dash.Tracks() {
		w = max(w, t.Geometry().Width)
	}
	return w
}
