package dashboard

import (
	"math"

	"github.com/matzehuels/peptrack/pkg/track"
	"github.com/matzehuels/peptrack/pkg/viewport"
)

// TrackView is the state of one track at a point in time.
type TrackView struct {
	ID       string             `json:"id"`
	Kind     track.Kind         `json:"kind"`
	Geometry viewport.Geometry  `json:"geometry"`
	Band     viewport.Transform `json:"band"`
	Pixel    viewport.Transform `json:"pixel"`
	WindowLo float64            `json:"window_lo"`
	WindowHi float64            `json:"window_hi"`
	State    string             `json:"state"`
}

// Snapshot is the state of a whole dashboard.
type Snapshot struct {
	Domain         viewport.Domain `json:"domain"`
	MinVisibleSpan float64         `json:"min_visible_span,omitempty"`
	Tracks         []TrackView     `json:"tracks"`
}

// Snapshot captures every track's geometry, transform and visible window.
func (d *Dashboard) Snapshot() Snapshot {
	s := Snapshot{
		Domain:         d.domain,
		MinVisibleSpan: d.minSpan,
		Tracks:         make([]TrackView, 0, len(d.tracks)),
	}
	for _, t := range d.tracks {
		lo, hi := viewport.PixelWindow(t.BaseScale(), t.PixelTransform())
		s.Tracks = append(s.Tracks, TrackView{
			ID:       t.ID(),
			Kind:     t.Kind(),
			Geometry: t.Geometry(),
			Band:     t.LastApplied(),
			Pixel:    t.PixelTransform(),
			WindowLo: lo,
			WindowHi: hi,
			State:    t.State().String(),
		})
	}
	return s
}

// InSync reports whether every track shows the same window within tol
// positions.
func (s Snapshot) InSync(tol float64) bool {
	for i := 1; i < len(s.Tracks); i++ {
		ref, v := s.Tracks[0], s.Tracks[i]
		if math.Abs(v.WindowLo-ref.WindowLo) > tol || math.Abs(v.WindowHi-ref.WindowHi) > tol {
			return false
		}
	}
	return true
}
