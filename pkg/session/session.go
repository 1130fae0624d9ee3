// Package session loads dashboard sessions from TOML files and replays them.
//
// A session declares the dataset domain, the tracks with their widths and a
// script of interaction steps:
//
//	name = "H5 HA"
//
//	[domain]
//	min = 1
//	max = 566
//
//	[[tracks]]
//	id = "heatmap"
//	kind = "heatmap"
//	width = 960
//
//	[[tracks]]
//	id = "scan"
//	kind = "scan"
//	width = 720
//
//	[[steps]]
//	track = "heatmap"
//	action = "wheel"
//	at = 220
//	delta = -300
//
// Steps run in order against a [dashboard.Dashboard]; [Run] records a
// snapshot after each one.
package session

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/peptrack/pkg/dashboard"
	"github.com/matzehuels/peptrack/pkg/errors"
	"github.com/matzehuels/peptrack/pkg/track"
	"github.com/matzehuels/peptrack/pkg/viewport"
)

// Step actions.
const (
	ActionWheel  = "wheel"
	ActionDrag   = "drag"
	ActionZoom   = "zoom"
	ActionResize = "resize"
	ActionDomain = "domain"
	ActionRemove = "remove"
)

// Session is a dashboard layout plus an interaction script.
type Session struct {
	Name           string          `toml:"name,omitempty"`
	Domain         viewport.Domain `toml:"domain"`
	MinVisibleSpan float64         `toml:"min_visible_span,omitempty"`
	Tracks         []TrackDef      `toml:"tracks"`
	Steps          []Step          `toml:"steps,omitempty"`
}

// TrackDef declares one track.
type TrackDef struct {
	ID      string         `toml:"id,omitempty"`
	Kind    string         `toml:"kind"`
	Width   float64        `toml:"width,omitempty"`
	Gutters *track.Gutters `toml:"gutters,omitempty"`
}

// Step is one scripted interaction. Pointer positions are given either in
// pixels (Pointer) or as a sequence position (At); At wins when both are set.
type Step struct {
	Track   string   `toml:"track,omitempty"`
	Action  string   `toml:"action"`
	Pointer *float64 `toml:"pointer,omitempty"`
	At      *float64 `toml:"at,omitempty"`
	Delta   float64  `toml:"delta,omitempty"`
	DX      float64  `toml:"dx,omitempty"`
	K       float64  `toml:"k,omitempty"`
	Width   float64  `toml:"width,omitempty"`
	Min     int      `toml:"min,omitempty"`
	Max     int      `toml:"max,omitempty"`
}

func (s Step) String() string {
	switch s.Action {
	case ActionWheel:
		return fmt.Sprintf("wheel %s delta=%g", s.Track, s.Delta)
	case ActionDrag:
		return fmt.Sprintf("drag %s dx=%g", s.Track, s.DX)
	case ActionZoom:
		return fmt.Sprintf("zoom %s k=%g", s.Track, s.K)
	case ActionResize:
		return fmt.Sprintf("resize %s width=%g", s.Track, s.Width)
	case ActionDomain:
		return fmt.Sprintf("domain [%d, %d]", s.Min, s.Max)
	case ActionRemove:
		return fmt.Sprintf("remove %s", s.Track)
	}
	return s.Action
}

// Validate checks the session without building anything.
func (s *Session) Validate() error {
	if err := s.Domain.Validate(); err != nil {
		return err
	}
	if len(s.Tracks) == 0 {
		return errors.New(errors.ErrCodeInvalidSession, "session declares no tracks")
	}
	ids := make(map[string]bool, len(s.Tracks))
	for i, t := range s.Tracks {
		if _, err := track.ParseKind(t.Kind); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidSession, err, "track %d", i)
		}
		if t.ID == "" {
			continue
		}
		if ids[t.ID] {
			return errors.New(errors.ErrCodeInvalidSession, "track id %q declared twice", t.ID)
		}
		ids[t.ID] = true
	}
	for i, st := range s.Steps {
		if err := st.validate(ids); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidSession, err, "step %d", i+1)
		}
	}
	return nil
}

func (st Step) validate(ids map[string]bool) error {
	switch st.Action {
	case ActionWheel, ActionDrag, ActionZoom, ActionResize, ActionRemove:
		if !ids[st.Track] {
			return errors.New(errors.ErrCodeTrackNotFound, "%s names unknown track %q", st.Action, st.Track)
		}
	case ActionDomain:
		return viewport.Domain{Min: st.Min, Max: st.Max}.Validate()
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown action %q", st.Action)
	}
	return nil
}

// Build creates a dashboard with every declared track. Tracks without a
// width get defaultWidth; surfaceFor may be nil.
func (s *Session) Build(logger *log.Logger, defaultWidth float64, surfaceFor func(id string, kind track.Kind) track.Surface) (*dashboard.Dashboard, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	d, err := dashboard.New(s.Domain,
		dashboard.WithLogger(logger),
		dashboard.WithMinVisibleSpan(s.MinVisibleSpan),
	)
	if err != nil {
		return nil, err
	}
	for _, def := range s.Tracks {
		kind, _ := track.ParseKind(def.Kind)
		spec := dashboard.TrackSpec{ID: def.ID, Kind: kind, Width: def.Width, Gutters: def.Gutters}
		if spec.Width == 0 {
			spec.Width = defaultWidth
		}
		if surfaceFor != nil {
			spec.Surface = surfaceFor(def.ID, kind)
		}
		if _, err := d.AddTrack(spec); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Result is the dashboard state after one step.
type Result struct {
	Index    int                `json:"index"`
	Step     string             `json:"step"`
	Snapshot dashboard.Snapshot `json:"snapshot"`
}

// Run applies steps in order and records a snapshot after each. It stops
// at the first failing step.
func Run(d *dashboard.Dashboard, steps []Step) ([]Result, error) {
	results := make([]Result, 0, len(steps))
	for i, st := range steps {
		if err := Apply(d, st); err != nil {
			return results, fmt.Errorf("step %d (%s): %w", i+1, st, err)
		}
		results = append(results, Result{Index: i + 1, Step: st.String(), Snapshot: d.Snapshot()})
	}
	return results, nil
}

// Apply runs a single step.
func Apply(d *dashboard.Dashboard, st Step) error {
	switch st.Action {
	case ActionDomain:
		dom, err := viewport.NewDomain(st.Min, st.Max)
		if err != nil {
			return err
		}
		return d.SetDomain(dom)
	case ActionResize:
		return d.Resize(st.Track, st.Width)
	case ActionRemove:
		return d.RemoveTrack(st.Track)
	}

	t, err := d.Track(st.Track)
	if err != nil {
		return err
	}
	var g track.Gesture
	switch st.Action {
	case ActionWheel, ActionZoom:
		px, err := pointer(t, d.Domain(), st)
		if err != nil {
			return err
		}
		if st.Action == ActionWheel {
			g = track.Wheel{PointerX: px, DeltaY: st.Delta}
		} else {
			g = track.ZoomTo{K: st.K, PointerX: px}
		}
	case ActionDrag:
		g = track.Drag{DX: st.DX}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown action %q", strings.TrimSpace(st.Action))
	}
	_, err = d.Gesture(st.Track, g)
	return err
}

// pointer resolves the pixel a wheel or zoom step is anchored at. Without
// Pointer or At the middle of the band is used. At must lie inside dom.
func pointer(t *track.Track, dom viewport.Domain, st Step) (float64, error) {
	switch {
	case st.At != nil:
		if !dom.Contains(*st.At) {
			return 0, errors.New(errors.ErrCodeInvalidInput, "position %g outside domain [%d, %d]", *st.At, dom.Min, dom.Max)
		}
		return t.PixelTransform().Apply(t.BaseScale().Apply(*st.At)), nil
	case st.Pointer != nil:
		return *st.Pointer, nil
	}
	r0, r1 := t.Geometry().Band()
	return (r0 + r1) / 2, nil
}
