// Package dashboard hosts a set of synchronized tracks over one dataset.
//
// The dashboard owns the position domain, a [mediator.Mediator] and the
// tracks. It wires every track's emit into the mediator, seeds late tracks
// with the view their peers already show, coalesces resizes that arrive
// while a gesture is running, and resets every track when the dataset
// changes.
//
//	d, _ := dashboard.New(viewport.Domain{Min: 1, Max: 566}, dashboard.WithLogger(logger))
//	d.AddTrack(dashboard.TrackSpec{ID: "heatmap", Kind: track.KindHeatmap, Width: 960})
//	d.AddTrack(dashboard.TrackSpec{ID: "scan", Kind: track.KindScan, Width: 960})
//	d.Gesture("heatmap", track.Wheel{PointerX: 400, DeltaY: -120})
package dashboard

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/peptrack/pkg/errors"
	"github.com/matzehuels/peptrack/pkg/mediator"
	"github.com/matzehuels/peptrack/pkg/track"
	"github.com/matzehuels/peptrack/pkg/viewport"
)

// TrackSpec describes a track to add.
type TrackSpec struct {
	// ID identifies the track; a random id is assigned when empty.
	ID      string
	Kind    track.Kind
	Width   float64
	Gutters *track.Gutters
	Surface track.Surface
}

// Option configures a [Dashboard].
type Option func(*Dashboard)

// WithLogger sets the logger shared by the dashboard, its mediator and its
// tracks.
func WithLogger(l *log.Logger) Option { return func(d *Dashboard) { d.logger = l } }

// WithMinVisibleSpan sets the smallest span a fully zoomed track shows.
func WithMinVisibleSpan(span float64) Option { return func(d *Dashboard) { d.minSpan = span } }

// Dashboard hosts synchronized tracks. Like the tracks it holds, it is
// driven from a single goroutine.
type Dashboard struct {
	domain  viewport.Domain
	med     *mediator.Mediator
	tracks  []*track.Track
	logger  *log.Logger
	minSpan float64

	busy    bool
	pending map[string]float64
}

// New creates an empty dashboard over domain.
func New(domain viewport.Domain, opts ...Option) (*Dashboard, error) {
	if err := domain.Validate(); err != nil {
		return nil, err
	}
	d := &Dashboard{
		domain:  domain,
		pending: make(map[string]float64),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = log.New(io.Discard)
	}
	d.med = mediator.New(d.logger.WithPrefix("sync"))
	return d, nil
}

// Domain returns the current position domain.
func (d *Dashboard) Domain() viewport.Domain { return d.domain }

// Tracks returns the tracks in the order they were added.
func (d *Dashboard) Tracks() []*track.Track { return slices.Clone(d.tracks) }

// Track returns the track with the given id.
func (d *Dashboard) Track(id string) (*track.Track, error) {
	for _, t := range d.tracks {
		if t.ID() == id {
			return t, nil
		}
	}
	return nil, errors.New(errors.ErrCodeTrackNotFound, "no track %q", id)
}

// AddTrack builds, registers and mounts a track. Once mounted the track is
// seeded with the transform its peers already show.
func (d *Dashboard) AddTrack(spec TrackSpec) (*track.Track, error) {
	id := spec.ID
	if id == "" {
		id = string(spec.Kind) + "-" + uuid.NewString()[:8]
	}
	if _, err := d.Track(id); err == nil {
		return nil, errors.New(errors.ErrCodeDuplicateTrack, "track %q already exists", id)
	}

	opts := []track.Option{
		track.WithLogger(d.logger.WithPrefix(id)),
		track.WithMinVisibleSpan(d.minSpan),
	}
	if spec.Gutters != nil {
		opts = append(opts, track.WithGutters(*spec.Gutters))
	}
	if spec.Surface != nil {
		opts = append(opts, track.WithSurface(spec.Surface))
	}
	t, err := track.New(id, spec.Kind, d.domain, opts...)
	if err != nil {
		return nil, err
	}

	emit, err := d.med.Register(t)
	if err != nil {
		return nil, err
	}
	t.SetEmitter(emit)
	t.SetOnReady(func(viewport.Linear) {
		if err := d.med.Seed(t); err != nil {
			d.logger.Warn("seeding failed", "track", id, "err", err)
		}
	})
	if err := t.Mount(spec.Width); err != nil {
		d.med.Unregister(t)
		return nil, err
	}

	d.tracks = append(d.tracks, t)
	d.logger.Debug("track added", "track", id, "kind", spec.Kind, "width", spec.Width)
	return t, nil
}

// RemoveTrack unregisters and drops a track.
func (d *Dashboard) RemoveTrack(id string) error {
	t, err := d.Track(id)
	if err != nil {
		return err
	}
	d.med.Unregister(t)
	d.tracks = slices.DeleteFunc(d.tracks, func(x *track.Track) bool { return x == t })
	delete(d.pending, id)
	return nil
}

// Gesture runs g on the track with the given id and relays the result.
// Resizes requested while it runs are applied once it returns.
func (d *Dashboard) Gesture(id string, g track.Gesture) (viewport.Transform, error) {
	t, err := d.Track(id)
	if err != nil {
		return viewport.Transform{}, err
	}
	d.busy = true
	defer func() {
		d.busy = false
		d.flush()
	}()
	_, tr, err := t.Originate(g)
	return tr, err
}

// Resize changes the width of a track. While a gesture is running the
// request is held, and only the latest width per track is applied.
func (d *Dashboard) Resize(id string, width float64) error {
	t, err := d.Track(id)
	if err != nil {
		return err
	}
	if d.busy || !t.State().AcceptsResize() {
		d.pending[id] = width
		d.logger.Debug("resize deferred", "track", id, "width", width)
		return nil
	}
	return t.Resize(width)
}

// Pending returns the number of deferred resizes.
func (d *Dashboard) Pending() int { return len(d.pending) }

func (d *Dashboard) flush() {
	if len(d.pending) == 0 {
		return
	}
	pending := d.pending
	d.pending = make(map[string]float64)
	for _, t := range d.tracks {
		w, ok := pending[t.ID()]
		if !ok {
			continue
		}
		if err := t.Resize(w); err != nil {
			d.logger.Warn("deferred resize failed", "track", t.ID(), "width", w, "err", err)
		}
	}
}

// SetDomain switches every track to a new dataset. All views reset to
// identity and zoom caps follow the new span.
func (d *Dashboard) SetDomain(domain viewport.Domain) error {
	if err := domain.Validate(); err != nil {
		return err
	}
	d.domain = domain
	var errs []error
	for _, t := range d.tracks {
		if err := t.Rebase(domain); err != nil {
			errs = append(errs, errors.Wrap(errors.ErrCodeInternal, err, "rebase %s", t.ID()))
		}
	}
	d.logger.Info("dataset changed", "min", domain.Min, "max", domain.Max, "tracks", len(d.tracks))
	return errors.Join(errs...)
}
