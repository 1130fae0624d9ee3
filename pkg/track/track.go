package track

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/peptrack/pkg/errors"
	"github.com/matzehuels/peptrack/pkg/observability"
	"github.com/matzehuels/peptrack/pkg/viewport"
)

// EmitFunc receives every transform a track originates, in the band frame,
// together with the zoomed scale the track drew.
type EmitFunc func(zoomed viewport.Linear, t viewport.Transform)

// ReadyFunc receives the base scale once, after the first layout.
type ReadyFunc func(base viewport.Linear)

// Extent is the interaction-surface limit set: the scale extent and the
// pixel band the translate extent is derived from.
type Extent struct {
	MinK, MaxK  float64
	Left, Right float64
}

// Option configures a [Track].
type Option func(*Track)

// WithSurface sets the render surface.
func WithSurface(s Surface) Option { return func(t *Track) { t.surface = s } }

// WithGutters overrides the default gutters of the kind.
func WithGutters(g Gutters) Option { return func(t *Track) { t.gutters = g } }

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *log.Logger) Option { return func(t *Track) { t.logger = l } }

// WithMinVisibleSpan changes the smallest visible span, and so the zoom cap.
func WithMinVisibleSpan(span float64) Option { return func(t *Track) { t.minSpan = span } }

// WithEmitter sets the emit callback, usually bound by a mediator.
func WithEmitter(fn EmitFunc) Option { return func(t *Track) { t.emit = fn } }

// WithOnReady sets the callback fired after the first layout.
func WithOnReady(fn ReadyFunc) Option { return func(t *Track) { t.onReady = fn } }

// Track is one synchronized panel. It is not safe for concurrent use; all
// calls are expected on the single interaction goroutine.
type Track struct {
	id      string
	kind    Kind
	domain  viewport.Domain
	gutters Gutters
	minSpan float64

	geom     viewport.Geometry
	base     viewport.Linear
	last     viewport.Transform // band frame
	baseline viewport.Transform // interaction surface, pixel frame
	extent   Extent
	state    State
	mounted  bool

	surface Surface
	emit    EmitFunc
	onReady ReadyFunc
	logger  *log.Logger

	diagnosed bool
}

// New builds an unmounted track. Call [Track.Mount] once the container
// width is known.
func New(id string, kind Kind, domain viewport.Domain, opts ...Option) (*Track, error) {
	if id == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "track id cannot be empty")
	}
	if err := domain.Validate(); err != nil {
		return nil, err
	}
	t := &Track{
		id:       id,
		kind:     kind,
		domain:   domain,
		gutters:  kind.Gutters(),
		last:     viewport.Identity,
		baseline: viewport.Identity,
		surface:  nopSurface{},
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = log.New(io.Discard)
	}
	t.geom = viewport.Geometry{
		GutterLeft:  t.gutters.Left,
		GutterRight: t.gutters.Right,
		MaxZoom:     domain.MaxZoomFor(t.minSpan),
	}
	return t, nil
}

func (t *Track) ID() string                  { return t.id }
func (t *Track) Kind() Kind                  { return t.kind }
func (t *Track) Domain() viewport.Domain     { return t.domain }
func (t *Track) Geometry() viewport.Geometry { return t.geom }
func (t *Track) BaseScale() viewport.Linear  { return t.base }
func (t *Track) State() State                { return t.state }
func (t *Track) Extent() Extent              { return t.extent }
func (t *Track) SetEmitter(fn EmitFunc)      { t.emit = fn }
func (t *Track) SetOnReady(fn ReadyFunc)     { t.onReady = fn }

// LastApplied returns the last applied transform in the band frame.
func (t *Track) LastApplied() viewport.Transform { return t.last }

// PixelTransform returns the last applied transform in this track's frame.
func (t *Track) PixelTransform() viewport.Transform {
	return viewport.FromBand(t.geom, t.last)
}

// Window returns the visible position interval.
func (t *Track) Window() (lo, hi float64) {
	return viewport.Window(t.domain, t.last)
}

// Mount performs the first layout at width and fires the ready callback.
// Mounting twice behaves like [Track.Resize].
func (t *Track) Mount(width float64) error {
	if t.mounted {
		return t.Resize(width)
	}
	if err := t.layout(width); err != nil {
		return err
	}
	t.mounted = true
	t.logger.Debug("track mounted", "track", t.id, "kind", t.kind, "width", width)
	if t.onReady != nil {
		t.onReady(t.base)
	}
	return nil
}

// Originate turns a gesture on this track into a clamped transform,
// redraws and emits it. It returns the zoomed scale and the transform in
// the band frame.
func (t *Track) Originate(g Gesture) (viewport.Linear, viewport.Transform, error) {
	if !t.mounted {
		return viewport.Linear{}, t.last, errors.New(errors.ErrCodeInvalidInput, "track %s is not mounted", t.id)
	}
	if t.state != Idle {
		return viewport.Linear{}, t.last, errors.New(errors.ErrCodeTrackBusy, "track %s is %s", t.id, t.state)
	}
	t.state = Gesturing
	defer func() { t.state = Idle }()

	proposed := g.Propose(t.baseline, t.geom)
	if !proposed.IsFinite() {
		t.diagnose(errors.New(errors.ErrCodeTransformRange, "gesture produced %v", proposed))
	}
	px := viewport.Clamp(t.geom, proposed)
	baseline := proposed
	if !px.Equal(proposed) {
		// Later deltas compose against the clamped value.
		baseline = px
	}

	zoomed, drawn := t.redraw(px)
	if !drawn.Equal(px) {
		baseline = drawn
	}
	t.baseline = baseline
	t.last = viewport.ToBand(t.geom, drawn)

	observability.Sync().OnOriginate(t.id, t.last.K, t.last.X)
	if t.emit != nil && !t.state.SuppressesEmit() {
		t.emit(zoomed, t.last)
	}
	return zoomed, t.last, nil
}

// SetZoom applies a transform relayed from a peer, given in the band frame.
// It never emits. Transforms equal to the last applied one are ignored.
func (t *Track) SetZoom(tr viewport.Transform) error {
	if !t.mounted {
		return errors.New(errors.ErrCodeInvalidInput, "track %s is not mounted", t.id)
	}
	if !t.state.AcceptsExternal() {
		t.logger.Debug("dropping external transform", "track", t.id, "state", t.state)
		return nil
	}
	if tr.Equal(t.last) {
		return nil
	}
	t.state = ApplyingExternal
	defer func() { t.state = Idle }()

	if !tr.IsFinite() {
		t.diagnose(errors.New(errors.ErrCodeTransformRange, "relayed transform %v", tr))
	}
	px := viewport.Clamp(t.geom, viewport.FromBand(t.geom, tr))
	_, px = t.redraw(px)
	t.baseline = px
	t.last = viewport.ToBand(t.geom, px)
	return nil
}

// ApplyExternal is [Track.SetZoom].
func (t *Track) ApplyExternal(tr viewport.Transform) error { return t.SetZoom(tr) }

// Resize rebuilds the geometry and base scale for a new width. An existing
// zoom is re-based onto the new geometry rather than reset. Invalid widths
// leave the track untouched.
func (t *Track) Resize(width float64) error {
	if !t.state.AcceptsResize() {
		return errors.New(errors.ErrCodeTrackBusy, "track %s is %s", t.id, t.state)
	}
	if err := t.layout(width); err != nil {
		return err
	}
	observability.Sync().OnResize(t.id, width)
	return nil
}

// Rebase switches the track to a new dataset domain and resets the view
// to identity.
func (t *Track) Rebase(d viewport.Domain) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if !t.state.AcceptsResize() {
		return errors.New(errors.ErrCodeTrackBusy, "track %s is %s", t.id, t.state)
	}
	t.domain = d
	t.geom.MaxZoom = d.MaxZoomFor(t.minSpan)
	t.last = viewport.Identity
	t.baseline = viewport.Identity
	if !t.mounted {
		return nil
	}
	return t.layout(t.geom.Width)
}

func (t *Track) layout(width float64) error {
	geom := t.geom.WithWidth(width)
	base, err := viewport.NewBaseScale(t.domain, geom)
	if err != nil {
		t.logger.Warn("keeping last layout", "track", t.id, "width", width, "err", err)
		return err
	}
	t.geom = geom
	t.base = base
	r0, r1 := geom.Band()
	t.extent = Extent{MinK: 1, MaxK: geom.MaxZoom, Left: r0, Right: r1}

	px := viewport.Clamp(geom, viewport.FromBand(geom, t.last))
	if px.IsIdentity() {
		t.surface.Draw(base, viewport.Identity)
		t.baseline = viewport.Identity
		t.last = viewport.Identity
		return nil
	}
	_, px = t.redraw(px)
	t.baseline = px
	t.last = viewport.ToBand(geom, px)
	return nil
}

// redraw draws the base scale through px, falling back to identity when
// the zoomed scale is not finite. It returns what was drawn.
func (t *Track) redraw(px viewport.Transform) (viewport.Linear, viewport.Transform) {
	zoomed := px.Rescale(t.base)
	if !zoomed.IsFinite() {
		t.diagnose(errors.New(errors.ErrCodeTransformRange, "rescale by %v is not finite", px))
		px = viewport.Identity
		zoomed = t.base
	}
	t.surface.Draw(zoomed, px)
	return zoomed, px
}

// diagnose reports the first non-finite transform of this track.
func (t *Track) diagnose(err error) {
	if t.diagnosed {
		return
	}
	t.diagnosed = true
	t.logger.Warn("non-finite transform, falling back to identity", "track", t.id, "err", err)
	observability.Sync().OnDiagnostic(t.id, err)
}
