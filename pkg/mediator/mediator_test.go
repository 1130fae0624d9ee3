package mediator

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/matzehuels/peptrack/pkg/errors"
	"github.com/matzehuels/peptrack/pkg/track"
	"github.com/matzehuels/peptrack/pkg/viewport"
)

type stubPeer struct {
	id      string
	last    viewport.Transform
	applied []viewport.Transform
	err     error
	panics  bool
	log     *[]string
}

func newStub(id string, log *[]string) *stubPeer {
	return &stubPeer{id: id, last: viewport.Identity, log: log}
}

func (p *stubPeer) ID() string                      { return p.id }
func (p *stubPeer) LastApplied() viewport.Transform { return p.last }

func (p *stubPeer) SetZoom(t viewport.Transform) error {
	if p.log != nil {
		*p.log = append(*p.log, p.id)
	}
	if p.panics {
		panic("surface exploded")
	}
	if p.err != nil {
		return p.err
	}
	p.applied = append(p.applied, t)
	p.last = t
	return nil
}

func TestRelayInRegistrationOrderSkippingSource(t *testing.T) {
	var order []string
	m := New(nil)
	a, b, c := newStub("a", &order), newStub("b", &order), newStub("c", &order)
	for _, p := range []*stubPeer{c, a, b} {
		if _, err := m.Register(p); err != nil {
			t.Fatal(err)
		}
	}

	want := viewport.Transform{K: 2, X: -0.3}
	if err := m.Relay("a", want); err != nil {
		t.Fatalf("Relay() error = %v", err)
	}

	if len(order) != 2 || order[0] != "c" || order[1] != "b" {
		t.Errorf("delivery order = %v, want [c b]", order)
	}
	if len(a.applied) != 0 {
		t.Error("source received its own transform")
	}
	if !b.last.Equal(want) || !c.last.Equal(want) {
		t.Errorf("peers hold %v and %v, want %v", b.last, c.last, want)
	}
}

func TestRelayIsolatesFailures(t *testing.T) {
	m := New(nil)
	src := newStub("src", nil)
	broken := newStub("broken", nil)
	broken.err = stderrors.New("no layout")
	exploding := newStub("exploding", nil)
	exploding.panics = true
	healthy := newStub("healthy", nil)

	for _, p := range []*stubPeer{src, broken, exploding, healthy} {
		if _, err := m.Register(p); err != nil {
			t.Fatal(err)
		}
	}

	err := m.Relay("src", viewport.Transform{K: 3, X: -1})
	if !errors.Is(err, errors.ErrCodePeerApply) {
		t.Fatalf("Relay() error = %v, want %s", err, errors.ErrCodePeerApply)
	}
	if len(healthy.applied) != 1 {
		t.Errorf("healthy peer applied %d transforms, want 1", len(healthy.applied))
	}
}

func TestEmitRelays(t *testing.T) {
	m := New(nil)
	a, b := newStub("a", nil), newStub("b", nil)
	emit, err := m.Register(a)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Register(b); err != nil {
		t.Fatal(err)
	}

	emit(viewport.Linear{}, viewport.Transform{K: 1.5, X: -0.2})
	if len(b.applied) != 1 {
		t.Errorf("b applied %d transforms, want 1", len(b.applied))
	}
}

func TestRegisterDuplicate(t *testing.T) {
	m := New(nil)
	if _, err := m.Register(newStub("a", nil)); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Register(newStub("a", nil)); !errors.Is(err, errors.ErrCodeDuplicateTrack) {
		t.Errorf("Register() error = %v, want %s", err, errors.ErrCodeDuplicateTrack)
	}
}

func TestUnregister(t *testing.T) {
	m := New(nil)
	a, b := newStub("a", nil), newStub("b", nil)
	emitA, _ := m.Register(a)
	if _, err := m.Register(b); err != nil {
		t.Fatal(err)
	}

	m.Unregister(b)
	if err := m.Relay("a", viewport.Transform{K: 2}); err != nil {
		t.Fatal(err)
	}
	if len(b.applied) != 0 {
		t.Error("unregistered peer still receives transforms")
	}

	m.Unregister(a)
	emitA(viewport.Linear{}, viewport.Transform{K: 2})
	if n := len(m.Peers()); n != 0 {
		t.Errorf("Peers() = %d, want 0", n)
	}
}

func TestSeed(t *testing.T) {
	m := New(nil)
	idle, zoomed, fresh := newStub("idle", nil), newStub("zoomed", nil), newStub("fresh", nil)
	zoomed.last = viewport.Transform{K: 4, X: -2}
	for _, p := range []*stubPeer{idle, zoomed, fresh} {
		if _, err := m.Register(p); err != nil {
			t.Fatal(err)
		}
	}

	if err := m.Seed(fresh); err != nil {
		t.Fatal(err)
	}
	if !fresh.last.Equal(zoomed.last) {
		t.Errorf("seeded %v, want %v", fresh.last, zoomed.last)
	}
}

func TestSeedWithIdentityPeers(t *testing.T) {
	m := New(nil)
	a, fresh := newStub("a", nil), newStub("fresh", nil)
	_, _ = m.Register(a)
	_, _ = m.Register(fresh)

	if err := m.Seed(fresh); err != nil {
		t.Fatal(err)
	}
	if len(fresh.applied) != 0 {
		t.Errorf("fresh peer applied %v, want nothing", fresh.applied)
	}
}

// Tracks wired through a mediator: one gesture, one emit, every track at the
// same window.
func TestTracksStayInSync(t *testing.T) {
	d := viewport.Domain{Min: 1, Max: 120}
	m := New(nil)

	emits := 0
	specs := []struct {
		id    string
		kind  track.Kind
		width float64
	}{
		{"a", track.KindHeatmap, 600},
		{"b", track.KindScan, 420},
		{"c", track.KindStacked, 900},
	}

	var tracks []*track.Track
	for _, s := range specs {
		tr, err := track.New(s.id, s.kind, d)
		if err != nil {
			t.Fatal(err)
		}
		relay, err := m.Register(tr)
		if err != nil {
			t.Fatal(err)
		}
		tr.SetEmitter(func(z viewport.Linear, t viewport.Transform) {
			emits++
			relay(z, t)
		})
		if err := tr.Mount(s.width); err != nil {
			t.Fatal(err)
		}
		tracks = append(tracks, tr)
	}

	a := tracks[0]
	pointer := a.BaseScale().Apply(60)
	if _, _, err := a.Originate(track.Wheel{PointerX: pointer, DeltaY: -math.Log2(3) / 0.002}); err != nil {
		t.Fatal(err)
	}

	if emits != 1 {
		t.Errorf("emit calls = %d, want 1", emits)
	}
	for _, tr := range tracks {
		lo, hi := viewport.PixelWindow(tr.BaseScale(), tr.PixelTransform())
		if math.Abs(lo-40) > 1 || math.Abs(hi-80) > 1 {
			t.Errorf("track %s shows [%.2f, %.2f], want about [40, 80]", tr.ID(), lo, hi)
		}
		px := tr.PixelTransform()
		if !viewport.Clamp(tr.Geometry(), px).Equal(px) {
			t.Errorf("track %s holds out-of-bounds %v", tr.ID(), px)
		}
	}
}
