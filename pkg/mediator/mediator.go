// Package mediator relays transforms between the tracks of a dashboard.
//
// A [Mediator] holds no transform of its own. When a registered peer emits,
// the mediator hands the transform to every other peer, synchronously and
// in registration order, so no two tracks are left at different zoom levels
// once a gesture returns. Peers never learn each other's identity.
//
//	m := mediator.New(logger)
//	emit, err := m.Register(heatmap)
//	heatmap.SetEmitter(emit)
package mediator

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/peptrack/pkg/errors"
	"github.com/matzehuels/peptrack/pkg/observability"
	"github.com/matzehuels/peptrack/pkg/viewport"
)

// Peer is the part of a track the mediator talks to.
type Peer interface {
	ID() string
	// SetZoom applies a band-frame transform without emitting.
	SetZoom(t viewport.Transform) error
	// LastApplied returns the band-frame transform the peer shows.
	LastApplied() viewport.Transform
}

// Mediator is a stateless relay between registered peers.
type Mediator struct {
	peers  []Peer
	logger *log.Logger
}

// New creates a mediator. A nil logger discards output.
func New(logger *log.Logger) *Mediator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Mediator{logger: logger}
}

// Register adds p and returns the emit callback p must call for every
// transform it originates. Registering the same id twice fails.
func (m *Mediator) Register(p Peer) (func(viewport.Linear, viewport.Transform), error) {
	if m.index(p.ID()) >= 0 {
		return nil, errors.New(errors.ErrCodeDuplicateTrack, "peer %s already registered", p.ID())
	}
	m.peers = append(m.peers, p)
	m.logger.Debug("peer registered", "peer", p.ID(), "peers", len(m.peers))

	id := p.ID()
	return func(_ viewport.Linear, t viewport.Transform) {
		_ = m.Relay(id, t)
	}, nil
}

// Unregister removes p. Emits from p are ignored afterwards.
func (m *Mediator) Unregister(p Peer) {
	if i := m.index(p.ID()); i >= 0 {
		m.peers = slices.Delete(m.peers, i, i+1)
		m.logger.Debug("peer unregistered", "peer", p.ID(), "peers", len(m.peers))
	}
}

// Peers returns the registered peers in registration order.
func (m *Mediator) Peers() []Peer {
	return slices.Clone(m.peers)
}

// Seed brings p to the view its peers already show. The first other peer
// with a non-identity transform wins; p is left alone when every peer is
// at identity.
func (m *Mediator) Seed(p Peer) error {
	for _, q := range m.peers {
		if q.ID() == p.ID() {
			continue
		}
		if t := q.LastApplied(); !t.IsIdentity() {
			m.logger.Debug("seeding peer", "peer", p.ID(), "from", q.ID(), "transform", t)
			return m.deliver(p, t)
		}
	}
	return nil
}

// Relay delivers t to every registered peer except the one with fromID.
// A failing peer does not stop the relay; all failures are returned joined.
// Emits from unregistered ids are ignored.
func (m *Mediator) Relay(fromID string, t viewport.Transform) error {
	if m.index(fromID) < 0 {
		m.logger.Debug("ignoring emit from unregistered peer", "peer", fromID)
		return nil
	}
	start := time.Now()
	var errs []error
	delivered := 0
	// Registration changes made by a peer during the relay apply to the
	// next one.
	for _, p := range slices.Clone(m.peers) {
		if p.ID() == fromID {
			continue
		}
		if err := m.deliver(p, t); err != nil {
			m.logger.Error("peer failed to apply transform", "from", fromID, "peer", p.ID(), "err", err)
			observability.Sync().OnPeerFailure(fromID, p.ID(), err)
			errs = append(errs, err)
			continue
		}
		delivered++
	}
	observability.Sync().OnRelay(fromID, delivered, len(errs), time.Since(start))
	return errors.Join(errs...)
}

// deliver applies t to p, turning both errors and panics into
// PEER_APPLY_FAILED errors.
func (m *Mediator) deliver(p Peer, t viewport.Transform) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrap(errors.ErrCodePeerApply, fmt.Errorf("panic: %v", r), "peer %s", p.ID())
		}
	}()
	if err := p.SetZoom(t); err != nil {
		return errors.Wrap(errors.ErrCodePeerApply, err, "peer %s", p.ID())
	}
	return nil
}

func (m *Mediator) index(id string) int {
	return slices.IndexFunc(m.peers, func(p Peer) bool { return p.ID() == id })
}
