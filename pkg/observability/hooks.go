// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about gestures, relays between tracks, and resizes.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSyncHooks(&mySyncHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Sync().OnOriginate(trackID, k, x)
//	observability.Sync().OnRelay(trackID, delivered, failed, duration)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Sync Hooks
// =============================================================================

// SyncHooks receives events from the track synchronization engine.
// Transforms are reported in the band frame as (k, x).
type SyncHooks interface {
	// OnOriginate records a gesture accepted by a track.
	OnOriginate(trackID string, k, x float64)

	// OnRelay records one relay of an originated transform to the peers.
	OnRelay(fromID string, delivered, failed int, duration time.Duration)

	// OnPeerFailure records a peer that failed to apply a relayed transform.
	OnPeerFailure(fromID, toID string, err error)

	// OnResize records a width change applied to a track.
	OnResize(trackID string, width float64)

	// OnDiagnostic records a one-time diagnostic, such as a non-finite
	// transform replaced by identity.
	OnDiagnostic(trackID string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSyncHooks is a no-op implementation of SyncHooks.
type NoopSyncHooks struct{}

func (NoopSyncHooks) OnOriginate(string, float64, float64)    {}
func (NoopSyncHooks) OnRelay(string, int, int, time.Duration) {}
func (NoopSyncHooks) OnPeerFailure(string, string, error)     {}
func (NoopSyncHooks) OnResize(string, float64)                {}
func (NoopSyncHooks) OnDiagnostic(string, error)              {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	syncHooks SyncHooks = NoopSyncHooks{}
	hooksMu   sync.RWMutex
)

// SetSyncHooks registers custom sync hooks.
// This should be called once at application startup before any track is built.
func SetSyncHooks(h SyncHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		syncHooks = h
	}
}

// Sync returns the registered sync hooks.
func Sync() SyncHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return syncHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	syncHooks = NoopSyncHooks{}
}
