// Package cli implements the peptrack command-line interface.
//
// Commands load a session file (see package session), build a dashboard of
// synchronized tracks and either replay its interaction script, inspect it,
// or let the user drive it interactively in the terminal. The CLI is built
// using cobra and logs via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - replay: Run a session script and print every track's visible window
//   - check: Validate a session file
//   - view: Pan and zoom the session's tracks interactively
//   - topology: Render the mediator wiring as DOT or SVG
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Sync events
// (originations, relays, peer failures) are logged at debug level through
// observability hooks registered by the command.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/peptrack/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Replayed 12 steps (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// =============================================================================
// Sync Hooks
// =============================================================================

// syncStats counts sync events and logs them at debug level.
type syncStats struct {
	logger      *log.Logger
	originated  int
	relays      int
	delivered   int
	failures    int
	resizes     int
	diagnostics int
}

var _ observability.SyncHooks = (*syncStats)(nil)

func newSyncStats(l *log.Logger) *syncStats {
	return &syncStats{logger: l}
}

func (s *syncStats) OnOriginate(trackID string, k, x float64) {
	s.originated++
	s.logger.Debug("originate", "track", trackID, "k", k, "x", x)
}

func (s *syncStats) OnRelay(fromID string, delivered, failed int, d time.Duration) {
	s.relays++
	s.delivered += delivered
	s.logger.Debug("relay", "from", fromID, "delivered", delivered, "failed", failed, "took", d)
}

func (s *syncStats) OnPeerFailure(fromID, toID string, err error) {
	s.failures++
	s.logger.Debug("peer failure", "from", fromID, "to", toID, "err", err)
}

func (s *syncStats) OnResize(trackID string, width float64) {
	s.resizes++
	s.logger.Debug("resize", "track", trackID, "width", width)
}

func (s *syncStats) OnDiagnostic(trackID string, err error) {
	s.diagnostics++
}

// install registers s as the process-wide sync hooks and returns a function
// restoring the no-op hooks.
func (s *syncStats) install() func() {
	observability.SetSyncHooks(s)
	return observability.Reset
}
