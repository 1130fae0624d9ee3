// Package cli implements the peptrack command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/peptrack/pkg/buildinfo"
	"github.com/matzehuels/peptrack/pkg/config"
	"github.com/matzehuels/peptrack/pkg/session"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "peptrack"

	// syncTolerance is how far, in sequence positions, two track windows may
	// drift before replay reports them out of sync.
	syncTolerance = 1e-3
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger   *log.Logger
	Defaults config.Defaults
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		Defaults: config.Defaults{Width: 960, MinVisibleSpan: 10, LogLevel: "info"},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "peptrack keeps the tracks of a peptide dashboard zoomed together",
		Long:         `peptrack replays and explores synchronized pan and zoom across the position-indexed tracks of an MHC-peptide binding dashboard.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.replayCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.topologyCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Session Helpers
// =============================================================================

// loadSession reads a session file and fills unset values from the
// environment defaults.
func (c *CLI) loadSession(path string) (*session.Session, error) {
	s, err := session.Load(path)
	if err != nil {
		return nil, err
	}
	if s.MinVisibleSpan == 0 {
		s.MinVisibleSpan = c.Defaults.MinVisibleSpan
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}
