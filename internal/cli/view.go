package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/peptrack/pkg/dashboard"
	"github.com/matzehuels/peptrack/pkg/render/strip"
	"github.com/matzehuels/peptrack/pkg/session"
	"github.com/matzehuels/peptrack/pkg/track"
)

// viewCommand creates the view command for interactive pan and zoom.
func (c *CLI) viewCommand() *cobra.Command {
	var replay bool

	cmd := &cobra.Command{
		Use:   "view [session.toml]",
		Short: "Pan and zoom a session's tracks in the terminal",
		Long: `Pan and zoom a session's tracks in the terminal.

Each track is drawn as a position axis. Gestures on the selected track are
relayed to every other track, so all axes show the same window.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSessionFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context(), args[0], replay)
		},
	}

	cmd.Flags().BoolVar(&replay, "replay", false, "run the session steps before starting")

	return cmd
}

func (c *CLI) runView(ctx context.Context, path string, replay bool) error {
	s, err := c.loadSession(path)
	if err != nil {
		return err
	}
	d, strips, err := c.buildWithStrips(s)
	if err != nil {
		return fmt.Errorf("build %s: %w", path, err)
	}
	if replay {
		if _, err := session.Run(d, s.Steps); err != nil {
			return err
		}
	}

	p := tea.NewProgram(NewViewModel(s.Name, d, strips), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

// buildWithStrips builds the session's dashboard with one terminal strip
// per track, keyed by track id.
func (c *CLI) buildWithStrips(s *session.Session) (*dashboard.Dashboard, map[string]*strip.Strip, error) {
	var built []*strip.Strip
	d, err := s.Build(c.Logger, c.Defaults.Width, func(string, track.Kind) track.Surface {
		st := strip.New()
		built = append(built, st)
		return st
	})
	if err != nil {
		return nil, nil, err
	}
	// Declared ids may be empty; the dashboard assigns them while adding
	// tracks in declaration order.
	strips := make(map[string]*strip.Strip, len(built))
	for i, t := range d.Tracks() {
		strips[t.ID()] = built[i]
	}
	return d, strips, nil
}
