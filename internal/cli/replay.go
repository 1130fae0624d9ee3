package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/peptrack/pkg/render/axis"
	"github.com/matzehuels/peptrack/pkg/session"
)

// replayOpts holds the replay command flags.
type replayOpts struct {
	jsonOut bool   // print results as JSON instead of tables
	svgOut  string // write the final axes as SVG to this path
	saveOut string // write the final layout as a new session file
	final   bool   // only print the state after the last step
}

// replayCommand creates the replay command for running session scripts.
func (c *CLI) replayCommand() *cobra.Command {
	var opts replayOpts

	cmd := &cobra.Command{
		Use:   "replay [session.toml]",
		Short: "Replay a session script and print every track's window",
		Long: `Replay a session script and print every track's window.

The session file declares the dataset domain, the tracks and a list of
steps (wheel, drag, zoom, resize, domain, remove). Each step is applied to
the dashboard in order; after every step the visible window of every track
is printed so synchronization can be checked at a glance.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSessionFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReplay(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print results as JSON")
	cmd.Flags().StringVar(&opts.svgOut, "svg", "", "write the final track axes as SVG")
	cmd.Flags().StringVar(&opts.saveOut, "save", "", "save the final layout as a session file")
	cmd.Flags().BoolVar(&opts.final, "final", false, "only print the state after the last step")

	return cmd
}

// runReplay builds the session's dashboard, runs its steps and writes the
// requested outputs.
func (c *CLI) runReplay(w io.Writer, path string, opts replayOpts) error {
	s, err := c.loadSession(path)
	if err != nil {
		return err
	}

	stats := newSyncStats(c.Logger)
	defer stats.install()()

	prog := newProgress(c.Logger)
	d, err := s.Build(c.Logger, c.Defaults.Width, nil)
	if err != nil {
		return fmt.Errorf("build %s: %w", path, err)
	}
	results, runErr := session.Run(d, s.Steps)
	prog.done(fmt.Sprintf("Replayed %d of %d steps", len(results), len(s.Steps)))

	if opts.final && len(results) > 1 {
		results = results[len(results)-1:]
	}

	if opts.jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(w, StyleTitle.Render(s.Name))
		printKeyValue(w, "domain", fmt.Sprintf("[%d, %d]", d.Domain().Min, d.Domain().Max))
		printKeyValue(w, "tracks", fmt.Sprint(len(d.Tracks())))
		fmt.Fprintln(w)
		if len(s.Steps) == 0 {
			fmt.Fprintln(w, windowTable(d.Snapshot()))
		}
		for _, r := range results {
			printInfo(w, "step %d: %s  %s", r.Index, r.Step, syncBadge(r.Snapshot))
			fmt.Fprintln(w, windowTable(r.Snapshot))
		}
		printKeyValue(w, "gestures", fmt.Sprint(stats.originated))
		printKeyValue(w, "relayed", fmt.Sprint(stats.delivered))
		if stats.failures > 0 {
			printWarning(w, "%d peer updates failed", stats.failures)
		}
	}

	if runErr != nil {
		return runErr
	}

	if opts.svgOut != "" {
		svg := axis.RenderSVG(axis.RowsFrom(d.Tracks()), axis.WithTitle(s.Name))
		if err := os.WriteFile(opts.svgOut, svg, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.svgOut, err)
		}
		printFile(w, opts.svgOut)
	}
	if opts.saveOut != "" {
		if err := session.Save(opts.saveOut, session.FromSnapshot(s.Name, d.Snapshot())); err != nil {
			return err
		}
		printFile(w, opts.saveOut)
	}
	if !opts.jsonOut {
		printSuccess(w, "Replay complete")
	}
	return nil
}
