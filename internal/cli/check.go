package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/peptrack/pkg/errors"
)

// checkCommand creates the check command for validating session files.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [session.toml...]",
		Short: "Validate session files",
		Long: `Validate session files.

Every file is parsed, its steps are checked against the declared tracks and
the dashboard is built once so invalid widths or gutters are reported
before a replay.`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeSessionFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.OutOrStdout(), args)
		},
	}
}

func (c *CLI) runCheck(w io.Writer, paths []string) error {
	failed := 0
	for _, path := range paths {
		if err := c.checkOne(w, path); err != nil {
			failed++
			printError(w, "%s: %s", path, errors.UserMessage(err))
			c.Logger.Debug("check failed", "path", path, "code", errors.GetCode(err), "err", err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d session files are invalid", failed, len(paths))
	}
	return nil
}

func (c *CLI) checkOne(w io.Writer, path string) error {
	s, err := c.loadSession(path)
	if err != nil {
		return err
	}
	d, err := s.Build(c.Logger, c.Defaults.Width, nil)
	if err != nil {
		return err
	}
	printSuccess(w, "%s", path)
	dom := d.Domain()
	printKeyValue(w, "  domain", fmt.Sprintf("[%d, %d] max zoom %.1f", dom.Min, dom.Max, dom.MaxZoomFor(s.MinVisibleSpan)))
	for _, t := range d.Tracks() {
		g := t.Geometry()
		printKeyValue(w, "  "+t.ID(), fmt.Sprintf("%s width %.0f gutters %.0f/%.0f", t.Kind(), g.Width, g.GutterLeft, g.GutterRight))
	}
	printKeyValue(w, "  steps", fmt.Sprint(len(s.Steps)))
	return nil
}
