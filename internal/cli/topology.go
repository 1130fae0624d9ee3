package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/peptrack/pkg/errors"
	"github.com/matzehuels/peptrack/pkg/render/topology"
	"github.com/matzehuels/peptrack/pkg/session"
)

// topologyOpts holds the topology command flags.
type topologyOpts struct {
	output   string // output path; stdout when empty
	format   string // dot or svg
	detailed bool   // include geometry and windows in node labels
	replay   bool   // run the session steps first
}

// topologyCommand creates the topology command for rendering the sync wiring.
func (c *CLI) topologyCommand() *cobra.Command {
	opts := topologyOpts{format: "dot"}

	cmd := &cobra.Command{
		Use:   "topology [session.toml]",
		Short: "Render how a session's tracks are wired to the mediator",
		Long: `Render how a session's tracks are wired to the mediator.

Every track is a node connected to the mediator in registration order, the
order in which relayed transforms are delivered. DOT is written by default;
-f svg renders it with Graphviz.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSessionFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTopology(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show geometry and window per track")
	cmd.Flags().BoolVar(&opts.replay, "replay", false, "run the session steps before rendering")

	return cmd
}

func (c *CLI) runTopology(ctx context.Context, w io.Writer, path string, opts topologyOpts) error {
	format := strings.ToLower(opts.format)
	if format != "dot" && format != "svg" {
		return errors.New(errors.ErrCodeUnsupported, "unsupported format %q (want dot or svg)", opts.format)
	}

	s, err := c.loadSession(path)
	if err != nil {
		return err
	}
	d, err := s.Build(c.Logger, c.Defaults.Width, nil)
	if err != nil {
		return fmt.Errorf("build %s: %w", path, err)
	}
	if opts.replay {
		if _, err := session.Run(d, s.Steps); err != nil {
			return err
		}
	}

	out := []byte(topology.ToDOT(d.Snapshot(), topology.Options{Detailed: opts.detailed}))
	if format == "svg" {
		if out, err = topology.RenderSVG(ctx, string(out)); err != nil {
			return fmt.Errorf("render svg: %w", err)
		}
	}

	if opts.output == "" {
		_, err := w.Write(out)
		return err
	}
	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printFile(w, filepath.Clean(opts.output))
	return nil
}
