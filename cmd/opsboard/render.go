package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/janekbaraniewski/opsboard/internal/core"
	"github.com/janekbaraniewski/opsboard/internal/snapshot"
	"github.com/janekbaraniewski/opsboard/internal/tui"
	"github.com/spf13/cobra"
)

var renderWidgets = []string{"costs", "facts", "pipeline"}

func newRenderCommand(opts *rootOptions) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:       "render <" + strings.Join(renderWidgets, "|") + ">",
		Short:     "Print one widget for the snapshot and exit",
		Args:      cobra.ExactArgs(1),
		ValidArgs: renderWidgets,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if cfg.Data.Path == "" {
				return errNoData
			}
			tui.SetThemeByName(cfg.Theme)

			snap, err := snapshot.Load(cfg.Data.Path)
			if err != nil {
				return err
			}
			return renderWidget(cmd.OutOrStdout(), args[0], snap, cfg.UI.ChartHeight, width)
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 100, "output width in columns")
	return cmd
}

func renderWidget(w io.Writer, widget string, snap core.Snapshot, chartHeight, width int) error {
	var out string
	switch widget {
	case "costs":
		out = tui.RenderCostChart(snap.Costs, chartHeight, width)
	case "facts":
		out = tui.RenderFactList(snap.Facts, width)
	case "pipeline":
		out = tui.RenderPipelineBoard(snap.Leads, width)
	default:
		return fmt.Errorf("unknown widget %q (want one of %s)", widget, strings.Join(renderWidgets, ", "))
	}
	if out == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, out)
	return err
}
