package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/janekbaraniewski/opsboard/internal/config"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	dataPath    string
	chartHeight int
	theme       string
	noWatch     bool

	// cfg is the settings file with flags applied, resolved before any
	// command runs.
	cfg config.Config
}

func main() {
	if os.Getenv("OPSBOARD_DEBUG") != "" {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	if err := newRootCommand(config.Load).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand builds the CLI. Settings are loaded after flag parsing so
// --help keeps working when the settings file is broken.
func newRootCommand(loadConfig func() (config.Config, error)) *cobra.Command {
	var opts rootOptions

	root := &cobra.Command{
		Use:   "opsboard",
		Short: "opsboard is a terminal dashboard for call-center costs, lead memory and the sales pipeline.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loading config %s: %w", config.ConfigPath(), err)
			}
			opts.cfg = applyOptions(cfg, cmd, opts)
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDashboard(opts.cfg)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.dataPath, "data", "d", "", "snapshot file (.json, .yaml, .yml)")
	root.PersistentFlags().IntVar(&opts.chartHeight, "height", 0, "cost chart height in chart units (default from settings)")
	root.Flags().StringVar(&opts.theme, "theme", "", "theme name")
	root.Flags().BoolVar(&opts.noWatch, "no-watch", false, "do not reload the snapshot when the file changes")

	root.AddCommand(newRenderCommand(&opts))
	return root
}

// applyOptions layers explicitly set flags over the settings file.
func applyOptions(cfg config.Config, cmd *cobra.Command, opts rootOptions) config.Config {
	if opts.dataPath != "" {
		cfg.Data.Path = opts.dataPath
	}
	if cmd.Flags().Changed("height") {
		cfg.UI.ChartHeight = config.NormalizeChartHeight(opts.chartHeight)
	}
	if opts.theme != "" {
		cfg.Theme = opts.theme
	}
	if opts.noWatch {
		cfg.Data.Watch = false
	}
	return cfg
}
