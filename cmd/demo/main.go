package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janekbaraniewski/opsboard/internal/config"
	"github.com/janekbaraniewski/opsboard/internal/snapshot"
	"github.com/janekbaraniewski/opsboard/internal/tui"
	"github.com/spf13/cobra"
)

const liveInterval = 5 * time.Second

type demoOptions struct {
	live  bool
	write string
	seed  int64
}

func main() {
	log.SetOutput(io.Discard)

	if err := newDemoCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newDemoCommand() *cobra.Command {
	var opts demoOptions
	cmd := &cobra.Command{
		Use:          "demo",
		Short:        "Run the dashboard on generated data",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clock := time.Now
			if opts.seed != 0 {
				clock = func() time.Time { return demoEpoch }
			} else {
				opts.seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(opts.seed))

			if opts.write != "" {
				return snapshot.Save(opts.write, buildDemoSnapshot(rng, clock()))
			}
			return runDemo(rng, clock, opts.live)
		},
	}
	cmd.Flags().BoolVar(&opts.live, "live", false, "regenerate demo data every few seconds")
	cmd.Flags().StringVar(&opts.write, "write", "", "write one demo snapshot to this file (.json/.yaml) and exit")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed; a nonzero seed also fixes the dates (0 picks one from the clock)")
	return cmd
}

func runDemo(rng *rand.Rand, clock func() time.Time, live bool) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		p     *tea.Program
		rngMu sync.Mutex
	)
	refresh := func() {
		rngMu.Lock()
		snap := buildDemoSnapshot(rng, clock())
		rngMu.Unlock()
		p.Send(tui.SnapshotMsg(snap))
	}

	model := tui.NewModel(config.DefaultConfig().UI.ChartHeight)
	model.SetOnRefresh(func() { go refresh() })
	p = tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	go func() {
		refresh()
		if !live {
			return
		}
		ticker := time.NewTicker(liveInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				refresh()
			}
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
