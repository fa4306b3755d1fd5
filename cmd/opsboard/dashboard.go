package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janekbaraniewski/opsboard/internal/config"
	"github.com/janekbaraniewski/opsboard/internal/core"
	"github.com/janekbaraniewski/opsboard/internal/snapshot"
	"github.com/janekbaraniewski/opsboard/internal/tui"
)

var errNoData = errors.New("no snapshot file: pass --data or set data.path in settings")

func runDashboard(cfg config.Config) error {
	path := cfg.Data.Path
	if path == "" {
		return errNoData
	}
	if !tui.SetThemeByName(cfg.Theme) {
		log.Printf("theme %q not found, keeping %s", cfg.Theme, tui.ActiveTheme().Name)
	}

	snap, err := snapshot.Load(path)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var program *tea.Program

	model := tui.NewModel(cfg.UI.ChartHeight)
	model.SetOnLeadSelect(func(id string) {
		log.Printf("lead selected: %s", id)
	})
	model.SetOnThemeChange(config.SaveTheme)
	model.SetOnRefresh(func() {
		go func() {
			program.Send(loadMsg(path))
		}()
	})

	program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	go program.Send(tui.SnapshotMsg(snap))

	if cfg.Data.Watch {
		err := snapshot.Watch(ctx, path,
			func(s core.Snapshot) { program.Send(tui.SnapshotMsg(s)) },
			func(err error) { program.Send(tui.SnapshotErrorMsg{Err: err}) },
		)
		if err != nil {
			log.Printf("snapshot watch disabled: %v", err)
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func loadMsg(path string) tea.Msg {
	snap, err := snapshot.Load(path)
	if err != nil {
		return tui.SnapshotErrorMsg{Err: err}
	}
	return tui.SnapshotMsg(snap)
}
