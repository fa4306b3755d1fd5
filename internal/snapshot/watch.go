package snapshot

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/janekbaraniewski/opsboard/internal/core"
)

type (
	Handler      func(core.Snapshot)
	ErrorHandler func(error)
)

// reloadDelay coalesces the burst of events editors produce for one save.
const reloadDelay = 150 * time.Millisecond

// Watch reloads path whenever it changes and hands the result to onSnap, or the
// failure to onErr. The parent directory is watched so atomic rename-style saves
// are picked up too. Watching stops when ctx is done.
func Watch(ctx context.Context, path string, onSnap Handler, onErr ErrorHandler) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving snapshot path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	go func() {
		defer w.Close()

		var timer *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return

			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || !relevant(ev.Op) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(reloadDelay)
				} else {
					timer.Reset(reloadDelay)
				}
				fire = timer.C

			case <-fire:
				fire = nil
				snap, err := Load(abs)
				if err != nil {
					log.Printf("snapshot watch: %v", err)
					if onErr != nil {
						onErr(err)
					}
					continue
				}
				if onSnap != nil {
					onSnap(snap)
				}

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("snapshot watch: %v", err)
				if onErr != nil {
					onErr(err)
				}
			}
		}
	}()
	return nil
}

func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) || op.Has(fsnotify.Rename)
}
