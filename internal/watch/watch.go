// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package watch signals dataset file changes so the engine can rebuild
// its index.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 500 * time.Millisecond

// Watch monitors dir and emits a signal on the returned channel after
// each burst of changes to the named files. Downloads and editors write
// files in several steps, so events are coalesced over the debounce
// window before a signal is sent. A signal already pending covers any
// further changes until it is consumed.
//
// The channel closes when ctx is cancelled or the underlying watcher
// shuts down.
func Watch(ctx context.Context, dir string, names []string, debounce time.Duration) (<-chan struct{}, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	watched := make(map[string]bool, len(names))
	for _, n := range names {
		watched[n] = true
	}

	changed := make(chan struct{}, 1)

	go func() {
		defer close(changed)
		defer w.Close()

		var timer *time.Timer
		var timerC <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if !watched[filepath.Base(event.Name)] {
					continue
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
					timerC = timer.C
				} else {
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(debounce)
				}

			case <-timerC:
				timer = nil
				timerC = nil
				select {
				case changed <- struct{}{}:
				default:
				}

			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return changed, nil
}
