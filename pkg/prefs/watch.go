package prefs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted when a preference changes on disk, including edits
// made by another process.
type Event struct {
	Key string
}

// Watcher streams preference changes. The diskv-backed store implements
// it; in-memory test stores need not.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// Watch streams change events until ctx is cancelled. The channel is
// closed once ctx is done or the watcher hits an unrecoverable error.
func (s *store) Watch(ctx context.Context) (<-chan Event, error) {
	if s.basePath == "" {
		return nil, errors.New("prefs: store base path unknown")
	}

	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("prefs: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("prefs: create watcher: %w", err)
	}
	if err := watcher.Add(s.basePath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("prefs: watch %s: %w", s.basePath, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "prefs: watcher close: %v\n", err)
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
					continue
				}
				key := filepath.Base(evt.Name)
				// diskv writes through a dotted temp file first.
				if strings.HasPrefix(key, ".") {
					continue
				}
				select {
				case events <- Event{Key: key}:
				default:
					// Drop rather than block; consumers re-read the
					// store on the next event anyway.
				}
			}
		}
	}()

	return events, nil
}
