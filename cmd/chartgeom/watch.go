package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// watchFile calls render once and then after every write to path, until ctx is
// cancelled. Render errors are logged rather than returned, so that a broken
// intermediate save doesn't end the session.
func watchFile(ctx context.Context, path string, render func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed creating file watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files instead of writing to them, which would end a
	// watch on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed watching %s: %w", path, err)
	}
	if err := render(); err != nil {
		log.Printf("could not render %s: %v", path, err)
	}

	return watchEvents(ctx, watcher.Events, watcher.Errors, path, render)
}

// errWatcherClosed is returned when the watcher's channels close before the
// context is cancelled.
var errWatcherClosed = errors.New("file watcher closed")

// watchEvents calls render for every write or creation of path among events,
// until ctx is cancelled, errs delivers an error, or either channel closes.
func watchEvents(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, path string, render func() error) error {
	target := filepath.Clean(path)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-events:
				if !ok {
					return errWatcherClosed
				}
				if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := render(); err != nil {
					log.Printf("could not render %s: %v", path, err)
				}
			}
		}
	})
	g.Go(func() error {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-errs:
			if !ok {
				return errWatcherClosed
			}
			return fmt.Errorf("file watcher failed: %w", err)
		}
	})
	return g.Wait()
}
