package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestWatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("l,a\nx,1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var renders atomic.Int32
	rendered := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, func() error {
			renders.Add(1)
			select {
			case rendered <- struct{}{}:
			default:
			}
			return nil
		})
	}()

	wait := func() {
		t.Helper()
		select {
		case <-rendered:
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for a render")
		}
	}

	// Initial render.
	wait()
	if err := os.WriteFile(path, []byte("l,a\nx,2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	wait()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watch ended with %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch didn't end after cancellation")
	}
	if n := renders.Load(); n < 2 {
		t.Errorf("got %d renders, want at least 2", n)
	}
}

func TestWatchEventsClosed(t *testing.T) {
	render := func() error { return nil }
	tests := []struct {
		name  string
		close func(events chan fsnotify.Event, errs chan error)
	}{
		{"events", func(events chan fsnotify.Event, errs chan error) { close(events) }},
		{"errors", func(events chan fsnotify.Event, errs chan error) { close(errs) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := make(chan fsnotify.Event)
			errs := make(chan error)
			done := make(chan error, 1)
			go func() {
				done <- watchEvents(context.Background(), events, errs, "data.csv", render)
			}()
			tt.close(events, errs)
			select {
			case err := <-done:
				if !errors.Is(err, errWatcherClosed) {
					t.Errorf("got error %v, want %v", err, errWatcherClosed)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("watch didn't end after its channel closed")
			}
		})
	}
}

func TestWatchEventsFilters(t *testing.T) {
	events := make(chan fsnotify.Event)
	errs := make(chan error)
	var renders atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watchEvents(context.Background(), events, errs, "dir/data.csv", func() error {
			renders.Add(1)
			return nil
		})
	}()

	events <- fsnotify.Event{Name: "dir/other.csv", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "dir/data.csv", Op: fsnotify.Chmod}
	events <- fsnotify.Event{Name: "dir/./data.csv", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "dir/data.csv", Op: fsnotify.Create}
	errs <- errors.New("overflow")

	select {
	case err := <-done:
		if err == nil || errors.Is(err, errWatcherClosed) {
			t.Errorf("got error %v, want the watcher's error", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch didn't end after a watcher error")
	}
	if n := renders.Load(); n != 2 {
		t.Errorf("got %d renders, want 2", n)
	}
}
