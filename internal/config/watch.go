package config

import (
	"os"
	"time"
)

// Watcher polls file modification times and invokes a callback per changed
// path. The typical callback is Loader.Invalidate, so the next Resolve
// rereads from disk.
type Watcher struct {
	paths    []string
	interval time.Duration
	onChange func(path string)

	stop   chan struct{}
	mtimes map[string]time.Time
}

// NewWatcher creates a watcher for the given paths and poll interval.
func NewWatcher(paths []string, interval time.Duration, onChange func(string)) *Watcher {
	return &Watcher{
		paths:    paths,
		interval: interval,
		onChange: onChange,
		stop:     make(chan struct{}),
		mtimes:   make(map[string]time.Time),
	}
}

// Start polls in a goroutine until Stop is called.
func (w *Watcher) Start() {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		w.scan()
		for {
			select {
			case <-ticker.C:
				w.scan()
			case <-w.stop:
				return
			}
		}
	}()
}

// Stop terminates the polling goroutine.
func (w *Watcher) Stop() {
	close(w.stop)
}

// scan compares each path's mtime against the previous pass. The first
// sighting of a path only records it; missing files are skipped until they
// appear.
func (w *Watcher) scan() {
	for _, p := range w.paths {
		fi, err := os.Stat(p)
		if err != nil {
			continue
		}
		mt := fi.ModTime()
		last, seen := w.mtimes[p]
		w.mtimes[p] = mt
		if seen && mt.After(last) && w.onChange != nil {
			w.onChange(p)
		}
	}
}
