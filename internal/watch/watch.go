// Copyright 2025 asmdiff Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package watch is the filesystem-watching collaborator: it posts a single
// debounced "rebuild" signal after a burst of filesystem events settles,
// and is kept strictly separate from the diff core, which is re-invoked by
// the caller on each signal.
package watch

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow collapses bursts of filesystem events (e.g. an editor's
// write-then-rename save sequence) into one rebuild signal.
const debounceWindow = 100 * time.Millisecond

// Watcher posts one rebuild signal per debounced burst of filesystem
// activity on a bounded, single-slot channel: a pending signal is never
// duplicated, so a slow consumer just sees one rebuild request per burst,
// not one per underlying event.
type Watcher struct {
	fsw     *fsnotify.Watcher
	Rebuild chan struct{}

	mu    sync.Mutex
	timer *time.Timer
}

// New starts watching paths and returns a Watcher whose Rebuild channel
// receives a value after each debounced burst of changes beneath them.
func New(paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	for _, p := range paths {
		if err := fsw.Add(p); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch: add %s: %w", p, err)
		}
	}
	w := &Watcher{fsw: fsw, Rebuild: make(chan struct{}, 1)}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case _, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.scheduleSignal()
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Errors are a collaborator-level concern; the core never sees
			// them, and a transient watch error shouldn't kill the loop.
		}
	}
}

func (w *Watcher) scheduleSignal() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounceWindow, w.signal)
}

func (w *Watcher) signal() {
	select {
	case w.Rebuild <- struct{}{}:
	default:
	}
}

// Close stops watching and releases the underlying OS resources.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
