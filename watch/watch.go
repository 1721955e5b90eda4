// Package watch reports edits to specific files so the viewer can reload a
// caveset without restarting.
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long a file must stay quiet before its change is reported.
// Editors often emit a create/write/rename burst for one save; the burst
// collapses to a single event.
const settle = 100 * time.Millisecond

// Watcher reports changes to a fixed set of files. Events carries the
// cleaned path of a changed file, one event per save burst. Both channels
// are closed by the watcher itself once Close is called.
type Watcher struct {
	fsw   *fsnotify.Watcher
	files map[string]struct{}

	Events chan string
	Errors chan error

	done chan struct{}
	once sync.Once
}

// NewWatcher watches the given files. The parent directories are registered
// with fsnotify, so a file that is replaced by rename (the usual atomic-save
// pattern) keeps being watched.
func NewWatcher(paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	files := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		p = filepath.Clean(p)
		files[p] = struct{}{}
		dirs[filepath.Dir(p)] = struct{}{}
	}
	for d := range dirs {
		if err := fsw.Add(d); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fsw:    fsw,
		files:  files,
		Events: make(chan string, 1),
		Errors: make(chan error, 1),
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. It only signals; the run loop drains and closes
// Events and Errors on its way out, so a Close racing a pending report never
// panics.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	pending := map[string]struct{}{}
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			p := filepath.Clean(ev.Name)
			if _, watched := w.files[p]; !watched {
				continue
			}
			pending[p] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(settle)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(settle)
			}

		case <-fire:
			timer, fire = nil, nil
			for p := range pending {
				delete(pending, p)
				select {
				case w.Events <- p:
				case <-w.done:
					return
				}
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}

		case <-w.done:
			return
		}
	}
}
