package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Reload is one hot-reload result: a fresh config or the error that
// prevented loading it.
type Reload struct {
	Config *Config
	Err    error
}

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {
	path    string
	fs      *fsnotify.Watcher
	updates chan Reload
	done    chan struct{}
	once    sync.Once
}

// Watch starts watching path. The parent directory is watched so editors
// that replace the file on save are still seen.
func Watch(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch directory: %w", err)
	}

	w := &Watcher{
		path:    path,
		fs:      fw,
		updates: make(chan Reload, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Updates delivers reloads. It is closed when the watcher stops.
func (w *Watcher) Updates() <-chan Reload { return w.updates }

// Path returns the watched file.
func (w *Watcher) Path() string { return w.path }

// Close stops watching. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.updates)

	var debounce *time.Timer
	fire := make(chan struct{}, 1)
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(reloadDebounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			cfg, err := LoadFrom(w.path)
			w.send(Reload{Config: cfg, Err: err})

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.send(Reload{Err: fmt.Errorf("watch config: %w", err)})
		}
	}
}

// send replaces an unread reload so the newest one wins.
func (w *Watcher) send(r Reload) {
	for {
		select {
		case w.updates <- r:
			return
		case <-w.done:
			return
		default:
		}
		select {
		case <-w.updates:
		default:
		}
	}
}
