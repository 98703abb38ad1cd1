package theme

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a theme file whenever it changes on disk. Reloads happen
// on a background goroutine; the frame loop picks them up with Poll, so the
// bridge itself is only touched from the frame loop.
type Watcher struct {
	path    string
	assets  Assets
	watcher *fsnotify.Watcher
	updates chan *Theme
	done    chan struct{}
	logger  *log.Logger
}

// Watch starts watching the theme at path. It watches the containing
// directory so editors that replace the file on save are seen too. Reload
// failures go to logger, or to stderr when logger is nil.
func Watch(path string, assets Assets, logger *log.Logger) (*Watcher, error) {
	if logger == nil {
		logger = log.New(os.Stderr, "theme: ", log.LstdFlags)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	w := &Watcher{
		path:    filepath.Clean(path),
		assets:  assets,
		watcher: fw,
		updates: make(chan *Theme, 1),
		done:    make(chan struct{}),
		logger:  logger,
	}
	go w.run()
	return w, nil
}

// Poll returns the most recently reloaded theme, if a reload finished
// since the last call. It never blocks.
func (w *Watcher) Poll() (*Theme, bool) {
	select {
	case t := <-w.updates:
		return t, true
	default:
		return nil, false
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			t, err := Load(w.path, w.assets)
			if err != nil {
				w.logger.Printf("failed to reload: %v", err)
				continue
			}
			w.publish(t)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Printf("watch error: %v", err)
		}
	}
}

// publish replaces any theme the frame loop has not picked up yet.
func (w *Watcher) publish(t *Theme) {
	for {
		select {
		case w.updates <- t:
			return
		default:
		}
		select {
		case <-w.updates:
		default:
		}
	}
}
