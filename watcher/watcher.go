package watcher

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"favicons/config"
)

// DefaultDebounce is how long the watcher waits after the last write
// before reloading.
const DefaultDebounce = 500 * time.Millisecond

// Watcher reloads the config file whenever it changes on disk
type Watcher struct {
	path     string
	onChange func(*config.Config)
	debounce time.Duration
	watcher  *fsnotify.Watcher

	mu      sync.Mutex
	timer   *time.Timer
	started bool
	stopped bool
	done    chan struct{}

	// held while a reload runs so Stop can wait it out
	reloadMu sync.Mutex
}

// New creates a watcher for the config file at path. onChange receives
// every successfully reloaded config.
func New(path string, onChange func(*config.Config)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		path:     abs,
		onChange: onChange,
		debounce: DefaultDebounce,
		watcher:  fsWatcher,
		done:     make(chan struct{}),
	}, nil
}

// Start begins monitoring. The parent directory is watched so editors that
// replace the file on save are still seen.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return fmt.Errorf("watcher already stopped")
	}
	if w.started {
		return fmt.Errorf("watcher already started")
	}

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch folder %s: %w", dir, err)
	}
	log.Printf("Watching config: %s", w.path)

	w.started = true
	go w.processEvents()
	return nil
}

// Stop ends monitoring and cancels a pending reload. Once Stop returns,
// onChange is not called again. Stop is safe to call without Start and
// more than once.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
	}
	started := w.started
	w.mu.Unlock()

	err := w.watcher.Close()
	if started {
		<-w.done
	}

	// Wait for a reload whose timer already fired.
	w.reloadMu.Lock()
	w.reloadMu.Unlock()

	return err
}

func (w *Watcher) isStopped() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stopped
}

// processEvents filters fsnotify events down to the config file
func (w *Watcher) processEvents() {
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
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			w.schedule()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// schedule (re)arms the debounce timer
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

// reload parses the file and hands it to onChange. A bad file keeps the
// previous config in place.
func (w *Watcher) reload() {
	w.reloadMu.Lock()
	defer w.reloadMu.Unlock()

	if w.isStopped() {
		return
	}

	cfg, err := config.Load(w.path)
	if err != nil {
		log.Printf("Config reload failed, keeping previous config: %v", err)
		return
	}

	log.Printf("Config reloaded: %s", w.path)
	w.onChange(cfg)
}
