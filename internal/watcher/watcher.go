// Package watcher reloads settings when settings.yaml changes on disk.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/watchfire-io/abacus/internal/config"
	"github.com/watchfire-io/abacus/internal/models"
)

// debounceDelay collapses the burst of events editors produce on save.
const debounceDelay = 100 * time.Millisecond

// Event carries freshly loaded settings, or the error hit while loading them.
type Event struct {
	Settings *models.Settings
	Err      error
}

// Watcher watches a single settings file.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	path       string
	eventsChan chan Event
	done       chan struct{}
	stopOnce   sync.Once
	log        logrus.FieldLogger

	debounceMu sync.Mutex
	debounce   *time.Timer
}

// New creates a watcher for the settings file at path.
func New(path string, log logrus.FieldLogger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = config.DiscardLogger()
	}

	return &Watcher{
		fsWatcher:  fsWatcher,
		path:       filepath.Clean(path),
		eventsChan: make(chan Event, 8),
		done:       make(chan struct{}),
		log:        log,
	}, nil
}

// Events returns the channel for receiving reloaded settings.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// Start watches the directory holding the settings file. The directory is
// watched rather than the file so atomic rename-on-save is seen.
func (w *Watcher) Start() error {
	if err := w.fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	go w.processEvents()
	return nil
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()

		w.debounceMu.Lock()
		if w.debounce != nil {
			w.debounce.Stop()
		}
		w.debounceMu.Unlock()
	})
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("settings watcher error")
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	// Rename matters: atomic writes rename a temp file onto the target.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	w.log.WithField("op", event.Op.String()).Debug("settings file changed")

	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceDelay, w.reload)
}

func (w *Watcher) reload() {
	s, err := config.LoadSettingsFrom(w.path)
	if err != nil {
		w.log.WithError(err).Warn("failed to reload settings")
	}

	select {
	case w.eventsChan <- Event{Settings: s, Err: err}:
	case <-w.done:
	}
}
