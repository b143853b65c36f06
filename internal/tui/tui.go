// Package tui implements the interactive full-screen calculator.
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/watchfire-io/abacus/internal/calc"
	"github.com/watchfire-io/abacus/internal/config"
	"github.com/watchfire-io/abacus/internal/models"
	"github.com/watchfire-io/abacus/internal/watcher"
)

// Options configures the TUI.
type Options struct {
	Calc     *calc.Calculator
	Settings *models.Settings
	// SettingsPath is watched for changes while the TUI runs. Empty disables it.
	SettingsPath string
	// Save persists a theme change. May be nil.
	Save func(*models.Settings) error
	Log  logrus.FieldLogger
}

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Run launches the TUI and blocks until the user quits.
func Run(opts Options) error {
	if opts.Log == nil {
		opts.Log = config.DiscardLogger()
	}

	ref := &programRef{}
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())

	// Store program reference for goroutine sends
	ref.Set(p)
	defer ref.Clear()

	if opts.SettingsPath != "" {
		stop, err := watchSettings(opts.SettingsPath, opts.Log, ref)
		if err != nil {
			opts.Log.WithError(err).Warn("settings hot-reload disabled")
		} else {
			defer stop()
		}
	}

	_, err := p.Run()
	return err
}

// watchSettings forwards settings reloads to the program until stop is called.
func watchSettings(path string, log logrus.FieldLogger, ref *programRef) (stop func(), err error) {
	w, err := watcher.New(path, log)
	if err != nil {
		return nil, err
	}
	if err := w.Start(); err != nil {
		w.Stop()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case ev := <-w.Events():
				if ev.Err != nil {
					ref.Send(ErrorMsg{Err: ev.Err})
					continue
				}
				ref.Send(SettingsReloadedMsg{Settings: ev.Settings})
			}
		}
	}()

	return func() {
		close(done)
		w.Stop()
	}, nil
}
