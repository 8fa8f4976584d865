package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/dirnav/internal/action"
	"github.com/atomicstack/dirnav/internal/help"
	"github.com/atomicstack/dirnav/internal/keymap"
	"github.com/atomicstack/dirnav/internal/settings"
	"github.com/atomicstack/dirnav/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// keymapSettle spaces out rebuilds while an editor is still writing the
// keymap file.
const keymapSettle = 250 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	Width       int
	Height      int
	ShowFooter  bool
	Mouse       bool
	WatchKeymap bool
}

var (
	newWatcher = keymap.NewWatcher
	runProgram = func(model *ui.Model, opts ...tea.ProgramOption) error {
		_, err := tea.NewProgram(model, opts...).Run()
		return err
	}
)

// Run bootstraps and executes the help screen. It returns the action that
// closed it, or action.None when the program was killed.
func Run(cfg Config, s settings.Settings, src keymap.Source, doc *help.Document) (action.Action, error) {
	store := keymap.NewStore(s.Keybinds)
	var watcher *keymap.Watcher
	if cfg.WatchKeymap {
		w, err := newWatcher(src, keymapSettle)
		if err != nil {
			return action.None, fmt.Errorf("watch keymap: %w", err)
		}
		defer func() {
			w.Stop()
			w.Wait()
		}()
		watcher = w
	}
	model := ui.NewModel(ui.Options{
		Document:   doc,
		Settings:   s,
		Keymap:     store,
		Watcher:    watcher,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Mouse:      cfg.Mouse,
	})
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	err := runProgram(model, opts...)
	if errors.Is(err, tea.ErrProgramKilled) {
		return action.None, nil
	}
	return model.ExitAction(), err
}
