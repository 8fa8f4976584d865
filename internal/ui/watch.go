package ui

import (
	"fmt"

	"github.com/atomicstack/dirnav/internal/keymap"
	"github.com/atomicstack/dirnav/internal/logging"
	"github.com/atomicstack/dirnav/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForKeymapEvent(w *keymap.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return keymapDoneMsg{}
		}
		return keymapEventMsg{event: evt}
	}
}

type keymapEventMsg struct {
	event keymap.Event
}

type keymapDoneMsg struct{}

func (m *Model) handleKeymapEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(keymapEventMsg)
	if !ok {
		return nil
	}
	m.applyKeymapEvent(eventMsg.event)
	if m.watcher != nil {
		return waitForKeymapEvent(m.watcher)
	}
	return nil
}

func (m *Model) handleKeymapDoneMsg(tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

// applyKeymapEvent installs a rebuilt keymap and re-renders the shortcut
// table. A failed rebuild keeps the current keymap.
func (m *Model) applyKeymapEvent(evt keymap.Event) {
	path := ""
	if m.watcher != nil {
		path = m.watcher.Path()
	}
	if evt.Err != nil {
		logging.Error(evt.Err)
		events.Keymap.Error(evt.Err)
		m.errMsg = fmt.Sprintf("keymap reload failed: %v", evt.Err)
		return
	}
	m.keymap.Swap(evt.Map)
	m.settings.Keybinds = evt.Map
	events.Keymap.Reload(path, len(evt.Map), evt.Warnings)
	m.errMsg = ""
	if n := len(evt.Warnings); n > 0 {
		m.setInfo(fmt.Sprintf("Key bindings reloaded with %d warning(s): %s", n, evt.Warnings[0]))
	} else {
		m.setInfo("Key bindings reloaded")
	}
	m.render()
}
