package ui

import (
	"fmt"

	"github.com/atomicstack/dirnav/internal/action"
	"github.com/atomicstack/dirnav/internal/keys"
	"github.com/atomicstack/dirnav/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	searching := m.pager.Searching()
	if a, key, ok := m.lookup(keyMsg, searching); ok {
		events.Action.Dispatch(a.String(), key.String(), action.ForSearch(searching).String())
		return m.dispatch(a)
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	events.Action.Unbound(keyMsg.String(), searching)
	if keyMsg.Type == tea.KeyCtrlC {
		// an emptied keymap must not trap the user
		return m.exit(action.ExitWithoutCd)
	}
	return nil
}

// lookup resolves a key press against the live keymap snapshot.
func (m *Model) lookup(msg tea.KeyMsg, searching bool) (action.Action, keys.Combination, bool) {
	km := m.keymap.Load()
	for _, key := range keyCombinations(msg) {
		if a, ok := km.Lookup(key, searching); ok {
			return a, key, true
		}
	}
	return action.None, keys.Combination{}, false
}

func (m *Model) dispatch(a action.Action) tea.Cmd {
	switch a {
	case action.CursorUp:
		m.moveCursor(m.pager.MoveCursorUp)
	case action.CursorDown:
		m.moveCursor(m.pager.MoveCursorDown)
	case action.CursorUpScreen:
		visible := m.visibleLines()
		m.moveCursor(func() bool { return m.pager.MoveCursorPageUp(visible) })
	case action.CursorDownScreen:
		visible := m.visibleLines()
		m.moveCursor(func() bool { return m.pager.MoveCursorPageDown(visible) })
	case action.CursorTop:
		m.moveCursor(m.pager.MoveCursorHome)
	case action.CursorBottom:
		m.moveCursor(m.pager.MoveCursorEnd)
	case action.EraseSearchChar:
		m.removeSearchRune()
	case action.ClearSearch:
		m.clearSearch()
	case action.ChangeFilterSearchMode:
		m.settings.FilterSearch = !m.settings.FilterSearch
		m.pager.SetFilterMode(m.settings.FilterSearch)
		m.syncViewport()
		m.announceMode("filter", onOff(m.settings.FilterSearch), "Filter search")
	case action.ChangeCaseSensitiveMode:
		m.settings.CaseSensitiveMode = m.settings.CaseSensitiveMode.Next()
		m.pager.SetMatcher(m.matcher())
		m.syncViewport()
		m.announceMode("case", m.settings.CaseSensitiveMode.String(), "Case sensitivity")
	case action.ChangeGapSearchMode:
		m.settings.GapSearchMode = m.settings.GapSearchMode.Next()
		m.pager.SetMatcher(m.matcher())
		m.syncViewport()
		m.announceMode("gap", m.settings.GapSearchMode.String(), "Search mode")
	case action.Help, action.Exit, action.ExitWithoutCd:
		return m.exit(a)
	case action.None:
	default:
		m.setInfo(fmt.Sprintf("%s is not available on the help screen", a))
	}
	return nil
}

func (m *Model) moveCursor(move func() bool) {
	if move() {
		m.syncViewport()
	}
}

func (m *Model) announceMode(kind, value, label string) {
	events.Help.Mode(kind, value)
	m.setInfo(fmt.Sprintf("%s: %s", label, value))
}

func (m *Model) exit(a action.Action) tea.Cmd {
	m.exitAction = a
	events.App.Exit(a.String())
	return tea.Quit
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
