package ui

import (
	"unicode"

	"github.com/atomicstack/dirnav/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	searchPrompt      = "/ "
	searchPlaceholder = "(type to search)"
)

func (m *Model) updateSearchCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.searchCursor, cmd = m.searchCursor.Update(msg)
	return cmd
}

// handleTextInput feeds key presses that no binding claimed into the search
// query. Printable runes (including pasted text and space) are appended;
// an unbound backspace still erases.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeSearchRune()
	case tea.KeySpace:
		if msg.Alt {
			return false
		}
		return m.appendToSearch(" ")
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToSearch(string(msg.Runes))
	}
	return false
}

func (m *Model) appendToSearch(text string) bool {
	if !m.pager.AppendQuery(text) {
		return false
	}
	m.afterSearchChange()
	return true
}

func (m *Model) removeSearchRune() bool {
	if !m.pager.DeleteQueryRune() {
		return false
	}
	m.afterSearchChange()
	return true
}

func (m *Model) clearSearch() bool {
	if !m.pager.ClearQuery() {
		return false
	}
	m.afterSearchChange()
	return true
}

func (m *Model) afterSearchChange() {
	m.searchCursorDirty = true
	m.forceClearInfo()
	m.errMsg = ""
	events.Help.Search(m.pager.Query, m.pager.MatchCount())
	m.syncViewport()
}

// searchLine renders the prompt row: the query followed by the cursor, or
// the placeholder with the cursor on its first character.
func (m *Model) searchLine() string {
	prompt := renderStyled(styles.SearchPrompt, searchPrompt)
	query := m.pager.Query
	if query == "" {
		runes := []rune(searchPlaceholder)
		if styles.SearchHint != nil {
			m.searchCursor.TextStyle = styles.SearchHint.Copy()
		}
		caret := m.renderSearchCursor(string(runes[0]))
		return prompt + caret + renderStyled(styles.SearchHint, string(runes[1:]))
	}
	if styles.Search != nil {
		m.searchCursor.TextStyle = styles.Search.Copy()
	}
	return prompt + renderStyled(styles.Search, query) + m.renderSearchCursor(" ")
}

func (m *Model) renderSearchCursor(char string) string {
	m.searchCursor.SetChar(char)
	base := m.searchCursor.TextStyle.Copy().Inline(true)
	if m.searchCursor.Blink {
		return base.Render(char)
	}
	return base.Reverse(true).Render(char)
}
