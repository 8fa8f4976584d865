package ui

import (
	"fmt"
	"strings"
	"time"

	uistate "github.com/atomicstack/dirnav/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	lineIndicator   = "▌"
	mouseScrollStep = 3
	infoTimeout     = 5 * time.Second
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text already carries ANSI styling; use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 32)
	visible := m.visibleLines()
	m.pager.EnsureCursorVisible(visible)
	items := m.pager.Items
	if len(items) == 0 {
		msg := "(no help text)"
		if m.pager.Searching() {
			msg = m.settings.FileHandleMode.NoMatchesMessage()
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	} else {
		start := m.pager.ViewportOffset
		end := len(items)
		if visible > 0 && start+visible < end {
			end = start + visible
		}
		for idx := start; idx < end; idx++ {
			lines = append(lines, m.buildHelpLine(items[idx], idx == m.pager.Cursor))
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{}, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: m.footer(), raw: true})
	}
	// the bottom bar takes 2 rows: status + search prompt
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	bottom := []styledLine{m.statusLine(), {text: m.searchLine(), raw: true}}
	bottom = applyWidth(bottom, m.width)
	return renderLines(append(lines, bottom...))
}

// buildHelpLine renders one help line behind the cursor gutter. Bold
// segments keep their emphasis; matching lines and the cursor line add a
// background.
func (m *Model) buildHelpLine(item uistate.Item, selected bool) styledLine {
	indicator := styles.LineIndicator
	if selected {
		indicator = styles.CursorMarker
	}
	matched := m.pager.IsMatch(item)
	var b strings.Builder
	b.WriteString(renderStyled(indicator, lineIndicator))
	b.WriteString(" ")
	for _, seg := range item.Line {
		b.WriteString(segmentStyle(seg.Bold, matched, selected).Render(seg.Text))
	}
	return styledLine{text: b.String(), raw: true}
}

func segmentStyle(bold, matched, selected bool) lipgloss.Style {
	style := *styles.Text
	if bold {
		style = *styles.Bold
	}
	if matched {
		style = style.Inherit(*styles.Match)
	}
	if selected {
		style = style.Inherit(*styles.CursorLine)
	}
	return style
}

// footer shows the search modes on the left and the cursor position on the
// right, truncated as a whole when the row is too narrow for both.
func (m *Model) footer() string {
	left := renderStyled(styles.Mode, fmt.Sprintf("%s · case: %s · filter: %s",
		m.settings.GapSearchMode, m.settings.CaseSensitiveMode, onOff(m.settings.FilterSearch)))
	right := renderStyled(styles.ScrollPosition, m.scrollPosition())
	if m.width <= 0 {
		return left + "  " + right
	}
	gap := m.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return ansi.Truncate(left+" "+right, m.width, "…")
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) scrollPosition() string {
	total := len(m.pager.Items)
	if total == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", m.pager.Cursor+1, total)
}

func (m *Model) statusLine() styledLine {
	if m.errMsg != "" {
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	if m.pager.Searching() {
		return styledLine{text: fmt.Sprintf("%d matching lines", m.pager.MatchCount()), style: styles.Info}
	}
	return styledLine{}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if m.contentWidth() != m.renderedWidth {
		m.render()
		return nil
	}
	m.syncViewport()
	return nil
}

// handleMouseMsg scrolls the help text with the mouse wheel.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || !m.mouse {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.pager.ScrollBy(-mouseScrollStep, m.visibleLines())
	case tea.MouseButtonWheelDown:
		m.pager.ScrollBy(mouseScrollStep, m.visibleLines())
	}
	return nil
}

func (m *Model) visibleLines() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // bottom bar: status + search prompt
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoTimeout)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}

func renderStyled(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw {
			out[i] = line.text
			continue
		}
		out[i] = renderStyled(line.style, line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
