package ui

import (
	"strconv"
	"strings"
	"testing"

	"github.com/atomicstack/dirnav/internal/settings"
	"github.com/charmbracelet/lipgloss"
)

func TestViewRespectsHeightAndWidth(t *testing.T) {
	m := newTestModel(t, Options{Width: 30, Height: 8, ShowFooter: true})
	rows := strings.Split(m.View(), "\n")
	if len(rows) > 8 {
		t.Fatalf("expected at most 8 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if w := lipgloss.Width(row); w > 30 {
			t.Fatalf("row wider than 30 columns (%d): %q", w, row)
		}
	}
}

func TestFooterShowsModesAndPosition(t *testing.T) {
	m := newTestModel(t, Options{Width: 100, ShowFooter: true})
	footer := m.footer()
	if !strings.Contains(footer, "Gap Search From Start · case: Smart · filter: off") {
		t.Fatalf("expected modes in footer, got %q", footer)
	}
	if !strings.HasSuffix(footer, "1/"+strconv.Itoa(len(m.pager.Items))) {
		t.Fatalf("expected position at the right edge, got %q", footer)
	}
	if w := lipgloss.Width(footer); w != 100 {
		t.Fatalf("expected footer padded to 100 columns, got %d", w)
	}

	narrow := newTestModel(t, Options{Width: 20, ShowFooter: true})
	if w := lipgloss.Width(narrow.footer()); w > 20 {
		t.Fatalf("expected narrow footer truncated, got width %d", w)
	}
}

func TestSearchLinePlaceholderAndQuery(t *testing.T) {
	m := newTestModel(t, Options{})
	if line := m.searchLine(); !strings.Contains(line, "type to search") {
		t.Fatalf("expected placeholder, got %q", line)
	}
	m.appendToSearch("zzzz")
	if line := m.searchLine(); !strings.Contains(line, "/ zzzz") {
		t.Fatalf("expected query in prompt, got %q", line)
	}
	view := m.View()
	if !strings.Contains(view, "0 matching lines") {
		t.Fatalf("expected match count in status line, got:\n%s", view)
	}
}

func TestViewNoMatchesInFilterMode(t *testing.T) {
	cases := []struct {
		files settings.FileHandleMode
		want  string
	}{
		{settings.FilesIgnore, "No folder matching search term."},
		{settings.FilesMatch, "No matches."},
	}
	for _, tc := range cases {
		t.Run(tc.files.String(), func(t *testing.T) {
			s := settings.Default()
			s.FileHandleMode = tc.files
			m := newTestModel(t, Options{Settings: s})
			m.pager.SetFilterMode(true)
			m.appendToSearch("qqqq")
			if view := m.View(); !strings.Contains(view, tc.want) {
				t.Fatalf("expected %q, got:\n%s", tc.want, view)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("abcdef", 4); got != "abc…" {
		t.Fatalf("expected abc…, got %q", got)
	}
	if got := truncateText("abc", 4); got != "abc" {
		t.Fatalf("expected untouched text, got %q", got)
	}
	if got := truncateText("abc", 1); got != "a" {
		t.Fatalf("expected single rune, got %q", got)
	}
}
