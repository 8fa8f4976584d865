package help

import (
	"strings"
	"testing"

	"github.com/atomicstack/dirnav/internal/action"
	"github.com/atomicstack/dirnav/internal/keymap"
	"github.com/atomicstack/dirnav/internal/keys"
	"github.com/atomicstack/dirnav/internal/testutil"
)

func fixtureRows() []Row {
	return []Row{
		{Description: "Action", Shortcuts: "Default shortcut(s)", Action: "Action name"},
		{Description: "---", Shortcuts: "---", Action: "---"},
		{Description: "Move cursor up", Shortcuts: "<kbd>Up</kbd>", Action: "CursorUp"},
		{Description: "Show help", Shortcuts: "<kbd>?</kbd>", Action: "Help"},
		{Description: "Refresh", Shortcuts: "<kbd>Ctrl</kbd>+<kbd>r</kbd>", Action: "RefreshListing"},
	}
}

func fixtureKeymap() keymap.Map {
	m := keymap.Map{}
	m.Set(keys.MustParse("up"), action.ContextNone, action.CursorUp)
	m.Set(keys.MustParse("alt-k"), action.ContextNone, action.CursorUp)
	m.Set(keys.MustParse("?"), action.ContextNotSearch, action.Help)
	m.Set(keys.MustParse("f1"), action.ContextNone, action.Help)
	return m
}

func TestBuildShortcutTableGolden(t *testing.T) {
	out := BuildShortcutTable(fixtureRows(), keymap.Invert(fixtureKeymap()))
	testutil.AssertGolden(t, "shortcut_table.golden", out)
}

func TestBuildShortcutTableMissingMapping(t *testing.T) {
	out := BuildShortcutTable(fixtureRows(), keymap.Invert(fixtureKeymap()))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d", len(lines))
	}
	last := lines[3]
	if !strings.HasSuffix(last, "  "+noMapping) {
		t.Fatalf("expected %q in unmapped row, got %q", noMapping, last)
	}
}

func TestBuildShortcutTableAlignsShortcutColumn(t *testing.T) {
	rows := fixtureRows()
	out := BuildShortcutTable(rows, keymap.Invert(fixtureKeymap()))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	// every description is followed by at least two spaces, and the
	// shortcut column starts at the same column once backticks are gone
	column := -1
	for i, line := range lines {
		plain := strings.ReplaceAll(line, "`", "")
		desc := rows[0].Description
		if i > 0 {
			desc = rows[i+1].Description
		}
		if !strings.HasPrefix(plain, desc+"  ") {
			t.Fatalf("line %d: expected description %q then padding, got %q", i, desc, plain)
		}
		start := len(desc) + len(plain[len(desc):]) - len(strings.TrimLeft(plain[len(desc):], " "))
		if column < 0 {
			column = start
		} else if start != column {
			t.Fatalf("line %d: shortcuts start at %d, expected %d", i, start, column)
		}
	}
}

func TestBuildShortcutTableHeader(t *testing.T) {
	out := BuildShortcutTable(fixtureRows()[:2], nil)
	if !strings.HasPrefix(out, "`Action`") || !strings.Contains(out, "`Shortcut(s)`") {
		t.Fatalf("unexpected header %q", out)
	}
	if strings.Contains(out, "---") {
		t.Fatalf("expected separator row skipped, got %q", out)
	}
}
