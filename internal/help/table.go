package help

import (
	"strings"
	"unicode/utf8"

	"github.com/atomicstack/dirnav/internal/action"
	"github.com/atomicstack/dirnav/internal/keymap"
)

const noMapping = "No mapping found"

// BuildShortcutTable renders the template rows as an aligned two-column
// block: the description, then the live shortcuts for the row's action.
// Row 0 is the header and row 1 the separator, which is skipped. The
// shortcut column starts at the same offset on every row once backticks
// are stripped.
func BuildShortcutTable(rows []Row, inv keymap.Inverted) string {
	width := 0
	for _, row := range rows {
		if n := utf8.RuneCountInString(strings.ReplaceAll(row.Description, "`", "")); n > width {
			width = n
		}
	}

	var b strings.Builder
	for i, row := range rows {
		var desc, shortcuts string
		switch i {
		case 0:
			desc = "`" + row.Description + "`"
			shortcuts = "`" + strings.ReplaceAll(row.Shortcuts, headerRename, "S") + "`"
		case 1:
			continue
		default:
			desc = row.Description
			shortcuts = formatShortcuts(inv[row.Action])
		}
		pad := width + strings.Count(desc, "`") + 2 - utf8.RuneCountInString(desc)
		b.WriteString(desc)
		b.WriteString(strings.Repeat(" ", max(pad, 0)))
		b.WriteString(shortcuts)
		b.WriteByte('\n')
	}
	return b.String()
}

func formatShortcuts(bindings []keymap.Binding) string {
	if len(bindings) == 0 {
		return noMapping
	}
	parts := make([]string, len(bindings))
	for i, binding := range bindings {
		s := "`" + binding.Key.String() + "`"
		if binding.Context != action.ContextNone {
			s += " (" + binding.Context.ShortDescription() + ")"
		}
		parts[i] = s
	}
	return strings.Join(parts, ", ")
}
