package help

import (
	"strings"

	"github.com/atomicstack/dirnav/internal/keymap"
)

var kbdReplacer = strings.NewReplacer("<kbd>", "`", "</kbd>", "`")

// Assemble splices the shortcut table built from inv into the guide text.
// The text after the table follows its last row directly.
func (d *Document) Assemble(inv keymap.Inverted) string {
	var b strings.Builder
	b.WriteString(d.Prefix)
	b.WriteString(BuildShortcutTable(d.Table, inv))
	if suffix := strings.TrimRight(d.Suffix, "\n"); suffix != "" {
		b.WriteString(suffix)
		b.WriteByte('\n')
	}
	return kbdReplacer.Replace(b.String())
}

// Render produces the help screen for keybinds at the given width.
func Render(d *Document, keybinds keymap.Map, width int) []Line {
	return Reflow(d.Assemble(keymap.Invert(keybinds)), width)
}

// Reflow strips markup from s, wraps it to width and rebuilds bold and
// plain segments per line.
func Reflow(s string, width int) []Line {
	plain, offsets := StripMarkup(s)
	return Stylize(Wrap(plain, width), offsets)
}

// Plain joins lines without styling, one per row.
func Plain(lines []Line) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line.String())
		b.WriteByte('\n')
	}
	return b.String()
}
