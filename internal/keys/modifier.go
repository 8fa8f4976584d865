package keys

import "strings"

// Modifier is a set of modifier keys.
type Modifier uint8

const (
	ModNone Modifier = 0

	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
)

// Has reports whether m contains mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// IsEmpty reports whether no modifier is set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String renders the set as "Ctrl-Alt-Shift-" prefixes, in that order.
func (m Modifier) String() string {
	var b strings.Builder
	if m.Has(ModCtrl) {
		b.WriteString("Ctrl-")
	}
	if m.Has(ModAlt) {
		b.WriteString("Alt-")
	}
	if m.Has(ModShift) {
		b.WriteString("Shift-")
	}
	return b.String()
}

var modifierNames = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"meta":    ModAlt,
	"shift":   ModShift,
}

func modifierFromName(name string) (Modifier, bool) {
	m, ok := modifierNames[strings.ToLower(name)]
	return m, ok
}
