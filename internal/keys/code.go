// Package keys models key combinations: a base key plus modifier flags with a
// canonical human-readable form.
package keys

import (
	"fmt"
	"strconv"
	"strings"
)

// Code identifies the base key of a combination. Character keys use Char and
// carry the rune in Combination.Rune.
type Code uint8

const (
	Char Code = iota
	Enter
	Esc
	Tab
	BackTab
	Backspace
	Delete
	Insert
	Home
	End
	PageUp
	PageDown
	Up
	Down
	Left
	Right
	Space
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
)

var codeNames = map[Code]string{
	Enter:     "Enter",
	Esc:       "Esc",
	Tab:       "Tab",
	BackTab:   "BackTab",
	Backspace: "Backspace",
	Delete:    "Delete",
	Insert:    "Insert",
	Home:      "Home",
	End:       "End",
	PageUp:    "PageUp",
	PageDown:  "PageDown",
	Up:        "Up",
	Down:      "Down",
	Left:      "Left",
	Right:     "Right",
	Space:     "Space",
}

// codeAliases maps lowercase names, including common abbreviations, to codes.
var codeAliases = map[string]Code{
	"enter":     Enter,
	"return":    Enter,
	"cr":        Enter,
	"esc":       Esc,
	"escape":    Esc,
	"tab":       Tab,
	"backtab":   BackTab,
	"backspace": Backspace,
	"bs":        Backspace,
	"delete":    Delete,
	"del":       Delete,
	"insert":    Insert,
	"ins":       Insert,
	"home":      Home,
	"end":       End,
	"pageup":    PageUp,
	"pgup":      PageUp,
	"pagedown":  PageDown,
	"pgdown":    PageDown,
	"pgdn":      PageDown,
	"up":        Up,
	"down":      Down,
	"left":      Left,
	"right":     Right,
	"space":     Space,
}

func (c Code) String() string {
	if c >= F1 && c <= F12 {
		return fmt.Sprintf("F%d", int(c-F1)+1)
	}
	if name, ok := codeNames[c]; ok {
		return name
	}
	if c == Char {
		return "Char"
	}
	return fmt.Sprintf("Code(%d)", c)
}

// codeFromName resolves a named key (case-insensitive).
func codeFromName(name string) (Code, bool) {
	lower := strings.ToLower(name)
	if c, ok := codeAliases[lower]; ok {
		return c, true
	}
	if len(lower) >= 2 && lower[0] == 'f' {
		if n, err := strconv.Atoi(lower[1:]); err == nil && n >= 1 && n <= 12 {
			return F1 + Code(n-1), true
		}
	}
	return Char, false
}
