package ui

import (
	"unicode"

	"github.com/atomicstack/dirnav/internal/keys"
	tea "github.com/charmbracelet/bubbletea"
)

// namedKeys covers every key type that is not a printable rune or a plain
// control letter. Ctrl-H arrives from many terminals for the backspace key.
var namedKeys = map[tea.KeyType]keys.Combination{
	tea.KeyEnter:     keys.New(keys.Enter, keys.ModNone),
	tea.KeyEsc:       keys.New(keys.Esc, keys.ModNone),
	tea.KeyTab:       keys.New(keys.Tab, keys.ModNone),
	tea.KeyShiftTab:  keys.New(keys.BackTab, keys.ModNone),
	tea.KeyBackspace: keys.New(keys.Backspace, keys.ModNone),
	tea.KeyCtrlH:     keys.New(keys.Backspace, keys.ModNone),
	tea.KeyDelete:    keys.New(keys.Delete, keys.ModNone),
	tea.KeyInsert:    keys.New(keys.Insert, keys.ModNone),
	tea.KeySpace:     keys.NewChar(' ', keys.ModNone),

	tea.KeyHome:   keys.New(keys.Home, keys.ModNone),
	tea.KeyEnd:    keys.New(keys.End, keys.ModNone),
	tea.KeyPgUp:   keys.New(keys.PageUp, keys.ModNone),
	tea.KeyPgDown: keys.New(keys.PageDown, keys.ModNone),
	tea.KeyUp:     keys.New(keys.Up, keys.ModNone),
	tea.KeyDown:   keys.New(keys.Down, keys.ModNone),
	tea.KeyLeft:   keys.New(keys.Left, keys.ModNone),
	tea.KeyRight:  keys.New(keys.Right, keys.ModNone),

	tea.KeyShiftUp:    keys.New(keys.Up, keys.ModShift),
	tea.KeyShiftDown:  keys.New(keys.Down, keys.ModShift),
	tea.KeyShiftLeft:  keys.New(keys.Left, keys.ModShift),
	tea.KeyShiftRight: keys.New(keys.Right, keys.ModShift),
	tea.KeyShiftHome:  keys.New(keys.Home, keys.ModShift),
	tea.KeyShiftEnd:   keys.New(keys.End, keys.ModShift),

	tea.KeyCtrlUp:     keys.New(keys.Up, keys.ModCtrl),
	tea.KeyCtrlDown:   keys.New(keys.Down, keys.ModCtrl),
	tea.KeyCtrlLeft:   keys.New(keys.Left, keys.ModCtrl),
	tea.KeyCtrlRight:  keys.New(keys.Right, keys.ModCtrl),
	tea.KeyCtrlHome:   keys.New(keys.Home, keys.ModCtrl),
	tea.KeyCtrlEnd:    keys.New(keys.End, keys.ModCtrl),
	tea.KeyCtrlPgUp:   keys.New(keys.PageUp, keys.ModCtrl),
	tea.KeyCtrlPgDown: keys.New(keys.PageDown, keys.ModCtrl),

	tea.KeyF1:  keys.New(keys.F1, keys.ModNone),
	tea.KeyF2:  keys.New(keys.F2, keys.ModNone),
	tea.KeyF3:  keys.New(keys.F3, keys.ModNone),
	tea.KeyF4:  keys.New(keys.F4, keys.ModNone),
	tea.KeyF5:  keys.New(keys.F5, keys.ModNone),
	tea.KeyF6:  keys.New(keys.F6, keys.ModNone),
	tea.KeyF7:  keys.New(keys.F7, keys.ModNone),
	tea.KeyF8:  keys.New(keys.F8, keys.ModNone),
	tea.KeyF9:  keys.New(keys.F9, keys.ModNone),
	tea.KeyF10: keys.New(keys.F10, keys.ModNone),
	tea.KeyF11: keys.New(keys.F11, keys.ModNone),
	tea.KeyF12: keys.New(keys.F12, keys.ModNone),
}

// keyCombinations converts a key press into the combinations it may be bound
// as, most specific first. An upper-case letter is also offered as Shift plus
// the lower-case letter, so a binding like alt-shift-g matches Alt-G.
func keyCombinations(msg tea.KeyMsg) []keys.Combination {
	mods := keys.ModNone
	if msg.Alt {
		mods |= keys.ModAlt
	}
	if c, ok := namedKeys[msg.Type]; ok {
		c.Mods |= mods
		return []keys.Combination{c}
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		r := 'a' + rune(msg.Type-tea.KeyCtrlA)
		return []keys.Combination{keys.NewChar(r, mods|keys.ModCtrl)}
	}
	if msg.Type != tea.KeyRunes || msg.Paste || len(msg.Runes) != 1 {
		return nil
	}
	r := msg.Runes[0]
	out := []keys.Combination{keys.NewChar(r, mods)}
	if unicode.IsUpper(r) {
		out = append(out, keys.NewChar(unicode.ToLower(r), mods|keys.ModShift))
	}
	return out
}
