package keys

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Combination is a base key plus a modifier set. It is comparable, so it can
// be used as a map key; equality covers the code, the rune and the modifiers.
type Combination struct {
	Code Code
	Rune rune
	Mods Modifier
}

// New returns a combination for a named key.
func New(code Code, mods Modifier) Combination {
	return Combination{Code: code, Mods: mods}
}

// NewChar returns a combination for a character key.
func NewChar(r rune, mods Modifier) Combination {
	return Combination{Code: Char, Rune: r, Mods: mods}
}

// String is the canonical format: modifier prefixes followed by the key
// name, e.g. "Ctrl-a", "Alt-Enter", "PageUp", "?".
func (c Combination) String() string {
	return c.Mods.String() + c.keyName()
}

func (c Combination) keyName() string {
	if c.Code == Char {
		if c.Rune == ' ' {
			return Space.String()
		}
		return string(c.Rune)
	}
	return c.Code.String()
}

// Parse reads a key combination such as "ctrl-a", "Ctrl+A", "alt-enter",
// "pgup", "-" or "alt--". Modifier names are case-insensitive; character
// keys keep their case, except that a Ctrl letter is folded to lower case
// because terminals report Ctrl-A and Ctrl-a as the same control code.
func Parse(spec string) (Combination, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Combination{}, ErrEmptySpec
	}
	var mods Modifier
	rest := spec
	for {
		idx := strings.IndexAny(rest, "-+")
		if idx <= 0 || idx == len(rest)-1 {
			break
		}
		mod, ok := modifierFromName(rest[:idx])
		if !ok {
			break
		}
		mods |= mod
		rest = rest[idx+1:]
	}
	if code, ok := codeFromName(rest); ok {
		if code == Space {
			return NewChar(' ', mods), nil
		}
		return New(code, mods), nil
	}
	if utf8.RuneCountInString(rest) == 1 {
		r, _ := utf8.DecodeRuneInString(rest)
		if mods.Has(ModCtrl) && r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return NewChar(r, mods), nil
	}
	return Combination{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
}

// MustParse is Parse for literals known to be valid.
func MustParse(spec string) Combination {
	c, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return c
}
