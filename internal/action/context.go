package action

import (
	"fmt"
	"strings"
)

// Context restricts when a key binding applies.
type Context int

const (
	// ContextNone applies whenever no Search or NotSearch binding exists for
	// the same key combination.
	ContextNone Context = iota
	// ContextSearch applies while at least one search character is entered.
	ContextSearch
	// ContextNotSearch applies while the search is empty.
	ContextNotSearch

	contextCount
)

type contextInfo struct {
	name  string
	short string
	desc  string
}

var contexts = [contextCount]contextInfo{
	ContextNone: {
		"None",
		"No Context",
		"This mapping applies if no other context applies. This is the behavior if no context is specified: the mapping 'key-combination:action' is equivalent to 'key-combination:None:action'.",
	},
	ContextSearch: {
		"Search",
		"Search",
		"This mapping only applies while searching (at least one search character has been given).",
	},
	ContextNotSearch: {
		"NotSearch",
		"Not Search",
		"This mapping only applies while not searching.",
	},
}

// Contexts returns every context in declaration order.
func Contexts() []Context {
	out := make([]Context, 0, contextCount)
	for c := Context(0); c < contextCount; c++ {
		out = append(out, c)
	}
	return out
}

// Valid reports whether c is one of the declared contexts.
func (c Context) Valid() bool {
	return c >= 0 && c < contextCount
}

func (c Context) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Context(%d)", int(c))
	}
	return contexts[c].name
}

// ShortDescription is the label shown next to context-specific shortcuts.
func (c Context) ShortDescription() string {
	if !c.Valid() {
		return ""
	}
	return contexts[c].short
}

func (c Context) Description() string {
	if !c.Valid() {
		return ""
	}
	return contexts[c].desc
}

// ForSearch returns the specific context matching the search state.
func ForSearch(searching bool) Context {
	if searching {
		return ContextSearch
	}
	return ContextNotSearch
}

// ParseContext resolves a context name (case-insensitive). The short
// descriptions ("Not Search") are accepted as well.
func ParseContext(name string) (Context, error) {
	name = strings.TrimSpace(name)
	for c := Context(0); c < contextCount; c++ {
		if strings.EqualFold(contexts[c].name, name) || strings.EqualFold(contexts[c].short, name) {
			return c, nil
		}
	}
	return ContextNone, fmt.Errorf("unknown context %q", name)
}
