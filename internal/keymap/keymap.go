// Package keymap holds the key binding configuration: which action a key
// combination triggers in which context. A Map is built once from the
// defaults, an optional keymap file and command-line overrides, and is
// treated as read-only afterwards; reloads swap in a fresh Map through Store.
package keymap

import (
	"github.com/atomicstack/dirnav/internal/action"
	"github.com/atomicstack/dirnav/internal/keys"
)

// Binding is the key of a Map entry.
type Binding struct {
	Key     keys.Combination
	Context action.Context
}

func (b Binding) String() string {
	if b.Context == action.ContextNone {
		return b.Key.String()
	}
	return b.Key.String() + " (" + b.Context.ShortDescription() + ")"
}

// Map associates bindings with actions. Several bindings may share an
// action; an action may have none.
type Map map[Binding]action.Action

// Lookup resolves a key press. A binding for the specific context (Search
// while searching, NotSearch otherwise) wins over a ContextNone binding for
// the same key.
func (m Map) Lookup(key keys.Combination, searching bool) (action.Action, bool) {
	if a, ok := m[Binding{Key: key, Context: action.ForSearch(searching)}]; ok {
		return a, true
	}
	a, ok := m[Binding{Key: key, Context: action.ContextNone}]
	return a, ok
}

// Set binds key in ctx to a. Binding to action.None removes the mapping.
func (m Map) Set(key keys.Combination, ctx action.Context, a action.Action) {
	b := Binding{Key: key, Context: ctx}
	if a == action.None {
		delete(m, b)
		return
	}
	m[b] = a
}

// Clone returns an independent copy.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for b, a := range m {
		out[b] = a
	}
	return out
}
