package keymap

import (
	"slices"
	"strings"

	"github.com/atomicstack/dirnav/internal/action"
)

// Inverted maps an action's display name to the bindings that trigger it.
type Inverted map[string][]Binding

// Invert builds the action → bindings view of m. Each list is ordered by
// compareBindings; actions without bindings have no entry.
func Invert(m Map) Inverted {
	out := make(Inverted)
	for b, a := range m {
		name := a.String()
		out[name] = append(out[name], b)
	}
	for _, list := range out {
		slices.SortFunc(list, compareBindings)
	}
	return out
}

// compareBindings orders ContextNone bindings first. Among those, unmodified
// keys come before modified ones and equal classes compare by their
// canonical string. Other contexts are grouped by short description, with
// the canonical key string breaking ties inside a context.
func compareBindings(a, b Binding) int {
	aNone := a.Context == action.ContextNone
	bNone := b.Context == action.ContextNone
	switch {
	case aNone && !bNone:
		return -1
	case !aNone && bNone:
		return 1
	case aNone && bNone:
		aPlain := a.Key.Mods.IsEmpty()
		bPlain := b.Key.Mods.IsEmpty()
		if aPlain != bPlain {
			if aPlain {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Key.String(), b.Key.String())
	}
	if c := strings.Compare(a.Context.ShortDescription(), b.Context.ShortDescription()); c != 0 {
		return c
	}
	return strings.Compare(a.Key.String(), b.Key.String())
}
