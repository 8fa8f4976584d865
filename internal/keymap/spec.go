package keymap

import (
	"fmt"
	"strings"

	"github.com/atomicstack/dirnav/internal/action"
	"github.com/atomicstack/dirnav/internal/keys"
)

// Entry is one parsed binding instruction.
type Entry struct {
	Key     keys.Combination
	Context action.Context
	Action  action.Action
}

// ParseSpec parses "key:action" or "key:context:action". The key part may
// itself contain ':' ("::Help" binds the colon key), so fields are taken
// from the right.
func ParseSpec(spec string) (Entry, error) {
	fields := strings.Split(strings.TrimSpace(spec), ":")
	if len(fields) < 2 {
		return Entry{}, fmt.Errorf("mapping %q: expected key:action or key:context:action", spec)
	}
	act, err := action.Parse(fields[len(fields)-1])
	if err != nil {
		return Entry{}, fmt.Errorf("mapping %q: %w", spec, err)
	}
	keyFields := fields[:len(fields)-1]
	ctx := action.ContextNone
	if len(keyFields) >= 2 {
		if c, err := action.ParseContext(keyFields[len(keyFields)-1]); err == nil {
			ctx = c
			keyFields = keyFields[:len(keyFields)-1]
		}
	}
	key, err := keys.Parse(strings.Join(keyFields, ":"))
	if err != nil {
		return Entry{}, fmt.Errorf("mapping %q: %w", spec, err)
	}
	return Entry{Key: key, Context: ctx, Action: act}, nil
}

// Apply adds e to m, removing the binding when e.Action is None.
func (m Map) Apply(e Entry) {
	m.Set(e.Key, e.Context, e.Action)
}
