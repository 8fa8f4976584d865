package keymap

import (
	"testing"

	"github.com/atomicstack/dirnav/internal/action"
	"github.com/atomicstack/dirnav/internal/keys"
)

func TestLookupPrefersSpecificContext(t *testing.T) {
	esc := keys.New(keys.Esc, keys.ModNone)
	m := Map{
		{Key: esc, Context: action.ContextSearch}:    action.ClearSearch,
		{Key: esc, Context: action.ContextNotSearch}: action.Exit,
		{Key: esc, Context: action.ContextNone}:      action.Help,
	}
	if a, ok := m.Lookup(esc, true); !ok || a != action.ClearSearch {
		t.Fatalf("expected ClearSearch while searching, got %v (%v)", a, ok)
	}
	if a, ok := m.Lookup(esc, false); !ok || a != action.Exit {
		t.Fatalf("expected Exit while not searching, got %v (%v)", a, ok)
	}
}

func TestLookupFallsBackToContextNone(t *testing.T) {
	up := keys.New(keys.Up, keys.ModNone)
	m := Map{{Key: up, Context: action.ContextNone}: action.CursorUp}
	for _, searching := range []bool{true, false} {
		if a, ok := m.Lookup(up, searching); !ok || a != action.CursorUp {
			t.Fatalf("searching=%v: expected CursorUp, got %v (%v)", searching, a, ok)
		}
	}
	if _, ok := m.Lookup(keys.New(keys.Down, keys.ModNone), false); ok {
		t.Fatal("expected unbound key to miss")
	}
}

func TestLookupIgnoresOtherSpecificContext(t *testing.T) {
	space := keys.NewChar(' ', keys.ModNone)
	m := Map{{Key: space, Context: action.ContextNotSearch}: action.ChangeDir}
	if _, ok := m.Lookup(space, true); ok {
		t.Fatal("expected NotSearch binding to be ignored while searching")
	}
}

func TestSetNoneRemovesBinding(t *testing.T) {
	m := Default()
	enter := keys.New(keys.Enter, keys.ModNone)
	if _, ok := m.Lookup(enter, false); !ok {
		t.Fatal("expected enter bound by default")
	}
	m.Set(enter, action.ContextNone, action.None)
	if _, ok := m.Lookup(enter, false); ok {
		t.Fatal("expected enter unbound after setting None")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := Default()
	c := m.Clone()
	c.Set(keys.MustParse("ctrl-x"), action.ContextNone, action.Exit)
	if len(c) != len(m)+1 {
		t.Fatalf("expected clone to grow by one, got %d vs %d", len(c), len(m))
	}
	if _, ok := m.Lookup(keys.MustParse("ctrl-x"), false); ok {
		t.Fatal("expected original map untouched")
	}
}

func TestDefaultBindsEveryActionButNone(t *testing.T) {
	inv := Invert(Default())
	for _, a := range action.All() {
		if a == action.None {
			continue
		}
		if len(inv[a.String()]) == 0 {
			t.Fatalf("expected default binding for %s", a)
		}
	}
	if _, ok := inv[action.None.String()]; ok {
		t.Fatal("expected None never to be stored")
	}
}

func TestBindingString(t *testing.T) {
	b := Binding{Key: keys.MustParse("backspace"), Context: action.ContextNotSearch}
	if got := b.String(); got != "Backspace (Not Search)" {
		t.Fatalf("unexpected binding string %q", got)
	}
	b.Context = action.ContextNone
	if got := b.String(); got != "Backspace" {
		t.Fatalf("unexpected binding string %q", got)
	}
}
