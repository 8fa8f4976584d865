package keymap

import (
	"testing"

	"github.com/atomicstack/dirnav/internal/action"
	"github.com/atomicstack/dirnav/internal/keys"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		spec string
		want Entry
	}{
		{"ctrl-a:Exit", Entry{keys.MustParse("ctrl-a"), action.ContextNone, action.Exit}},
		{"esc:Search:ClearSearch", Entry{keys.MustParse("esc"), action.ContextSearch, action.ClearSearch}},
		{"q:notsearch:exit", Entry{keys.MustParse("q"), action.ContextNotSearch, action.Exit}},
		{"::Help", Entry{keys.NewChar(':', keys.ModNone), action.ContextNone, action.Help}},
		{"alt-::Search:Help", Entry{keys.NewChar(':', keys.ModAlt), action.ContextSearch, action.Help}},
		{"enter:None", Entry{keys.MustParse("enter"), action.ContextNone, action.None}},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseSpec(tt.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestParseSpecErrors(t *testing.T) {
	for _, spec := range []string{"", "ctrl-a", "ctrl-a:Jump", "hyper-a:Exit", ":Exit"} {
		if _, err := ParseSpec(spec); err == nil {
			t.Fatalf("expected error for %q", spec)
		}
	}
}

func TestApplyNoneDisablesDefault(t *testing.T) {
	m := Default()
	e, err := ParseSpec("ctrl-c:None")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m.Apply(e)
	if _, ok := m.Lookup(keys.MustParse("ctrl-c"), false); ok {
		t.Fatal("expected ctrl-c unbound")
	}
}
