package keys

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Combination
	}{
		{"a", NewChar('a', ModNone)},
		{"A", NewChar('A', ModNone)},
		{"ctrl-a", NewChar('a', ModCtrl)},
		{"Ctrl+A", NewChar('a', ModCtrl)},
		{"ctrl-alt-Z", NewChar('z', ModCtrl|ModAlt)},
		{"alt-A", NewChar('A', ModAlt)},
		{"alt-enter", New(Enter, ModAlt)},
		{"ctrl-shift-tab", New(Tab, ModCtrl|ModShift)},
		{"-", NewChar('-', ModNone)},
		{"alt--", NewChar('-', ModAlt)},
		{"pgup", New(PageUp, ModNone)},
		{"PageDown", New(PageDown, ModNone)},
		{"esc", New(Esc, ModNone)},
		{"space", NewChar(' ', ModNone)},
		{"f10", New(F10, ModNone)},
		{"control-home", New(Home, ModCtrl)},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("  "); !errors.Is(err, ErrEmptySpec) {
		t.Fatalf("expected ErrEmptySpec, got %v", err)
	}
	for _, spec := range []string{"ctrl-", "hyper-a", "f13", "abc"} {
		if _, err := Parse(spec); !errors.Is(err, ErrInvalidSpec) {
			t.Fatalf("Parse(%q): expected ErrInvalidSpec, got %v", spec, err)
		}
	}
}

func TestCombinationString(t *testing.T) {
	tests := []struct {
		combo Combination
		want  string
	}{
		{NewChar('a', ModCtrl), "Ctrl-a"},
		{NewChar('?', ModNone), "?"},
		{NewChar(' ', ModNone), "Space"},
		{New(Enter, ModAlt), "Alt-Enter"},
		{New(Up, ModShift|ModCtrl|ModAlt), "Ctrl-Alt-Shift-Up"},
		{New(F12, ModNone), "F12"},
	}
	for _, tt := range tests {
		if got := tt.combo.String(); got != tt.want {
			t.Fatalf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestStringParsesBack(t *testing.T) {
	for _, spec := range []string{"Ctrl-a", "Alt-Enter", "Ctrl-Alt-Shift-Up", "F12", "Space", "?", "Alt--"} {
		c := MustParse(spec)
		if got := c.String(); got != spec {
			t.Fatalf("expected %q to format back unchanged, got %q", spec, got)
		}
	}
}

func TestParseFoldsCtrlLetters(t *testing.T) {
	if MustParse("Ctrl+A") != MustParse("ctrl-a") {
		t.Fatalf("expected Ctrl+A and ctrl-a to be the same combination")
	}
	if got := MustParse("Ctrl+A").String(); got != "Ctrl-a" {
		t.Fatalf("expected canonical Ctrl-a, got %q", got)
	}
	if MustParse("Ctrl+1") != NewChar('1', ModCtrl) {
		t.Fatalf("expected non-letters untouched")
	}
}

func TestCombinationAsMapKey(t *testing.T) {
	m := map[Combination]int{MustParse("ctrl-a"): 1}
	if m[MustParse("Ctrl+a")] != 1 {
		t.Fatalf("expected equal combinations to share a map slot")
	}
	if _, ok := m[MustParse("a")]; ok {
		t.Fatalf("expected modifier set to take part in equality")
	}
}
