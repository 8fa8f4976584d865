package help

import (
	"reflect"
	"strings"
	"testing"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		text    string
		offsets []int
	}{
		{"plain", "nothing to see here\nreally", "nothing to see here\nreally", nil},
		{"heading", "# Title\n", "Title\n", []int{0, 5}},
		{"code", "`abc`", "abc", []int{0, 3}},
		{"deep heading", "### Keys\nbody", "Keys\nbody", []int{0, 4}},
		{"heading without space", "#Tight\n", "Tight\n", []int{0, 5}},
		{"second space kept", "#  Wide\n", " Wide\n", []int{0, 5}},
		{"code in heading", "## Use `q`\n", "Use q\n", []int{0, 4, 5, 5}},
		{"unmatched", "open `here\nnext", "open here\nnext", []int{5}},
		{"multibyte", "é `ü`", "é ü", []int{2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, offsets := StripMarkup(tt.in)
			if text != tt.text {
				t.Fatalf("expected text %q, got %q", tt.text, text)
			}
			if !reflect.DeepEqual(offsets, tt.offsets) {
				t.Fatalf("expected offsets %v, got %v", tt.offsets, offsets)
			}
		})
	}
}

func TestStripMarkupOffsetsAreMonotonic(t *testing.T) {
	text, offsets := StripMarkup(Source())
	if strings.Contains(text, "`") {
		t.Fatal("expected no backticks left")
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			t.Fatalf("offsets decrease at %d: %d < %d", i, offsets[i], offsets[i-1])
		}
	}
	if last := offsets[len(offsets)-1]; last > len([]rune(text)) {
		t.Fatalf("offset %d beyond text length %d", last, len([]rune(text)))
	}
}
