package help

import (
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/dirnav/internal/action"
	"github.com/atomicstack/dirnav/internal/keymap"
)

const miniGuide = `# tool

## Intro

Hello.

## User guide

Keys are listed here. These are the keyboard shortcuts by default:

| Action | Default shortcut(s) | Action name |
| --- | --- | --- |
| Show help | <kbd>?</kbd> | ` + "`Help`" + ` |
| Leave | <kbd>Esc</kbd> | ` + "`Exit`" + ` |

This line should be familiar to readers of the README.
Press <kbd>?</kbd> again to close.

## Similar projects

None.
`

func TestParseDocumentEmbeddedGuide(t *testing.T) {
	doc, err := Load()
	if err != nil {
		t.Fatalf("embedded guide invalid: %v", err)
	}
	if !strings.HasPrefix(doc.Prefix, "## User guide") {
		t.Fatalf("expected prefix to start at the user guide, got %q", doc.Prefix[:20])
	}
	if strings.Contains(doc.Prefix, "shortcuts by default") {
		t.Fatal("expected 'by default' removed from the prefix")
	}
	if strings.Contains(doc.Suffix, readmeOnlyHint) {
		t.Fatal("expected README-only line dropped")
	}
	if strings.Contains(doc.Suffix, "## Similar projects") {
		t.Fatal("expected suffix to stop before the next section")
	}

	seen := map[string]bool{}
	for _, row := range doc.Table[2:] {
		seen[row.Action] = true
	}
	for _, a := range action.All() {
		if a == action.None {
			continue
		}
		if !seen[a.String()] {
			t.Fatalf("guide table has no row for %s", a)
		}
	}
}

func TestParseDocumentMiniGuide(t *testing.T) {
	doc, err := ParseDocument(miniGuide)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantPrefix := "## User guide\n\nKeys are listed here. These are the keyboard shortcuts:\n\n"
	if doc.Prefix != wantPrefix {
		t.Fatalf("unexpected prefix %q", doc.Prefix)
	}
	if len(doc.Table) != 4 {
		t.Fatalf("expected 4 table rows, got %d", len(doc.Table))
	}
	row := doc.Table[2]
	if row.Description != "Show help" || row.Shortcuts != "<kbd>?</kbd>" || row.Action != "Help" || row.Line != 13 {
		t.Fatalf("unexpected row %+v", row)
	}
	if doc.Suffix != "Press <kbd>?</kbd> again to close.\n\n" {
		t.Fatalf("unexpected suffix %q", doc.Suffix)
	}
}

func TestParseDocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
		line int
	}{
		{
			name: "missing section",
			src:  strings.Replace(miniGuide, "## User guide", "## Usage", 1),
			want: ErrSectionNotFound,
		},
		{
			name: "missing section end",
			src:  miniGuide[:strings.Index(miniGuide, "## Similar projects")],
			want: ErrSectionNotFound,
			line: 7,
		},
		{
			name: "missing table anchor",
			src:  strings.Replace(miniGuide, "shortcuts by default:", "shortcuts:", 1),
			want: ErrTableNotFound,
		},
		{
			name: "malformed row",
			src:  strings.Replace(miniGuide, "| Leave | <kbd>Esc</kbd> |", "| Leave | <kbd>Esc</kbd> | extra |", 1),
			want: ErrMalformedRow,
			line: 14,
		},
		{
			name: "unknown action",
			src:  strings.Replace(miniGuide, "`Exit`", "`Teleport`", 1),
			want: ErrUnknownAction,
			line: 14,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument(tt.src)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			var terr *TemplateError
			if !errors.As(err, &terr) {
				t.Fatalf("expected *TemplateError, got %T", err)
			}
			if terr.Anchor == "" {
				t.Fatal("expected the violated anchor to be named")
			}
			if tt.line > 0 && terr.Line != tt.line {
				t.Fatalf("expected line %d, got %d (%v)", tt.line, terr.Line, err)
			}
		})
	}
}

func TestTemplateErrorMessage(t *testing.T) {
	err := &TemplateError{Anchor: "shortcut table row", Line: 3, Err: ErrMalformedRow}
	if got := err.Error(); !strings.HasPrefix(got, "shortcut table row (line 3): ") {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestAssembleJoinsTextDirectlyAfterTable(t *testing.T) {
	doc, err := ParseDocument(miniGuide)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := doc.Assemble(keymap.Invert(keymap.Default()))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	last := lines[len(lines)-1]
	if last != "Press `?` again to close." {
		t.Fatalf("expected closing text last, got %q", last)
	}
	if prev := lines[len(lines)-2]; !strings.HasPrefix(prev, "Leave ") {
		t.Fatalf("expected a table row right before the closing text, got %q", prev)
	}
}
