// Package help renders the built-in user guide as styled terminal lines.
// The guide's shortcut table is regenerated from the live keymap before the
// text is stripped of markup, word-wrapped and split into bold and plain
// segments.
package help

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/atomicstack/dirnav/internal/action"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

//go:embed guide.md
var guide string

var (
	ErrSectionNotFound = errors.New("section not found")
	ErrTableNotFound   = errors.New("shortcut table not found")
	ErrMalformedRow    = errors.New("table row must have exactly 3 columns between pipes")
	ErrUnknownAction   = errors.New("table names an unknown action")
)

// TemplateError reports a guide that does not match the structure the
// renderer relies on. It is a packaging error, never a user error.
type TemplateError struct {
	Anchor string
	Line   int
	Err    error
}

func (e *TemplateError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d): %v", e.Anchor, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Anchor, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

const (
	guideHeading   = "User guide"
	tableAnchor    = "keyboard shortcuts by default:\n\n"
	defaultPhrase  = "shortcuts by default"
	readmeOnlyHint = "should be familiar to"
	headerRename   = "Default s"
	tableColumns   = 3
)

// Row is one line of the template shortcut table. Action is the machine
// name from the last column with backticks removed.
type Row struct {
	Line        int
	Description string
	Shortcuts   string
	Action      string
}

// Document is the validated user guide split around its shortcut table.
// Table holds the header, the separator and one row per action.
type Document struct {
	Prefix string
	Table  []Row
	Suffix string
}

var (
	loadOnce sync.Once
	loaded   *Document
	loadErr  error
)

// Load parses the embedded guide. The result is shared and must not be
// modified.
func Load() (*Document, error) {
	loadOnce.Do(func() {
		loaded, loadErr = ParseDocument(guide)
	})
	return loaded, loadErr
}

// Source returns the embedded guide text.
func Source() string {
	return guide
}

// ParseDocument validates src and extracts the "User guide" section. The
// section runs from its level-2 heading to the next level-2 heading and must
// contain a paragraph ending in "keyboard shortcuts by default:" followed by
// a blank line and a pipe table; the table ends at the next blank line.
func ParseDocument(src string) (*Document, error) {
	start, end, err := guideBounds(src)
	if err != nil {
		return nil, err
	}
	section := src[start:end]

	idx := strings.Index(section, tableAnchor)
	if idx < 0 {
		return nil, &TemplateError{Anchor: strings.TrimSpace(tableAnchor), Line: lineOf(src, start), Err: ErrTableNotFound}
	}
	tableStart := idx + len(tableAnchor)
	rest := section[tableStart:]
	if !strings.HasPrefix(rest, "|") {
		return nil, &TemplateError{Anchor: "shortcut table start", Line: lineOf(src, start+tableStart), Err: ErrTableNotFound}
	}
	tableLen := strings.Index(rest, "\n\n")
	if tableLen < 0 {
		return nil, &TemplateError{Anchor: "shortcut table end", Line: lineOf(src, start+tableStart), Err: ErrTableNotFound}
	}

	rows, err := parseRows(rest[:tableLen], lineOf(src, start+tableStart))
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Prefix: strings.ReplaceAll(section[:tableStart], defaultPhrase, "shortcuts"),
		Table:  rows,
		Suffix: dropLines(rest[tableLen+2:], readmeOnlyHint),
	}
	return doc, nil
}

// guideBounds locates the "User guide" section with goldmark and checks
// that the section holds a three-column table.
func guideBounds(src string) (int, int, error) {
	source := []byte(src)
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(source))

	start, end := -1, -1
	inGuide := false
	tables := 0
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level != 2 {
				return ast.WalkSkipChildren, nil
			}
			pos := headingStart(node, source)
			if inGuide {
				end = pos
				return ast.WalkStop, nil
			}
			if headingText(node, source) == guideHeading {
				start = pos
				inGuide = true
			}
			return ast.WalkSkipChildren, nil
		case *extast.Table:
			if inGuide && len(node.Alignments) == tableColumns {
				tables++
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return 0, 0, err
	}
	if start < 0 {
		return 0, 0, &TemplateError{Anchor: "## " + guideHeading, Err: ErrSectionNotFound}
	}
	if end < 0 {
		return 0, 0, &TemplateError{Anchor: "level-2 heading after " + guideHeading, Line: lineOf(src, start), Err: ErrSectionNotFound}
	}
	if tables == 0 {
		return 0, 0, &TemplateError{Anchor: guideHeading + " table", Line: lineOf(src, start), Err: ErrTableNotFound}
	}
	return start, end, nil
}

func headingStart(h *ast.Heading, source []byte) int {
	if h.Lines().Len() == 0 {
		return 0
	}
	pos := h.Lines().At(0).Start
	for pos > 0 && source[pos-1] != '\n' {
		pos--
	}
	return pos
}

func headingText(h *ast.Heading, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(h, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			b.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func parseRows(table string, firstLine int) ([]Row, error) {
	lines := strings.Split(table, "\n")
	if len(lines) < 2 {
		return nil, &TemplateError{Anchor: "shortcut table separator", Line: firstLine, Err: ErrTableNotFound}
	}
	rows := make([]Row, 0, len(lines))
	for i, line := range lines {
		lineNo := firstLine + i
		cols := strings.Split(line, "|")
		if len(cols) != tableColumns+2 || strings.TrimSpace(cols[0]) != "" || strings.TrimSpace(cols[len(cols)-1]) != "" {
			return nil, &TemplateError{Anchor: "shortcut table row", Line: lineNo, Err: ErrMalformedRow}
		}
		row := Row{
			Line:        lineNo,
			Description: strings.TrimSpace(cols[1]),
			Shortcuts:   strings.TrimSpace(cols[2]),
			Action:      strings.TrimSpace(strings.ReplaceAll(cols[3], "`", "")),
		}
		if i >= 2 {
			if _, err := action.Parse(row.Action); err != nil {
				return nil, &TemplateError{Anchor: "shortcut table row", Line: lineNo, Err: fmt.Errorf("%w: %q", ErrUnknownAction, row.Action)}
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func dropLines(s, marker string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if !strings.Contains(line, marker) {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func lineOf(src string, offset int) int {
	return strings.Count(src[:offset], "\n") + 1
}
