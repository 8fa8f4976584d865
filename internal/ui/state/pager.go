package state

import "github.com/atomicstack/dirnav/internal/help"

// Item is one rendered help line. Index is its position in the full
// document, which survives filtering.
type Item struct {
	Index int
	Line  help.Line
	Text  string
}

// Pager encapsulates the help screen state: rendered lines, cursor, search
// query, and viewport.
type Pager struct {
	Items          []Item
	Full           []Item
	Query          string
	Cursor         int
	LastCursor     int
	ViewportOffset int
	FilterMode     bool
	Matcher        Matcher

	matched map[int]struct{}
}

// NewPager constructs a Pager over the provided lines.
func NewPager(lines []help.Line, matcher Matcher, filterMode bool) *Pager {
	p := &Pager{
		LastCursor: -1,
		FilterMode: filterMode,
		Matcher:    matcher,
	}
	p.UpdateLines(lines)
	return p
}

// UpdateLines replaces the content after a re-render. The cursor keeps its
// document position where possible.
func (p *Pager) UpdateLines(lines []help.Line) {
	prevOffset := p.ViewportOffset
	p.Full = make([]Item, len(lines))
	for i, line := range lines {
		p.Full[i] = Item{Index: i, Line: line, Text: line.String()}
	}
	p.applyFilter()
	if len(p.Items) == 0 {
		p.ViewportOffset = 0
		return
	}
	if prevOffset < 0 || prevOffset > len(p.Items)-1 {
		p.ViewportOffset = 0
		return
	}
	p.ViewportOffset = prevOffset
}

// SetMatcher switches the search modes and re-applies the query.
func (p *Pager) SetMatcher(m Matcher) {
	p.Matcher = m
	p.refreshQuery()
}

// SetFilterMode toggles between showing only matching lines and showing
// every line with matches highlighted.
func (p *Pager) SetFilterMode(on bool) {
	if p.FilterMode == on {
		return
	}
	p.FilterMode = on
	p.refreshQuery()
}

// Searching reports whether a search query is active.
func (p *Pager) Searching() bool {
	return p.Query != ""
}

// IsMatch reports whether item matches the active query.
func (p *Pager) IsMatch(item Item) bool {
	if p.Query == "" {
		return false
	}
	_, ok := p.matched[item.Index]
	return ok
}

// MatchCount returns the number of lines matching the active query.
func (p *Pager) MatchCount() int {
	return len(p.matched)
}

// Current returns the item under the cursor.
func (p *Pager) Current() (Item, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Items) {
		return Item{}, false
	}
	return p.Items[p.Cursor], true
}
