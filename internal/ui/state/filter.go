package state

// SetQuery updates the search query. Starting a search remembers the cursor
// so that clearing the search can restore it; while a query is active the
// cursor jumps to the first matching line.
func (p *Pager) SetQuery(query string) {
	prev := p.Query
	p.Query = query
	if query != "" && prev == "" {
		p.LastCursor = p.Cursor
	}
	p.applyFilter()
	if query != "" {
		if idx := p.firstMatch(); idx >= 0 {
			p.Cursor = idx
		}
		return
	}
	if prev != "" {
		if p.LastCursor >= 0 && p.LastCursor < len(p.Items) {
			p.Cursor = p.LastCursor
		}
		p.LastCursor = -1
	}
}

// AppendQuery adds text to the end of the query.
func (p *Pager) AppendQuery(text string) bool {
	if text == "" {
		return false
	}
	p.SetQuery(p.Query + text)
	return true
}

// DeleteQueryRune removes the last rune of the query.
func (p *Pager) DeleteQueryRune() bool {
	runes := []rune(p.Query)
	if len(runes) == 0 {
		return false
	}
	p.SetQuery(string(runes[:len(runes)-1]))
	return true
}

// ClearQuery drops the whole query.
func (p *Pager) ClearQuery() bool {
	if p.Query == "" {
		return false
	}
	p.SetQuery("")
	return true
}

func (p *Pager) refreshQuery() {
	p.applyFilter()
	if p.Query == "" {
		return
	}
	if idx := p.firstMatch(); idx >= 0 {
		p.Cursor = idx
	}
}

func (p *Pager) applyFilter() {
	p.matched = MatchItems(p.Full, p.Query, p.Matcher)
	if p.FilterMode && p.Query != "" {
		p.Items = FilterItems(p.Full, p.matched)
	} else {
		p.Items = p.Full
	}
	if len(p.Items) == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Items) {
		p.Cursor = len(p.Items) - 1
	}
	if p.ViewportOffset > len(p.Items)-1 {
		p.ViewportOffset = 0
	}
}

func (p *Pager) firstMatch() int {
	for i, item := range p.Items {
		if _, ok := p.matched[item.Index]; ok {
			return i
		}
	}
	return -1
}

// MatchItems returns the document indices of the items matching query.
func MatchItems(items []Item, query string, m Matcher) map[int]struct{} {
	matched := make(map[int]struct{})
	if query == "" {
		return matched
	}
	for _, item := range items {
		if m.Match(query, item.Text) {
			matched[item.Index] = struct{}{}
		}
	}
	return matched
}

// FilterItems returns the items whose index is in matched, in order.
func FilterItems(items []Item, matched map[int]struct{}) []Item {
	filtered := make([]Item, 0, len(matched))
	for _, item := range items {
		if _, ok := matched[item.Index]; ok {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
