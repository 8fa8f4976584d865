package state

// MoveCursorUp moves the cursor one line up.
func (p *Pager) MoveCursorUp() bool {
	return p.moveCursorTo(p.Cursor - 1)
}

// MoveCursorDown moves the cursor one line down.
func (p *Pager) MoveCursorDown() bool {
	return p.moveCursorTo(p.Cursor + 1)
}

// MoveCursorHome moves the cursor to the first line.
func (p *Pager) MoveCursorHome() bool {
	return p.moveCursorTo(0)
}

// MoveCursorEnd moves the cursor to the last line.
func (p *Pager) MoveCursorEnd() bool {
	return p.moveCursorTo(len(p.Items) - 1)
}

// MoveCursorPageUp moves the cursor up by one screenful of visible rows.
func (p *Pager) MoveCursorPageUp(visible int) bool {
	return p.moveCursorTo(p.Cursor - p.pageSize(visible))
}

// MoveCursorPageDown moves the cursor down by one screenful of visible rows.
func (p *Pager) MoveCursorPageDown(visible int) bool {
	return p.moveCursorTo(p.Cursor + p.pageSize(visible))
}

// ScrollBy shifts the viewport by delta rows and drags the cursor along when
// it would leave the visible window.
func (p *Pager) ScrollBy(delta, visible int) bool {
	if len(p.Items) == 0 || visible <= 0 {
		return false
	}
	old := p.ViewportOffset
	p.ViewportOffset = clamp(p.ViewportOffset+delta, 0, p.maxOffset(visible))
	if p.ViewportOffset == old {
		return false
	}
	p.Cursor = clamp(p.Cursor, p.ViewportOffset, p.ViewportOffset+visible-1)
	return true
}

func (p *Pager) moveCursorTo(idx int) bool {
	if len(p.Items) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = clamp(idx, 0, len(p.Items)-1)
	return p.Cursor != old
}

func (p *Pager) pageSize(visible int) int {
	if visible <= 0 || visible > len(p.Items) {
		visible = len(p.Items)
	}
	if visible < 1 {
		return 1
	}
	return visible
}

func (p *Pager) maxOffset(visible int) int {
	if n := len(p.Items) - visible; n > 0 {
		return n
	}
	return 0
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (p *Pager) EnsureCursorVisible(visible int) {
	if len(p.Items) == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	p.Cursor = clamp(p.Cursor, 0, len(p.Items)-1)
	if visible <= 0 {
		p.ViewportOffset = 0
		return
	}
	p.ViewportOffset = clamp(p.ViewportOffset, 0, p.maxOffset(visible))
	if p.Cursor < p.ViewportOffset {
		p.ViewportOffset = p.Cursor
	}
	if p.Cursor >= p.ViewportOffset+visible {
		p.ViewportOffset = p.Cursor - visible + 1
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
