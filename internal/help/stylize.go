package help

import "strings"

// Segment is a run of text sharing one style.
type Segment struct {
	Text string
	Bold bool
}

// Line is one terminal row. It never holds a segment with empty text.
type Line []Segment

// String returns the line's text without styling.
func (l Line) String() string {
	var b strings.Builder
	for _, seg := range l {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Stylize splits wrapped text into lines of segments using the toggle
// offsets from StripMarkup. The counter walks the same rune stream the
// offsets were taken from; each newline counts as one rune. Every offset at
// or before the current position is applied before the rune is emitted, so
// toggles that fall on a newline take effect at the start of the next line.
// Bold never carries over a line end: it is closed there and the next
// pending offset is consumed as its close.
//
// A trailing newline does not produce an extra empty line.
func Stylize(s string, offsets []int) []Line {
	raw := strings.Split(s, "\n")
	if n := len(raw); n > 1 && raw[n-1] == "" {
		raw = raw[:n-1]
	}

	lines := make([]Line, 0, len(raw))
	counter := 0
	next := 0
	bold := false
	for _, text := range raw {
		var line Line
		var chunk strings.Builder
		flush := func() {
			if chunk.Len() == 0 {
				return
			}
			line = append(line, Segment{Text: chunk.String(), Bold: bold})
			chunk.Reset()
		}

		for _, r := range text {
			for next < len(offsets) && offsets[next] <= counter {
				flush()
				bold = !bold
				next++
			}
			chunk.WriteRune(r)
			counter++
		}
		flush()

		if bold {
			bold = false
			if next < len(offsets) {
				next++
			}
		}
		lines = append(lines, line)
		counter++
	}
	return lines
}
