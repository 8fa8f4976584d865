package help

import "strings"

// StripMarkup removes heading markers and backticks from s in one pass.
// It returns the plain text and the rune offsets into it at which bold
// styling toggles. A heading opens bold at its first '#' and closes it at
// the end of its line; the run of '#' and one following space are dropped.
// Every backtick toggles bold regardless of heading state.
func StripMarkup(s string) (string, []int) {
	var b strings.Builder
	b.Grow(len(s))
	var offsets []int
	count := 0
	inHeading := false
	var prev rune

	for _, r := range s {
		switch {
		case r == '#':
			if !inHeading {
				inHeading = true
				offsets = append(offsets, count)
			}
		case r == ' ' && inHeading && prev == '#':
		case r == '\n' && inHeading:
			offsets = append(offsets, count)
			inHeading = false
			b.WriteRune(r)
			count++
		case r == '`':
			offsets = append(offsets, count)
		default:
			b.WriteRune(r)
			count++
		}
		prev = r
	}
	return b.String(), offsets
}
