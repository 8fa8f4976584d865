package help

import "github.com/mattn/go-runewidth"

// Wrap fills each line of s to at most width display cells by turning
// spaces into newlines. No other rune is added, removed or moved, so rune
// offsets computed on s stay valid on the result. Lines are filled greedily
// and a word wider than width is left whole on its own line. Existing
// newlines are kept as hard breaks.
func Wrap(s string, width int) string {
	if width < 1 {
		width = 1
	}
	runes := []rune(s)
	start := 0
	for start <= len(runes) {
		end := start
		for end < len(runes) && runes[end] != '\n' {
			end++
		}
		wrapLine(runes, start, end, width)
		start = end + 1
	}
	return string(runes)
}

// wrapLine breaks runes[start:end] in place. A fragment is a word plus its
// trailing spaces; the spaces count towards the running width but never
// cause a break themselves.
func wrapLine(runes []rune, start, end, width int) {
	used := 0
	first := true
	for i := start; i < end; {
		wordStart := i
		for i < end && runes[i] != ' ' {
			i++
		}
		wordWidth := runewidth.StringWidth(string(runes[wordStart:i]))
		spaceStart := i
		for i < end && runes[i] == ' ' {
			i++
		}
		if !first && used+wordWidth > width {
			runes[wordStart-1] = '\n'
			used = 0
		}
		used += wordWidth + (i - spaceStart)
		first = false
	}
}
