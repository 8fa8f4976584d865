// Package table lays out rows of text in aligned columns for plain terminal
// output.
package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const columnGap = "  "

// Format pads every cell to the widest entry of its column. Rows shorter
// than the first row are padded with empty cells. A left-aligned last column
// carries no trailing padding.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)
	last := len(widths) - 1
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c := range widths {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if c > 0 {
				b.WriteString(columnGap)
			}
			pad := widths[c] - runewidth.StringWidth(cell)
			if alignment(alignments, c) == AlignRight {
				writeSpaces(&b, pad)
				b.WriteString(cell)
				continue
			}
			b.WriteString(cell)
			if c < last {
				writeSpaces(&b, pad)
			}
		}
		out[i] = b.String()
	}
	return out
}

func columnWidths(rows [][]string) []int {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for c, cell := range row {
			if c >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

func alignment(alignments []Alignment, col int) Alignment {
	if col < len(alignments) {
		return alignments[col]
	}
	return AlignLeft
}

func writeSpaces(b *strings.Builder, count int) {
	if count > 0 {
		b.WriteString(strings.Repeat(" ", count))
	}
}
