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

// Format returns the rows padded according to the widest entry in each column.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := ColumnWidths(rows)
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			b.WriteString(Pad(cell, CellWidth(cell), widths[c], alignmentAt(alignments, c)))
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}

// ColumnWidths returns the display width of the widest cell in each column.
// Rows may be ragged.
func ColumnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			for len(widths) <= c {
				widths = append(widths, 0)
			}
			if w := CellWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

// CellWidth measures text in terminal columns, counting wide runes twice.
func CellWidth(text string) int {
	return runewidth.StringWidth(text)
}

// Pad aligns content, whose visible width is known to be contentWidth, inside
// a column of the given width. content may carry escape sequences.
func Pad(content string, contentWidth, width int, align Alignment) string {
	gap := width - contentWidth
	if gap <= 0 {
		return content
	}
	if align == AlignRight {
		return spaces(gap) + content
	}
	return content + spaces(gap)
}

func alignmentAt(alignments []Alignment, c int) Alignment {
	if c < len(alignments) {
		return alignments[c]
	}
	return AlignLeft
}

func spaces(count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat(" ", count)
}
