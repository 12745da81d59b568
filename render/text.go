package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jimmycarry/tablegrid/model"
)

// renderText writes an aligned plain-text grid with a two-space gutter
// between columns. Column widths come from display width, not rune count,
// so East Asian content lines up.
func (r *Renderer) renderText(w io.Writer, t *model.Table) error {
	if len(t.Rows) == 0 {
		return nil
	}

	widths := make([]int, t.ColumnCount)
	for _, row := range t.Rows {
		for j, cell := range paddedCells(t, row) {
			if j >= len(widths) {
				break
			}
			if cw := runewidth.StringWidth(cell.Content); cw > widths[j] {
				widths[j] = cw
			}
		}
	}

	total := 0
	for _, cw := range widths {
		total += cw
	}
	if len(widths) > 1 {
		total += 2 * (len(widths) - 1)
	}

	headerRows := leadingHeaderCount(t)

	for i, row := range t.Rows {
		line := make([]string, 0, len(widths))
		for j, cell := range paddedCells(t, row) {
			if j >= len(widths) {
				break
			}
			line = append(line, padCell(cell, widths[j]))
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(line, "  "), " ")); err != nil {
			return err
		}
		if headerRows > 0 && i == headerRows-1 && total > 0 {
			if _, err := fmt.Fprintln(w, strings.Repeat("-", total)); err != nil {
				return err
			}
		}
	}

	return nil
}

// leadingHeaderCount returns how many header rows sit at the top of the
// table before the first data row.
func leadingHeaderCount(t *model.Table) int {
	n := 0
	for _, row := range t.Rows {
		if !row.IsHeader {
			break
		}
		n++
	}
	return n
}

// padCell pads cell content to the column width honoring its alignment.
// Justify falls back to left; there is no inter-word stretching in a
// monospaced grid.
func padCell(cell model.Cell, width int) string {
	content := cell.Content
	pad := width - runewidth.StringWidth(content)
	if pad <= 0 {
		return content
	}
	switch cell.Alignment {
	case model.AlignmentRight:
		return strings.Repeat(" ", pad) + content
	case model.AlignmentCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + content + strings.Repeat(" ", pad-left)
	default:
		return content + strings.Repeat(" ", pad)
	}
}
