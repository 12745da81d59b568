package render

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jimmycarry/tablegrid/model"
)

// renderSeparated writes delimiter-separated values through encoding/csv,
// which handles RFC 4180 quoting of embedded delimiters, quotes, and
// newlines. Continuation cells emit whatever their Content carries: empty
// fields under Preserve, the duplicated origin content under Expand.
func (r *Renderer) renderSeparated(w io.Writer, t *model.Table, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma

	for i, row := range t.Rows {
		cells := paddedCells(t, row)
		record := make([]string, len(cells))
		for j, cell := range cells {
			record[j] = cell.Content
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
