package extract

import (
	"fmt"

	"github.com/jimmycarry/tablegrid/model"
)

// normalize settles the table into a consistent rectangular shape.
// ColumnCount becomes the width of the widest row, and shorter rows are
// padded with empty cells so every row index addresses the same columns.
// With includeEmpty unset, trailing empty cells are trimmed from each row
// instead; ColumnCount still reflects the full logical width so renderers
// can re-pad on output.
func normalize(t *model.Table, includeEmpty bool) []Anomaly {
	width := 0
	for i := range t.Rows {
		if n := len(t.Rows[i].Cells); n > width {
			width = n
		}
	}
	t.ColumnCount = width

	var anomalies []Anomaly
	for i := range t.Rows {
		if short := width - len(t.Rows[i].Cells); short > 0 {
			anomalies = append(anomalies, Anomaly{
				Kind:    AnomalyRaggedRow,
				Row:     i,
				Col:     len(t.Rows[i].Cells),
				Message: fmt.Sprintf("padded %d missing cells", short),
			})
			for k := 0; k < short; k++ {
				t.Rows[i].Cells = append(t.Rows[i].Cells, model.NewEmptyCell())
			}
		}
	}

	if !includeEmpty {
		for i := range t.Rows {
			t.Rows[i].Cells = trimTrailingEmpty(t.Rows[i].Cells)
		}
	}
	return anomalies
}

// trimTrailingEmpty drops empty cells from the end of a row. A merged
// continuation is a structural placeholder, not a blank, so it stops the
// trim even though its content is empty.
func trimTrailingEmpty(cells []model.Cell) []model.Cell {
	n := len(cells)
	for n > 0 {
		c := cells[n-1]
		if c.Type != model.CellTypeEmpty || c.Content != "" {
			break
		}
		n--
	}
	return cells[:n]
}
