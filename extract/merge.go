package extract

import (
	"fmt"

	"github.com/jimmycarry/tablegrid/model"
)

// OverlappingSpanError reports a structurally invalid source table: two
// spans, or a span and a literal cell, both claim the same grid position.
// The conflict is reported with coordinates rather than silently resolved.
type OverlappingSpanError struct {
	// Contested grid position.
	Row int
	Col int

	// Cell whose span claimed the position first.
	OriginRow int
	OriginCol int

	// Cell that attempted the second claim.
	CellRow int
	CellCol int
}

func (e *OverlappingSpanError) Error() string {
	return fmt.Sprintf("overlapping span at row %d col %d: claimed by cell (%d,%d) and cell (%d,%d)",
		e.Row, e.Col, e.OriginRow, e.OriginCol, e.CellRow, e.CellCol)
}

// resolveMerges reconciles declared colspan/rowspan values into the grid
// according to the selected policy.
func resolveMerges(t *model.Table, handling MergeHandling) ([]Anomaly, error) {
	switch handling {
	case MergeIgnore:
		return ignoreSpans(t), nil
	case MergePreserve:
		return expandSpans(t, false)
	case MergeExpand:
		return expandSpans(t, true)
	default:
		return nil, fmt.Errorf("unknown merge handling %d", int(handling))
	}
}

// ignoreSpans drops every declared span, leaving cell content in place.
// Rows may be left ragged; the normalizer pads them.
func ignoreSpans(t *model.Table) []Anomaly {
	var anomalies []Anomaly
	for i := range t.Rows {
		for j := range t.Rows[i].Cells {
			cell := &t.Rows[i].Cells[j]
			if cell.ColSpan > 1 || cell.RowSpan > 1 {
				anomalies = append(anomalies, Anomaly{
					Kind:    AnomalySpanIgnored,
					Row:     i,
					Col:     j,
					Message: fmt.Sprintf("%dx%d span dropped", cell.RowSpan, cell.ColSpan),
				})
				cell.ColSpan = 1
				cell.RowSpan = 1
			}
		}
	}
	return anomalies
}

// claim records that a grid position belongs to a spanned origin cell.
type claim struct {
	originRow int
	originCol int
	origin    model.Cell
}

// expandSpans materializes spans into continuation cells so every spanned
// region forms a rectangle anchored at its origin. Colspan continuations
// are placed first, left to right, then rowspan continuations propagate
// top to bottom. With duplicate set, continuations carry a copy of the
// origin content instead of acting as empty placeholders, and all spans
// reset to 1.
func expandSpans(t *model.Table, duplicate bool) ([]Anomaly, error) {
	pending := make(map[int]map[int]claim)
	claimAt := func(row, col int) (claim, bool) {
		c, ok := pending[row][col]
		return c, ok
	}
	setClaim := func(row, col int, c claim) {
		if pending[row] == nil {
			pending[row] = make(map[int]claim)
		}
		pending[row][col] = c
	}

	continuation := func(c claim) model.Cell {
		if !duplicate {
			return model.NewContinuationCell()
		}
		dup := c.origin.Clone()
		dup.ColSpan = 1
		dup.RowSpan = 1
		dup.Type = model.CellTypeData
		if dup.Content == "" {
			dup.Type = model.CellTypeEmpty
		}
		return dup
	}

	var anomalies []Anomaly

	for i := range t.Rows {
		literals := t.Rows[i].Cells
		out := make([]model.Cell, 0, len(literals))
		col := 0

		for _, cell := range literals {
			// A literal cell occupies the next column not claimed by a
			// span from an earlier row.
			for {
				c, ok := claimAt(i, col)
				if !ok {
					break
				}
				out = append(out, continuation(c))
				col++
			}

			colSpan := cell.ColSpan
			rowSpan := cell.RowSpan

			// Rowspans cannot extend past the last row.
			if i+rowSpan > len(t.Rows) {
				rowSpan = len(t.Rows) - i
				cell.RowSpan = rowSpan
			}

			// The columns covered by the colspan must be free.
			for dc := 1; dc < colSpan; dc++ {
				if c, ok := claimAt(i, col+dc); ok {
					return nil, &OverlappingSpanError{
						Row:       i,
						Col:       col + dc,
						OriginRow: c.originRow,
						OriginCol: c.originCol,
						CellRow:   i,
						CellCol:   col,
					}
				}
			}

			// Claim the rectangle in the rows below.
			source := claim{originRow: i, originCol: col, origin: cell}
			for dr := 1; dr < rowSpan; dr++ {
				for dc := 0; dc < colSpan; dc++ {
					if c, ok := claimAt(i+dr, col+dc); ok {
						return nil, &OverlappingSpanError{
							Row:       i + dr,
							Col:       col + dc,
							OriginRow: c.originRow,
							OriginCol: c.originCol,
							CellRow:   i,
							CellCol:   col,
						}
					}
					setClaim(i+dr, col+dc, source)
				}
			}

			if duplicate {
				cell.ColSpan = 1
				cell.RowSpan = 1
			}
			out = append(out, cell)
			for dc := 1; dc < colSpan; dc++ {
				out = append(out, continuation(source))
			}
			col += colSpan
		}

		// Claims from earlier rows can extend past the row's literal
		// cells; interior gaps before a claimed column are filled with
		// empty cells.
		maxClaim := -1
		for c := range pending[i] {
			if c > maxClaim {
				maxClaim = c
			}
		}
		for ; col <= maxClaim; col++ {
			if c, ok := claimAt(i, col); ok {
				out = append(out, continuation(c))
			} else {
				anomalies = append(anomalies, Anomaly{
					Kind:    AnomalyRaggedRow,
					Row:     i,
					Col:     col,
					Message: fmt.Sprintf("gap at column %d before spanned column filled", col),
				})
				out = append(out, model.NewEmptyCell())
			}
		}

		delete(pending, i)
		t.Rows[i].Cells = out
	}

	return anomalies, nil
}
