package model

import "sort"

// Table is the canonical grid representation every pipeline stage and
// renderer operates on. Row order is significant and matches the physical
// top-to-bottom order of the source fragment.
type Table struct {
	Rows []Row `json:"rows"`

	// HeaderRowIndices lists the indices of rows classified as headers,
	// sorted ascending. Empty (never nil after construction) if none.
	HeaderRowIndices []int `json:"header_row_indices"`

	// ColumnCount is the resolved logical column count: the maximum row
	// width after merge resolution. It is computed once during
	// normalization and never recomputed downstream.
	ColumnCount int `json:"column_count"`

	// Optional descriptive labels, passed through opaquely. A nil pointer
	// means absent, which is distinct from a present empty string.
	Title *string `json:"title,omitempty"`
	ID    *string `json:"id,omitempty"`
}

// Row is an ordered sequence of cells.
type Row struct {
	Cells    []Cell `json:"cells"`
	IsHeader bool   `json:"is_header"`

	// RowIndex is the 0-based position in the original document order.
	// It is assigned at construction and never renumbered.
	RowIndex int `json:"row_index"`
}

// Cell is the atomic content unit of a table.
type Cell struct {
	// Content is the raw extracted text, cleaned of control characters.
	Content string `json:"content"`

	// FormattedContent optionally preserves emphasis as format-neutral
	// markers (**bold**, *italic*, __underline__). Only renderers that
	// support inline emphasis consume it.
	FormattedContent *string `json:"formatted_content,omitempty"`

	ColSpan   int       `json:"colspan"`
	RowSpan   int       `json:"rowspan"`
	Alignment Alignment `json:"alignment"`
	Type      CellType  `json:"cell_type"`

	// Formatting is nil when no formatting information is known.
	Formatting *Formatting `json:"formatting,omitempty"`
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		HeaderRowIndices: []int{},
	}
}

// NewCell creates a data cell with the given content and no merge spans.
// Empty content produces an empty-typed cell.
func NewCell(content string) Cell {
	cell := Cell{
		Content: content,
		ColSpan: 1,
		RowSpan: 1,
		Type:    CellTypeData,
	}
	if content == "" {
		cell.Type = CellTypeEmpty
	}
	return cell
}

// NewEmptyCell creates an empty padding cell.
func NewEmptyCell() Cell {
	return Cell{
		ColSpan: 1,
		RowSpan: 1,
		Type:    CellTypeEmpty,
	}
}

// NewContinuationCell creates a merge continuation placeholder.
func NewContinuationCell() Cell {
	return Cell{
		ColSpan: 1,
		RowSpan: 1,
		Type:    CellTypeMergedContinuation,
	}
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// CellAt returns the cell at the given row and column (0-indexed), or nil
// if the position does not exist.
func (t *Table) CellAt(row, col int) *Cell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	if col < 0 || col >= len(t.Rows[row].Cells) {
		return nil
	}
	return &t.Rows[row].Cells[col]
}

// HasHeaders reports whether any row is classified as a header.
func (t *Table) HasHeaders() bool {
	return len(t.HeaderRowIndices) > 0
}

// IsHeaderRow reports whether the row at the given index is a header.
func (t *Table) IsHeaderRow(i int) bool {
	if i < 0 || i >= len(t.Rows) {
		return false
	}
	return t.Rows[i].IsHeader
}

// MarkHeaderRow classifies the row at the given index as a header: the row
// is flagged, its data cells are retyped as header cells, and the index is
// recorded in HeaderRowIndices. Empty cells and merge continuations keep
// their types. Marking an already-classified row is a no-op.
func (t *Table) MarkHeaderRow(i int) {
	if i < 0 || i >= len(t.Rows) {
		return
	}
	row := &t.Rows[i]
	if !row.IsHeader {
		row.IsHeader = true
		for j := range row.Cells {
			if row.Cells[j].Type == CellTypeData {
				row.Cells[j].Type = CellTypeHeader
			}
		}
	}
	for _, idx := range t.HeaderRowIndices {
		if idx == i {
			return
		}
	}
	t.HeaderRowIndices = append(t.HeaderRowIndices, i)
	sort.Ints(t.HeaderRowIndices)
}

// SetTitle sets the optional title label.
func (t *Table) SetTitle(title string) {
	t.Title = &title
}

// SetID sets the optional identifier label.
func (t *Table) SetID(id string) {
	t.ID = &id
}

// Clone creates a deep copy of the table. Pipeline stages operate on their
// own table, so a caller can retain an earlier result and retry with a
// different configuration without interference.
func (t *Table) Clone() *Table {
	clone := &Table{
		ColumnCount:      t.ColumnCount,
		HeaderRowIndices: append([]int{}, t.HeaderRowIndices...),
	}
	if t.Title != nil {
		title := *t.Title
		clone.Title = &title
	}
	if t.ID != nil {
		id := *t.ID
		clone.ID = &id
	}
	clone.Rows = make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]Cell, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.Clone()
		}
		clone.Rows[i] = Row{
			Cells:    cells,
			IsHeader: row.IsHeader,
			RowIndex: row.RowIndex,
		}
	}
	return clone
}

// Clone returns a deep copy of the cell.
func (c Cell) Clone() Cell {
	clone := c
	if c.FormattedContent != nil {
		fc := *c.FormattedContent
		clone.FormattedContent = &fc
	}
	clone.Formatting = c.Formatting.Clone()
	return clone
}

// Text returns the cell's display text, preferring the formatted
// representation when one is present.
func (c *Cell) Text() string {
	if c.FormattedContent != nil {
		return *c.FormattedContent
	}
	return c.Content
}

// IsEmpty reports whether the cell carries no content.
func (c *Cell) IsEmpty() bool {
	return c.Content == ""
}
