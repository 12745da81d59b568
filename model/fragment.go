package model

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Fragment is a raw, already-tokenized table as supplied by an upstream
// collaborator (a spreadsheet reader, an XML table walker, an HTML adapter).
// The engine makes no assumption about which file format produced it.
type Fragment struct {
	// Optional descriptive labels; empty means absent.
	Title string
	ID    string

	// ColumnCount optionally declares the table width. When non-zero, a
	// row whose cells occupy more columns than declared is malformed.
	ColumnCount int

	Rows []FragmentRow
}

// FragmentRow is an ordered sequence of raw cell descriptors.
type FragmentRow struct {
	Cells []FragmentCell
}

// FragmentCell is the raw cell descriptor of the upstream contract: text
// content plus optional span, formatting and alignment hints.
type FragmentCell struct {
	Content string

	// Merge spans. 1 means no merge; zero or negative values are rejected
	// as malformed.
	ColSpan int
	RowSpan int

	// Formatting hints.
	Bold      bool
	Italic    bool
	Underline bool
	Color     string
	FontName  string

	Alignment Alignment
}

// NewFragmentCell creates a cell descriptor with the given content and
// spans initialized to 1.
func NewFragmentCell(content string) FragmentCell {
	return FragmentCell{
		Content: content,
		ColSpan: 1,
		RowSpan: 1,
	}
}

// NewFragment creates a fragment from plain string rows, with every span
// set to 1 and no formatting hints.
func NewFragment(rows [][]string) Fragment {
	frag := Fragment{Rows: make([]FragmentRow, len(rows))}
	for i, row := range rows {
		cells := make([]FragmentCell, len(row))
		for j, content := range row {
			cells[j] = NewFragmentCell(content)
		}
		frag.Rows[i] = FragmentRow{Cells: cells}
	}
	return frag
}

// MalformedFragmentError reports a structurally invalid fragment: a
// non-positive merge span, or a row that occupies more columns than the
// fragment declares.
type MalformedFragmentError struct {
	Row    int
	Col    int
	Reason string
}

func (e *MalformedFragmentError) Error() string {
	return fmt.Sprintf("malformed fragment: row %d col %d: %s", e.Row, e.Col, e.Reason)
}

// NewTableFromFragment ingests a raw fragment and produces an unvalidated
// table: a structural copy with content cleaning applied to every cell.
// No heuristics run here. Fails with *MalformedFragmentError when a span
// is zero or negative or a row exceeds the declared column count.
func NewTableFromFragment(frag Fragment) (*Table, error) {
	table := NewTable()
	if frag.Title != "" {
		table.SetTitle(frag.Title)
	}
	if frag.ID != "" {
		table.SetID(frag.ID)
	}

	table.Rows = make([]Row, len(frag.Rows))
	for i, fragRow := range frag.Rows {
		occupied := 0
		cells := make([]Cell, len(fragRow.Cells))
		for j, fragCell := range fragRow.Cells {
			if fragCell.ColSpan < 1 {
				return nil, &MalformedFragmentError{
					Row:    i,
					Col:    j,
					Reason: fmt.Sprintf("colspan %d is not positive", fragCell.ColSpan),
				}
			}
			if fragCell.RowSpan < 1 {
				return nil, &MalformedFragmentError{
					Row:    i,
					Col:    j,
					Reason: fmt.Sprintf("rowspan %d is not positive", fragCell.RowSpan),
				}
			}
			occupied += fragCell.ColSpan

			cell := NewCell(CleanContent(fragCell.Content))
			cell.ColSpan = fragCell.ColSpan
			cell.RowSpan = fragCell.RowSpan
			cell.Alignment = fragCell.Alignment
			if fragCell.Bold || fragCell.Italic || fragCell.Underline ||
				fragCell.Color != "" || fragCell.FontName != "" {
				cell.Formatting = &Formatting{
					Bold:      fragCell.Bold,
					Italic:    fragCell.Italic,
					Underline: fragCell.Underline,
					Color:     fragCell.Color,
					FontName:  fragCell.FontName,
				}
			}
			cells[j] = cell
		}

		if frag.ColumnCount > 0 && occupied > frag.ColumnCount {
			return nil, &MalformedFragmentError{
				Row:    i,
				Col:    occupied - 1,
				Reason: fmt.Sprintf("row occupies %d columns, table declares %d", occupied, frag.ColumnCount),
			}
		}

		table.Rows[i] = Row{
			Cells:    cells,
			RowIndex: i,
		}
	}

	return table, nil
}

// CleanContent normalizes raw cell text: Unicode NFC normalization, tabs
// and newlines folded to spaces, other control characters stripped, and
// whitespace runs collapsed to single spaces with the ends trimmed.
func CleanContent(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			b.WriteRune(' ')
		case unicode.IsControl(r):
			// stripped
		default:
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
