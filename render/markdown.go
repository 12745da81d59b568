package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jimmycarry/tablegrid/model"
)

// renderMarkdown writes a pipe table. Header rows come first, then one
// separator row of --- per column, then the data rows. A table with no
// header row gets an empty synthesized header so the output still parses
// as a table instead of promoting the first data row.
func (r *Renderer) renderMarkdown(w io.Writer, t *model.Table) error {
	if len(t.Rows) == 0 || t.ColumnCount == 0 {
		return nil
	}

	headerRows := leadingHeaderCount(t)
	if headerRows == 0 {
		if err := writePipeRow(w, make([]string, t.ColumnCount)); err != nil {
			return err
		}
		if err := writeSeparatorRow(w, t.ColumnCount); err != nil {
			return err
		}
	}

	for i, row := range t.Rows {
		fields := make([]string, 0, t.ColumnCount)
		for _, cell := range paddedCells(t, row) {
			fields = append(fields, escapePipes(cell.Text()))
		}
		if err := writePipeRow(w, fields); err != nil {
			return err
		}
		if headerRows > 0 && i == headerRows-1 {
			if err := writeSeparatorRow(w, t.ColumnCount); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeSeparatorRow(w io.Writer, cols int) error {
	fields := make([]string, cols)
	for i := range fields {
		fields[i] = "---"
	}
	return writePipeRow(w, fields)
}

func writePipeRow(w io.Writer, fields []string) error {
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(fields, " | "))
	return err
}

// escapePipes escapes literal pipe characters so cell content cannot
// break the table structure. Emphasis markers in formatted content pass
// through untouched.
func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
