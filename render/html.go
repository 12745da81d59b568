package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/jimmycarry/tablegrid/model"
)

// renderHTML writes the table as an HTML table element. The document is
// built as a node tree and serialized with html.Render, so content
// escaping is handled by the library rather than by string assembly.
//
// With SpanAttributes set, merged cells emit real colspan/rowspan
// attributes and the continuation cells they cover are omitted; otherwise
// every grid position renders as a plain cell.
func (r *Renderer) renderHTML(w io.Writer, t *model.Table) error {
	if r.config.SpanAttributes {
		if err := r.config.Validate(); err != nil {
			return err
		}
	}

	table := elem("table")
	if t.ID != nil && *t.ID != "" {
		table.Attr = append(table.Attr, html.Attribute{Key: "id", Val: *t.ID})
	}
	if t.Title != nil && *t.Title != "" {
		caption := elem("caption")
		caption.AppendChild(textNode(*t.Title))
		table.AppendChild(caption)
	}

	headerRows := leadingHeaderCount(t)
	if headerRows > 0 {
		thead := elem("thead")
		for i := 0; i < headerRows; i++ {
			thead.AppendChild(r.htmlRow(t, t.Rows[i]))
		}
		table.AppendChild(thead)
	}
	if headerRows < len(t.Rows) {
		tbody := elem("tbody")
		for i := headerRows; i < len(t.Rows); i++ {
			tbody.AppendChild(r.htmlRow(t, t.Rows[i]))
		}
		table.AppendChild(tbody)
	}

	if err := html.Render(w, table); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// htmlRow builds a tr element. Header rows carry th cells, data rows td.
func (r *Renderer) htmlRow(t *model.Table, row model.Row) *html.Node {
	tr := elem("tr")
	tag := "td"
	if row.IsHeader {
		tag = "th"
	}
	for _, cell := range paddedCells(t, row) {
		if r.config.SpanAttributes && cell.Type == model.CellTypeMergedContinuation {
			continue
		}
		tr.AppendChild(r.htmlCell(tag, cell))
	}
	return tr
}

// htmlCell builds a single th or td element with span attributes, style,
// and emphasis markup as configured.
func (r *Renderer) htmlCell(tag string, cell model.Cell) *html.Node {
	td := elem(tag)

	if r.config.SpanAttributes {
		if cell.ColSpan > 1 {
			td.Attr = append(td.Attr, html.Attribute{Key: "colspan", Val: strconv.Itoa(cell.ColSpan)})
		}
		if cell.RowSpan > 1 {
			td.Attr = append(td.Attr, html.Attribute{Key: "rowspan", Val: strconv.Itoa(cell.RowSpan)})
		}
	}

	if style := cellStyle(cell); style != "" {
		td.Attr = append(td.Attr, html.Attribute{Key: "style", Val: style})
	}

	if cell.Content == "" {
		return td
	}

	// Wrap the text node innermost-out: u, then i, then b.
	node := textNode(cell.Content)
	if f := cell.Formatting; f != nil {
		if f.Underline {
			u := elem("u")
			u.AppendChild(node)
			node = u
		}
		if f.Italic {
			i := elem("i")
			i.AppendChild(node)
			node = i
		}
		if f.Bold {
			b := elem("b")
			b.AppendChild(node)
			node = b
		}
	}
	td.AppendChild(node)
	return td
}

// cellStyle assembles the inline style for a cell from its alignment and
// formatting hints.
func cellStyle(cell model.Cell) string {
	var parts []string
	if cell.Alignment != model.AlignmentUnspecified {
		parts = append(parts, "text-align: "+cell.Alignment.String())
	}
	if f := cell.Formatting; f != nil {
		if f.Color != "" {
			parts = append(parts, "color: "+f.Color)
		}
		if f.FontName != "" {
			parts = append(parts, "font-family: "+f.FontName)
		}
	}
	return strings.Join(parts, "; ")
}

func elem(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
