// Package htmltable extracts table fragments from HTML documents.
package htmltable

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/jimmycarry/tablegrid/model"
)

// ParseFile reads every table element from an HTML file.
func ParseFile(filename string) ([]model.Fragment, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads every table element from an HTML document, in document
// order. Tables nested inside another table's cells are not extracted
// separately; their text flattens into the enclosing cell.
func Parse(r io.Reader) ([]model.Fragment, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var fragments []model.Fragment
	collectTables(doc, &fragments)
	return fragments, nil
}

// ParseString reads every table element from an HTML string.
func ParseString(s string) ([]model.Fragment, error) {
	return Parse(strings.NewReader(s))
}

func collectTables(n *html.Node, fragments *[]model.Fragment) {
	if n.Type == html.ElementNode && n.Data == "table" {
		*fragments = append(*fragments, parseTable(n))
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectTables(c, fragments)
	}
}

// parseTable converts a table element into a fragment. Header semantics
// are not decided here; th cells carry a bold hint and the extraction
// pipeline's detector makes the call.
func parseTable(tableNode *html.Node) model.Fragment {
	var frag model.Fragment

	for _, attr := range tableNode.Attr {
		if attr.Key == "id" {
			frag.ID = attr.Val
		}
	}

	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "caption":
			frag.Title = textContent(c)
		case "thead", "tbody", "tfoot":
			parseRows(c, &frag)
		case "tr":
			if row, ok := parseRow(c); ok {
				frag.Rows = append(frag.Rows, row)
			}
		}
	}

	return frag
}

// parseRows parses rows within thead, tbody, or tfoot.
func parseRows(section *html.Node, frag *model.Fragment) {
	for c := section.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "tr" {
			if row, ok := parseRow(c); ok {
				frag.Rows = append(frag.Rows, row)
			}
		}
	}
}

// parseRow parses a single table row. Rows with no cells are dropped.
func parseRow(tr *html.Node) (model.FragmentRow, bool) {
	var row model.FragmentRow
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			row.Cells = append(row.Cells, parseCell(c))
		}
	}
	return row, len(row.Cells) > 0
}

// parseCell converts a td or th element into a fragment cell with its
// span, alignment, and formatting hints.
func parseCell(c *html.Node) model.FragmentCell {
	cell := model.NewFragmentCell(textContent(c))
	if c.Data == "th" {
		cell.Bold = true
	}

	for _, attr := range c.Attr {
		switch attr.Key {
		case "colspan":
			cell.ColSpan = spanValue(attr.Val)
		case "rowspan":
			cell.RowSpan = spanValue(attr.Val)
		case "align":
			cell.Alignment = parseAlignment(attr.Val)
		case "style":
			applyStyle(&cell, attr.Val)
		}
	}

	if containsTag(c, "b", "strong") {
		cell.Bold = true
	}
	if containsTag(c, "i", "em") {
		cell.Italic = true
	}
	if containsTag(c, "u") {
		cell.Underline = true
	}

	return cell
}

// spanValue parses a span attribute. Anything unparseable or below 1
// counts as 1.
func spanValue(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// applyStyle picks alignment and formatting hints out of an inline style
// attribute.
func applyStyle(cell *model.FragmentCell, style string) {
	for _, decl := range strings.Split(style, ";") {
		key, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		val = strings.TrimSpace(val)
		switch key {
		case "text-align":
			cell.Alignment = parseAlignment(val)
		case "color":
			cell.Color = val
		case "font-family":
			cell.FontName = val
		case "font-weight":
			if strings.EqualFold(val, "bold") {
				cell.Bold = true
			}
		case "font-style":
			if strings.EqualFold(val, "italic") {
				cell.Italic = true
			}
		case "text-decoration":
			if strings.Contains(strings.ToLower(val), "underline") {
				cell.Underline = true
			}
		}
	}
}

func parseAlignment(s string) model.Alignment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return model.AlignmentLeft
	case "center":
		return model.AlignmentCenter
	case "right":
		return model.AlignmentRight
	case "justify":
		return model.AlignmentJustify
	default:
		return model.AlignmentUnspecified
	}
}

// containsTag reports whether any descendant element matches one of the
// given tag names.
func containsTag(n *html.Node, tags ...string) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			for _, tag := range tags {
				if c.Data == tag {
					return true
				}
			}
		}
		if containsTag(c, tags...) {
			return true
		}
	}
	return false
}

// textContent extracts all text content from a node and its descendants.
func textContent(n *html.Node) string {
	var sb strings.Builder
	collectText(n, &sb)
	return strings.TrimSpace(sb.String())
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "template":
			return
		case "br":
			sb.WriteString(" ")
		}
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
