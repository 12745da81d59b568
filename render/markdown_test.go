package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/jimmycarry/tablegrid/model"
)

func TestRenderMarkdown(t *testing.T) {
	out, err := NewRenderer().Render(sampleTable(), FormatMarkdown)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "| Name | Age |\n" +
		"| --- | --- |\n" +
		"| Alice | 30 |\n" +
		"| Bob | 25 |\n"
	if out != want {
		t.Errorf("markdown output = %q, want %q", out, want)
	}
}

func TestRenderMarkdownParsesAsTable(t *testing.T) {
	out, err := NewRenderer().Render(sampleTable(), FormatMarkdown)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var htmlBuf bytes.Buffer
	if err := md.Convert([]byte(out), &htmlBuf); err != nil {
		t.Fatalf("converting markdown: %v", err)
	}
	rendered := htmlBuf.String()
	if !strings.Contains(rendered, "<table>") {
		t.Errorf("GFM output %q lacks a table element", rendered)
	}
	if !strings.Contains(rendered, "<th>Name</th>") {
		t.Errorf("GFM output %q lacks the header cell", rendered)
	}
	if !strings.Contains(rendered, "<td>Alice</td>") {
		t.Errorf("GFM output %q lacks the data cell", rendered)
	}
}

func TestRenderMarkdownHeaderless(t *testing.T) {
	table := model.NewTable()
	table.Rows = []model.Row{
		{Cells: []model.Cell{model.NewCell("a"), model.NewCell("b")}},
	}
	table.ColumnCount = 2

	out, err := NewRenderer().Render(table, FormatMarkdown)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	// A synthesized blank header keeps the output a valid pipe table
	// without promoting the first data row.
	want := "|  |  |\n" +
		"| --- | --- |\n" +
		"| a | b |\n"
	if out != want {
		t.Errorf("markdown output = %q, want %q", out, want)
	}
}

func TestRenderMarkdownEscapesPipes(t *testing.T) {
	table := model.NewTable()
	table.Rows = []model.Row{
		{Cells: []model.Cell{model.NewCell("a|b")}},
	}
	table.ColumnCount = 1

	out, err := NewRenderer().Render(table, FormatMarkdown)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, `| a\|b |`) {
		t.Errorf("markdown output = %q, want escaped pipe", out)
	}
}

func TestRenderMarkdownFormattedContent(t *testing.T) {
	cell := model.NewCell("Name")
	formatted := "**Name**"
	cell.FormattedContent = &formatted

	table := model.NewTable()
	table.Rows = []model.Row{
		{Cells: []model.Cell{cell}},
		{Cells: []model.Cell{model.NewCell("Alice")}},
	}
	table.ColumnCount = 1
	table.MarkHeaderRow(0)

	out, err := NewRenderer().Render(table, FormatMarkdown)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "| **Name** |\n" +
		"| --- |\n" +
		"| Alice |\n"
	if out != want {
		t.Errorf("markdown output = %q, want %q", out, want)
	}
}

func TestRenderMarkdownEmptyTable(t *testing.T) {
	out, err := NewRenderer().Render(model.NewTable(), FormatMarkdown)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "" {
		t.Errorf("markdown output = %q, want empty", out)
	}
}
