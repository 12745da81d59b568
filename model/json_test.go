package model

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseTableJSON(t *testing.T) {
	data := `{
		"rows": [
			{
				"cells": [
					{"content": "Name", "colspan": 1, "rowspan": 1, "alignment": "unspecified", "cell_type": "header"},
					{"content": "Age", "colspan": 1, "rowspan": 1, "alignment": "right", "cell_type": "header"}
				],
				"is_header": true,
				"row_index": 0
			},
			{
				"cells": [
					{"content": "Alice", "colspan": 1, "rowspan": 1, "alignment": "unspecified", "cell_type": "data"},
					{"content": "30", "colspan": 1, "rowspan": 1, "alignment": "right", "cell_type": "data"}
				],
				"is_header": false,
				"row_index": 1
			}
		],
		"header_row_indices": [0],
		"column_count": 2,
		"title": "People"
	}`

	table, err := ParseTableJSON([]byte(data))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if table.RowCount() != 2 || table.ColumnCount != 2 {
		t.Errorf("unexpected dimensions: %d rows, %d columns", table.RowCount(), table.ColumnCount)
	}
	if !table.IsHeaderRow(0) {
		t.Error("expected row 0 classified as header")
	}
	if table.Rows[0].Cells[0].Type != CellTypeHeader {
		t.Errorf("expected header cell type, got %v", table.Rows[0].Cells[0].Type)
	}
	if table.Rows[1].Cells[1].Alignment != AlignmentRight {
		t.Errorf("expected right alignment, got %v", table.Rows[1].Cells[1].Alignment)
	}
	if table.Title == nil || *table.Title != "People" {
		t.Error("expected title decoded")
	}
	if table.ID != nil {
		t.Error("expected absent id to stay nil")
	}
}

func TestParseTableJSONInvalid(t *testing.T) {
	if _, err := ParseTableJSON([]byte("{not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
	if _, err := ParseTableJSON([]byte(`{"rows": [{"cells": [{"cell_type": "bogus"}]}]}`)); err == nil {
		t.Error("expected error for unknown cell type name")
	}
}

func TestParseTableJSONNilHeaderIndices(t *testing.T) {
	table, err := ParseTableJSON([]byte(`{"rows": [], "column_count": 0}`))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if table.HeaderRowIndices == nil {
		t.Error("expected header indices repaired to an empty slice")
	}
	if table.HasHeaders() {
		t.Error("expected no headers")
	}
}

func TestTableJSONRoundTripBytes(t *testing.T) {
	table := NewTable()
	table.ColumnCount = 2
	table.SetTitle("Round")
	formatted := "**Name**"
	table.Rows = []Row{
		{Cells: []Cell{
			{Content: "Name", FormattedContent: &formatted, ColSpan: 1, RowSpan: 1,
				Type: CellTypeHeader, Formatting: &Formatting{Bold: true}},
			{Content: "Age", ColSpan: 1, RowSpan: 1, Type: CellTypeHeader},
		}, IsHeader: true, RowIndex: 0},
		{Cells: []Cell{
			{Content: "Alice", ColSpan: 1, RowSpan: 1, Type: CellTypeData},
			{Content: "30", ColSpan: 1, RowSpan: 1, Type: CellTypeData, Alignment: AlignmentRight},
		}, RowIndex: 1},
	}
	table.MarkHeaderRow(0)

	var first bytes.Buffer
	if err := json.NewEncoder(&first).Encode(table); err != nil {
		t.Fatalf("failed to encode: %v", err)
	}

	parsed, err := ParseTableJSON(first.Bytes())
	if err != nil {
		t.Fatalf("failed to parse encoded table: %v", err)
	}

	var second bytes.Buffer
	if err := json.NewEncoder(&second).Encode(parsed); err != nil {
		t.Fatalf("failed to re-encode: %v", err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("round trip not byte-identical:\nfirst:  %s\nsecond: %s", first.String(), second.String())
	}
}

func TestTableJSONWireNames(t *testing.T) {
	table := NewTable()
	table.ColumnCount = 1
	table.Rows = []Row{
		{Cells: []Cell{NewCell("x")}, RowIndex: 0},
	}

	out, err := json.Marshal(table)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	for _, name := range []string{
		`"rows"`, `"cells"`, `"header_row_indices"`, `"column_count"`,
		`"is_header"`, `"row_index"`, `"content"`, `"colspan"`, `"rowspan"`,
		`"alignment"`, `"cell_type"`,
	} {
		if !strings.Contains(string(out), name) {
			t.Errorf("expected wire name %s in output: %s", name, out)
		}
	}

	// Optional fields stay absent when unset.
	for _, name := range []string{`"title"`, `"id"`, `"formatted_content"`, `"formatting"`} {
		if strings.Contains(string(out), name) {
			t.Errorf("did not expect optional field %s in output: %s", name, out)
		}
	}

	// Enums serialize as names, not numbers.
	if !strings.Contains(string(out), `"cell_type":"data"`) {
		t.Errorf("expected cell_type serialized as string name: %s", out)
	}
	if !strings.Contains(string(out), `"alignment":"unspecified"`) {
		t.Errorf("expected alignment serialized as string name: %s", out)
	}
}
