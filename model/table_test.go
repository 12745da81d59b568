package model

import "testing"

// ============================================================================
// Cell Constructor Tests
// ============================================================================

func TestNewCell(t *testing.T) {
	cell := NewCell("hello")
	if cell.Content != "hello" {
		t.Errorf("expected content 'hello', got %q", cell.Content)
	}
	if cell.ColSpan != 1 || cell.RowSpan != 1 {
		t.Error("expected spans initialized to 1")
	}
	if cell.Type != CellTypeData {
		t.Errorf("expected data type, got %v", cell.Type)
	}

	empty := NewCell("")
	if empty.Type != CellTypeEmpty {
		t.Errorf("expected empty type for blank content, got %v", empty.Type)
	}
}

func TestNewContinuationCell(t *testing.T) {
	cell := NewContinuationCell()
	if cell.Type != CellTypeMergedContinuation {
		t.Errorf("expected continuation type, got %v", cell.Type)
	}
	if cell.Content != "" {
		t.Errorf("expected empty content, got %q", cell.Content)
	}
	if cell.ColSpan != 1 || cell.RowSpan != 1 {
		t.Error("expected spans of 1")
	}
}

func TestCellText(t *testing.T) {
	cell := NewCell("plain")
	if cell.Text() != "plain" {
		t.Errorf("expected raw content, got %q", cell.Text())
	}

	formatted := "**plain**"
	cell.FormattedContent = &formatted
	if cell.Text() != "**plain**" {
		t.Errorf("expected formatted content preferred, got %q", cell.Text())
	}
}

// ============================================================================
// Header Marking Tests
// ============================================================================

func TestMarkHeaderRow(t *testing.T) {
	table := NewTable()
	table.Rows = []Row{
		{Cells: []Cell{NewCell("Name"), NewCell("")}, RowIndex: 0},
		{Cells: []Cell{NewCell("Alice"), NewCell("30")}, RowIndex: 1},
	}

	table.MarkHeaderRow(0)

	if !table.HasHeaders() {
		t.Fatal("expected table to have headers")
	}
	if !table.IsHeaderRow(0) || table.IsHeaderRow(1) {
		t.Error("expected only row 0 marked as header")
	}
	if len(table.HeaderRowIndices) != 1 || table.HeaderRowIndices[0] != 0 {
		t.Errorf("unexpected header indices: %v", table.HeaderRowIndices)
	}
	if table.Rows[0].Cells[0].Type != CellTypeHeader {
		t.Errorf("expected data cell retyped to header, got %v", table.Rows[0].Cells[0].Type)
	}
	if table.Rows[0].Cells[1].Type != CellTypeEmpty {
		t.Errorf("expected empty cell to keep its type, got %v", table.Rows[0].Cells[1].Type)
	}
}

func TestMarkHeaderRowIdempotent(t *testing.T) {
	table := NewTable()
	table.Rows = []Row{
		{Cells: []Cell{NewCell("a")}, RowIndex: 0},
	}

	table.MarkHeaderRow(0)
	table.MarkHeaderRow(0)

	if len(table.HeaderRowIndices) != 1 {
		t.Errorf("expected single header index after double mark, got %v", table.HeaderRowIndices)
	}
}

func TestMarkHeaderRowSortsIndices(t *testing.T) {
	table := NewTable()
	table.Rows = []Row{
		{Cells: []Cell{NewCell("a")}, RowIndex: 0},
		{Cells: []Cell{NewCell("b")}, RowIndex: 1},
		{Cells: []Cell{NewCell("c")}, RowIndex: 2},
	}

	table.MarkHeaderRow(2)
	table.MarkHeaderRow(0)

	if len(table.HeaderRowIndices) != 2 || table.HeaderRowIndices[0] != 0 || table.HeaderRowIndices[1] != 2 {
		t.Errorf("expected sorted indices [0 2], got %v", table.HeaderRowIndices)
	}
}

func TestMarkHeaderRowOutOfRange(t *testing.T) {
	table := NewTable()
	table.Rows = []Row{{Cells: []Cell{NewCell("a")}}}

	table.MarkHeaderRow(-1)
	table.MarkHeaderRow(5)

	if table.HasHeaders() {
		t.Errorf("expected out-of-range marks ignored, got %v", table.HeaderRowIndices)
	}
}

// ============================================================================
// Accessor Tests
// ============================================================================

func TestCellAt(t *testing.T) {
	table := NewTable()
	table.Rows = []Row{
		{Cells: []Cell{NewCell("a"), NewCell("b")}},
	}

	if cell := table.CellAt(0, 1); cell == nil || cell.Content != "b" {
		t.Errorf("unexpected cell at 0,1: %+v", cell)
	}
	if table.CellAt(1, 0) != nil {
		t.Error("expected nil for out-of-range row")
	}
	if table.CellAt(0, 2) != nil {
		t.Error("expected nil for out-of-range column")
	}
	if table.CellAt(-1, 0) != nil {
		t.Error("expected nil for negative row")
	}
}

// ============================================================================
// Clone Tests
// ============================================================================

func TestTableClone(t *testing.T) {
	table := NewTable()
	table.SetTitle("original")
	table.ColumnCount = 2
	formatted := "**a**"
	table.Rows = []Row{
		{Cells: []Cell{
			{Content: "a", FormattedContent: &formatted, ColSpan: 1, RowSpan: 1,
				Formatting: &Formatting{Bold: true}},
			NewCell("b"),
		}, IsHeader: true, RowIndex: 0},
	}
	table.MarkHeaderRow(0)

	clone := table.Clone()

	clone.Rows[0].Cells[0].Content = "changed"
	*clone.Rows[0].Cells[0].FormattedContent = "changed"
	clone.Rows[0].Cells[0].Formatting.Bold = false
	clone.HeaderRowIndices[0] = 9
	*clone.Title = "changed"

	if table.Rows[0].Cells[0].Content != "a" {
		t.Error("clone shares cell content with original")
	}
	if *table.Rows[0].Cells[0].FormattedContent != "**a**" {
		t.Error("clone shares formatted content with original")
	}
	if !table.Rows[0].Cells[0].Formatting.Bold {
		t.Error("clone shares formatting with original")
	}
	if table.HeaderRowIndices[0] != 0 {
		t.Error("clone shares header indices with original")
	}
	if *table.Title != "original" {
		t.Error("clone shares title with original")
	}
}

// ============================================================================
// Formatting Tests
// ============================================================================

func TestFormattingApply(t *testing.T) {
	tests := []struct {
		name     string
		f        Formatting
		input    string
		expected string
	}{
		{"bold", Formatting{Bold: true}, "x", "**x**"},
		{"italic", Formatting{Italic: true}, "x", "*x*"},
		{"underline", Formatting{Underline: true}, "x", "__x__"},
		{"bold italic", Formatting{Bold: true, Italic: true}, "x", "***x***"},
		{"all emphasis", Formatting{Bold: true, Italic: true, Underline: true}, "x", "__***x***__"},
		{"no emphasis", Formatting{Color: "red"}, "x", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.f.Apply(tt.input)
			if result != tt.expected {
				t.Errorf("Apply(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFormattingApplyEmpty(t *testing.T) {
	f := &Formatting{Bold: true}
	if got := f.Apply(""); got != "" {
		t.Errorf("expected empty content untouched, got %q", got)
	}

	var nilFmt *Formatting
	if got := nilFmt.Apply("x"); got != "x" {
		t.Errorf("expected nil formatting to pass text through, got %q", got)
	}
}

func TestFormattingHasEmphasis(t *testing.T) {
	var nilFmt *Formatting
	if nilFmt.HasEmphasis() {
		t.Error("expected nil formatting to report no emphasis")
	}
	if (&Formatting{Color: "red"}).HasEmphasis() {
		t.Error("expected color-only formatting to report no emphasis")
	}
	if !(&Formatting{Italic: true}).HasEmphasis() {
		t.Error("expected italic to count as emphasis")
	}
}

// ============================================================================
// Enum Marshaling Tests
// ============================================================================

func TestCellTypeRoundTrip(t *testing.T) {
	types := []CellType{CellTypeData, CellTypeHeader, CellTypeMergedContinuation, CellTypeEmpty}
	for _, ct := range types {
		text, err := ct.MarshalText()
		if err != nil {
			t.Fatalf("marshal %v: %v", ct, err)
		}
		var back CellType
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal %q: %v", text, err)
		}
		if back != ct {
			t.Errorf("round trip %v -> %q -> %v", ct, text, back)
		}
	}
}

func TestCellTypeUnmarshalUnknown(t *testing.T) {
	var ct CellType
	if err := ct.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("expected error for unknown cell type")
	}
}

func TestCellTypeMarshalInvalid(t *testing.T) {
	if _, err := CellType(99).MarshalText(); err == nil {
		t.Error("expected error marshaling invalid cell type")
	}
}

func TestAlignmentRoundTrip(t *testing.T) {
	aligns := []Alignment{AlignmentUnspecified, AlignmentLeft, AlignmentCenter, AlignmentRight, AlignmentJustify}
	for _, a := range aligns {
		text, err := a.MarshalText()
		if err != nil {
			t.Fatalf("marshal %v: %v", a, err)
		}
		var back Alignment
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal %q: %v", text, err)
		}
		if back != a {
			t.Errorf("round trip %v -> %q -> %v", a, text, back)
		}
	}
}
