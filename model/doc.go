// Package model provides the canonical table representation shared by
// every stage of the extraction pipeline.
//
// All extraction and rendering operations ultimately consume or produce
// these types, making them the primary API for working with extracted
// tables.
//
// # The Canonical Grid
//
// The [Table] type is the root unit of extraction output. It holds ordered
// [Row] values, the indices of detected header rows, and the resolved
// logical column count:
//
//	table := model.NewTable()
//	table.SetTitle("Quarterly Revenue")
//
// Each [Cell] carries cleaned content, merge spans, a [CellType] tag, a
// declared [Alignment], and optional [Formatting] flags. The cell type is
// a tagged variant rather than a boolean because a cell can be empty and a
// merge continuation at the same time, and renderers treat those two facts
// independently.
//
// # Fragments
//
// A [Fragment] is the upstream contract: a raw, already-tokenized table as
// supplied by whatever opened the source document. [NewTableFromFragment]
// ingests one into an unvalidated Table, cleaning every content field on
// the way, and fails with [MalformedFragmentError] on non-positive spans
// or rows wider than a declared column count.
//
// # Interchange
//
// Tables serialize to a stable JSON wire form with snake_case field names
// (rows, header_row_indices, column_count, cell_type, ...). Optional
// fields are pointers so that absence survives a round trip;
// [ParseTableJSON] decodes the wire form back into an equivalent Table.
package model
