// Package render serializes canonical tables into output formats.
//
// Every renderer is a stateless transformer: it reads the table, writes
// bytes, and leaves the table untouched. Rows whose trailing empty cells
// were trimmed during extraction are padded back to the table's column
// count on output, so every format emits a full rectangle.
//
// Six formats are supported: aligned plain text, CSV, TSV, GitHub-style
// Markdown, the canonical JSON interchange form, and HTML. JSON output
// is the only form that survives a round trip: parsing a rendered table
// and rendering it again reproduces the bytes exactly.
//
// # Usage
//
//	r := render.NewRenderer()
//	out, err := r.Render(table, render.FormatMarkdown)
//
// A Renderer is safe for concurrent use; its configuration is fixed at
// construction.
package render
