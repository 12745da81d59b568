// Package tablegrid provides a fluent API for turning raw table
// fragments into canonical tables and rendering them as text, CSV, TSV,
// Markdown, JSON, or HTML.
//
// Basic usage:
//
//	table, anomalies, err := tablegrid.FromRows([][]string{
//	    {"Name", "Age"},
//	    {"Alice", "30"},
//	}).Table()
//	if err != nil {
//	    // handle error
//	}
//	if len(anomalies) > 0 {
//	    log.Println(tablegrid.FormatAnomalies(anomalies))
//	}
//
// With options:
//
//	md, _, err := tablegrid.New(frag).
//	    DetectHeaders().
//	    PreserveFormatting().
//	    MergeHandling(extract.MergeExpand).
//	    ToMarkdown()
//
// For finer control, the lower-level extract and render packages are also
// available.
package tablegrid

import (
	"fmt"
	"io"

	"github.com/jimmycarry/tablegrid/extract"
	"github.com/jimmycarry/tablegrid/htmltable"
	"github.com/jimmycarry/tablegrid/model"
	"github.com/jimmycarry/tablegrid/render"
)

// New returns an Extractor for the given fragment with the default
// configuration: header detection on, merge spans preserved, empty cells
// kept.
//
// Example:
//
//	table, anomalies, err := tablegrid.New(frag).Table()
func New(frag model.Fragment) *Extractor {
	return &Extractor{
		fragment: frag,
		config:   extract.DefaultConfig(),
		render:   render.DefaultConfig(),
	}
}

// FromRows returns an Extractor for plain string rows without spans or
// formatting hints.
//
// Example:
//
//	csv, _, err := tablegrid.FromRows(rows).ToCSV()
func FromRows(rows [][]string) *Extractor {
	return New(model.NewFragment(rows))
}

// FromHTML reads every table element from an HTML document and returns
// one Extractor per table, in document order.
//
// Example:
//
//	exts, err := tablegrid.FromHTML(f)
//	if err != nil {
//	    // handle error
//	}
//	for _, ext := range exts {
//	    fmt.Println(tablegrid.MustExtract(ext.ToMarkdown()))
//	}
func FromHTML(r io.Reader) ([]*Extractor, error) {
	fragments, err := htmltable.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("reading HTML tables: %w", err)
	}

	exts := make([]*Extractor, len(fragments))
	for i, frag := range fragments {
		exts[i] = New(frag)
	}
	return exts, nil
}

// FromHTMLFile reads every table element from an HTML file and returns
// one Extractor per table, in document order.
//
// Example:
//
//	exts, err := tablegrid.FromHTMLFile("report.html")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, ext := range exts {
//	    fmt.Println(tablegrid.MustExtract(ext.Text()))
//	}
func FromHTMLFile(path string) ([]*Extractor, error) {
	fragments, err := htmltable.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading HTML tables: %w", err)
	}

	exts := make([]*Extractor, len(fragments))
	for i, frag := range fragments {
		exts[i] = New(frag)
	}
	return exts, nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	table := tablegrid.Must(model.ParseTableJSON(data))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustExtract is a helper that wraps a terminal operation returning a
// value, anomalies, and an error, and panics if the error is non-nil.
// It discards anomalies and returns just the value.
//
// Example:
//
//	md := tablegrid.MustExtract(tablegrid.FromRows(rows).ToMarkdown())
func MustExtract[T any](val T, _ []extract.Anomaly, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
