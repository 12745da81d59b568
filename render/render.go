package render

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jimmycarry/tablegrid/extract"
	"github.com/jimmycarry/tablegrid/model"
)

// Format defines the available output formats
type Format int

const (
	// FormatText renders an aligned plain-text grid
	FormatText Format = iota
	// FormatCSV renders comma-separated values
	FormatCSV
	// FormatTSV renders tab-separated values
	FormatTSV
	// FormatMarkdown renders a GitHub-flavored pipe table
	FormatMarkdown
	// FormatJSON renders the canonical JSON interchange form
	FormatJSON
	// FormatHTML renders an HTML table element
	FormatHTML
)

// String returns a human-readable representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatCSV:
		return "csv"
	case FormatTSV:
		return "tsv"
	case FormatMarkdown:
		return "markdown"
	case FormatJSON:
		return "json"
	case FormatHTML:
		return "html"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format
func (f Format) FileExtension() string {
	switch f {
	case FormatText:
		return ".txt"
	case FormatCSV:
		return ".csv"
	case FormatTSV:
		return ".tsv"
	case FormatMarkdown:
		return ".md"
	case FormatJSON:
		return ".json"
	case FormatHTML:
		return ".html"
	default:
		return ".txt"
	}
}

// Config holds configuration options for rendering
type Config struct {
	// Delimiter is the field separator for CSV output (default: comma)
	Delimiter rune

	// PrettyJSON enables indented output for the JSON format
	PrettyJSON bool

	// SpanAttributes emits real colspan/rowspan attributes in HTML output
	// and omits the continuation cells they cover
	SpanAttributes bool

	// Merge is the merge handling the table was extracted with. HTML span
	// attributes need the continuation cells that only Preserve produces.
	Merge extract.MergeHandling
}

// DefaultConfig returns sensible defaults for render configuration
func DefaultConfig() Config {
	return Config{
		Delimiter:      ',',
		PrettyJSON:     false,
		SpanAttributes: false,
		Merge:          extract.MergePreserve,
	}
}

// TSVConfig returns config for tab-separated output
func TSVConfig() Config {
	config := DefaultConfig()
	config.Delimiter = '\t'
	return config
}

// SpanConfig returns config for HTML output with real span attributes
func SpanConfig() Config {
	config := DefaultConfig()
	config.SpanAttributes = true
	config.Merge = extract.MergePreserve
	return config
}

// UnsupportedFeatureError reports a render request the source table cannot
// satisfy, such as HTML span attributes for a table whose spans were
// dropped at extraction.
type UnsupportedFeatureError struct {
	Feature string
	Reason  string
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("unsupported feature %q: %s", e.Feature, e.Reason)
}

// Validate checks the config for combinations no renderer can honor.
func (c Config) Validate() error {
	if c.SpanAttributes && c.Merge == extract.MergeIgnore {
		return &UnsupportedFeatureError{
			Feature: "html span attributes",
			Reason:  "merge handling Ignore drops the spans before rendering",
		}
	}
	return nil
}

// Renderer converts canonical tables to output formats
type Renderer struct {
	config Config
}

// NewRenderer creates a new renderer with default configuration
func NewRenderer() *Renderer {
	return &Renderer{
		config: DefaultConfig(),
	}
}

// NewRendererWithConfig creates a renderer with custom configuration
func NewRendererWithConfig(config Config) *Renderer {
	return &Renderer{
		config: config,
	}
}

// RenderTo renders the table to the specified writer
func (r *Renderer) RenderTo(w io.Writer, t *model.Table, format Format) error {
	if t == nil {
		return fmt.Errorf("rendering %s: nil table", format)
	}

	switch format {
	case FormatText:
		return r.renderText(w, t)
	case FormatCSV:
		return r.renderSeparated(w, t, r.csvComma())
	case FormatTSV:
		return r.renderSeparated(w, t, '\t')
	case FormatMarkdown:
		return r.renderMarkdown(w, t)
	case FormatJSON:
		return r.renderJSON(w, t)
	case FormatHTML:
		return r.renderHTML(w, t)
	default:
		return fmt.Errorf("unsupported render format: %v", format)
	}
}

// Render renders the table to a string
func (r *Renderer) Render(t *model.Table, format Format) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderTo(&buf, t, format); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToFile renders the table to a file
func (r *Renderer) RenderToFile(t *model.Table, format Format, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	return r.RenderTo(f, t, format)
}

func (r *Renderer) csvComma() rune {
	if r.config.Delimiter != 0 {
		return r.config.Delimiter
	}
	return ','
}

// paddedCells returns the row's cells padded with empty cells up to the
// table's column count, so renderers emit a rectangle even when trailing
// empty cells were trimmed from storage.
func paddedCells(t *model.Table, row model.Row) []model.Cell {
	if len(row.Cells) >= t.ColumnCount {
		return row.Cells
	}
	cells := make([]model.Cell, 0, t.ColumnCount)
	cells = append(cells, row.Cells...)
	for len(cells) < t.ColumnCount {
		cells = append(cells, model.NewEmptyCell())
	}
	return cells
}
