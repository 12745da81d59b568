package tablegrid

import (
	"io"

	"github.com/jimmycarry/tablegrid/extract"
	"github.com/jimmycarry/tablegrid/model"
	"github.com/jimmycarry/tablegrid/render"
)

// Extractor provides a fluent interface for turning a table fragment into
// a canonical table and rendering it. Each configuration method returns a
// new Extractor instance, making it safe for concurrent use and allowing
// method chaining.
type Extractor struct {
	// Source
	fragment model.Fragment

	// Configuration
	config   extract.Config
	detector *extract.HeaderDetector
	render   render.Config
}

// clone creates a copy of the Extractor. Configs are value types and the
// fragment is never mutated by the pipeline, so a shallow copy keeps each
// chain step independent.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		fragment: e.fragment,
		config:   e.config,
		detector: e.detector,
		render:   e.render,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// WithConfig replaces the extraction configuration.
//
// Example:
//
//	table, _, err := tablegrid.New(frag).WithConfig(extract.SimpleConfig()).Table()
func (e *Extractor) WithConfig(cfg extract.Config) *Extractor {
	newExt := e.clone()
	newExt.config = cfg
	return newExt
}

// Mode applies an extraction mode's feature profile. Later configuration
// calls override individual flags from the profile.
//
// Example:
//
//	table, _, err := tablegrid.New(frag).Mode(extract.ModeFull).Table()
func (e *Extractor) Mode(m extract.Mode) *Extractor {
	newExt := e.clone()
	newExt.config = newExt.config.WithMode(m)
	return newExt
}

// DetectHeaders enables header detection.
//
// Example:
//
//	md, _, err := tablegrid.New(frag).DetectHeaders().ToMarkdown()
func (e *Extractor) DetectHeaders() *Extractor {
	newExt := e.clone()
	newExt.config = newExt.config.WithHeaders(true)
	return newExt
}

// SkipHeaderDetection disables header detection, leaving every row a data
// row.
//
// Example:
//
//	csv, _, err := tablegrid.New(frag).SkipHeaderDetection().ToCSV()
func (e *Extractor) SkipHeaderDetection() *Extractor {
	newExt := e.clone()
	newExt.config = newExt.config.WithHeaders(false)
	return newExt
}

// WithDetector enables header detection with a custom-tuned detector.
//
// Example:
//
//	det := extract.NewHeaderDetector()
//	det.MaxHeaderTokens = 8
//	table, _, err := tablegrid.New(frag).WithDetector(det).Table()
func (e *Extractor) WithDetector(det *extract.HeaderDetector) *Extractor {
	newExt := e.clone()
	newExt.config = newExt.config.WithHeaders(true)
	newExt.detector = det
	return newExt
}

// PreserveFormatting carries bold/italic/underline hints through to the
// output, including the formatted content variant on emphasized cells.
//
// Example:
//
//	md, _, err := tablegrid.New(frag).PreserveFormatting().ToMarkdown()
func (e *Extractor) PreserveFormatting() *Extractor {
	newExt := e.clone()
	newExt.config = newExt.config.WithFormatting(true)
	return newExt
}

// IncludeEmptyCells keeps trailing empty cells instead of trimming them
// from each row.
//
// Example:
//
//	table, _, err := tablegrid.New(frag).IncludeEmptyCells().Table()
func (e *Extractor) IncludeEmptyCells() *Extractor {
	newExt := e.clone()
	newExt.config = newExt.config.WithEmptyCells(true)
	return newExt
}

// MergeHandling sets the policy for merged cell spans.
//
// Example:
//
//	csv, _, err := tablegrid.New(frag).MergeHandling(extract.MergeExpand).ToCSV()
func (e *Extractor) MergeHandling(h extract.MergeHandling) *Extractor {
	newExt := e.clone()
	newExt.config = newExt.config.WithMergeHandling(h)
	return newExt
}

// WithRenderConfig replaces the render configuration. The merge handling
// carried by the render config is kept in sync with the extraction config
// at render time.
//
// Example:
//
//	out, _, err := tablegrid.New(frag).WithRenderConfig(render.TSVConfig()).Render(render.FormatTSV)
func (e *Extractor) WithRenderConfig(cfg render.Config) *Extractor {
	newExt := e.clone()
	newExt.render = cfg
	return newExt
}

// SpanAttributes emits real colspan/rowspan attributes in HTML output.
// Requires merge handling Preserve; spans dropped by Ignore cannot be
// rendered.
//
// Example:
//
//	out, _, err := tablegrid.New(frag).SpanAttributes().Render(render.FormatHTML)
func (e *Extractor) SpanAttributes() *Extractor {
	newExt := e.clone()
	newExt.render.SpanAttributes = true
	return newExt
}

// PrettyJSON enables indented JSON output.
//
// Example:
//
//	out, _, err := tablegrid.New(frag).PrettyJSON().ToJSON()
func (e *Extractor) PrettyJSON() *Extractor {
	newExt := e.clone()
	newExt.render.PrettyJSON = true
	return newExt
}

// Title sets the table title, overriding any title carried by the
// fragment.
//
// Example:
//
//	out, _, err := tablegrid.New(frag).Title("Quarterly Sales").Render(render.FormatHTML)
func (e *Extractor) Title(title string) *Extractor {
	newExt := e.clone()
	newExt.fragment.Title = title
	return newExt
}

// ID sets the table identifier, overriding any identifier carried by the
// fragment.
//
// Example:
//
//	out, _, err := tablegrid.New(frag).ID("sales-q3").Render(render.FormatHTML)
func (e *Extractor) ID(id string) *Extractor {
	newExt := e.clone()
	newExt.fragment.ID = id
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Table runs the extraction pipeline and returns the canonical table
// along with any anomalies found on the way.
//
// Example:
//
//	table, anomalies, err := tablegrid.New(frag).Table()
//	if err != nil {
//	    // handle error
//	}
//	if len(anomalies) > 0 {
//	    log.Println(tablegrid.FormatAnomalies(anomalies))
//	}
func (e *Extractor) Table() (*model.Table, []extract.Anomaly, error) {
	if e.detector != nil {
		return extract.ExtractWithDetector(e.fragment, e.config, e.detector)
	}
	return extract.Extract(e.fragment, e.config)
}

// Render runs the extraction pipeline and renders the table in the given
// format.
//
// Example:
//
//	out, _, err := tablegrid.New(frag).DetectHeaders().Render(render.FormatMarkdown)
func (e *Extractor) Render(format render.Format) (string, []extract.Anomaly, error) {
	t, anomalies, err := e.Table()
	if err != nil {
		return "", nil, err
	}
	out, err := e.renderer().Render(t, format)
	if err != nil {
		return "", nil, err
	}
	return out, anomalies, nil
}

// RenderTo runs the extraction pipeline and writes the rendered table to
// the given writer.
//
// Example:
//
//	_, err := tablegrid.New(frag).RenderTo(os.Stdout, render.FormatText)
func (e *Extractor) RenderTo(w io.Writer, format render.Format) ([]extract.Anomaly, error) {
	t, anomalies, err := e.Table()
	if err != nil {
		return nil, err
	}
	if err := e.renderer().RenderTo(w, t, format); err != nil {
		return nil, err
	}
	return anomalies, nil
}

// Text renders the table as an aligned plain-text grid.
func (e *Extractor) Text() (string, []extract.Anomaly, error) {
	return e.Render(render.FormatText)
}

// ToCSV renders the table as comma-separated values.
func (e *Extractor) ToCSV() (string, []extract.Anomaly, error) {
	return e.Render(render.FormatCSV)
}

// ToMarkdown renders the table as a pipe table.
func (e *Extractor) ToMarkdown() (string, []extract.Anomaly, error) {
	return e.Render(render.FormatMarkdown)
}

// ToJSON renders the table in the canonical JSON interchange form.
func (e *Extractor) ToJSON() (string, []extract.Anomaly, error) {
	return e.Render(render.FormatJSON)
}

// ToHTML renders the table as an HTML table element.
func (e *Extractor) ToHTML() (string, []extract.Anomaly, error) {
	return e.Render(render.FormatHTML)
}

// renderer builds the renderer for terminal operations. The render
// config's merge handling always reflects the extraction config, so span
// rendering knows whether continuation cells exist.
func (e *Extractor) renderer() *render.Renderer {
	cfg := e.render
	cfg.Merge = e.config.MergeHandling
	return render.NewRendererWithConfig(cfg)
}
