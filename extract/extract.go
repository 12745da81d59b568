package extract

import (
	"fmt"

	"github.com/jimmycarry/tablegrid/model"
)

// Extract builds a canonical table from a source fragment.
//
// The pipeline runs model construction, header detection, merge
// resolution, and normalization, in that order, each stage a pure
// function of its input and the config. Non-fatal findings are returned
// as anomalies alongside the table. A non-nil error means no table could
// be produced; no partially resolved table ever escapes.
func Extract(frag model.Fragment, cfg Config) (*model.Table, []Anomaly, error) {
	return ExtractWithDetector(frag, cfg, NewHeaderDetector())
}

// ExtractWithDetector runs the same pipeline with a custom-tuned header
// detector.
func ExtractWithDetector(frag model.Fragment, cfg Config, det *HeaderDetector) (*model.Table, []Anomaly, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	t, err := model.NewTableFromFragment(frag)
	if err != nil {
		return nil, nil, fmt.Errorf("building table: %w", err)
	}

	var anomalies []Anomaly

	// Detection runs on the literal cells, before continuations are
	// materialized, so a spanned header row is judged on its real content.
	if cfg.DetectHeaders {
		if det == nil {
			det = NewHeaderDetector()
		}
		anomalies = append(anomalies, det.Detect(t)...)
	}

	merged, err := resolveMerges(t, cfg.MergeHandling)
	if err != nil {
		return nil, nil, err
	}
	anomalies = append(anomalies, merged...)

	anomalies = append(anomalies, normalize(t, cfg.IncludeEmptyCells)...)

	if cfg.PreserveFormatting {
		applyFormatting(t)
	} else {
		stripFormatting(t)
	}

	return t, anomalies, nil
}

// applyFormatting renders each emphasized cell's content through its
// formatting hints into FormattedContent. Cells without emphasis, or
// without content, carry no formatted variant.
func applyFormatting(t *model.Table) {
	for i := range t.Rows {
		for j := range t.Rows[i].Cells {
			cell := &t.Rows[i].Cells[j]
			if cell.Formatting.HasEmphasis() && cell.Content != "" {
				s := cell.Formatting.Apply(cell.Content)
				cell.FormattedContent = &s
			}
		}
	}
}

// stripFormatting removes formatting hints once the pipeline no longer
// needs them. Alignment is structural and stays.
func stripFormatting(t *model.Table) {
	for i := range t.Rows {
		for j := range t.Rows[i].Cells {
			t.Rows[i].Cells[j].Formatting = nil
			t.Rows[i].Cells[j].FormattedContent = nil
		}
	}
}
