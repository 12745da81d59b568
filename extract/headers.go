package extract

import (
	"fmt"
	"strings"

	"github.com/jimmycarry/tablegrid/model"
)

// HeaderDetector decides whether the leading row of a table is a header.
// It runs three independent signals and combines them with OR: header rows
// are usually over-determined by multiple cues, so any positive signal
// triggers classification. Only row 0 is ever considered a candidate.
type HeaderDetector struct {
	// Maximum number of whitespace-separated tokens for a cell to count
	// as label-shaped
	MaxHeaderTokens int

	// Maximum content length in runes for a cell to count as label-shaped
	MaxHeaderLength int

	// Minimum number of rows required below the candidate row
	MinDataRows int

	// Minimum fraction of body cells that must be unformatted for the
	// formatting-difference signal (strict comparison)
	MinPlainBodyRatio float64

	// Minimum column count for the content-pattern signal to apply
	MinColumns int
}

// NewHeaderDetector creates a detector with default thresholds.
func NewHeaderDetector() *HeaderDetector {
	return &HeaderDetector{
		MaxHeaderTokens:   5,    // At most 5 words
		MaxHeaderLength:   50,   // At most 50 runes
		MinDataRows:       1,    // At least one row below the candidate
		MinPlainBodyRatio: 0.5,  // Strict majority of body cells unformatted
		MinColumns:        1,    // Single-column tables still qualify
	}
}

// Detect classifies the first row of the table as a header when any
// signal is positive, marking the row and retyping its data cells.
// Detection is idempotent: a table that already has header rows is left
// untouched. When the evaluable signals disagree, classification still
// follows the OR combination but a conflict anomaly is reported.
func (d *HeaderDetector) Detect(t *model.Table) []Anomaly {
	if t == nil || len(t.Rows) < 1+d.MinDataRows {
		return nil
	}
	if t.HasHeaders() {
		return nil
	}
	for i := range t.Rows {
		if t.Rows[i].IsHeader {
			return nil
		}
	}

	fmtOK, fmtPos := d.formattingSignal(t)
	patOK, patPos := d.contentPatternSignal(t)
	typOK, typPos := d.dataTypeSignal(t)

	positive := (fmtOK && fmtPos) || (patOK && patPos) || (typOK && typPos)

	var anomalies []Anomaly
	if d.signalsConflict(fmtOK, fmtPos, patOK, patPos, typOK, typPos) {
		anomalies = append(anomalies, Anomaly{
			Kind: AnomalyHeaderSignalConflict,
			Row:  0,
			Message: fmt.Sprintf("header signals disagree (formatting=%s, content=%s, types=%s)",
				describeSignal(fmtOK, fmtPos), describeSignal(patOK, patPos), describeSignal(typOK, typPos)),
		})
	}

	if positive {
		t.MarkHeaderRow(0)
	}
	return anomalies
}

// signalsConflict reports whether at least one evaluable signal is
// positive while another evaluable signal is negative.
func (d *HeaderDetector) signalsConflict(fmtOK, fmtPos, patOK, patPos, typOK, typPos bool) bool {
	anyPositive := (fmtOK && fmtPos) || (patOK && patPos) || (typOK && typPos)
	anyNegative := (fmtOK && !fmtPos) || (patOK && !patPos) || (typOK && !typPos)
	return anyPositive && anyNegative
}

func describeSignal(ok, positive bool) string {
	if !ok {
		return "n/a"
	}
	if positive {
		return "yes"
	}
	return "no"
}

// formattingSignal is positive when every first-row cell carries emphasis
// formatting while a strict majority of the body cells do not. The signal
// is only evaluable when the table carries formatting information at all.
func (d *HeaderDetector) formattingSignal(t *model.Table) (evaluable, positive bool) {
	hasInfo := false
	for i := range t.Rows {
		for j := range t.Rows[i].Cells {
			if t.Rows[i].Cells[j].Formatting != nil {
				hasInfo = true
				break
			}
		}
		if hasInfo {
			break
		}
	}
	if !hasInfo {
		return false, false
	}

	first := t.Rows[0]
	if len(first.Cells) == 0 {
		return true, false
	}
	for i := range first.Cells {
		if !first.Cells[i].Formatting.HasEmphasis() {
			return true, false
		}
	}

	bodyCells, plainCells := 0, 0
	for _, row := range t.Rows[1:] {
		for i := range row.Cells {
			bodyCells++
			if !row.Cells[i].Formatting.HasEmphasis() {
				plainCells++
			}
		}
	}
	if bodyCells == 0 {
		return true, false
	}
	return true, float64(plainCells)/float64(bodyCells) > d.MinPlainBodyRatio
}

// contentPatternSignal is positive when every first-row cell has the
// classic label shape: short, non-numeric and non-empty.
func (d *HeaderDetector) contentPatternSignal(t *model.Table) (evaluable, positive bool) {
	first := t.Rows[0]
	if len(first.Cells) == 0 || len(first.Cells) < d.MinColumns {
		return false, false
	}
	for i := range first.Cells {
		content := first.Cells[i].Content
		if content == "" {
			return true, false
		}
		if len([]rune(content)) > d.MaxHeaderLength {
			return true, false
		}
		if len(strings.Fields(content)) > d.MaxHeaderTokens {
			return true, false
		}
		if isNumericContent(content) {
			return true, false
		}
	}
	return true, true
}

// dataTypeSignal is positive when the columns below row 0 are
// type-homogeneous (all number, all date, or all text) and row 0 breaks
// the homogeneity in at least one column. Text sitting over a text column
// says nothing either way, so the signal only counts as evaluable when a
// typed column (number or date) exists or a break was found; heterogeneous
// columns make the whole signal inapplicable.
func (d *HeaderDetector) dataTypeSignal(t *model.Table) (evaluable, positive bool) {
	first := t.Rows[0]
	anyTyped := false
	anyBreak := false

	for col := 0; col < len(first.Cells); col++ {
		colType := dataEmpty
		for _, row := range t.Rows[1:] {
			if col >= len(row.Cells) {
				continue
			}
			cellType := classifyContent(row.Cells[col].Content)
			if cellType == dataEmpty {
				continue
			}
			if colType == dataEmpty {
				colType = cellType
				continue
			}
			if cellType != colType {
				return false, false
			}
		}
		if colType == dataEmpty {
			continue
		}
		if colType != dataText {
			anyTyped = true
		}

		headType := classifyContent(first.Cells[col].Content)
		if headType != dataEmpty && headType != colType {
			anyBreak = true
		}
	}

	return anyTyped || anyBreak, anyBreak
}
