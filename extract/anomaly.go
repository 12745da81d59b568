package extract

import "fmt"

// AnomalyKind identifies a category of non-fatal structural irregularity.
type AnomalyKind int

const (
	// AnomalyRaggedRow indicates a row that was shorter than the resolved
	// column count and was padded with empty cells.
	AnomalyRaggedRow AnomalyKind = iota
	// AnomalySpanIgnored indicates a declared merge span that was dropped
	// under MergeIgnore.
	AnomalySpanIgnored
	// AnomalyHeaderSignalConflict indicates that the header detection
	// signals disagreed about the first row.
	AnomalyHeaderSignalConflict
)

// String returns the string representation of the anomaly kind.
func (k AnomalyKind) String() string {
	switch k {
	case AnomalyRaggedRow:
		return "ragged_row"
	case AnomalySpanIgnored:
		return "span_ignored"
	case AnomalyHeaderSignalConflict:
		return "header_signal_conflict"
	default:
		return "unknown"
	}
}

// Anomaly records a non-fatal structural irregularity found during
// extraction. Anomalies are collected and returned alongside the table so
// the caller decides whether to warn or ignore; they never abort the
// pipeline.
type Anomaly struct {
	Kind    AnomalyKind
	Row     int
	Col     int
	Message string
}

// String formats the anomaly with its grid position.
func (a Anomaly) String() string {
	return fmt.Sprintf("row %d col %d: %s", a.Row, a.Col, a.Message)
}
