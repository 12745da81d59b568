package tablegrid

import (
	"fmt"
	"strings"

	"github.com/jimmycarry/tablegrid/extract"
)

// FormatAnomalies formats a list of extraction anomalies for display,
// one per line, each prefixed with its kind.
//
// Example:
//
//	_, anomalies, _ := tablegrid.New(frag).Table()
//	if len(anomalies) > 0 {
//	    log.Println(tablegrid.FormatAnomalies(anomalies))
//	}
func FormatAnomalies(anomalies []extract.Anomaly) string {
	if len(anomalies) == 0 {
		return ""
	}

	lines := make([]string, len(anomalies))
	for i, a := range anomalies {
		lines[i] = fmt.Sprintf("%s: %s", a.Kind, a)
	}
	return strings.Join(lines, "\n")
}

// HasAnomaly reports whether any anomaly of the given kind is present.
//
// Example:
//
//	if tablegrid.HasAnomaly(anomalies, extract.AnomalyRaggedRow) {
//	    log.Println("source rows were uneven")
//	}
func HasAnomaly(anomalies []extract.Anomaly, kind extract.AnomalyKind) bool {
	for _, a := range anomalies {
		if a.Kind == kind {
			return true
		}
	}
	return false
}
