package model

import (
	"encoding/json"
	"fmt"
)

// ParseTableJSON decodes the canonical JSON interchange form produced by
// the JSON renderer back into a Table. The wire format is lossless: every
// field of Table, Row and Cell round-trips, optional fields stay absent
// when absent, and enum values decode from their string names.
func ParseTableJSON(data []byte) (*Table, error) {
	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing table JSON: %w", err)
	}
	if table.HeaderRowIndices == nil {
		table.HeaderRowIndices = []int{}
	}
	return &table, nil
}
