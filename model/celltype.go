package model

import "fmt"

// CellType classifies the role a cell plays in the grid.
type CellType int

const (
	// CellTypeData indicates an ordinary content cell.
	CellTypeData CellType = iota
	// CellTypeHeader indicates a cell belonging to a header row.
	CellTypeHeader
	// CellTypeMergedContinuation indicates a placeholder produced during
	// merge resolution to keep the grid rectangular. Its content is empty
	// and its spans are always 1.
	CellTypeMergedContinuation
	// CellTypeEmpty indicates a cell with no content.
	CellTypeEmpty
)

// String returns the string representation of the cell type.
func (t CellType) String() string {
	switch t {
	case CellTypeData:
		return "data"
	case CellTypeHeader:
		return "header"
	case CellTypeMergedContinuation:
		return "merged_continuation"
	case CellTypeEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so cell types serialize
// as their string names.
func (t CellType) MarshalText() ([]byte, error) {
	s := t.String()
	if s == "unknown" {
		return nil, fmt.Errorf("invalid cell type %d", int(t))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *CellType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "data":
		*t = CellTypeData
	case "header":
		*t = CellTypeHeader
	case "merged_continuation":
		*t = CellTypeMergedContinuation
	case "empty":
		*t = CellTypeEmpty
	default:
		return fmt.Errorf("unknown cell type %q", string(text))
	}
	return nil
}

// Alignment represents the declared horizontal alignment of cell content.
type Alignment int

const (
	// AlignmentUnspecified indicates no alignment was declared.
	AlignmentUnspecified Alignment = iota
	// AlignmentLeft aligns content to the left edge.
	AlignmentLeft
	// AlignmentCenter centers content.
	AlignmentCenter
	// AlignmentRight aligns content to the right edge.
	AlignmentRight
	// AlignmentJustify stretches content across the cell width.
	AlignmentJustify
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignmentUnspecified:
		return "unspecified"
	case AlignmentLeft:
		return "left"
	case AlignmentCenter:
		return "center"
	case AlignmentRight:
		return "right"
	case AlignmentJustify:
		return "justify"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) {
	s := a.String()
	if s == "unknown" {
		return nil, fmt.Errorf("invalid alignment %d", int(a))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(text []byte) error {
	switch string(text) {
	case "unspecified":
		*a = AlignmentUnspecified
	case "left":
		*a = AlignmentLeft
	case "center":
		*a = AlignmentCenter
	case "right":
		*a = AlignmentRight
	case "justify":
		*a = AlignmentJustify
	default:
		return fmt.Errorf("unknown alignment %q", string(text))
	}
	return nil
}
