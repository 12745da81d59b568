package extract

import "fmt"

// Mode selects how much table structure an extraction carries through.
type Mode int

const (
	// ModeSimple extracts plain cell data only.
	ModeSimple Mode = iota
	// ModeStructured additionally carries structural metadata such as
	// merge spans and cell types.
	ModeStructured
	// ModeFormatted additionally carries formatting information.
	ModeFormatted
	// ModeFull carries everything.
	ModeFull
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSimple:
		return "simple"
	case ModeStructured:
		return "structured"
	case ModeFormatted:
		return "formatted"
	case ModeFull:
		return "full"
	default:
		return "unknown"
	}
}

// MergeHandling selects how declared colspan/rowspan values are reconciled
// into the grid.
type MergeHandling int

const (
	// MergeIgnore drops spans: every span resets to 1, content stays in
	// place, and rows may be left ragged for the normalizer to pad.
	MergeIgnore MergeHandling = iota
	// MergePreserve keeps spans on the originating cell and inserts
	// continuation placeholders so every row reaches the same logical
	// width. Renderers that understand spans can collapse the
	// continuations back into a single visual cell.
	MergePreserve
	// MergeExpand fills the spanned region with copies of the origin
	// content, for target formats with no merge concept where duplication
	// is preferable to loss.
	MergeExpand
)

// String returns the string representation of the merge handling.
func (h MergeHandling) String() string {
	switch h {
	case MergeIgnore:
		return "ignore"
	case MergePreserve:
		return "preserve"
	case MergeExpand:
		return "expand"
	default:
		return "unknown"
	}
}

// Config is the immutable option set controlling an extraction. It is
// constructed once per extraction call and never mutated mid-pipeline;
// the With* methods return modified copies.
type Config struct {
	Mode Mode

	// DetectHeaders enables the header row classifier.
	DetectHeaders bool

	// PreserveFormatting produces formatted content with emphasis markers
	// for cells that carry formatting hints.
	PreserveFormatting bool

	// IncludeEmptyCells keeps trailing empty cells in each row's storage.
	// When false, renderers pad rows back out to the column count on
	// output instead.
	IncludeEmptyCells bool

	MergeHandling MergeHandling
}

// SimpleConfig returns the minimal preset: plain data, no header
// detection, no formatting, trailing empty cells dropped, spans ignored.
func SimpleConfig() Config {
	return Config{
		Mode:               ModeSimple,
		DetectHeaders:      false,
		PreserveFormatting: false,
		IncludeEmptyCells:  false,
		MergeHandling:      MergeIgnore,
	}
}

// FullConfig returns the everything-on preset: header detection,
// formatting preserved, empty cells kept, merge spans preserved.
func FullConfig() Config {
	return Config{
		Mode:               ModeFull,
		DetectHeaders:      true,
		PreserveFormatting: true,
		IncludeEmptyCells:  true,
		MergeHandling:      MergePreserve,
	}
}

// DefaultConfig returns the default configuration: structured extraction
// with header detection and preserved merge spans.
func DefaultConfig() Config {
	return Config{
		Mode:               ModeStructured,
		DetectHeaders:      true,
		PreserveFormatting: false,
		IncludeEmptyCells:  true,
		MergeHandling:      MergePreserve,
	}
}

// WithMode returns a copy of the config with the given mode's feature
// profile applied: header detection from ModeStructured up, formatting
// from ModeFormatted up, empty cell retention at ModeFull. Later With*
// calls override individual flags from the profile.
func (c Config) WithMode(m Mode) Config {
	c.Mode = m
	c.DetectHeaders = m >= ModeStructured
	c.PreserveFormatting = m >= ModeFormatted
	c.IncludeEmptyCells = m >= ModeFull
	return c
}

// WithHeaders returns a copy of the config with header detection set.
func (c Config) WithHeaders(detect bool) Config {
	c.DetectHeaders = detect
	return c
}

// WithFormatting returns a copy of the config with formatting
// preservation set.
func (c Config) WithFormatting(preserve bool) Config {
	c.PreserveFormatting = preserve
	return c
}

// WithEmptyCells returns a copy of the config with empty cell retention set.
func (c Config) WithEmptyCells(include bool) Config {
	c.IncludeEmptyCells = include
	return c
}

// WithMergeHandling returns a copy of the config with the given merge
// handling.
func (c Config) WithMergeHandling(h MergeHandling) Config {
	c.MergeHandling = h
	return c
}

// Validate checks that every enum field holds a known value.
func (c Config) Validate() error {
	if c.Mode < ModeSimple || c.Mode > ModeFull {
		return fmt.Errorf("unknown extraction mode %d", int(c.Mode))
	}
	if c.MergeHandling < MergeIgnore || c.MergeHandling > MergeExpand {
		return fmt.Errorf("unknown merge handling %d", int(c.MergeHandling))
	}
	return nil
}
