package model

// Formatting holds the visual attribute flags declared for a cell.
// A nil *Formatting on a Cell means no formatting information is known,
// which is distinct from a Formatting with every flag off.
type Formatting struct {
	Bold      bool   `json:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty"`
	Color     string `json:"color,omitempty"`
	FontName  string `json:"font_name,omitempty"`
}

// HasEmphasis reports whether any emphasis flag is set.
func (f *Formatting) HasEmphasis() bool {
	if f == nil {
		return false
	}
	return f.Bold || f.Italic || f.Underline
}

// Apply wraps text in format-neutral emphasis markers: **bold**, *italic*
// and __underline__. Markers nest bold innermost, underline outermost.
func (f *Formatting) Apply(text string) string {
	if f == nil || text == "" {
		return text
	}
	result := text
	if f.Bold {
		result = "**" + result + "**"
	}
	if f.Italic {
		result = "*" + result + "*"
	}
	if f.Underline {
		result = "__" + result + "__"
	}
	return result
}

// Clone returns a copy of the formatting, or nil for a nil receiver.
func (f *Formatting) Clone() *Formatting {
	if f == nil {
		return nil
	}
	clone := *f
	return &clone
}
