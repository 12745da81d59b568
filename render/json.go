package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jimmycarry/tablegrid/model"
)

// renderJSON writes the canonical interchange form. Output is
// deterministic: field order follows the struct declarations and optional
// fields are omitted when unset, so parsing a rendered table and
// rendering it again reproduces the bytes exactly.
func (r *Renderer) renderJSON(w io.Writer, t *model.Table) error {
	encoder := json.NewEncoder(w)
	if r.config.PrettyJSON {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(t); err != nil {
		return fmt.Errorf("encoding table: %w", err)
	}
	return nil
}
