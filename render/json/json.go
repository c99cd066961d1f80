// Package json renders results as JSON.
package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sonnes/transmute/core"
)

// Renderer renders a result to JSON.
type Renderer struct {
	// Indent controls pretty-printing. When true, output is indented.
	Indent bool
}

func (r *Renderer) Render(w io.Writer, res *core.Result) error {
	enc := json.NewEncoder(w)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
