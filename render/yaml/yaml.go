// Package yaml renders results as YAML documents.
package yaml

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/sonnes/transmute/core"
)

// Renderer renders a result to YAML.
type Renderer struct{}

func (r *Renderer) Render(w io.Writer, res *core.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
