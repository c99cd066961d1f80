// Package render defines the interface for presenting a transformation
// result in various output formats.
package render

import (
	"io"

	"github.com/sonnes/transmute/core"
)

// Renderer writes a result to the given writer in a specific format.
type Renderer interface {
	Render(w io.Writer, r *core.Result) error
}

// Raw writes only the transformed output.
type Raw struct{}

func (Raw) Render(w io.Writer, r *core.Result) error {
	_, err := io.WriteString(w, r.Output)
	return err
}
