// Package transform defines the stream and file transformer interfaces that
// run a core.Transformations collection over input, and the adapter between
// them.
package transform

import (
	"errors"
	"io"

	"github.com/sonnes/transmute/core"
)

// ErrNoInput is returned by stream transformers handed a nil stream.
var ErrNoInput = errors.New("no input stream")

// StreamTransformer turns a byte stream into a result string.
type StreamTransformer interface {
	// Transform reads r and applies ts. r may be nil; implementations decide
	// what an absent stream means.
	Transform(r io.Reader, ts core.Transformations) (string, error)
}

// FileTransformer turns a file into a result string.
type FileTransformer interface {
	// TransformFile applies ts to the file at path. An empty path means no file.
	TransformFile(path string, ts core.Transformations) (string, error)
}

// StreamTransformerFunc adapts a function to the StreamTransformer interface.
type StreamTransformerFunc func(r io.Reader, ts core.Transformations) (string, error)

// Transform calls f(r, ts).
func (f StreamTransformerFunc) Transform(r io.Reader, ts core.Transformations) (string, error) {
	return f(r, ts)
}
