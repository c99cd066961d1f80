package transform

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/sonnes/transmute/core"
)

// OpenError reports that the input file could not be opened. It is fatal to
// the caller: nothing retries it or substitutes a default.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open input file %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// StreamFile presents a StreamTransformer as a FileTransformer.
type StreamFile struct {
	transformer StreamTransformer
}

var _ FileTransformer = (*StreamFile)(nil)

// NewStreamFile wraps st. It panics if st is nil.
func NewStreamFile(st StreamTransformer) *StreamFile {
	if st == nil {
		panic("transform: stream transformer is nil")
	}
	return &StreamFile{transformer: st}
}

// TransformFile opens path and hands the stream to the wrapped transformer.
// With an empty path the wrapped transformer receives a nil stream. The file
// is closed before TransformFile returns.
func (s *StreamFile) TransformFile(path string, ts core.Transformations) (string, error) {
	if path == "" {
		return s.transformer.Transform(nil, ts)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	log.Debug("transform file", "path", path, "steps", ts.Len())
	return s.transformer.Transform(f, ts)
}
