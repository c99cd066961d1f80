// Package lines provides a StreamTransformer that applies transformations to
// each line of its input independently.
package lines

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sonnes/transmute/core"
	"github.com/sonnes/transmute/transform"
)

// maxLineSize is the longest line accepted (1 MB), well above the 64 KB
// bufio.Scanner default.
const maxLineSize = 1 << 20

// Config controls which lines are transformed.
type Config struct {
	// SkipBlank drops empty and whitespace-only lines from the output.
	SkipBlank bool
	// CommentPrefix, when set, marks lines that pass through untransformed.
	CommentPrefix string
}

// Transformer runs the full transformation chain over every line.
type Transformer struct {
	cfg Config
}

var _ transform.StreamTransformer = (*Transformer)(nil)

// New creates a line Transformer from the given config.
func New(cfg Config) *Transformer {
	return &Transformer{cfg: cfg}
}

// Transform implements transform.StreamTransformer. Every output line ends
// in "\n".
func (t *Transformer) Transform(r io.Reader, ts core.Transformations) (string, error) {
	if r == nil {
		return "", transform.ErrNoInput
	}

	var sb strings.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case t.cfg.SkipBlank && strings.TrimSpace(line) == "":
			continue
		case t.cfg.CommentPrefix != "" && strings.HasPrefix(strings.TrimSpace(line), t.cfg.CommentPrefix):
			sb.WriteString(line)
		default:
			sb.WriteString(core.Apply(ts, line))
		}
		sb.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("scan lines: %w", err)
	}

	return sb.String(), nil
}
