// Package markdown provides a StreamTransformer that renders GFM markdown to
// HTML, applying transformations to prose only. Code spans, fenced code
// blocks and link destinations pass through untouched; fenced code is
// syntax-highlighted via chroma.
package markdown

import (
	"bytes"
	"fmt"
	"io"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/sonnes/transmute/core"
	"github.com/sonnes/transmute/transform"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// textPriority outranks the default HTML renderer (1000) for text nodes.
const textPriority = 100

// Transformer renders markdown to HTML.
type Transformer struct {
	// Style is the chroma style for fenced code. Defaults to "dracula".
	Style string
}

var _ transform.StreamTransformer = (*Transformer)(nil)

// New creates a markdown Transformer.
func New() *Transformer {
	return &Transformer{Style: "dracula"}
}

// Transform implements transform.StreamTransformer.
func (t *Transformer) Transform(r io.Reader, ts core.Transformations) (string, error) {
	if r == nil {
		return "", transform.ErrNoInput
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read markdown: %w", err)
	}

	var buf bytes.Buffer
	if err := t.markdown(ts).Convert(src, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// markdown builds a goldmark instance bound to ts. The text renderer carries
// ts, so an instance is built per call.
func (t *Transformer) markdown(ts core.Transformations) goldmark.Markdown {
	style := t.Style
	if style == "" {
		style = "dracula"
	}
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline styles for standalone output
				),
			),
		),
		goldmark.WithRendererOptions(
			renderer.WithNodeRenderers(util.Prioritized(&textRenderer{ts: ts}, textPriority)),
		),
	)
}

// textRenderer renders ast.Text nodes with the transformations applied.
type textRenderer struct {
	ts core.Transformations
}

func (r *textRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindText, r.renderText)
}

func (r *textRenderer) renderText(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Text)
	text := []byte(core.Apply(r.ts, string(n.Segment.Value(source))))

	if n.IsRaw() {
		gmhtml.DefaultWriter.RawWrite(w, text)
	} else {
		gmhtml.DefaultWriter.Write(w, text)
	}

	switch {
	case n.HardLineBreak():
		_, _ = w.WriteString("<br>\n")
	case n.SoftLineBreak():
		_ = w.WriteByte('\n')
	}
	return ast.WalkContinue, nil
}
