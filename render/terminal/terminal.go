// Package terminal renders results as an ANSI-colored header followed by the
// transformed output.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/sonnes/transmute/core"
)

const defaultWidth = 100

// Renderer pretty-prints a result to the terminal.
type Renderer struct {
	// Width overrides terminal width detection. Zero means auto-detect.
	Width int
}

// New creates a terminal Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes the header, a separator and the output to w.
func (r *Renderer) Render(w io.Writer, res *core.Result) error {
	width := r.termWidth()

	writeHeader(w, res, width)
	writeSeparator(w, width)

	out := res.Output
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err := io.WriteString(w, out)
	return err
}

func (r *Renderer) termWidth() int {
	if r.Width > 0 {
		return r.Width
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// writeHeader renders the source, pipeline steps and output stats.
func writeHeader(w io.Writer, res *core.Result, width int) {
	// Row 1: source + duration
	source := res.Source
	if source == "" || source == "-" {
		source = "stdin"
	}
	row1 := styleTitle.Render(source)
	if res.Duration > 0 {
		row1 += "  " + styleDuration.Render(formatDuration(res.Duration))
	}
	fmt.Fprintln(w, row1)

	// Row 2: pipeline  step → step → step
	var parts []string
	if res.Pipeline != "" {
		parts = append(parts, styleMeta.Render(res.Pipeline))
	}
	if len(res.Steps) > 0 {
		steps := make([]string, len(res.Steps))
		for i, s := range res.Steps {
			steps[i] = styleStep.Render(s)
		}
		parts = append(parts, truncate(strings.Join(steps, styleMeta.Render(" → ")), width))
	} else {
		parts = append(parts, styleMeta.Render("no steps"))
	}
	fmt.Fprintln(w, strings.Join(parts, "  "))

	fmt.Fprintln(w)
	writeStats(w, res.Output)
}

// writeStats renders line and byte counters in two rows: values then labels.
func writeStats(w io.Writer, output string) {
	type stat struct {
		value int
		label string
	}
	stats := []stat{
		{core.CountLines(output), "LINES"},
		{len(output), "BYTES"},
	}

	var values, labels []string
	for _, s := range stats {
		formatted := formatNumber(s.value)
		colWidth := max(len(formatted), len(s.label))
		values = append(values, fmt.Sprintf("%*s", colWidth, formatted))
		labels = append(labels, fmt.Sprintf("%-*s", colWidth, s.label))
	}

	fmt.Fprintln(w, "  "+styleStat.Render(strings.Join(values, "    ")))
	fmt.Fprintln(w, "  "+styleStatLabel.Render(strings.Join(labels, "    ")))
}

// writeSeparator renders a horizontal rule.
func writeSeparator(w io.Writer, width int) {
	n := min(width, 72)
	fmt.Fprintln(w)
	fmt.Fprintln(w, styleSeparator.Render(strings.Repeat("─", n)))
}

// truncate shortens styled text to maxWidth cells, appending "..." if needed.
func truncate(s string, maxWidth int) string {
	if maxWidth < 4 {
		maxWidth = 4
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(maxWidth-3).Render(s) + "..."
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return "<1ms"
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	d = d.Round(time.Second)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	switch {
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

func formatNumber(n int) string {
	if n < 0 {
		return "-" + formatNumber(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return formatNumber(n/1000) + "," + fmt.Sprintf("%03d", n%1000)
}
