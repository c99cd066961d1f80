package core

import (
	"strings"
	"time"
)

// Result is the outcome of running a pipeline over one input, as handed to
// renderers.
type Result struct {
	Source   string        `json:"source" yaml:"source"`     // file path, "-" for stdin
	Pipeline string        `json:"pipeline" yaml:"pipeline"` // config pipeline or ad-hoc type
	Steps    []string      `json:"steps" yaml:"steps"`
	Output   string        `json:"output" yaml:"output"`
	Duration time.Duration `json:"duration_ns" yaml:"duration"`
}

// NewResult builds a Result, recording the step names of ts.
func NewResult(source, pipeline string, ts Transformations, output string, d time.Duration) *Result {
	return &Result{
		Source:   source,
		Pipeline: pipeline,
		Steps:    Names(ts),
		Output:   output,
		Duration: d,
	}
}

// CountLines returns the number of lines in s. An empty string has 0 lines,
// and a trailing newline does not start a new one.
func CountLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n") + 1
	if strings.HasSuffix(s, "\n") {
		n--
	}
	return n
}
