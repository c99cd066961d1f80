package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/sonnes/transmute/applyer"
	"github.com/sonnes/transmute/config"
	"github.com/sonnes/transmute/core"
	"github.com/sonnes/transmute/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
default: shout
pipelines:
  - name: shout
    steps:
      - type: trim
      - type: upper
  - name: wrap
    steps:
      - type: prefix
        value: "["
      - type: suffix
        value: "]"
`

func testApp(t *testing.T) *app {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	return newApp(cfg)
}

func TestTransformationsSelection(t *testing.T) {
	a := testApp(t)

	tests := []struct {
		name      string
		sel       selection
		wantLabel string
		wantSteps []string
		wantOut   string
	}{
		{
			name:      "default pipeline",
			sel:       selection{},
			wantLabel: "shout",
			wantSteps: []string{"trim", "upper"},
			wantOut:   "HI",
		},
		{
			name:      "named pipeline",
			sel:       selection{Pipeline: "wrap"},
			wantLabel: "wrap",
			wantSteps: []string{"prefix", "suffix"},
			wantOut:   "[ hi ]",
		},
		{
			name:      "step by name",
			sel:       selection{Pipeline: "wrap", Step: "suffix"},
			wantLabel: "wrap",
			wantSteps: []string{"suffix"},
			wantOut:   " hi ]",
		},
		{
			name:      "step by index",
			sel:       selection{Step: "1"},
			wantLabel: "shout",
			wantSteps: []string{"upper"},
			wantOut:   " HI ",
		},
		{
			name:      "ad-hoc type",
			sel:       selection{Spec: applyer.Spec{Type: "lower"}},
			wantLabel: "lower",
			wantSteps: []string{"lower"},
			wantOut:   " hi ",
		},
		{
			name:      "ad-hoc shared applyer",
			sel:       selection{Spec: applyer.Spec{Type: "suffix", Value: "!"}, Names: []string{"one", "two"}},
			wantLabel: "suffix",
			wantSteps: []string{"one", "two"},
			wantOut:   " hi !!",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, label, err := a.transformations(tt.sel)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, label)
			assert.Equal(t, tt.wantSteps, core.Names(ts))
			assert.Equal(t, tt.wantOut, core.Apply(ts, " hi "))
		})
	}
}

func TestTransformationsErrors(t *testing.T) {
	a := testApp(t)

	tests := []struct {
		name    string
		sel     selection
		wantErr string
	}{
		{"both", selection{Pipeline: "shout", Spec: applyer.Spec{Type: "upper"}}, "mutually exclusive"},
		{"unknown pipeline", selection{Pipeline: "nope"}, `unknown pipeline "nope"`},
		{"unknown type", selection{Spec: applyer.Spec{Type: "nope"}}, `unknown applyer type "nope"`},
		{"unknown step", selection{Step: "7"}, `step "7" not found in shout`},
		{"empty name", selection{Spec: applyer.Spec{Type: "upper"}, Names: []string{"one", ""}}, "--name must not be empty"},
		{"name without type", selection{Pipeline: "shout", Names: []string{"one"}}, "--name requires --type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := a.transformations(tt.sel)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTransformationsNoDefault(t *testing.T) {
	a := newApp(config.Config{})
	_, _, err := a.transformations(selection{})
	assert.EqualError(t, err, "one of --pipeline or --type is required")
}

func TestRegistries(t *testing.T) {
	a := testApp(t)

	for _, name := range []string{"", "lines", "markdown"} {
		st, err := a.stream(name)
		require.NoError(t, err, name)
		assert.NotNil(t, st)
	}
	_, err := a.stream("csv")
	assert.EqualError(t, err, `unknown stream "csv"`)

	for _, name := range []string{"", "terminal", "json", "yaml", "raw"} {
		r, err := a.renderer(name)
		require.NoError(t, err, name)
		assert.NotNil(t, r)
	}
	_, err = a.renderer("pdf")
	assert.EqualError(t, err, `unknown output format "pdf"`)
}

func TestApplyFile(t *testing.T) {
	a := testApp(t)
	ts, _, err := a.transformations(selection{})
	require.NoError(t, err)
	st, err := a.stream("lines")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("# comment\n hello \n"), 0o644))

	out, err := transform.NewStreamFile(st).TransformFile(path, ts)
	require.NoError(t, err)
	assert.Equal(t, "# comment\nHELLO\n", out)

	_, err = transform.NewStreamFile(st).TransformFile(path+".missing", ts)
	var openErr *transform.OpenError
	assert.ErrorAs(t, err, &openErr)
}

func TestList(t *testing.T) {
	a := testApp(t)

	var buf bytes.Buffer
	require.NoError(t, a.list(&buf))
	out := ansi.Strip(buf.String())

	assert.Contains(t, out, "* shout  trim → upper")
	assert.Contains(t, out, "  wrap  prefix → suffix")
	assert.Contains(t, out, "redact")
}
