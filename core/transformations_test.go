package core

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransformation(t *testing.T) {
	tr := NewTransformation("upper", ApplyerFunc(strings.ToUpper))
	assert.Equal(t, "upper", tr.Name())
	assert.Equal(t, "HELLO", tr.Apply("hello"))
}

func TestNewTransformationPreconditions(t *testing.T) {
	assert.Panics(t, func() { NewTransformation("", ApplyerFunc(strings.ToUpper)) })
	assert.Panics(t, func() { NewTransformation("upper", nil) })
}

func TestApplyChain(t *testing.T) {
	c := Of(
		NewTransformation("trim", ApplyerFunc(strings.TrimSpace)),
		NewTransformation("upper", ApplyerFunc(strings.ToUpper)),
		NewTransformation("bang", ApplyerFunc(func(s string) string { return s + "!" })),
	)
	assert.Equal(t, "HELLO!", Apply(c, "  hello "))
}

func TestApplyEmpty(t *testing.T) {
	c := NewCompound(slices.Values([]string(nil)), ApplyerFunc(strings.ToUpper))
	assert.Equal(t, "unchanged", Apply(c, "unchanged"))
	assert.Empty(t, Names(c))
}

func TestSelect(t *testing.T) {
	c := NewCompound(slices.Values([]string{"one", "two", "three"}), ApplyerFunc(strings.ToUpper))

	tests := []struct {
		name     string
		selector string
		want     string
	}{
		{"by index", "1", "two"},
		{"by name", "three", "three"},
		{"first index", "0", "one"},
		{"index out of range", "3", ""},
		{"negative index", "-1", ""},
		{"unknown name", "four", ""},
		{"empty selector", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(c, tt.selector)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, []string{tt.want}, Names(got))
		})
	}
}

func TestSelectNumericName(t *testing.T) {
	c := Of(
		NewTransformation("first", ApplyerFunc(strings.ToUpper)),
		NewTransformation("7", ApplyerFunc(strings.ToLower)),
	)

	byIndex := Select(c, "1")
	require.NotNil(t, byIndex)
	assert.Equal(t, []string{"7"}, Names(byIndex), "index wins while in range")

	byName := Select(c, "7")
	require.NotNil(t, byName)
	assert.Same(t, c.At(1), byName.At(0), "falls back to the name once the index misses")
}
