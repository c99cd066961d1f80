package core

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountLines(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"a\n", 1},
		{"a\nb\n", 2},
		{"a\n\nb", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CountLines(tt.in), "CountLines(%q)", tt.in)
	}
}

func TestNewResult(t *testing.T) {
	c := NewCompound(slices.Values([]string{"a", "b"}), ApplyerFunc(strings.ToUpper))
	res := NewResult("in.txt", "shout", c, "OUT", time.Second)

	assert.Equal(t, "in.txt", res.Source)
	assert.Equal(t, "shout", res.Pipeline)
	assert.Equal(t, []string{"a", "b"}, res.Steps)
	assert.Equal(t, "OUT", res.Output)
	assert.Equal(t, time.Second, res.Duration)
}
