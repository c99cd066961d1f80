package core

import (
	"iter"
	"strconv"
)

// Transformations is an ordered collection of Transformation that can be
// addressed by position or by name. Misses are reported as nil, never as a
// panic or error.
type Transformations interface {
	// Len returns the number of transformations.
	Len() int

	// At returns the transformation at index i, or nil when i is outside
	// [0, Len()).
	At(i int) *Transformation

	// Lookup returns the first transformation named name, or nil.
	Lookup(name string) *Transformation

	// All yields the transformations in insertion order.
	All() iter.Seq[*Transformation]
}

// Apply runs input through every transformation in ts, in order.
func Apply(ts Transformations, input string) string {
	for t := range ts.All() {
		input = t.Apply(input)
	}
	return input
}

// Names returns the transformation names of ts in order.
func Names(ts Transformations) []string {
	names := make([]string, 0, ts.Len())
	for t := range ts.All() {
		names = append(names, t.Name())
	}
	return names
}

// Select narrows ts to a single transformation. A selector that parses as an
// integer is tried as an index first, then as a name, so a step named "7" is
// still reachable once the index misses. Returns nil when nothing matches.
func Select(ts Transformations, selector string) *Compound {
	var t *Transformation
	if i, err := strconv.Atoi(selector); err == nil {
		t = ts.At(i)
	}
	if t == nil {
		t = ts.Lookup(selector)
	}
	if t == nil {
		return nil
	}
	return Of(t)
}
