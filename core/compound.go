package core

import (
	"iter"
	"slices"
)

// Compound is the slice-backed Transformations implementation. It is
// immutable once built.
type Compound struct {
	entries []*Transformation
}

var _ Transformations = (*Compound)(nil)

// NewCompound creates one Transformation per name, all sharing a. The names
// sequence is consumed exactly once, so single-pass sources are fine. It
// panics if names or a is nil.
func NewCompound(names iter.Seq[string], a Applyer) *Compound {
	if names == nil {
		panic("core: names is nil")
	}
	if a == nil {
		panic("core: applyer is nil")
	}

	c := &Compound{}
	for name := range names {
		c.entries = append(c.entries, NewTransformation(name, a))
	}
	return c
}

// Of creates a Compound from already-built transformations, keeping their
// order. It panics on a nil entry.
func Of(ts ...*Transformation) *Compound {
	for _, t := range ts {
		if t == nil {
			panic("core: transformation is nil")
		}
	}
	return &Compound{entries: slices.Clone(ts)}
}

func (c *Compound) Len() int { return len(c.entries) }

func (c *Compound) At(i int) *Transformation {
	if i < 0 || i >= len(c.entries) {
		return nil
	}
	return c.entries[i]
}

// Lookup scans linearly; collections are short, hand-written lists.
func (c *Compound) Lookup(name string) *Transformation {
	if name == "" {
		return nil
	}
	for _, t := range c.entries {
		if t.name == name {
			return t
		}
	}
	return nil
}

func (c *Compound) All() iter.Seq[*Transformation] {
	return func(yield func(*Transformation) bool) {
		for _, t := range c.entries {
			if !yield(t) {
				return
			}
		}
	}
}
