// Package core defines named string transformations and the ordered,
// name-addressable collections that stream and file transformers consume.
package core

// Applyer performs the actual input to output work behind a Transformation.
// A single Applyer may back many Transformations; it must be safe for
// whatever concurrency its caller imposes.
type Applyer interface {
	Apply(input string) string
}

// ApplyerFunc adapts a plain function to the Applyer interface.
type ApplyerFunc func(input string) string

// Apply calls f(input).
func (f ApplyerFunc) Apply(input string) string { return f(input) }

// Transformation is a named, immutable binding of a name to an Applyer.
type Transformation struct {
	name    string
	applyer Applyer
}

// NewTransformation binds name to a. It panics if name is empty or a is nil.
func NewTransformation(name string, a Applyer) *Transformation {
	if name == "" {
		panic("core: transformation name is empty")
	}
	if a == nil {
		panic("core: applyer is nil")
	}
	return &Transformation{name: name, applyer: a}
}

// Name returns the name the transformation was created with.
func (t *Transformation) Name() string { return t.name }

// Apply delegates to the bound Applyer.
func (t *Transformation) Apply(input string) string {
	return t.applyer.Apply(input)
}
