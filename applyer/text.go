// Package applyer provides the built-in core.Applyer implementations and a
// registry that builds them from config specs.
package applyer

import "strings"

type Upper struct{}

func (a *Upper) Apply(input string) string {
	return strings.ToUpper(input)
}

type Lower struct{}

func (a *Lower) Apply(input string) string {
	return strings.ToLower(input)
}

// Trim removes leading and trailing whitespace.
type Trim struct{}

func (a *Trim) Apply(input string) string {
	return strings.TrimSpace(input)
}

type Prefix struct {
	Value string
}

func (a *Prefix) Apply(input string) string {
	return a.Value + input
}

type Suffix struct {
	Value string
}

func (a *Suffix) Apply(input string) string {
	return input + a.Value
}

// Replace substitutes every occurrence of Old with New.
type Replace struct {
	Old string
	New string
}

func (a *Replace) Apply(input string) string {
	return strings.ReplaceAll(input, a.Old, a.New)
}
