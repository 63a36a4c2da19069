// Package combinator implements the combinator algebra: literal,
// character-set, regex, sequence, ordered choice, repetition, identity
// grouping, and the forward-declared indirection used to express recursive
// grammars. See SPEC_FULL.md §3 for the data model and §8 for the
// construction API this package exposes.
package combinator

import (
	"github.com/nihei9/combc/driver"
	"github.com/nihei9/combc/internal/handle"
)

// Reducer folds a combinator's matched children into a single tree leaf.
type Reducer = driver.Reducer

// Combinator is a node in the grammar graph: one of the seven variants
// described by SPEC_FULL.md §3.1, or a user-named/reduced wrapping of one.
// It satisfies driver.Node so the shared driver wrapper (driver.Run) can
// recognize it, and adds the naming/reducing/parsing surface spec.md §6
// describes as the construction API.
type Combinator interface {
	driver.Node

	// Named sets the node's friendly name: its expect set collapses to
	// the singleton [name], and the name is used as its String().
	Named(name string) Combinator
	// Reduce sets the node's reducer: on a successful match its children
	// are folded through fn into a single leaf.
	Reduce(fn Reducer) Combinator
	// As sets both name and reducer in one call.
	As(name string, fn Reducer) Combinator

	// Parse runs this combinator over text as the root of a grammar.
	Parse(text string, opts ...ParseOption) (*Result, error)
}

// Base is the envelope every concrete combinator variant embeds: the
// identity handle, the optional name/reducer, and the class-level
// recurse/compound flags from spec.md §3.1. It implements every method of
// Combinator except Recognize, Expect, and String, which each variant
// supplies itself.
type Base struct {
	h        handle.Handle
	name     string
	reducer  Reducer
	recurse  bool
	compound bool
	self     Combinator
}

// newBase initializes the envelope for a variant with the given class-level
// flags. setSelf must be called immediately after embedding Base in a
// concrete value, since Go has no way for an embedded type to recover the
// outer type's full method set on its own (the classic "return Self"
// problem with embedding).
func newBase(recurse, compound bool) Base {
	return Base{h: handle.New(), recurse: recurse, compound: compound}
}

func (b *Base) setSelf(c Combinator) { b.self = c }

// Handle returns the node's stable identity.
func (b *Base) Handle() handle.Handle { return b.h }

// Recurse reports the class-level recursion-safety flag.
func (b *Base) Recurse() bool { return b.recurse }

// Compound reports the class-level partial-match flag.
func (b *Base) Compound() bool { return b.compound }

// Name returns the node's friendly name, or "" if unnamed.
func (b *Base) Name() string { return b.name }

// ReducerFn returns the node's reducer, or nil if none was set.
func (b *Base) ReducerFn() Reducer { return b.reducer }

func (b *Base) Named(name string) Combinator {
	b.name = name
	return b.self
}

func (b *Base) Reduce(fn Reducer) Combinator {
	b.reducer = fn
	return b.self
}

func (b *Base) As(name string, fn Reducer) Combinator {
	b.name = name
	b.reducer = fn
	return b.self
}

func (b *Base) Parse(text string, opts ...ParseOption) (*Result, error) {
	return parse(b.self, text, opts...)
}

// envelopeString applies spec.md §3.1's naming-opacity rule to String():
// a named node renders as "@name" regardless of its internal shape;
// otherwise the variant supplies its own representation.
func envelopeString(name, repr string) string {
	if name != "" {
		return "@" + name
	}
	return repr
}
