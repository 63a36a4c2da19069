package combinator

import (
	"fmt"

	"github.com/nihei9/combc/driver"
	verr "github.com/nihei9/combc/error"
)

// Indirection is a forward-declared combinator slot, filled once after
// construction, used to express recursive and mutually-recursive grammars
// (spec.md §3.1, §4.2). Reading its target — via Recognize or Expect —
// before Fill is called is a grammar-construction bug, not a parse error,
// so both panic rather than returning an error.
type Indirection struct {
	Base
	label  string
	target Combinator
}

// NewIndirection creates an unfilled indirection. label is used only to
// make an unfilled-access panic legible; it has no effect on parsing.
func NewIndirection(label string) *Indirection {
	n := &Indirection{Base: newBase(true /* recurse */, false /* compound */), label: label}
	n.setSelf(n)
	return n
}

// Fill sets the indirection's target. It may be called exactly once.
func (n *Indirection) Fill(target any) {
	if n.target != nil {
		panic(fmt.Sprintf("combinator: indirection %q filled twice", n.label))
	}
	n.target = toCombinator(target)
}

func (n *Indirection) Recognize(st *driver.State) error {
	if n.target == nil {
		panic(&verr.IndirectionNotFilledError{Name: n.label})
	}
	return driver.Run(n.target, st)
}

func (n *Indirection) Expect(g *driver.ExpectGuard) []string {
	if n.target == nil {
		panic(&verr.IndirectionNotFilledError{Name: n.label})
	}
	return driver.ComputeExpect(n.target, g)
}

func (n *Indirection) String() string {
	if name := n.Name(); name != "" {
		return envelopeString(name, "")
	}
	if n.label != "" {
		return "Indirection(" + n.label + ")"
	}
	return "Indirection(?)"
}
