package combinator

import (
	"github.com/nihei9/combc/driver"
)

type identityNode struct {
	Base
	child Combinator
}

// Id wraps child in a transparent node with its own identity, used to give
// a sub-expression something to name or reduce without pinning it into a
// surrounding Sequence/Choice grouping, or to break left-flattening there
// (spec.md §4.2, §9).
func Id(child any) Combinator {
	n := &identityNode{Base: newBase(false /* recurse */, true /* compound */), child: toCombinator(child)}
	n.setSelf(n)
	return n
}

func (n *identityNode) Recognize(st *driver.State) error {
	return driver.Run(n.child, st)
}

func (n *identityNode) Expect(g *driver.ExpectGuard) []string {
	return driver.ComputeExpect(n.child, g)
}

func (n *identityNode) String() string {
	return envelopeString(n.Name(), "Id(...)")
}
