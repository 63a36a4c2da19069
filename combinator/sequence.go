package combinator

import (
	"github.com/nihei9/combc/driver"
)

type sequenceNode struct {
	Base
	children []Combinator
}

// Seq builds a Sequence over parts, each of which is either a Combinator or
// a bare string (implicitly wrapped via Lit, spec.md §3.1). Per spec.md §4.3
// and §9, the result is left-flattened: if parts[0] is itself an unnamed,
// unreduced Sequence, its children are spliced in rather than nested one
// level deeper, so `Seq(Seq(a, b), c)` has the flat child list [a, b, c].
// Later operands are not flattened: `Seq(a, Seq(b, c))` keeps the nested
// Sequence as its second child, and produces the same parse-tree leaves as
// the flat form (testable property 6). Flattening stops the
// moment a reducer or name pins the left operand's grouping, since folding
// that operand's children separately is then observable.
func Seq(parts ...any) Combinator {
	var children []Combinator
	for i, p := range parts {
		c := toCombinator(p)
		if i == 0 {
			if s, ok := c.(*sequenceNode); ok && s.name == "" && s.reducer == nil {
				children = append(children, s.children...)
				continue
			}
		}
		children = append(children, c)
	}

	n := &sequenceNode{Base: newBase(false /* recurse */, true /* compound */), children: children}
	n.setSelf(n)
	return n
}

func (n *sequenceNode) Recognize(st *driver.State) error {
	for i, c := range n.children {
		if i > 0 {
			st.Shift()
		}
		err := driver.Run(c, st)
		if i > 0 {
			st.Unshift()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (n *sequenceNode) Expect(g *driver.ExpectGuard) []string {
	if len(n.children) == 0 {
		return nil
	}
	return driver.ComputeExpect(n.children[0], g)
}

func (n *sequenceNode) String() string {
	return envelopeString(n.Name(), "Seq(...)")
}
