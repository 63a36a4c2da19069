package combinator

import (
	"github.com/nihei9/combc/driver"
)

type charSetNode struct {
	Base
	elements []string
}

// CharSet matches any one of a finite set of strings — usually single
// characters, but spec.md §4.2 allows multi-byte members too. Members are
// tried in declaration order; this implementation documents that ordering
// explicitly rather than sorting by length, per spec.md §4.2's "declaration
// order is acceptable provided it is documented".
func CharSet(elements ...string) Combinator {
	cp := append([]string(nil), elements...)
	n := &charSetNode{Base: newBase(false /* recurse */, false /* compound */), elements: cp}
	n.setSelf(n)
	return n
}

func (n *charSetNode) Recognize(st *driver.State) error {
	text := st.Text()
	for _, e := range n.elements {
		if len(text) >= len(e) && text[:len(e)] == e {
			st.Consume(len(e))
			return nil
		}
	}
	return driver.ErrNoMatch
}

func (n *charSetNode) Expect(*driver.ExpectGuard) []string {
	return append([]string(nil), n.elements...)
}

func (n *charSetNode) String() string {
	return envelopeString(n.Name(), "CharSet(...)")
}
