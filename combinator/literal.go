package combinator

import (
	"sync"

	"github.com/nihei9/combc/driver"
)

type literalNode struct {
	Base
	s string
}

var (
	literalCacheMu sync.Mutex
	literalCache   = map[string]*literalNode{}
)

// Lit matches exactly the string s. spec.md §4.2 asks for identical literal
// strings to be interned (hash-consed) to one shared node; Lit honors that
// for the bare case returned here. But Named/Reduce/As mutate a node's
// envelope in place, and the shared cache entry is used by every unrelated
// `Lit(s)` call site in a program — naming one of them must not rename all
// the others. So those three methods are overridden below to detach from
// the cache before mutating, rather than mutating the shared instance.
// Sharing identity is harmless for the recursion guard either way, since
// Literal's class-level Recurse flag is always true.
func Lit(s string) Combinator {
	literalCacheMu.Lock()
	defer literalCacheMu.Unlock()

	if n, ok := literalCache[s]; ok {
		return n
	}
	n := &literalNode{Base: newBase(true /* recurse */, false /* compound */), s: s}
	n.setSelf(n)
	literalCache[s] = n
	return n
}

// detach returns a fresh, uncached node carrying the same string, so a
// naming/reducing call never reaches back into the shared cache entry.
func (n *literalNode) detach() *literalNode {
	c := &literalNode{Base: newBase(n.recurse, n.compound), s: n.s}
	c.setSelf(c)
	return c
}

func (n *literalNode) Named(name string) Combinator {
	return n.detach().Base.Named(name)
}

func (n *literalNode) Reduce(fn Reducer) Combinator {
	return n.detach().Base.Reduce(fn)
}

func (n *literalNode) As(name string, fn Reducer) Combinator {
	return n.detach().Base.As(name, fn)
}

func (n *literalNode) Recognize(st *driver.State) error {
	text := st.Text()
	if len(text) < len(n.s) || text[:len(n.s)] != n.s {
		return driver.ErrNoMatch
	}
	st.Consume(len(n.s))
	return nil
}

func (n *literalNode) Expect(*driver.ExpectGuard) []string {
	return []string{n.s}
}

func (n *literalNode) String() string {
	return envelopeString(n.Name(), "Lit("+n.s+")")
}
