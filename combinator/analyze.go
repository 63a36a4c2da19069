package combinator

import "github.com/nihei9/combc/internal/handle"

// Analyze resolves indirection references in place, following spec.md
// §4.6's analysis pass: the first child reference the walk reaches that
// points at a filled *Indirection is rewritten to point directly at that
// indirection's target, skipping a level of delegation at parse time. It is purely an optimization — an unanalyzed grammar parses
// identically, just with one extra Run per indirection reference on the
// way to its target — so correctness never depends on calling it, and
// calling it twice is harmless.
//
// Any later reference to an Indirection the walk has already visited is
// left pointing at the Indirection: the visited set below stops Analyze the
// moment it revisits a node. This covers every back-edge that closes a
// cycle (a rule that recurses into itself, directly or through peers), and
// also a second, non-cyclic reference to the same Indirection from
// elsewhere in the graph. Unwrapping it would require expanding the cycle into an
// infinite tree, which is exactly what the indirection node exists to
// avoid.
func Analyze(root Combinator) Combinator {
	visited := map[handle.Handle]bool{}
	return resolve(root, visited)
}

func resolve(c Combinator, visited map[handle.Handle]bool) Combinator {
	if c == nil {
		return nil
	}
	if visited[c.Handle()] {
		return c
	}
	visited[c.Handle()] = true

	switch n := c.(type) {
	case *sequenceNode:
		for i, ch := range n.children {
			n.children[i] = resolve(ch, visited)
		}
	case *choiceNode:
		for i, a := range n.alts {
			n.alts[i] = resolve(a, visited)
		}
	case *repeatNode:
		n.child = resolve(n.child, visited)
		if n.sep != nil {
			n.sep = resolve(n.sep, visited)
		}
	case *identityNode:
		n.child = resolve(n.child, visited)
	case *Indirection:
		if n.target != nil {
			n.target = resolve(n.target, visited)
		}
	}

	return unwrapIndirection(c)
}

func unwrapIndirection(c Combinator) Combinator {
	ind, ok := c.(*Indirection)
	if !ok || ind.target == nil {
		return c
	}
	return ind.target
}
