package driver

import "github.com/nihei9/combc/internal/handle"

// ExpectGuard is the recursion guard used while computing a node's expect
// set. It serves the same purpose as the parse-time recursion guard
// (State's recurseStack) but is a single flat set of active nodes rather
// than a stack of frames, and lives in its own data structure, per spec.md
// §4.5 and §9: the expect traversal must never touch live parse state,
// since it can be run independently of any parse (e.g. for grammar
// introspection or error rendering after a parse has already failed).
type ExpectGuard struct {
	active map[handle.Handle]struct{}
}

// NewExpectGuard creates an empty expect-time recursion guard.
func NewExpectGuard() *ExpectGuard {
	return &ExpectGuard{active: map[handle.Handle]struct{}{}}
}

func (g *ExpectGuard) push(h handle.Handle)  { g.active[h] = struct{}{} }
func (g *ExpectGuard) pop(h handle.Handle)   { delete(g.active, h) }
func (g *ExpectGuard) inRecursion(h handle.Handle) bool {
	_, ok := g.active[h]
	return ok
}

// ComputeExpect returns the terminals (or named non-terminal labels) that n
// would accept at its current position, implementing spec.md §4.5's
// expect_core: a name short-circuits to the singleton [name] (spec.md's
// naming-opacity rule); an already-active node (a cycle reached through an
// Indirection) contributes nothing, which is what keeps the traversal
// terminating over recursive grammars.
func ComputeExpect(n Node, g *ExpectGuard) []string {
	if g.inRecursion(n.Handle()) {
		return nil
	}

	g.push(n.Handle())
	defer g.pop(n.Handle())

	if name := n.Name(); name != "" {
		return []string{name}
	}
	return n.Expect(g)
}
