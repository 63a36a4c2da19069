// Package handle gives combinator nodes a small, comparable, hashable
// identity independent of their Go pointer value.
//
// The parse-time recursion guard and the literal-interning cache both need
// to treat "the same combinator" as a single identity no matter how many
// times a node is reached through the grammar graph (which may be cyclic via
// an Indirection). A plain struct pointer would work too, but a monotonic
// handle keeps the guard's bookkeeping (slices/maps keyed by identity) free
// of any assumption about how nodes are allocated.
package handle

import "sync/atomic"

// Handle is the stable identity of a combinator node for the lifetime of the
// process. The zero Handle is never issued by New and can be used as a
// not-yet-assigned sentinel.
type Handle uint64

var counter uint64

// New allocates a fresh, process-unique Handle.
func New() Handle {
	return Handle(atomic.AddUint64(&counter, 1))
}
