package combinator

import (
	"github.com/nihei9/combc/driver"
)

// Unbounded marks an unset upper bound on a Repeat: zero-or-more / one-or-more
// rather than an exact count.
const Unbounded = -1

type repeatNode struct {
	Base
	child    Combinator
	min, max int
	sep      Combinator
}

// RepeatExact matches child at least min times and at most max times
// (Unbounded for no upper bound), optionally interleaved with sep between
// occurrences — never before the first, never after the last (spec.md
// §4.2). The mandatory occurrences (up to min) run without a checkpoint, so
// a failure there is a hard failure of the whole repeat; each occurrence
// past min runs inside its own trial checkpoint and is accepted greedily —
// once committed it is never retried even if a later part of the parse
// fails (testable property 2's greedy commit, and the ordering guarantee in
// spec.md §7).
func RepeatExact(child any, min, max int, sep any) Combinator {
	c := toCombinator(child)
	var s Combinator
	if sep != nil {
		s = toCombinator(sep)
	}

	n := &repeatNode{Base: newBase(false /* recurse */, true /* compound */), child: c, min: min, max: max, sep: s}
	n.setSelf(n)
	return n
}

// Optional matches child zero or one times: RepeatExact(child, 0, 1, nil).
func Optional(child any) Combinator {
	return RepeatExact(child, 0, 1, nil)
}

// Many matches child zero or more times: RepeatExact(child, 0, Unbounded, nil).
func Many(child any) Combinator {
	return RepeatExact(child, 0, Unbounded, nil)
}

// SepBy matches child zero or more times, separated by sep between
// occurrences: RepeatExact(child, 0, Unbounded, sep).
func SepBy(child, sep any) Combinator {
	return RepeatExact(child, 0, Unbounded, sep)
}

func (n *repeatNode) Recognize(st *driver.State) error {
	count := 0
	for ; count < n.min; count++ {
		if count > 0 && n.sep != nil {
			if err := driver.Run(n.sep, st); err != nil {
				return err
			}
		}
		if err := driver.Run(n.child, st); err != nil {
			return err
		}
	}

	for n.max == Unbounded || count < n.max {
		before := len(st.Text())

		trial := st.PushState()
		if count > 0 && n.sep != nil {
			if err := driver.Run(n.sep, trial); err != nil {
				break
			}
		}
		if err := driver.Run(n.child, trial); err != nil {
			break
		}
		st.Commit(trial)
		count++

		// A child (or child+separator) that matched without consuming any
		// input would otherwise succeed identically forever — most often
		// a child built on a regex that is itself already zero-or-more.
		// One such iteration is recorded like any other; a second would
		// add nothing new, so stop here rather than loop without limit.
		if len(st.Text()) == before {
			break
		}
	}
	return nil
}

// Expect reports the child's expect set unconditionally, matching the
// original Repeat.expect (which always delegates to its subparser) — even
// when min == 0 and a failure to match isn't itself a failure of the whole
// repeat. A Sequence whose first child is Optional/Many/SepBy still needs
// that child's terminals to render a non-empty "expected one of" message.
func (n *repeatNode) Expect(g *driver.ExpectGuard) []string {
	return driver.ComputeExpect(n.child, g)
}

func (n *repeatNode) String() string {
	return envelopeString(n.Name(), "Repeat(...)")
}
