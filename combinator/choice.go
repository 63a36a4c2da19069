package combinator

import (
	"github.com/nihei9/combc/driver"
)

type choiceNode struct {
	Base
	alts []Combinator
}

// Choice builds an ordered choice over parts (Combinator or bare string, as
// with Seq). Left-flattens into an existing unnamed, unreduced Choice the
// same way Seq does, for the same reason (spec.md §4.3, §9).
func Choice(parts ...any) Combinator {
	var alts []Combinator
	for i, p := range parts {
		c := toCombinator(p)
		if i == 0 {
			if ch, ok := c.(*choiceNode); ok && ch.name == "" && ch.reducer == nil {
				alts = append(alts, ch.alts...)
				continue
			}
		}
		alts = append(alts, c)
	}

	n := &choiceNode{Base: newBase(true /* recurse */, true /* compound */), alts: alts}
	n.setSelf(n)
	return n
}

// Recognize implements spec.md §4.3's Choice algorithm: a recurse-unsafe
// alternative already active at this position is skipped rather than
// retried (this is how left recursion through a Choice terminates instead
// of looping — the recursive alternative fails locally and the next
// alternative, typically the base case, gets a chance); a compound
// alternative runs under a trial checkpoint so a partial match it leaves
// behind can be rolled back; the first alternative to succeed wins and
// later ones are never attempted.
func (n *choiceNode) Recognize(st *driver.State) error {
	for i, alt := range n.alts {
		if !alt.Recurse() && st.InRecursion(alt.Handle()) {
			continue
		}

		if !alt.Compound() {
			st.Log().ChoiceTry(i, alt)
			err := driver.Run(alt, st)
			st.Log().ChoiceResult(i, alt, err)
			if err == nil {
				return nil
			}
			continue
		}

		st.Log().ChoiceTry(i, alt)
		trial := st.PushState()
		err := driver.Run(alt, trial)
		st.Log().ChoiceResult(i, alt, err)
		if err == nil {
			st.Commit(trial)
			return nil
		}
	}
	// Run converts this into a ParseError naming n.Expect's union of every
	// alternative's expect set, not just the last one tried.
	return driver.ErrNoMatch
}

func (n *choiceNode) Expect(g *driver.ExpectGuard) []string {
	var out []string
	for _, alt := range n.alts {
		out = append(out, driver.ComputeExpect(alt, g)...)
	}
	return out
}

func (n *choiceNode) String() string {
	return envelopeString(n.Name(), "Choice(...)")
}
