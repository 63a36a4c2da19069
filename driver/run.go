package driver

import (
	verr "github.com/nihei9/combc/error"
)

// Run is the driver wrapper invoked on every combinator, primitive and
// compound alike. It implements the eight-step protocol of spec.md §4.4
// exactly once so no variant has to re-implement recursion-guard
// bookkeeping, whitespace handling, or reducer application:
//
//  1. Reject shift-shift recursion for recurse-unsafe nodes.
//  2. Open a private tree branch if the node has a reducer.
//  3. Mark the node active in the current recursion frame, if guarded.
//  4. Invoke the node's own Recognize.
//  5. Turn a "no match" result into a ParseError/EndOfInputError.
//  6. Unmark the node, if guarded.
//  7. Fold the node's children through its reducer, if any.
//  8. Return.
func Run(n Node, st *State) error {
	st.Log().Enter(n, st.Line(), st.Col())

	if !n.Recurse() && st.InRecursion(n.Handle()) {
		st.Log().ShiftShift(n)
		err := verr.NewShiftShiftConflict(newParseError(st, ComputeExpect(n, NewExpectGuard())))
		st.Log().Exit(n, false)
		return err
	}

	if n.ReducerFn() != nil {
		st.PushBranch()
	}

	guarded := !n.Recurse()
	if guarded {
		st.PushParser(n.Handle())
	}

	err := n.Recognize(st)

	if guarded {
		st.PopParser(n.Handle())
	}

	if err == ErrNoMatch {
		if st.EOF() {
			err = verr.NewEndOfInputError(newParseError(st, ComputeExpect(n, NewExpectGuard())))
		} else {
			err = newParseError(st, ComputeExpect(n, NewExpectGuard()))
		}
	}

	if err != nil {
		st.Log().Exit(n, false)
		return err
	}

	if reduce := n.ReducerFn(); reduce != nil {
		leaves := st.PopBranch()
		st.PushLeaf(reduce(leaves))
	}

	st.Log().Exit(n, true)
	return nil
}

func newParseError(st *State, expected []string) *verr.ParseError {
	return verr.NewParseError(st.Line(), st.Col(), st.Text(), expected)
}
