package driver

import (
	"errors"
	"testing"

	verr "github.com/nihei9/combc/error"
	"github.com/nihei9/combc/internal/handle"
)

// fakeNode is a minimal Node used to exercise Run/ComputeExpect without
// depending on the combinator package (which itself depends on driver).
type fakeNode struct {
	h         handle.Handle
	name      string
	recurse   bool
	reducer   Reducer
	match     string // consumed verbatim if the remaining text has this prefix
	expectSet []string
}

func newFake(match string, recurse bool) *fakeNode {
	return &fakeNode{h: handle.New(), recurse: recurse, match: match, expectSet: []string{match}}
}

func (n *fakeNode) Handle() handle.Handle  { return n.h }
func (n *fakeNode) Recurse() bool          { return n.recurse }
func (n *fakeNode) Compound() bool         { return false }
func (n *fakeNode) Name() string           { return n.name }
func (n *fakeNode) ReducerFn() Reducer     { return n.reducer }
func (n *fakeNode) String() string         { return "fake(" + n.match + ")" }
func (n *fakeNode) Expect(*ExpectGuard) []string {
	return n.expectSet
}
func (n *fakeNode) Recognize(st *State) error {
	text := st.Text()
	if len(text) < len(n.match) || text[:len(n.match)] != n.match {
		return ErrNoMatch
	}
	st.Consume(len(n.match))
	return nil
}

func TestRun_SuccessPushesLeaf(t *testing.T) {
	st := NewState("foobar", "", false, NopLogger{})
	n := newFake("foo", false)

	if err := Run(n, st); err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}
	if st.Text() != "bar" {
		t.Errorf("Text() = %q, want %q", st.Text(), "bar")
	}
	if got := st.Tree(); len(got) != 1 || got[0] != "foo" {
		t.Errorf("Tree() = %v, want [\"foo\"]", got)
	}
}

func TestRun_NoMatchBecomesParseError(t *testing.T) {
	st := NewState("xyz", "", false, NopLogger{})
	n := newFake("foo", false)

	err := Run(n, st)
	var pe *verr.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Run() error = %v, want a *ParseError", err)
	}
	if pe.Expected[0] != "foo" {
		t.Errorf("Expected = %v, want [\"foo\"]", pe.Expected)
	}
}

func TestRun_NoMatchAtEOFBecomesEndOfInputError(t *testing.T) {
	st := NewState("", "", false, NopLogger{})
	n := newFake("foo", false)

	err := Run(n, st)
	var eoi *verr.EndOfInputError
	if !errors.As(err, &eoi) {
		t.Fatalf("Run() error = %v, want an *EndOfInputError", err)
	}
}

func TestRun_AppliesReducer(t *testing.T) {
	st := NewState("foo", "", false, NopLogger{})
	n := newFake("foo", false)
	n.reducer = func(leaves []any) any {
		return len(leaves)
	}

	if err := Run(n, st); err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}
	got := st.Tree()
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("Tree() = %v, want [1] (reducer folded 1 leaf)", got)
	}
}

func TestRun_ShiftShiftConflictWhenRecurseUnsafeNodeReenters(t *testing.T) {
	st := NewState("foo", "", false, NopLogger{})
	n := newFake("foo", false) // recurse = false: guarded

	st.PushParser(n.Handle())
	err := Run(n, st)

	var ssc *verr.ShiftShiftConflict
	if !errors.As(err, &ssc) {
		t.Fatalf("Run() error = %v, want a *ShiftShiftConflict", err)
	}
}

func TestRun_RecurseSafeNodeNeverConflicts(t *testing.T) {
	st := NewState("foo", "", false, NopLogger{})
	n := newFake("foo", true) // recurse = true: unguarded

	st.PushParser(n.Handle())
	if err := Run(n, st); err != nil {
		t.Fatalf("Run() = %v, want nil (recurse-safe nodes never trigger the guard)", err)
	}
}
