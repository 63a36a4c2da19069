package driver

import (
	"testing"

	"github.com/nihei9/combc/internal/handle"
)

func TestState_ConsumeAdvancesLineAndCol(t *testing.T) {
	st := NewState("ab\ncd", " \t\n", true, NopLogger{})
	st.Consume(3) // "ab\n"

	if st.Line() != 2 {
		t.Errorf("Line() = %v, want 2", st.Line())
	}
	if st.Col() != 1 {
		t.Errorf("Col() = %v, want 1", st.Col())
	}
	if st.Text() != "cd" {
		t.Errorf("Text() = %q, want %q", st.Text(), "cd")
	}
}

func TestState_EatWhiteSkipsLeadingWhitespace(t *testing.T) {
	st := NewState("   foo", " \t\n", true, NopLogger{})
	if st.Text() != "foo" {
		t.Errorf("Text() = %q, want %q (leading whitespace skipped at construction)", st.Text(), "foo")
	}
}

func TestState_WithoutWhitespaceDoesNotSkip(t *testing.T) {
	st := NewState("   foo", "", false, NopLogger{})
	if st.Text() != "   foo" {
		t.Errorf("Text() = %q, want the input unchanged", st.Text())
	}
}

func TestState_PushStateAndCommit(t *testing.T) {
	st := NewState("foobar", "", false, NopLogger{})
	st.Consume(3) // commits "foo" onto the root branch; text is now "bar"

	trial := st.PushState()
	trial.Consume(3) // consumes "bar" within the trial only

	if st.Text() != "bar" {
		t.Errorf("outer state mutated before Commit: Text() = %q", st.Text())
	}

	st.Commit(trial)

	if st.Text() != "" {
		t.Errorf("after Commit, Text() = %q, want \"\"", st.Text())
	}
	got := st.Tree()
	want := []any{"foo", "bar"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Tree() = %v, want %v", got, want)
	}
}

func TestState_PushStateDiscardedLeavesOuterUntouched(t *testing.T) {
	st := NewState("foobar", "", false, NopLogger{})
	trial := st.PushState()
	trial.Consume(6)

	// trial is simply dropped, never committed.
	if st.Text() != "foobar" {
		t.Errorf("outer state mutated by a discarded trial: Text() = %q", st.Text())
	}
	if len(st.Tree()) != 0 {
		t.Errorf("outer tree mutated by a discarded trial: %v", st.Tree())
	}
}

func TestState_RecursionGuardShiftUnshift(t *testing.T) {
	st := NewState("x", "", false, NopLogger{})
	h := handle.New()

	st.PushParser(h)
	if !st.InRecursion(h) {
		t.Fatalf("InRecursion(h) = false after PushParser, want true")
	}

	st.Shift()
	if st.InRecursion(h) {
		t.Errorf("InRecursion(h) = true in a freshly shifted frame, want false")
	}
	st.Unshift()

	if !st.InRecursion(h) {
		t.Errorf("InRecursion(h) = false after Unshift back to the original frame, want true")
	}

	st.PopParser(h)
	if st.InRecursion(h) {
		t.Errorf("InRecursion(h) = true after PopParser, want false")
	}
}
