// Package driver implements the parse engine shared by every combinator
// variant: the mutable parse state, the recursion-guarded driver wrapper
// ("parse_core" in the reference implementation), and the recursion-safe
// "expect" traversal used to render error messages.
//
// Combinators themselves (literal, char-set, regex, sequence, choice,
// repeat, identity, indirection) live in the sibling combinator package and
// are built on top of the Node interface and the Run/ComputeExpect entry
// points defined here — the same split the teacher draws between its
// grammar-table package and its runtime driver package.
package driver

import (
	"strings"

	"github.com/nihei9/combc/internal/handle"
)

// Reducer folds a combinator's matched children into a single tree leaf.
type Reducer func(children []any) any

// Node is the contract every combinator variant satisfies. It is the Go
// analogue of the reference implementation's abstract Parser/Combinator
// base class: Handle gives the node a stable identity for the recursion
// guard and the literal-interning cache; Recurse and Compound are the
// class-level flags from spec.md §3.1; Recognize and Expect are the two
// operations a variant must implement; Name and ReducerFn expose the
// envelope fields set by the naming/reducer constructors.
type Node interface {
	Handle() handle.Handle
	Recurse() bool
	Compound() bool
	Name() string
	ReducerFn() Reducer
	Recognize(st *State) error
	Expect(g *ExpectGuard) []string
	String() string
}

// frame is one level of the recursion guard: the set of currently-active,
// recurse-unsafe combinator identities at the current position in a
// sequence.
type frame map[handle.Handle]struct{}

// State is the mutable cursor threaded through a single parse attempt. It is
// created fresh for each top-level Parse call and discarded when the parse
// completes or fails.
type State struct {
	text string
	line int
	col  int

	// treeStack is the stack of tree branches; treeStack[0] is the final
	// parse tree, and treeStack[len-1] is the branch currently receiving
	// leaves.
	treeStack [][]any

	// recurseStack is the stack of recursion-guard frames; recurseStack[len-1]
	// is the frame consulted by InRecursion/PushParser/PopParser.
	recurseStack []frame

	whitespace   string
	whitespaceOK bool

	log Logger
}

// NewState creates the initial parse state for text, applying an initial
// whitespace skip as spec.md §4.4 requires of the top-level entry point.
func NewState(text string, whitespace string, whitespaceOK bool, log Logger) *State {
	st := &State{
		text:         text,
		line:         1,
		col:          1,
		treeStack:    [][]any{{}},
		recurseStack: []frame{{}},
		whitespace:   whitespace,
		whitespaceOK: whitespaceOK,
		log:          log,
	}
	st.EatWhite()
	return st
}

// Text returns the remaining unconsumed input.
func (s *State) Text() string { return s.text }

// Line returns the current 1-based line number.
func (s *State) Line() int { return s.line }

// Col returns the current 1-based column number.
func (s *State) Col() int { return s.col }

// EOF reports whether the cursor has no remaining input.
func (s *State) EOF() bool { return s.text == "" }

// Tree returns the final parse tree: the bottom-most branch of the tree
// stack. Valid only once a parse has completed successfully.
func (s *State) Tree() []any { return s.treeStack[0] }

// advance updates line/col counters for the consumed text, mirroring the
// reference implementation's line-splitting cursor arithmetic.
func (s *State) advance(consumed string) {
	lines := strings.Split(consumed, "\n")
	s.line += len(lines) - 1
	s.col = len(lines[len(lines)-1]) + 1
}

// EatWhite drops leading whitespace characters from the remaining input.
func (s *State) EatWhite() {
	if !s.whitespaceOK || s.whitespace == "" {
		return
	}
	trimmed := strings.TrimLeft(s.text, s.whitespace)
	s.advance(s.text[:len(s.text)-len(trimmed)])
	s.text = trimmed
}

// Consume removes the first n bytes of the remaining input, pushes them as a
// leaf onto the current branch, updates line/col, then eats trailing
// whitespace.
func (s *State) Consume(n int) {
	consumed := s.text[:n]
	s.text = s.text[n:]
	s.advance(consumed)
	s.pushToTop(consumed)
	s.log.Consume(consumed, s.line, s.col)
	s.EatWhite()
}

func (s *State) pushToTop(v any) {
	top := len(s.treeStack) - 1
	s.treeStack[top] = append(s.treeStack[top], v)
}

// PushLeaf pushes a value directly onto the current branch, used by the
// driver wrapper to install a reducer's output in place of its children.
func (s *State) PushLeaf(v any) {
	s.pushToTop(v)
}

// PushBranch opens a private sub-list in the tree stack, scoping the
// children a reducer will later fold.
func (s *State) PushBranch() {
	s.treeStack = append(s.treeStack, []any{})
}

// PopBranch closes and returns the private sub-list opened by PushBranch.
func (s *State) PopBranch() []any {
	top := len(s.treeStack) - 1
	popped := s.treeStack[top]
	s.treeStack = s.treeStack[:top]
	return popped
}

// PushState creates a trial checkpoint: a snapshot sharing the state's
// existing tree branches and recursion frames, plus a fresh top branch of
// its own. The caller commits the checkpoint with Commit on success, or
// simply discards it on failure.
func (s *State) PushState() *State {
	spine := append([][]any(nil), s.treeStack...)
	spine = append(spine, []any{})
	frames := append([]frame(nil), s.recurseStack...)

	return &State{
		text:         s.text,
		line:         s.line,
		col:          s.col,
		treeStack:    spine,
		recurseStack: frames,
		whitespace:   s.whitespace,
		whitespaceOK: s.whitespaceOK,
		log:          s.log,
	}
}

// Commit merges a successful trial's private branch into the parent's
// current branch and commits its cursor position, completing the rollback
// scope opened by PushState.
func (s *State) Commit(trial *State) {
	popped := trial.PopBranch()
	top := len(s.treeStack) - 1
	s.treeStack[top] = append(s.treeStack[top], popped...)
	s.text = trial.text
	s.line = trial.line
	s.col = trial.col
}

// PushParser marks p active in the current recursion-guard frame.
func (s *State) PushParser(p handle.Handle) {
	s.recurseStack[len(s.recurseStack)-1][p] = struct{}{}
}

// PopParser marks p inactive in the current recursion-guard frame.
func (s *State) PopParser(p handle.Handle) {
	delete(s.recurseStack[len(s.recurseStack)-1], p)
}

// Shift opens a fresh recursion-guard frame, used by Sequence to give each
// element after the first its own recursion scope.
func (s *State) Shift() {
	s.recurseStack = append(s.recurseStack, frame{})
}

// Unshift discards the most recently opened recursion-guard frame.
func (s *State) Unshift() {
	s.recurseStack = s.recurseStack[:len(s.recurseStack)-1]
}

// InRecursion reports whether p is active in the current recursion-guard
// frame.
func (s *State) InRecursion(p handle.Handle) bool {
	_, active := s.recurseStack[len(s.recurseStack)-1][p]
	return active
}

// Log returns the tracing sink attached to this parse, never nil.
func (s *State) Log() Logger { return s.log }
