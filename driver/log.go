package driver

// Logger receives a trace of driver decisions: combinator enter/exit,
// consumed text, and choice-branch attempts. It is the seam the sibling
// tracing package hooks a zerolog.Logger into (see SPEC_FULL.md §5.2); the
// driver itself only depends on this small interface, never on zerolog.
//
// Every method must tolerate being called on a disabled sink at zero extra
// cost: NopLogger implements all of them as no-ops.
type Logger interface {
	// Enter is called when the driver wrapper begins running a node.
	Enter(node Node, line, col int)
	// Exit is called when the driver wrapper finishes running a node,
	// reporting whether it matched.
	Exit(node Node, matched bool)
	// Consume is called after text is consumed from the input.
	Consume(text string, line, col int)
	// ChoiceTry is called before a Choice attempts alternative i.
	ChoiceTry(i int, alt Node)
	// ChoiceResult is called after a Choice alternative either commits or
	// is abandoned.
	ChoiceResult(i int, alt Node, err error)
	// ShiftShift is called when the recursion guard rejects re-entering
	// node at the current position.
	ShiftShift(node Node)
}

// NopLogger is the default Logger: every method is a no-op.
type NopLogger struct{}

func (NopLogger) Enter(Node, int, int)         {}
func (NopLogger) Exit(Node, bool)               {}
func (NopLogger) Consume(string, int, int)      {}
func (NopLogger) ChoiceTry(int, Node)           {}
func (NopLogger) ChoiceResult(int, Node, error) {}
func (NopLogger) ShiftShift(Node)               {}
