// Package tracing implements driver.Logger with structured zerolog output,
// so a grammar's trial-and-error descent through a combinator graph can be
// observed without instrumenting the graph itself.
package tracing

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/nihei9/combc/driver"
)

// Tracer is a driver.Logger backed by a zerolog.Logger.
type Tracer struct {
	log zerolog.Logger
}

// New builds a Tracer writing one JSON event per driver decision to w.
func New(w io.Writer) *Tracer {
	return &Tracer{log: zerolog.New(w).With().Timestamp().Logger()}
}

// NewConsole builds a Tracer writing human-readable, colorized lines to
// stderr — the console writer zerolog ships for interactive use.
func NewConsole() *Tracer {
	return &Tracer{log: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()}
}

// Disabled returns a Tracer whose events are dropped at zerolog's level
// check, for call sites that already hold a *Tracer. Each call still
// evaluates its field arguments (such as node.String()); driver.NopLogger
// does no work at all.
func Disabled() *Tracer {
	return &Tracer{log: zerolog.New(io.Discard).Level(zerolog.Disabled)}
}

var _ driver.Logger = (*Tracer)(nil)

func (t *Tracer) Enter(node driver.Node, line, col int) {
	t.log.Debug().
		Str("event", "enter").
		Str("node", node.String()).
		Int("line", line).
		Int("col", col).
		Msg("enter")
}

func (t *Tracer) Exit(node driver.Node, matched bool) {
	t.log.Debug().
		Str("event", "exit").
		Str("node", node.String()).
		Bool("matched", matched).
		Msg("exit")
}

func (t *Tracer) Consume(text string, line, col int) {
	t.log.Debug().
		Str("event", "consume").
		Str("text", text).
		Int("line", line).
		Int("col", col).
		Msg("consume")
}

func (t *Tracer) ChoiceTry(i int, alt driver.Node) {
	t.log.Debug().
		Str("event", "choice_try").
		Int("alt", i).
		Str("node", alt.String()).
		Msg("choice_try")
}

func (t *Tracer) ChoiceResult(i int, alt driver.Node, err error) {
	ev := t.log.Debug().
		Str("event", "choice_result").
		Int("alt", i).
		Str("node", alt.String())
	if err != nil {
		ev = ev.AnErr("error", err)
	}
	ev.Msg("choice_result")
}

func (t *Tracer) ShiftShift(node driver.Node) {
	t.log.Debug().
		Str("event", "shift_shift").
		Str("node", node.String()).
		Msg("shift_shift")
}
