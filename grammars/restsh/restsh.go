// Package restsh implements the expression grammar of a small interactive
// shell: constants, variables, object/array/dict literals, closures, calls,
// operator expressions, and a handful of statement forms (let, import,
// help, exit, assignment). It exercises Indirection and Analyze over a
// grammar with genuine mutual/left recursion through "expression".
package restsh

import (
	"github.com/nihei9/combc/combinator"
)

// Names given to the sub-grammars below via combinator.Named. This package
// builds no custom reducers, so a named node's value in the tree remains
// its matched leaves and the names never appear in the parse tree — naming
// here is purely for error messages and for Choice's expect set staying
// readable.
const (
	NameString     = "string"
	NameInteger    = "integer"
	NameFloat      = "float"
	NameSymbol     = "symbol"
	NameOperator   = "operator"
	NameConstant   = "constant"
	NameReference  = "reference"
	NameLet        = "let"
	NameHelp       = "help"
	NameExit       = "exit"
	NameImport     = "import"
	NameAssignment = "assignment"
)

// Grammar is the full set of combinators making up the shell's expression
// and statement language, built once by Build and handed back so callers
// can parse from any entry point (an interactive shell typically parses
// from Grammar.Top; a formatter might parse from Grammar.Expression alone).
type Grammar struct {
	Expression combinator.Combinator
	Top        combinator.Combinator
}

// Build constructs the grammar graph. It is not safe to call concurrently
// with parsing that reuses the same Grammar, since construction fills
// Expression's indirection in place (spec.md's "mutation operations on the
// graph must happen during construction, not interleaved with parsing").
func Build() *Grammar {
	stringLit := combinator.Regex(`"(\\"|[^"])*"`, false).Named(NameString)
	integer := combinator.Regex(`[+-]?[0-9]+`, false).Named(NameInteger)
	floating := combinator.Regex(`[+-]?[0-9]+\.[0-9]+`, false).Named(NameFloat)
	symbol := combinator.Regex(`[_a-zA-Z][_a-zA-Z0-9]*`, false).Named(NameSymbol)
	operator := combinator.Regex(`[-+*/|&^$@?~=<>]+`, false).Named(NameOperator)

	expr := combinator.NewIndirection("expression")

	constant := combinator.Choice(stringLit, floating, integer).Named(NameConstant)
	boolean := combinator.Seq("!", expr)
	variable := symbol
	objectRef := combinator.Seq(expr, ".", symbol).Named(NameReference)
	array := combinator.Seq("[", combinator.SepBy(expr, ","), "]")
	closure := combinator.Seq(`\`, combinator.SepBy(symbol, ","), ".", expr)
	dictObject := combinator.Seq("{", combinator.SepBy(combinator.Seq(symbol, ":", expr), ","), "}")
	call := combinator.Seq(expr, "(", combinator.SepBy(combinator.Seq(symbol, ":", expr), ","), ")")
	opcall := combinator.Seq(expr, operator, expr)
	tryex := combinator.Seq("try", expr)
	subscript := combinator.Seq(expr, "[", expr, "]")
	group := combinator.Seq("(", expr, ")")
	ifthen := combinator.Seq("if", expr, "then", expr)
	define := combinator.Seq("let", variable).Named(NameLet)
	objectLvalue := combinator.Choice(define, objectRef, variable)

	describe := combinator.Seq("help", combinator.Optional(expr)).Named(NameHelp)
	ext := combinator.Lit("exit").Named(NameExit)
	imprt := combinator.Seq("import", symbol).Named(NameImport)
	assignment := combinator.Seq(objectLvalue, "=", expr).Named(NameAssignment)

	expr.Fill(combinator.Choice(
		call,
		opcall,
		subscript,
		objectRef,

		dictObject,
		closure,
		array,
		constant,
		boolean,
		tryex,
		ifthen,
		group,
		variable,
	))

	top := combinator.Analyze(combinator.Choice(describe, ext, imprt, assignment, define, expr))

	return &Grammar{
		Expression: expr,
		Top:        top,
	}
}

// Parse recognizes s as a complete top-level statement or expression.
func Parse(s string) (*combinator.Result, error) {
	return Build().Top.Parse(s)
}
