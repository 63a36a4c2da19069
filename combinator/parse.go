package combinator

import (
	"github.com/nihei9/combc/driver"
)

// defaultWhitespace is the inter-token whitespace skipped between tokens
// when a parse doesn't override it, per spec.md §3.1.
const defaultWhitespace = " \t\n"

// Result is the outcome of a successful parse: the flat parse tree of
// matched tokens and reduced values (spec.md §6's "list of leaves"), plus
// the unconsumed remainder of the input.
type Result struct {
	Tree      []any
	Remaining string
	Line      int
	Col       int
}

// ParseOption configures a single Parse call.
type ParseOption func(*parseConfig)

type parseConfig struct {
	whitespace   string
	whitespaceOK bool
	log          driver.Logger
}

// WithWhitespace overrides the set of characters treated as inter-token
// whitespace for this parse. Pass "" together with WithoutWhitespace to
// disable skipping entirely; pass a non-empty set to use it instead of the
// default " \t\n".
func WithWhitespace(chars string) ParseOption {
	return func(c *parseConfig) {
		c.whitespace = chars
		c.whitespaceOK = true
	}
}

// WithoutWhitespace disables whitespace skipping entirely for this parse —
// spec.md §3.1's "none" whitespace value.
func WithoutWhitespace() ParseOption {
	return func(c *parseConfig) {
		c.whitespace = ""
		c.whitespaceOK = false
	}
}

// WithLogger attaches a trace sink (see the tracing package) to this parse.
func WithLogger(log driver.Logger) ParseOption {
	return func(c *parseConfig) {
		c.log = log
	}
}

func parse(root Combinator, text string, opts ...ParseOption) (*Result, error) {
	cfg := parseConfig{
		whitespace:   defaultWhitespace,
		whitespaceOK: true,
		log:          driver.NopLogger{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	st := driver.NewState(text, cfg.whitespace, cfg.whitespaceOK, cfg.log)
	if err := driver.Run(root, st); err != nil {
		return nil, err
	}

	return &Result{
		Tree:      st.Tree(),
		Remaining: st.Text(),
		Line:      st.Line(),
		Col:       st.Col(),
	}, nil
}

// Parse runs root as the grammar's entry point. It is equivalent to
// root.Parse(text, opts...); both exist because spec.md §6 describes
// "calling a combinator as a function", which this package models as either
// a method on the combinator or a free function taking one explicitly.
func Parse(root Combinator, text string, opts ...ParseOption) (*Result, error) {
	return parse(root, text, opts...)
}
