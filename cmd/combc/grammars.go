package main

import (
	"fmt"

	"github.com/nihei9/combc/combinator"
	"github.com/nihei9/combc/grammars/email"
	"github.com/nihei9/combc/grammars/restsh"
)

// namedGrammar is one entry point a user can select on the command line.
// Unlike vartan, this engine has no textual grammar-description format to
// load at runtime — a combc grammar is a Go value built by calling
// constructor functions — so the CLI ships a small built-in registry of the
// example grammars instead of a "compile a file" step.
type namedGrammar struct {
	root combinator.Combinator
	opts []combinator.ParseOption
}

func grammarRegistry() map[string]namedGrammar {
	return map[string]namedGrammar{
		"email":  {root: email.Mailbox(), opts: []combinator.ParseOption{combinator.WithoutWhitespace()}},
		"restsh": {root: restsh.Build().Top},
	}
}

func lookupGrammar(name string) (namedGrammar, error) {
	g, ok := grammarRegistry()[name]
	if !ok {
		return namedGrammar{}, fmt.Errorf("unknown grammar %q (available: email, restsh)", name)
	}
	return g, nil
}
