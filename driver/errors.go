package driver

import "errors"

// ErrNoMatch is the sentinel a Node's Recognize returns to mean "I found no
// match at the current position" (spec.md §4.4 step 4's "no match" result).
// Run converts it into a ParseError or EndOfInputError; any other non-nil
// error returned by Recognize is assumed to already be a concrete error
// produced by a nested Run call and is propagated unchanged.
var ErrNoMatch = errors.New("combc/driver: no match")
