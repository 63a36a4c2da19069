package combinator

import "fmt"

// toCombinator is the Go analogue of the reference implementation's
// asCombinator: anywhere the algebra expects a Combinator, a bare string is
// implicitly wrapped as a Lit (spec.md §3.1, §6). Any other type is a
// construction-time programming error, not a parse error, so it panics.
func toCombinator(v any) Combinator {
	switch t := v.(type) {
	case Combinator:
		return t
	case string:
		return Lit(t)
	default:
		panic(fmt.Sprintf("combinator: %T is not a Combinator or string", v))
	}
}
