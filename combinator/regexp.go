package combinator

import (
	"regexp"

	"github.com/nihei9/combc/driver"
)

type regexNode struct {
	Base
	src string
	re  *regexp.Regexp
}

// Regex matches pattern anchored at the cursor. The pattern is compiled once
// at construction time — a malformed pattern is a grammar-construction bug,
// so Regex panics rather than returning an error, the same way toCombinator
// panics on an operand that is neither a Combinator nor a string.
func Regex(pattern string, caseInsensitive bool) Combinator {
	anchored := "^(?:" + pattern + ")"
	if caseInsensitive {
		anchored = "(?i)" + anchored
	}
	re := regexp.MustCompile(anchored)

	n := &regexNode{Base: newBase(false /* recurse */, false /* compound */), src: pattern, re: re}
	n.setSelf(n)
	return n
}

func (n *regexNode) Recognize(st *driver.State) error {
	loc := n.re.FindStringIndex(st.Text())
	if loc == nil {
		return driver.ErrNoMatch
	}
	st.Consume(loc[1])
	return nil
}

func (n *regexNode) Expect(*driver.ExpectGuard) []string {
	return []string{n.src}
}

func (n *regexNode) String() string {
	return envelopeString(n.Name(), "Regex("+n.src+")")
}
