// Package email implements the RFC 5321 mailbox grammar as a worked example
// of the combinator algebra: a handful of regexes and literals composed
// through Seq/Choice/Many, with no custom value reduction.
package email

import (
	"github.com/nihei9/combc/combinator"
)

// Mailbox builds the grammar for an RFC 5321 mailbox: localpart@domain, with
// both a dotted-atom and a quoted-string form for the local part, and both
// a domain-name and an IPv4 address-literal form for the domain.
func Mailbox() combinator.Combinator {
	snum := combinator.Regex(`[0-9]{1,3}`, false)
	ipv4address := combinator.Seq(snum, combinator.RepeatExact(combinator.Seq(".", snum), 3, 3, nil))
	addressLiteral := combinator.Seq("[", ipv4address, "]")

	subdomain := combinator.Regex(`[a-z0-9][-a-z0-9]*[a-z0-9]`, true)
	domain := combinator.Seq(subdomain, combinator.Many(combinator.Seq(".", subdomain)))

	atom := combinator.Regex(`[-a-z0-9!#$%&'*+/=?^_`+"`"+`{|}~]+`, true)
	dotString := combinator.Seq(atom, combinator.Many(combinator.Seq(".", atom)))

	qcontentSMTP := combinator.Regex(`([^\\"]|\\.)*`, false)
	quotedString := combinator.Seq(`"`, combinator.Many(qcontentSMTP), `"`)

	localPart := combinator.Choice(dotString, quotedString)

	return combinator.Seq(localPart, "@", combinator.Choice(domain, addressLiteral))
}

// Parse recognizes s as a single mailbox. RFC 5321 addresses contain no
// insignificant whitespace, so whitespace skipping is disabled.
func Parse(s string) (*combinator.Result, error) {
	return Mailbox().Parse(s, combinator.WithoutWhitespace())
}
