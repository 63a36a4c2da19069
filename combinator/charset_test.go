package combinator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCharSet_MatchesAnyMember(t *testing.T) {
	g := CharSet("a", "b", "c")

	res, err := g.Parse("bxx", WithoutWhitespace())
	require.NoError(t, err)
	require.Equal(t, "xx", res.Remaining)
	require.Equal(t, []any{"b"}, res.Tree)
}

func TestCharSet_NoMemberMatches(t *testing.T) {
	g := CharSet("a", "b", "c")

	_, err := g.Parse("xyz", WithoutWhitespace())
	require.Error(t, err)
}

func TestCharSet_MultiByteMembers(t *testing.T) {
	g := CharSet("foo", "bar")

	res, err := g.Parse("barbaz", WithoutWhitespace())
	require.NoError(t, err)
	require.Equal(t, "baz", res.Remaining)
	require.Equal(t, []any{"bar"}, res.Tree)
}
