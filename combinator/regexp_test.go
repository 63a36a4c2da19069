package combinator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegex_MatchesAnchoredAtCursor(t *testing.T) {
	g := Regex(`[0-9]+`, false)

	res, err := g.Parse("123abc", WithoutWhitespace())
	require.NoError(t, err)
	require.Equal(t, "abc", res.Remaining)
	require.Equal(t, []any{"123"}, res.Tree)
}

func TestRegex_DoesNotMatchMidString(t *testing.T) {
	g := Regex(`[0-9]+`, false)

	_, err := g.Parse("abc123", WithoutWhitespace())
	require.Error(t, err)
}

func TestRegex_CaseInsensitive(t *testing.T) {
	g := Regex(`foo`, true)

	res, err := g.Parse("FOObar", WithoutWhitespace())
	require.NoError(t, err)
	require.Equal(t, "bar", res.Remaining)
}
