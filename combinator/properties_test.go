package combinator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/nihei9/combc/driver"
)

func TestDeterminism(t *testing.T) {
	g := Seq(Lit("foo"), Choice(Lit("bar"), Lit("baz")))

	res1, err1 := g.Parse("foobaz")
	res2, err2 := g.Parse("foobaz")
	require.NoError(t, err1)
	require.NoError(t, err2)

	if diff := cmp.Diff(res1, res2); diff != "" {
		t.Errorf("two parses of the same input diverged (-first +second):\n%s", diff)
	}
}

func TestGreedyCommit_LaterAlternativeNeverTried(t *testing.T) {
	tried := map[string]bool{}
	mark := func(name string, c Combinator) Combinator {
		return c.Reduce(func(xs []any) any {
			tried[name] = true
			return xs
		})
	}

	g := Choice(mark("a", Lit("foo")), mark("b", Lit("foo")))
	_, err := g.Parse("foo")
	require.NoError(t, err)

	require.True(t, tried["a"], "first alternative should have matched")
	require.False(t, tried["b"], "second alternative must not run once the first commits")
}

func TestNoConsumeOnFailure_ChoiceRollsBackTrial(t *testing.T) {
	// The first alternative matches "foo" then fails on "qux", consuming
	// input along the way; the second alternative must see the original,
	// unconsumed position, not wherever the failed attempt left off.
	g := Choice(Seq(Lit("foo"), Lit("qux")), Seq(Lit("foo"), Lit("bar")))

	res, err := g.Parse("foobar")
	require.NoError(t, err)
	require.Equal(t, "", res.Remaining)
	require.Equal(t, []any{"foo", "bar"}, res.Tree)
}

func TestNamingOpacity_ExpectCollapsesToName(t *testing.T) {
	g := Seq(Lit("foo"), Choice(Lit("bar"), Lit("baz"))).Named("fooBar")

	got := driver.ComputeExpect(g, driver.NewExpectGuard())
	require.Equal(t, []string{"fooBar"}, got)
}

func TestExpectIdempotence_TerminatesOverCycle(t *testing.T) {
	e := NewIndirection("E")
	e.Fill(Choice(Seq(e, "x"), "y"))

	// A failing parse forces expect_core to run over the cyclic grammar;
	// if the recursion guard over Expect didn't terminate, this call would
	// simply never return.
	_, err := e.Parse("z")
	require.Error(t, err)
}
