package tracing

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nihei9/combc/combinator"
)

func TestTracer_LogsEnterAndConsume(t *testing.T) {
	var buf bytes.Buffer
	tr := New(&buf)
	tr.log = tr.log.Level(0) // debug

	g := combinator.Seq(combinator.Lit("foo"), combinator.Lit("bar"))
	_, err := g.Parse("foo bar", combinator.WithLogger(tr))
	require.NoError(t, err)

	out := buf.String()
	require.True(t, strings.Contains(out, `"event":"enter"`))
	require.True(t, strings.Contains(out, `"event":"consume"`))
}

func TestDisabled_ParseStillSucceeds(t *testing.T) {
	tr := Disabled()

	g := combinator.Lit("foo")
	_, err := g.Parse("foo", combinator.WithLogger(tr))
	require.NoError(t, err)
}
