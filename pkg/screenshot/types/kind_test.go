package types

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestKindFlag(t *testing.T) {
	kind := KindFull
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Var(&kind, "kind", "")

	require.NoError(t, flags.Parse([]string{"--kind", "Window"}))
	require.Equal(t, KindWindow, kind)

	require.Error(t, flags.Parse([]string{"--kind", "undefined"}))
	require.Error(t, flags.Parse([]string{"--kind", "video"}))
	require.Equal(t, KindWindow, kind)
}

func TestParseKind(t *testing.T) {
	for k := KindUndefined; k < endOfKind; k++ {
		require.Equal(t, k, ParseKind(k.String()))
	}
}
