package types_test

import (
	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func amt(x int64) math.Int {
	return math.NewInt(x)
}

func requireInt(t require.TestingT, want int64, got math.Int) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	require.Equal(t, math.NewInt(want).String(), got.String())
}
