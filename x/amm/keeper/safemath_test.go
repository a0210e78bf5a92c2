package keeper_test

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/vortexlabs/vortex/x/amm/keeper"
	"github.com/vortexlabs/vortex/x/amm/types"
)

func TestIntSqrt(t *testing.T) {
	tests := []struct {
		in   int64
		want int64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{8, 2},
		{9, 3},
		{999999, 999},
		{1000000, 1000},
		{1000001, 1000},
		{2000000, 1414},
	}

	for _, tc := range tests {
		got, err := keeper.IntSqrt(math.NewInt(tc.in))
		require.NoError(t, err)
		require.Equal(t, math.NewInt(tc.want), got, "sqrt(%d)", tc.in)
	}
}

func TestIntSqrtLarge(t *testing.T) {
	// sqrt(MaxReserve^2) must come back exactly.
	squared := types.MaxReserve.Mul(types.MaxReserve)
	got, err := keeper.IntSqrt(squared)
	require.NoError(t, err)
	require.Equal(t, types.MaxReserve, got)
}

func TestIntSqrtNegative(t *testing.T) {
	_, err := keeper.IntSqrt(math.NewInt(-1))
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestMulDiv(t *testing.T) {
	got, err := keeper.MulDiv(math.NewInt(7), math.NewInt(3), math.NewInt(2))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(10), got) // floor(21/2)

	got, err = keeper.MulDiv(math.NewInt(1), math.NewInt(1), math.NewInt(3))
	require.NoError(t, err)
	require.True(t, got.IsZero())

	// The intermediate product may exceed the Int range as long as the
	// quotient fits.
	huge := types.MaxReserve
	got, err = keeper.MulDiv(huge, huge, huge)
	require.NoError(t, err)
	require.Equal(t, huge, got)
}

func TestMulDivByZero(t *testing.T) {
	_, err := keeper.MulDiv(math.NewInt(1), math.NewInt(1), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrOverflow)
}

func TestSafeMulOverflow(t *testing.T) {
	wide := math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 200))

	_, err := keeper.SafeMul(wide, wide)
	require.ErrorIs(t, err, types.ErrOverflow)

	got, err := keeper.SafeMul(math.NewInt(1000), math.NewInt(2000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(2000000), got)
}
