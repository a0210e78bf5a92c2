package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/vortexlabs/vortex/x/amm/keeper"
	"github.com/vortexlabs/vortex/x/amm/types"
)

func TestInvariantsHoldAfterOperations(t *testing.T) {
	k, bank, ctx := setupKeeper(t)
	poolID := createTestPool(t, k, bank, ctx, 1_000_000, 2_000_000, 30)

	fund(ctx, bank, providerAddr, "uatom", 100_000)
	fund(ctx, bank, providerAddr, "uusdt", 200_000)
	_, _, _, err := k.AddLiquidity(ctx, providerAddr, poolID,
		math.NewInt(100_000), math.NewInt(200_000))
	require.NoError(t, err)

	fund(ctx, bank, traderAddr, "uatom", 50_000)
	_, err = k.Swap(ctx, traderAddr, poolID,
		types.NewFungibleAsset("uatom"),
		math.NewInt(50_000), math.ZeroInt(),
		traderAddr,
	)
	require.NoError(t, err)

	_, _, err = k.RemoveLiquidity(ctx, providerAddr, poolID, math.NewInt(50_000))
	require.NoError(t, err)

	msg, broken := keeper.AllInvariants(k)(ctx)
	require.False(t, broken, msg)
}

func TestShareSupplyInvariantDetectsMismatch(t *testing.T) {
	k, bank, ctx := setupKeeper(t)
	poolID := createTestPool(t, k, bank, ctx, 1_000_000, 2_000_000, 30)

	// Inflate the recorded supply without minting shares.
	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	pool.TotalSupply = pool.TotalSupply.Add(math.NewInt(777))
	require.NoError(t, k.SetPool(ctx, pool))

	_, broken := keeper.ShareSupplyInvariant(k)(ctx)
	require.True(t, broken)
}

func TestReserveBackingInvariantDetectsDeficit(t *testing.T) {
	k, bank, ctx := setupKeeper(t)
	poolID := createTestPool(t, k, bank, ctx, 1_000_000, 2_000_000, 30)

	// Claim more reserve than the module account actually holds.
	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	pool.Reserve0 = pool.Reserve0.Add(math.NewInt(1))
	require.NoError(t, k.SetPool(ctx, pool))

	_, broken := keeper.ReserveBackingInvariant(k)(ctx)
	require.True(t, broken)
}

func TestPoolRecordsInvariantDetectsBadPool(t *testing.T) {
	k, bank, ctx := setupKeeper(t)
	poolID := createTestPool(t, k, bank, ctx, 1_000_000, 2_000_000, 30)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	pool.Reserve0 = math.NewInt(-5)
	require.NoError(t, k.SetPool(ctx, pool))

	_, broken := keeper.PoolRecordsInvariant(k)(ctx)
	require.True(t, broken)
}
