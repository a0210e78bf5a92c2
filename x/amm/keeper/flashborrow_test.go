package keeper_test

import (
	"errors"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/vortexlabs/vortex/x/amm/types"
)

// callbackBorrower adapts a closure to the FlashBorrower interface.
type callbackBorrower struct {
	fn func(ctx sdk.Context, poolID types.PoolID, asset types.Asset, amount, fee math.Int, payload []byte) error
}

func (b callbackBorrower) OnFlashBorrow(ctx sdk.Context, poolID types.PoolID, asset types.Asset, amount, fee math.Int, payload []byte) error {
	return b.fn(ctx, poolID, asset, amount, fee, payload)
}

func TestFlashBorrowRepaid(t *testing.T) {
	k, bank, ctx := setupKeeper(t)
	poolID := createTestPool(t, k, bank, ctx, 1_000_000, 2_000_000, 30)

	// The borrower needs a little of their own to cover the fee.
	fund(ctx, bank, otherAddr, "uatom", 100)

	var seenAmount, seenFee math.Int
	borrower := callbackBorrower{fn: func(ctx sdk.Context, poolID types.PoolID, asset types.Asset, amount, fee math.Int, payload []byte) error {
		seenAmount, seenFee = amount, fee

		// The loan arrived before the callback.
		require.Equal(t, math.NewInt(10100), balanceOf(ctx, bank, otherAddr, "uatom"))

		repay := sdk.NewCoins(sdk.NewCoin("uatom", amount.Add(fee)))
		return bank.SendCoins(ctx, otherAddr, k.GetModuleAddress(), repay)
	}}

	fee, err := k.FlashBorrow(ctx, otherAddr, borrower, poolID,
		types.NewFungibleAsset("uatom"), math.NewInt(10000), nil)
	require.NoError(t, err)

	// fee = 10000 * 5 / 10000 = 5.
	require.Equal(t, math.NewInt(5), fee)
	require.Equal(t, math.NewInt(10000), seenAmount)
	require.Equal(t, fee, seenFee)

	// The pool ends strictly better off by exactly the fee.
	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_005), pool.Reserve0)
	require.Equal(t, math.NewInt(2_000_000), pool.Reserve1)
	require.Equal(t, math.NewInt(1_000_005), balanceOf(ctx, bank, k.GetModuleAddress(), "uatom"))

	// The borrower paid only the fee.
	require.Equal(t, math.NewInt(95), balanceOf(ctx, bank, otherAddr, "uatom"))
}

func TestFlashBorrowShortfallRollsBack(t *testing.T) {
	k, bank, ctx := setupKeeper(t)
	poolID := createTestPool(t, k, bank, ctx, 1_000_000, 2_000_000, 30)

	borrower := callbackBorrower{fn: func(ctx sdk.Context, poolID types.PoolID, asset types.Asset, amount, fee math.Int, payload []byte) error {
		// Repay the principal but keep the fee.
		repay := sdk.NewCoins(sdk.NewCoin("uatom", amount))
		return bank.SendCoins(ctx, otherAddr, k.GetModuleAddress(), repay)
	}}

	_, err := k.FlashBorrow(ctx, otherAddr, borrower, poolID,
		types.NewFungibleAsset("uatom"), math.NewInt(10000), nil)
	require.ErrorIs(t, err, types.ErrRepaymentShortfall)

	// Everything including the callback's own transfer was unwound.
	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), pool.Reserve0)
	require.True(t, balanceOf(ctx, bank, otherAddr, "uatom").IsZero())
	require.Equal(t, math.NewInt(1_000_000), balanceOf(ctx, bank, k.GetModuleAddress(), "uatom"))
}

func TestFlashBorrowCallbackErrorRollsBack(t *testing.T) {
	k, bank, ctx := setupKeeper(t)
	poolID := createTestPool(t, k, bank, ctx, 1_000_000, 2_000_000, 30)

	borrower := callbackBorrower{fn: func(ctx sdk.Context, poolID types.PoolID, asset types.Asset, amount, fee math.Int, payload []byte) error {
		return errors.New("strategy failed")
	}}

	_, err := k.FlashBorrow(ctx, otherAddr, borrower, poolID,
		types.NewFungibleAsset("uatom"), math.NewInt(10000), nil)
	require.ErrorIs(t, err, types.ErrRepaymentShortfall)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), pool.Reserve0)
	require.True(t, balanceOf(ctx, bank, otherAddr, "uatom").IsZero())
}

func TestFlashBorrowExceedsReserve(t *testing.T) {
	k, bank, ctx := setupKeeper(t)
	poolID := createTestPool(t, k, bank, ctx, 1_000_000, 2_000_000, 30)

	borrower := callbackBorrower{fn: func(ctx sdk.Context, poolID types.PoolID, asset types.Asset, amount, fee math.Int, payload []byte) error {
		return nil
	}}

	_, err := k.FlashBorrow(ctx, otherAddr, borrower, poolID,
		types.NewFungibleAsset("uatom"), math.NewInt(1_000_001), nil)
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}

func TestFlashBorrowCallbackCannotReenter(t *testing.T) {
	k, bank, ctx := setupKeeper(t)
	poolID := createTestPool(t, k, bank, ctx, 1_000_000, 2_000_000, 30)

	fund(ctx, bank, otherAddr, "uatom", 100)

	borrower := callbackBorrower{fn: func(ctx sdk.Context, poolID types.PoolID, asset types.Asset, amount, fee math.Int, payload []byte) error {
		// Any mutating entry point is refused while the borrow is in flight.
		_, swapErr := k.Swap(ctx, otherAddr, poolID,
			types.NewFungibleAsset("uatom"),
			math.NewInt(100), math.ZeroInt(),
			otherAddr,
		)
		require.ErrorIs(t, swapErr, types.ErrReentrancy)

		_, _, _, addErr := k.AddLiquidity(ctx, otherAddr, poolID,
			math.NewInt(100), math.NewInt(100))
		require.ErrorIs(t, addErr, types.ErrReentrancy)

		repay := sdk.NewCoins(sdk.NewCoin("uatom", amount.Add(fee)))
		return bank.SendCoins(ctx, otherAddr, k.GetModuleAddress(), repay)
	}}

	_, err := k.FlashBorrow(ctx, otherAddr, borrower, poolID,
		types.NewFungibleAsset("uatom"), math.NewInt(10000), nil)
	require.NoError(t, err)

	// The guard reopened after the borrow completed.
	fund(ctx, bank, traderAddr, "uatom", 100)
	_, err = k.Swap(ctx, traderAddr, poolID,
		types.NewFungibleAsset("uatom"),
		math.NewInt(100), math.ZeroInt(),
		traderAddr,
	)
	require.NoError(t, err)
}

func TestFlashBorrowSmallAmountZeroFee(t *testing.T) {
	k, bank, ctx := setupKeeper(t)
	poolID := createTestPool(t, k, bank, ctx, 1_000_000, 2_000_000, 30)

	borrower := callbackBorrower{fn: func(ctx sdk.Context, poolID types.PoolID, asset types.Asset, amount, fee math.Int, payload []byte) error {
		repay := sdk.NewCoins(sdk.NewCoin("uatom", amount))
		return bank.SendCoins(ctx, otherAddr, k.GetModuleAddress(), repay)
	}}

	// 100 * 5 / 10000 floors to zero: repaying the bare principal suffices.
	fee, err := k.FlashBorrow(ctx, otherAddr, borrower, poolID,
		types.NewFungibleAsset("uatom"), math.NewInt(100), nil)
	require.NoError(t, err)
	require.True(t, fee.IsZero())

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), pool.Reserve0)
}
