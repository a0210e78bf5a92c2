package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vortexlabs/vortex/x/amm/types"
)

// computeSwapOutput prices an exact-input swap against one pool's reserves.
// The fee is carved out of the input (floor division), then the constant
// product formula prices the remainder, again rounding down. Both floors
// favor the pool, so k never decreases across a swap.
func computeSwapOutput(amountIn, reserveIn, reserveOut math.Int, feeBps uint32) (math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("swap input must be positive")
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, types.ErrInsufficientLiquidity.Wrap("pool has an empty reserve")
	}

	amountInWithFee, err := MulDiv(amountIn,
		math.NewInt(int64(types.FeeDenominator-feeBps)),
		math.NewInt(types.FeeDenominator))
	if err != nil {
		return math.Int{}, err
	}
	if amountInWithFee.IsZero() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("swap input too small after fee")
	}

	amountOut, err := MulDiv(amountInWithFee, reserveOut, reserveIn.Add(amountInWithFee))
	if err != nil {
		return math.Int{}, err
	}
	if amountOut.IsZero() {
		return math.Int{}, types.ErrInsufficientLiquidity.Wrap("swap output rounds to zero")
	}
	if amountOut.GTE(reserveOut) {
		return math.Int{}, types.ErrInsufficientLiquidity.Wrapf(
			"output %s would drain reserve %s", amountOut, reserveOut)
	}
	return amountOut, nil
}

// applySwap prices amountIn against the pool and persists the post-swap
// reserves. The full input, fee included, is credited to the input reserve;
// that is how the fee accrues to the liquidity providers.
func (k Keeper) applySwap(
	ctx sdk.Context,
	pool types.Pool,
	assetIn types.Asset,
	amountIn math.Int,
) (types.Pool, math.Int, error) {
	reserveIn, reserveOut, zeroForOne, err := pool.ReservesFor(assetIn)
	if err != nil {
		return types.Pool{}, math.Int{}, err
	}

	amountOut, err := computeSwapOutput(amountIn, reserveIn, reserveOut, pool.FeeBps)
	if err != nil {
		return types.Pool{}, math.Int{}, err
	}

	newReserveIn := reserveIn.Add(amountIn)
	newReserveOut := reserveOut.Sub(amountOut)
	if newReserveIn.GT(types.MaxReserve) {
		return types.Pool{}, math.Int{}, types.ErrReserveOverflow.Wrapf(
			"pool %s input reserve would exceed cap", pool.ID)
	}

	oldK, err := SafeMul(reserveIn, reserveOut)
	if err != nil {
		return types.Pool{}, math.Int{}, err
	}
	newK, err := SafeMul(newReserveIn, newReserveOut)
	if err != nil {
		return types.Pool{}, math.Int{}, err
	}
	if newK.LT(oldK) {
		return types.Pool{}, math.Int{}, types.ErrInvariantViolation.Wrapf(
			"pool %s constant product decreased: %s -> %s", pool.ID, oldK, newK)
	}

	if zeroForOne {
		pool.Reserve0 = newReserveIn
		pool.Reserve1 = newReserveOut
	} else {
		pool.Reserve0 = newReserveOut
		pool.Reserve1 = newReserveIn
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return types.Pool{}, math.Int{}, err
	}
	return pool, amountOut, nil
}

// Swap trades an exact input amount against a single pool and sends the
// output to the recipient. Fails without effect if the realized output is
// below minAmountOut.
func (k Keeper) Swap(
	ctx sdk.Context,
	trader sdk.AccAddress,
	poolID types.PoolID,
	assetIn types.Asset,
	amountIn, minAmountOut math.Int,
	recipient sdk.AccAddress,
) (math.Int, error) {
	if err := k.guard.Enter(); err != nil {
		return math.Int{}, err
	}
	defer k.guard.Exit()

	var amountOut math.Int
	err := k.branch(ctx, func(ctx sdk.Context) error {
		var err error
		amountOut, err = k.swap(ctx, trader, poolID, assetIn, amountIn, minAmountOut, recipient)
		return err
	})
	if err != nil {
		k.metrics.recordSwap("error", assetIn.String(), 0)
		return math.Int{}, err
	}

	k.metrics.recordSwap("ok", assetIn.String(), floatAmount(amountIn))
	return amountOut, nil
}

func (k Keeper) swap(
	ctx sdk.Context,
	trader sdk.AccAddress,
	poolID types.PoolID,
	assetIn types.Asset,
	amountIn, minAmountOut math.Int,
	recipient sdk.AccAddress,
) (math.Int, error) {
	if trader.Empty() || recipient.Empty() {
		return math.Int{}, types.ErrInvalidRecipient.Wrap("trader and recipient addresses are required")
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("swap input must be positive")
	}
	if minAmountOut.IsNil() || minAmountOut.IsNegative() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("min amount out cannot be negative")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, err
	}
	assetOut, err := pool.Other(assetIn)
	if err != nil {
		return math.Int{}, err
	}

	if err := k.pullAsset(ctx, assetIn, trader, amountIn); err != nil {
		return math.Int{}, err
	}

	_, amountOut, err := k.applySwap(ctx, pool, assetIn, amountIn)
	if err != nil {
		return math.Int{}, err
	}
	if amountOut.LT(minAmountOut) {
		return math.Int{}, types.ErrSlippageExceeded.Wrapf(
			"output %s below minimum %s", amountOut, minAmountOut)
	}

	if err := k.pushAsset(ctx, assetOut, recipient, amountOut); err != nil {
		return math.Int{}, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSwap,
		sdk.NewAttribute(types.AttributeKeyPoolID, poolID.String()),
		sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
		sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
		sdk.NewAttribute(types.AttributeKeyAssetIn, assetIn.String()),
		sdk.NewAttribute(types.AttributeKeyAssetOut, assetOut.String()),
		sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
		sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
	))

	return amountOut, nil
}

// SimulateSwap prices an exact-input swap without touching state.
func (k Keeper) SimulateSwap(
	ctx sdk.Context,
	poolID types.PoolID,
	assetIn types.Asset,
	amountIn math.Int,
) (math.Int, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, err
	}
	reserveIn, reserveOut, _, err := pool.ReservesFor(assetIn)
	if err != nil {
		return math.Int{}, err
	}
	return computeSwapOutput(amountIn, reserveIn, reserveOut, pool.FeeBps)
}

// SpotPrice returns the marginal price of the input asset in units of the
// output asset, ignoring fees and slippage.
func (k Keeper) SpotPrice(ctx sdk.Context, poolID types.PoolID, assetIn types.Asset) (math.LegacyDec, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.LegacyDec{}, err
	}
	reserveIn, reserveOut, _, err := pool.ReservesFor(assetIn)
	if err != nil {
		return math.LegacyDec{}, err
	}
	if !reserveIn.IsPositive() {
		return math.LegacyDec{}, types.ErrInsufficientLiquidity.Wrap("pool has an empty reserve")
	}
	return math.LegacyNewDecFromInt(reserveOut).QuoInt(reserveIn), nil
}

func floatAmount(amount math.Int) float64 {
	f, _ := math.LegacyNewDecFromInt(amount).Float64()
	return f
}
