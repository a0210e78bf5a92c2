package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vortexlabs/vortex/x/amm/types"
)

// SwapMultiHop routes an exact input through a chain of pools. path holds the
// ordered assets, poolIDs one pool per consecutive pair; each hop's output
// funds the next hop's input. The slippage bound applies to the final output
// only, and any hop failure unwinds the entire route.
func (k Keeper) SwapMultiHop(
	ctx sdk.Context,
	trader sdk.AccAddress,
	path []types.Asset,
	poolIDs []types.PoolID,
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
		amountOut, err = k.swapMultiHop(ctx, trader, path, poolIDs, amountIn, minAmountOut, recipient)
		return err
	})
	if err != nil {
		k.metrics.recordSwap("error", routeAssetLabel(path), 0)
		return math.Int{}, err
	}

	k.metrics.recordSwap("ok", routeAssetLabel(path), floatAmount(amountIn))
	return amountOut, nil
}

func (k Keeper) swapMultiHop(
	ctx sdk.Context,
	trader sdk.AccAddress,
	path []types.Asset,
	poolIDs []types.PoolID,
	amountIn, minAmountOut math.Int,
	recipient sdk.AccAddress,
) (math.Int, error) {
	if trader.Empty() || recipient.Empty() {
		return math.Int{}, types.ErrInvalidRecipient.Wrap("trader and recipient addresses are required")
	}
	if len(path) < 2 {
		return math.Int{}, types.ErrInvalidRoute.Wrapf("path needs at least 2 assets, got %d", len(path))
	}
	if len(poolIDs) != len(path)-1 {
		return math.Int{}, types.ErrInvalidRoute.Wrapf(
			"need %d pools for %d assets, got %d", len(path)-1, len(path), len(poolIDs))
	}
	if len(poolIDs) > types.MaxSwapHops {
		return math.Int{}, types.ErrInvalidRoute.Wrapf(
			"route has %d hops, maximum is %d", len(poolIDs), types.MaxSwapHops)
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("swap input must be positive")
	}
	if minAmountOut.IsNil() || minAmountOut.IsNegative() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("min amount out cannot be negative")
	}

	if err := k.pullAsset(ctx, path[0], trader, amountIn); err != nil {
		return math.Int{}, err
	}

	running := amountIn
	for i, poolID := range poolIDs {
		assetIn, assetOut := path[i], path[i+1]

		pool, err := k.GetPool(ctx, poolID)
		if err != nil {
			return math.Int{}, err
		}
		other, err := pool.Other(assetIn)
		if err != nil {
			return math.Int{}, types.ErrInvalidRoute.Wrapf("hop %d: %v", i, err)
		}
		if !other.Equal(assetOut) {
			return math.Int{}, types.ErrInvalidRoute.Wrapf(
				"hop %d: pool %s pairs %s with %s, path expects %s", i, poolID, assetIn, other, assetOut)
		}

		_, hopOut, err := k.applySwap(ctx, pool, assetIn, running)
		if err != nil {
			return math.Int{}, types.ErrInvalidRoute.Wrapf("hop %d: %v", i, err)
		}

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, poolID.String()),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyAssetIn, assetIn.String()),
			sdk.NewAttribute(types.AttributeKeyAssetOut, assetOut.String()),
			sdk.NewAttribute(types.AttributeKeyAmountIn, running.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, hopOut.String()),
			sdk.NewAttribute(types.AttributeKeyHopIndex, fmt.Sprintf("%d", i)),
		))

		running = hopOut
	}

	if running.LT(minAmountOut) {
		return math.Int{}, types.ErrSlippageExceeded.Wrapf(
			"route output %s below minimum %s", running, minAmountOut)
	}

	if err := k.pushAsset(ctx, path[len(path)-1], recipient, running); err != nil {
		return math.Int{}, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeMultiHopSwap,
		sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
		sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
		sdk.NewAttribute(types.AttributeKeyAssetIn, path[0].String()),
		sdk.NewAttribute(types.AttributeKeyAssetOut, path[len(path)-1].String()),
		sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
		sdk.NewAttribute(types.AttributeKeyAmountOut, running.String()),
		sdk.NewAttribute(types.AttributeKeyHops, fmt.Sprintf("%d", len(poolIDs))),
	))

	return running, nil
}

func routeAssetLabel(path []types.Asset) string {
	if len(path) == 0 {
		return ""
	}
	return path[0].String()
}
