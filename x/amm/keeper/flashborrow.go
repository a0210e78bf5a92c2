package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vortexlabs/vortex/x/amm/types"
)

// FlashBorrow lends amount of one pool asset to the borrower for the duration
// of a synchronous callback. The borrower must return at least amount plus
// the flash fee to the module account before the callback returns; otherwise
// the whole operation, callback side effects included, is rolled back. On
// success the fee is folded into the pool's reserve, so the pool ends
// strictly better off.
//
// The reentrancy guard is held across the callback, so the borrower cannot
// call back into any mutating AMM operation.
func (k Keeper) FlashBorrow(
	ctx sdk.Context,
	borrowerAddr sdk.AccAddress,
	borrower types.FlashBorrower,
	poolID types.PoolID,
	asset types.Asset,
	amount math.Int,
	payload []byte,
) (math.Int, error) {
	if err := k.guard.Enter(); err != nil {
		return math.Int{}, err
	}
	defer k.guard.Exit()

	var fee math.Int
	err := k.branch(ctx, func(ctx sdk.Context) error {
		var err error
		fee, err = k.flashBorrow(ctx, borrowerAddr, borrower, poolID, asset, amount, payload)
		return err
	})
	if err != nil {
		k.metrics.recordFlashBorrow("error")
		return math.Int{}, err
	}

	k.metrics.recordFlashBorrow("ok")
	return fee, nil
}

func (k Keeper) flashBorrow(
	ctx sdk.Context,
	borrowerAddr sdk.AccAddress,
	borrower types.FlashBorrower,
	poolID types.PoolID,
	asset types.Asset,
	amount math.Int,
	payload []byte,
) (math.Int, error) {
	if borrower == nil {
		return math.Int{}, types.ErrInvalidRecipient.Wrap("flash borrower callback is required")
	}
	if borrowerAddr.Empty() {
		return math.Int{}, types.ErrInvalidRecipient.Wrap("borrower address is empty")
	}
	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("borrow amount must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, err
	}
	reserve, _, zeroForOne, err := pool.ReservesFor(asset)
	if err != nil {
		return math.Int{}, err
	}
	if reserve.LT(amount) {
		return math.Int{}, types.ErrInsufficientLiquidity.Wrapf(
			"borrowing %s but pool %s holds %s", amount, poolID, reserve)
	}

	fee, err := MulDiv(amount,
		math.NewInt(int64(k.GetParams(ctx).FlashFeeBps)),
		math.NewInt(types.FeeDenominator))
	if err != nil {
		return math.Int{}, err
	}

	balanceBefore, err := k.moduleBalance(ctx, asset)
	if err != nil {
		return math.Int{}, err
	}

	// Track the outstanding loan in the reserve while the callback runs.
	if zeroForOne {
		pool.Reserve0 = reserve.Sub(amount)
	} else {
		pool.Reserve1 = reserve.Sub(amount)
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, err
	}
	if err := k.pushAsset(ctx, asset, borrowerAddr, amount); err != nil {
		return math.Int{}, err
	}

	if err := borrower.OnFlashBorrow(ctx, poolID, asset, amount, fee, payload); err != nil {
		return math.Int{}, types.ErrRepaymentShortfall.Wrapf("borrower callback failed: %v", err)
	}

	balanceAfter, err := k.moduleBalance(ctx, asset)
	if err != nil {
		return math.Int{}, err
	}
	owed := balanceBefore.Add(fee)
	if balanceAfter.LT(owed) {
		return math.Int{}, types.ErrRepaymentShortfall.Wrapf(
			"module balance %s after callback, need at least %s", balanceAfter, owed)
	}

	restored := reserve.Add(fee)
	if restored.GT(types.MaxReserve) {
		return math.Int{}, types.ErrReserveOverflow.Wrapf("pool %s reserve would exceed cap", poolID)
	}
	if zeroForOne {
		pool.Reserve0 = restored
	} else {
		pool.Reserve1 = restored
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeFlashBorrow,
		sdk.NewAttribute(types.AttributeKeyPoolID, poolID.String()),
		sdk.NewAttribute(types.AttributeKeyBorrower, borrowerAddr.String()),
		sdk.NewAttribute(types.AttributeKeyAsset, asset.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
	))

	return fee, nil
}
