package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vortexlabs/vortex/x/amm/types"
)

// GetShares returns an account's share balance in a pool. Missing positions
// read as zero.
func (k Keeper) GetShares(ctx sdk.Context, id types.PoolID, account sdk.AccAddress) math.Int {
	bz := ctx.KVStore(k.storeKey).Get(ShareKey(id, account))
	if bz == nil {
		return math.ZeroInt()
	}

	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("corrupt share position for pool %s: %w", id, err))
	}
	return shares
}

// setShares writes an account's share balance, deleting exhausted positions.
func (k Keeper) setShares(ctx sdk.Context, id types.PoolID, account sdk.AccAddress, shares math.Int) {
	store := ctx.KVStore(k.storeKey)
	key := ShareKey(id, account)
	if shares.IsZero() {
		store.Delete(key)
		return
	}

	bz, err := shares.Marshal()
	if err != nil {
		panic(fmt.Errorf("marshal share position for pool %s: %w", id, err))
	}
	store.Set(key, bz)
}

// IterateShares walks every share position of a pool until fn returns true.
func (k Keeper) IterateShares(ctx sdk.Context, id types.PoolID, fn func(account sdk.AccAddress, shares math.Int) bool) {
	store := ctx.KVStore(k.storeKey)
	prefix := SharesByPoolPrefix(id)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		account := sdk.AccAddress(iterator.Key()[len(prefix):])
		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			panic(fmt.Errorf("corrupt share position for pool %s: %w", id, err))
		}
		if fn(account, shares) {
			break
		}
	}
}

// AddLiquidity deposits at the pool's current reserve ratio, using up to the
// desired amounts, and mints proportional shares to the provider. Whichever
// desired amount overshoots the ratio is scaled down; the other is used in
// full. Returns the minted shares and the amounts actually deposited.
func (k Keeper) AddLiquidity(
	ctx sdk.Context,
	provider sdk.AccAddress,
	poolID types.PoolID,
	amount0Desired, amount1Desired math.Int,
) (math.Int, math.Int, math.Int, error) {
	if err := k.guard.Enter(); err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}
	defer k.guard.Exit()

	var liquidity, used0, used1 math.Int
	err := k.branch(ctx, func(ctx sdk.Context) error {
		var err error
		liquidity, used0, used1, err = k.addLiquidity(ctx, provider, poolID, amount0Desired, amount1Desired)
		return err
	})
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}

	k.metrics.recordLiquidity("add")
	return liquidity, used0, used1, nil
}

func (k Keeper) addLiquidity(
	ctx sdk.Context,
	provider sdk.AccAddress,
	poolID types.PoolID,
	amount0Desired, amount1Desired math.Int,
) (math.Int, math.Int, math.Int, error) {
	fail := func(err error) (math.Int, math.Int, math.Int, error) {
		return math.Int{}, math.Int{}, math.Int{}, err
	}

	if provider.Empty() {
		return fail(types.ErrInvalidRecipient.Wrap("provider address is empty"))
	}
	if amount0Desired.IsNil() || !amount0Desired.IsPositive() ||
		amount1Desired.IsNil() || !amount1Desired.IsPositive() {
		return fail(types.ErrInvalidAmount.Wrap("desired amounts must be positive"))
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return fail(err)
	}
	if !pool.Reserve0.IsPositive() || !pool.Reserve1.IsPositive() {
		return fail(types.ErrInvalidPoolState.Wrapf("pool %s has an empty reserve", poolID))
	}

	// Fit the deposit to the current ratio: scale down whichever desired
	// amount overshoots it.
	used0, used1 := amount0Desired, amount1Desired
	optimal1, err := MulDiv(amount0Desired, pool.Reserve1, pool.Reserve0)
	if err != nil {
		return fail(err)
	}
	if optimal1.LTE(amount1Desired) {
		used1 = optimal1
	} else {
		optimal0, err := MulDiv(amount1Desired, pool.Reserve0, pool.Reserve1)
		if err != nil {
			return fail(err)
		}
		if optimal0.GT(amount0Desired) {
			return fail(types.ErrRatioMismatch.Wrapf(
				"deposit %s/%s cannot fit pool ratio %s/%s",
				amount0Desired, amount1Desired, pool.Reserve0, pool.Reserve1))
		}
		used0 = optimal0
	}
	if !used0.IsPositive() || !used1.IsPositive() {
		return fail(types.ErrInvalidAmount.Wrap("deposit rounds to zero on one side"))
	}

	minted0, err := MulDiv(used0, pool.TotalSupply, pool.Reserve0)
	if err != nil {
		return fail(err)
	}
	minted1, err := MulDiv(used1, pool.TotalSupply, pool.Reserve1)
	if err != nil {
		return fail(err)
	}
	liquidity := math.MinInt(minted0, minted1)
	if liquidity.IsZero() {
		return fail(types.ErrInsufficientLiquidity.Wrap("deposit too small to mint shares"))
	}

	newReserve0 := pool.Reserve0.Add(used0)
	newReserve1 := pool.Reserve1.Add(used1)
	if newReserve0.GT(types.MaxReserve) || newReserve1.GT(types.MaxReserve) {
		return fail(types.ErrReserveOverflow.Wrapf("pool %s reserve would exceed cap", poolID))
	}

	if err := k.pullAsset(ctx, pool.Token0, provider, used0); err != nil {
		return fail(err)
	}
	if err := k.pullAsset(ctx, pool.Token1, provider, used1); err != nil {
		return fail(err)
	}

	pool.Reserve0 = newReserve0
	pool.Reserve1 = newReserve1
	pool.TotalSupply = pool.TotalSupply.Add(liquidity)
	if err := k.SetPool(ctx, pool); err != nil {
		return fail(err)
	}
	k.setShares(ctx, poolID, provider, k.GetShares(ctx, poolID, provider).Add(liquidity))

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeLiquidityAdded,
		sdk.NewAttribute(types.AttributeKeyPoolID, poolID.String()),
		sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
		sdk.NewAttribute(types.AttributeKeyAmount0, used0.String()),
		sdk.NewAttribute(types.AttributeKeyAmount1, used1.String()),
		sdk.NewAttribute(types.AttributeKeyLiquidity, liquidity.String()),
	))

	return liquidity, used0, used1, nil
}

// RemoveLiquidity burns the provider's shares and pays out the proportional
// slice of both reserves. The locked MinimumLiquidity floor can never be
// withdrawn, so a pool's supply never reaches zero.
func (k Keeper) RemoveLiquidity(
	ctx sdk.Context,
	provider sdk.AccAddress,
	poolID types.PoolID,
	liquidity math.Int,
) (math.Int, math.Int, error) {
	if err := k.guard.Enter(); err != nil {
		return math.Int{}, math.Int{}, err
	}
	defer k.guard.Exit()

	var amount0, amount1 math.Int
	err := k.branch(ctx, func(ctx sdk.Context) error {
		var err error
		amount0, amount1, err = k.removeLiquidity(ctx, provider, poolID, liquidity)
		return err
	})
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	k.metrics.recordLiquidity("remove")
	return amount0, amount1, nil
}

func (k Keeper) removeLiquidity(
	ctx sdk.Context,
	provider sdk.AccAddress,
	poolID types.PoolID,
	liquidity math.Int,
) (math.Int, math.Int, error) {
	fail := func(err error) (math.Int, math.Int, error) {
		return math.Int{}, math.Int{}, err
	}

	if provider.Empty() {
		return fail(types.ErrInvalidRecipient.Wrap("provider address is empty"))
	}
	if liquidity.IsNil() || !liquidity.IsPositive() {
		return fail(types.ErrInvalidAmount.Wrap("liquidity must be positive"))
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return fail(err)
	}

	shares := k.GetShares(ctx, poolID, provider)
	if shares.LT(liquidity) {
		return fail(types.ErrInsufficientShares.Wrapf(
			"burning %s but %s holds %s in pool %s", liquidity, provider, shares, poolID))
	}

	newSupply := pool.TotalSupply.Sub(liquidity)
	if newSupply.LT(math.NewInt(types.MinimumLiquidity)) {
		return fail(types.ErrBelowMinimumLiquidity.Wrapf(
			"withdrawal would leave supply %s below the locked floor %d", newSupply, types.MinimumLiquidity))
	}

	amount0, err := MulDiv(liquidity, pool.Reserve0, pool.TotalSupply)
	if err != nil {
		return fail(err)
	}
	amount1, err := MulDiv(liquidity, pool.Reserve1, pool.TotalSupply)
	if err != nil {
		return fail(err)
	}
	if !amount0.IsPositive() || !amount1.IsPositive() {
		return fail(types.ErrInsufficientLiquidity.Wrap("withdrawal rounds to zero on one side"))
	}

	pool.Reserve0 = pool.Reserve0.Sub(amount0)
	pool.Reserve1 = pool.Reserve1.Sub(amount1)
	pool.TotalSupply = newSupply
	if err := k.SetPool(ctx, pool); err != nil {
		return fail(err)
	}
	k.setShares(ctx, poolID, provider, shares.Sub(liquidity))

	if err := k.pushAsset(ctx, pool.Token0, provider, amount0); err != nil {
		return fail(err)
	}
	if err := k.pushAsset(ctx, pool.Token1, provider, amount1); err != nil {
		return fail(err)
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeLiquidityRemoved,
		sdk.NewAttribute(types.AttributeKeyPoolID, poolID.String()),
		sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
		sdk.NewAttribute(types.AttributeKeyAmount0, amount0.String()),
		sdk.NewAttribute(types.AttributeKeyAmount1, amount1.String()),
		sdk.NewAttribute(types.AttributeKeyLiquidity, liquidity.String()),
	))

	return amount0, amount1, nil
}
