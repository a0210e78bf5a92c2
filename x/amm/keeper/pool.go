package keeper

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vortexlabs/vortex/x/amm/types"
)

// GetPool returns the pool record for an identifier.
func (k Keeper) GetPool(ctx sdk.Context, id types.PoolID) (types.Pool, error) {
	bz := ctx.KVStore(k.storeKey).Get(PoolKey(id))
	if bz == nil {
		return types.Pool{}, types.ErrPoolNotFound.Wrapf("pool %s", id)
	}

	var pool types.Pool
	if err := json.Unmarshal(bz, &pool); err != nil {
		panic(fmt.Errorf("corrupt pool record %s: %w", id, err))
	}
	return pool, nil
}

// HasPool reports whether a pool record exists.
func (k Keeper) HasPool(ctx sdk.Context, id types.PoolID) bool {
	return ctx.KVStore(k.storeKey).Has(PoolKey(id))
}

// SetPool stores a pool record.
func (k Keeper) SetPool(ctx sdk.Context, pool types.Pool) error {
	bz, err := json.Marshal(pool)
	if err != nil {
		return fmt.Errorf("marshal pool %s: %w", pool.ID, err)
	}
	ctx.KVStore(k.storeKey).Set(PoolKey(pool.ID), bz)
	return nil
}

// IteratePools walks every pool record until fn returns true.
func (k Keeper) IteratePools(ctx sdk.Context, fn func(pool types.Pool) bool) {
	store := ctx.KVStore(k.storeKey)
	iterator := storetypes.KVStorePrefixIterator(store, PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := json.Unmarshal(iterator.Value(), &pool); err != nil {
			panic(fmt.Errorf("corrupt pool record: %w", err))
		}
		if fn(pool) {
			break
		}
	}
}

// GetAllPools returns every pool record.
func (k Keeper) GetAllPools(ctx sdk.Context) []types.Pool {
	var pools []types.Pool
	k.IteratePools(ctx, func(pool types.Pool) bool {
		pools = append(pools, pool)
		return false
	})
	return pools
}

// CreatePool creates a pool for an unordered asset pair and fee tier and
// seeds it with the creator's initial deposit. Fee tier 0 selects the default
// fee. The creator receives sqrt(amount0*amount1) shares minus the
// MinimumLiquidity floor, which is assigned to the locked-share account and
// can never be withdrawn.
func (k Keeper) CreatePool(
	ctx sdk.Context,
	creator sdk.AccAddress,
	assetA, assetB types.Asset,
	amountA, amountB math.Int,
	feeBps uint32,
) (types.PoolID, math.Int, error) {
	if err := k.guard.Enter(); err != nil {
		return types.PoolID{}, math.Int{}, err
	}
	defer k.guard.Exit()

	var (
		poolID    types.PoolID
		liquidity math.Int
	)
	err := k.branch(ctx, func(ctx sdk.Context) error {
		var err error
		poolID, liquidity, err = k.createPool(ctx, creator, assetA, assetB, amountA, amountB, feeBps)
		return err
	})
	if err != nil {
		return types.PoolID{}, math.Int{}, err
	}

	k.metrics.recordPoolCreated()
	return poolID, liquidity, nil
}

func (k Keeper) createPool(
	ctx sdk.Context,
	creator sdk.AccAddress,
	assetA, assetB types.Asset,
	amountA, amountB math.Int,
	feeBps uint32,
) (types.PoolID, math.Int, error) {
	if creator.Empty() {
		return types.PoolID{}, math.Int{}, types.ErrInvalidRecipient.Wrap("creator address is empty")
	}
	if amountA.IsNil() || !amountA.IsPositive() || amountB.IsNil() || !amountB.IsPositive() {
		return types.PoolID{}, math.Int{}, types.ErrInvalidAmount.Wrap("initial deposit amounts must be positive")
	}
	if amountA.GT(types.MaxReserve) || amountB.GT(types.MaxReserve) {
		return types.PoolID{}, math.Int{}, types.ErrReserveOverflow.Wrap("initial deposit exceeds reserve cap")
	}

	if feeBps == 0 {
		feeBps = k.GetParams(ctx).DefaultFeeBps
	}
	if feeBps < 1 || feeBps > types.MaxFeeBps {
		return types.PoolID{}, math.Int{}, types.ErrInvalidFee.Wrapf("fee %d bps outside [1, %d]", feeBps, types.MaxFeeBps)
	}

	poolID, err := types.NewPoolID(assetA, assetB, feeBps)
	if err != nil {
		return types.PoolID{}, math.Int{}, err
	}
	if k.HasPool(ctx, poolID) {
		return types.PoolID{}, math.Int{}, types.ErrPoolAlreadyExists.Wrapf("pool %s", poolID)
	}

	token0, token1 := types.SortAssets(assetA, assetB)
	amount0, amount1 := amountA, amountB
	if !token0.Equal(assetA) {
		amount0, amount1 = amountB, amountA
	}

	product, err := SafeMul(amount0, amount1)
	if err != nil {
		return types.PoolID{}, math.Int{}, err
	}
	totalShares, err := IntSqrt(product)
	if err != nil {
		return types.PoolID{}, math.Int{}, err
	}
	minLiquidity := math.NewInt(types.MinimumLiquidity)
	if totalShares.LTE(minLiquidity) {
		return types.PoolID{}, math.Int{}, types.ErrBelowMinimumLiquidity.Wrapf(
			"initial liquidity %s must exceed the locked floor %d", totalShares, types.MinimumLiquidity)
	}
	creatorShares := totalShares.Sub(minLiquidity)

	if err := k.pullAsset(ctx, token0, creator, amount0); err != nil {
		return types.PoolID{}, math.Int{}, err
	}
	if err := k.pullAsset(ctx, token1, creator, amount1); err != nil {
		return types.PoolID{}, math.Int{}, err
	}

	pool := types.Pool{
		ID:          poolID,
		Token0:      token0,
		Token1:      token1,
		Reserve0:    amount0,
		Reserve1:    amount1,
		FeeBps:      feeBps,
		TotalSupply: totalShares,
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return types.PoolID{}, math.Int{}, err
	}
	k.setShares(ctx, poolID, k.lockedAddress, minLiquidity)
	k.setShares(ctx, poolID, creator, creatorShares)

	k.Logger(ctx).Info("pool created",
		"pool_id", poolID.String(),
		"token0", token0.String(),
		"token1", token1.String(),
		"fee_bps", feeBps,
		"liquidity", creatorShares.String(),
	)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypePoolCreated,
		sdk.NewAttribute(types.AttributeKeyPoolID, poolID.String()),
		sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
		sdk.NewAttribute(types.AttributeKeyToken0, token0.String()),
		sdk.NewAttribute(types.AttributeKeyToken1, token1.String()),
		sdk.NewAttribute(types.AttributeKeyAmount0, amount0.String()),
		sdk.NewAttribute(types.AttributeKeyAmount1, amount1.String()),
		sdk.NewAttribute(types.AttributeKeyFeeBps, fmt.Sprintf("%d", feeBps)),
		sdk.NewAttribute(types.AttributeKeyLiquidity, creatorShares.String()),
	))

	return poolID, creatorShares, nil
}
