package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vortexlabs/vortex/x/amm/types"
)

// Keeper of the amm store. All pool reserves are held by the module account;
// the keeper only ever moves assets through the narrow bank capability.
type Keeper struct {
	storeKey   storetypes.StoreKey
	bankKeeper types.BankKeeper

	// guard serializes every mutating entry point. It is shared by all
	// copies of the keeper so a flash-borrow callback cannot re-enter.
	guard *ReentrancyGuard

	metrics *Metrics

	// moduleAddress is computed once to avoid re-deriving it in hot paths.
	moduleAddress sdk.AccAddress
	lockedAddress sdk.AccAddress
}

// NewKeeper creates a new amm Keeper instance.
func NewKeeper(
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
) Keeper {
	return Keeper{
		storeKey:      key,
		bankKeeper:    bankKeeper,
		guard:         NewReentrancyGuard(),
		metrics:       NewMetrics(),
		moduleAddress: types.ModuleAddress(),
		lockedAddress: types.LockedShareAddress(),
	}
}

// Logger returns a module-tagged logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the amm module.
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	return sdk.UnwrapSDKContext(ctx).KVStore(k.storeKey)
}

// GetModuleAddress returns the module account address holding pool reserves.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddress
}

// GetLockedShareAddress returns the account holding every pool's locked floor.
func (k Keeper) GetLockedShareAddress() sdk.AccAddress {
	return k.lockedAddress
}

// branch runs fn against a cache-wrapped store and a fresh event manager.
// State writes and events become visible only if fn succeeds, so any failure
// inside an operation rolls the whole operation back.
func (k Keeper) branch(ctx sdk.Context, fn func(sdk.Context) error) error {
	cacheCtx, write := ctx.CacheContext()
	cacheCtx = cacheCtx.WithEventManager(sdk.NewEventManager())

	if err := fn(cacheCtx); err != nil {
		return err
	}

	write()
	ctx.EventManager().EmitEvents(cacheCtx.EventManager().Events())
	return nil
}
