package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vortexlabs/vortex/x/amm/types"
)

// resolveDenom maps an asset identifier to the bank denom that backs it. The
// native variant resolves to the configured native denom.
func (k Keeper) resolveDenom(ctx sdk.Context, asset types.Asset) (string, error) {
	if asset.IsNative() {
		return k.GetParams(ctx).NativeDenom, nil
	}
	if err := asset.Validate(); err != nil {
		return "", err
	}
	return asset.Denom, nil
}

// pullAsset moves amount of asset from an account into the module account.
func (k Keeper) pullAsset(ctx sdk.Context, asset types.Asset, from sdk.AccAddress, amount math.Int) error {
	denom, err := k.resolveDenom(ctx, asset)
	if err != nil {
		return err
	}

	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, from, types.ModuleName, coins); err != nil {
		return types.ErrTransferFailed.Wrapf("pull %s%s from %s: %v", amount, denom, from, err)
	}
	return nil
}

// pushAsset moves amount of asset from the module account to an account.
func (k Keeper) pushAsset(ctx sdk.Context, asset types.Asset, to sdk.AccAddress, amount math.Int) error {
	denom, err := k.resolveDenom(ctx, asset)
	if err != nil {
		return err
	}

	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, to, coins); err != nil {
		return types.ErrTransferFailed.Wrapf("push %s%s to %s: %v", amount, denom, to, err)
	}
	return nil
}

// moduleBalance returns the module account's bank balance backing an asset.
func (k Keeper) moduleBalance(ctx sdk.Context, asset types.Asset) (math.Int, error) {
	denom, err := k.resolveDenom(ctx, asset)
	if err != nil {
		return math.Int{}, err
	}
	return k.bankKeeper.GetBalance(ctx, k.moduleAddress, denom).Amount, nil
}
