package keeper

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vortexlabs/vortex/x/amm/types"
)

// GetParams returns the current module parameters, falling back to defaults
// when none have been stored yet.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	bz := ctx.KVStore(k.storeKey).Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		// Params are only ever written through SetParams, so a decode
		// failure means the store itself is corrupt.
		panic(fmt.Errorf("corrupt amm params: %w", err))
	}
	return params
}

// SetParams validates and stores the module parameters.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("marshal amm params: %w", err)
	}
	ctx.KVStore(k.storeKey).Set(ParamsKey, bz)
	return nil
}
