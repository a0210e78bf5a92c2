package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vortexlabs/vortex/x/amm/types"
)

// InitGenesis initializes the AMM module state from a genesis state.
func InitGenesis(ctx sdk.Context, k Keeper, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(fmt.Errorf("init amm genesis params: %w", err))
	}

	for _, pool := range genState.Pools {
		if err := k.SetPool(ctx, pool); err != nil {
			panic(fmt.Errorf("init amm genesis pool %s: %w", pool.ID, err))
		}
	}

	for _, pos := range genState.Positions {
		id, err := types.PoolIDFromString(pos.PoolID)
		if err != nil {
			panic(fmt.Errorf("init amm genesis position: %w", err))
		}
		account, err := sdk.AccAddressFromBech32(pos.Address)
		if err != nil {
			panic(fmt.Errorf("init amm genesis position: %w", err))
		}
		k.setShares(ctx, id, account, pos.Shares)
	}
}

// ExportGenesis returns the AMM module state as a genesis state.
func ExportGenesis(ctx sdk.Context, k Keeper) *types.GenesisState {
	genState := types.GenesisState{
		Params: k.GetParams(ctx),
		Pools:  k.GetAllPools(ctx),
	}

	for _, pool := range genState.Pools {
		k.IterateShares(ctx, pool.ID, func(account sdk.AccAddress, shares math.Int) bool {
			genState.Positions = append(genState.Positions, types.SharePosition{
				PoolID:  pool.ID.String(),
				Address: account.String(),
				Shares:  shares,
			})
			return false
		})
	}

	return &genState
}
