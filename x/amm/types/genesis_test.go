package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/vortexlabs/vortex/x/amm/types"
)

func genesisWithOnePool(t *testing.T) types.GenesisState {
	t.Helper()

	pool := validPool(t)
	creator := sdk.AccAddress([]byte("creator_____________")).String()

	return types.GenesisState{
		Params: types.DefaultParams(),
		Pools:  []types.Pool{pool},
		Positions: []types.SharePosition{
			{
				PoolID:  pool.ID.String(),
				Address: types.LockedShareAddress().String(),
				Shares:  math.NewInt(types.MinimumLiquidity),
			},
			{
				PoolID:  pool.ID.String(),
				Address: creator,
				Shares:  math.NewInt(414),
			},
		},
	}
}

func TestGenesisValidate(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())
	require.NoError(t, genesisWithOnePool(t).Validate())
}

func TestGenesisValidateRejectsBadState(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.GenesisState)
	}{
		{"bad params", func(gs *types.GenesisState) { gs.Params.NativeDenom = "" }},
		{"duplicate pool", func(gs *types.GenesisState) {
			gs.Pools = append(gs.Pools, gs.Pools[0])
		}},
		{"orphan position", func(gs *types.GenesisState) {
			gs.Positions[0].PoolID = types.PoolID{}.String()
		}},
		{"bad position address", func(gs *types.GenesisState) {
			gs.Positions[1].Address = "nope"
		}},
		{"non-positive shares", func(gs *types.GenesisState) {
			gs.Positions[1].Shares = math.ZeroInt()
		}},
		{"supply does not match shares", func(gs *types.GenesisState) {
			gs.Positions[1].Shares = math.NewInt(999)
		}},
		{"missing locked floor", func(gs *types.GenesisState) {
			gs.Positions[0].Address = gs.Positions[1].Address
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := genesisWithOnePool(t)
			tc.mutate(&gs)
			require.Error(t, gs.Validate())
		})
	}
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	params := types.DefaultParams()
	params.DefaultFeeBps = 0
	require.Error(t, params.Validate())

	params = types.DefaultParams()
	params.FlashFeeBps = types.MaxFeeBps + 1
	require.Error(t, params.Validate())

	params = types.DefaultParams()
	params.NativeDenom = "!!"
	require.Error(t, params.Validate())
}
