package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SharePosition is one account's liquidity share balance in one pool.
type SharePosition struct {
	PoolID  string   `json:"pool_id"`
	Address string   `json:"address"`
	Shares  math.Int `json:"shares"`
}

// GenesisState is the AMM module's genesis state.
type GenesisState struct {
	Params    Params          `json:"params"`
	Pools     []Pool          `json:"pools"`
	Positions []SharePosition `json:"positions"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs genesis state validation: every pool must be structurally
// valid and its total supply must equal the sum of its share positions.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seen := make(map[PoolID]bool, len(gs.Pools))
	supplies := make(map[PoolID]math.Int, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return err
		}
		if seen[pool.ID] {
			return ErrPoolAlreadyExists.Wrapf("duplicate pool %s in genesis", pool.ID)
		}
		seen[pool.ID] = true
		supplies[pool.ID] = math.ZeroInt()
	}

	lockedAddr := LockedShareAddress().String()
	locked := make(map[PoolID]math.Int, len(gs.Pools))
	for _, pos := range gs.Positions {
		id, err := PoolIDFromString(pos.PoolID)
		if err != nil {
			return err
		}
		if !seen[id] {
			return ErrPoolNotFound.Wrapf("position references unknown pool %s", pos.PoolID)
		}
		if _, err := sdk.AccAddressFromBech32(pos.Address); err != nil {
			return ErrInvalidRecipient.Wrapf("invalid position address: %v", err)
		}
		if pos.Shares.IsNil() || !pos.Shares.IsPositive() {
			return ErrInvalidAmount.Wrapf("position shares must be positive for pool %s", pos.PoolID)
		}
		supplies[id] = supplies[id].Add(pos.Shares)
		if pos.Address == lockedAddr {
			locked[id] = pos.Shares
		}
	}

	for _, pool := range gs.Pools {
		if !supplies[pool.ID].Equal(pool.TotalSupply) {
			return ErrInvariantViolation.Wrapf(
				"pool %s supply %s does not match share sum %s",
				pool.ID, pool.TotalSupply, supplies[pool.ID])
		}
		lockedShares, ok := locked[pool.ID]
		if !ok || !lockedShares.Equal(math.NewInt(MinimumLiquidity)) {
			return ErrInvariantViolation.Wrapf(
				"pool %s locked shares must equal %d", pool.ID, MinimumLiquidity)
		}
	}

	return nil
}
