package types

import (
	"math/big"

	"cosmossdk.io/math"
)

// MaxReserve caps each tracked reserve at 2^112 - 1, matching the packed
// reserve width this engine guarantees it can always represent.
var MaxReserve = math.NewIntFromBigInt(new(big.Int).Sub(
	new(big.Int).Lsh(big.NewInt(1), 112), big.NewInt(1),
))

// Pool is one tradeable pair at one fee tier. Token0 and Token1 are held in
// canonical order (Token0.Key() < Token1.Key()); reserves track the assets
// actually held for this pool by the module account.
type Pool struct {
	ID          PoolID   `json:"id"`
	Token0      Asset    `json:"token0"`
	Token1      Asset    `json:"token1"`
	Reserve0    math.Int `json:"reserve0"`
	Reserve1    math.Int `json:"reserve1"`
	FeeBps      uint32   `json:"fee_bps"`
	TotalSupply math.Int `json:"total_supply"`
}

// HasAsset reports whether the asset is one of the pool's two sides.
func (p Pool) HasAsset(asset Asset) bool {
	return p.Token0.Equal(asset) || p.Token1.Equal(asset)
}

// ReservesFor returns (reserveIn, reserveOut) for a swap whose input side is
// assetIn, along with whether token0 is the input side.
func (p Pool) ReservesFor(assetIn Asset) (reserveIn, reserveOut math.Int, zeroForOne bool, err error) {
	switch {
	case p.Token0.Equal(assetIn):
		return p.Reserve0, p.Reserve1, true, nil
	case p.Token1.Equal(assetIn):
		return p.Reserve1, p.Reserve0, false, nil
	default:
		return math.Int{}, math.Int{}, false, ErrAssetNotInPool.Wrapf(
			"pool %s holds %s/%s, got %s", p.ID, p.Token0, p.Token1, assetIn)
	}
}

// Other returns the opposite side of the pool for a given asset.
func (p Pool) Other(asset Asset) (Asset, error) {
	switch {
	case p.Token0.Equal(asset):
		return p.Token1, nil
	case p.Token1.Equal(asset):
		return p.Token0, nil
	default:
		return Asset{}, ErrAssetNotInPool.Wrapf(
			"pool %s holds %s/%s, got %s", p.ID, p.Token0, p.Token1, asset)
	}
}

// Validate checks the structural invariants of a pool record.
func (p Pool) Validate() error {
	if p.ID.IsZero() {
		return ErrInvalidPoolID.Wrap("pool id is unset")
	}
	if err := p.Token0.Validate(); err != nil {
		return err
	}
	if err := p.Token1.Validate(); err != nil {
		return err
	}
	if p.Token0.Equal(p.Token1) {
		return ErrIdenticalAssets.Wrapf("pool %s has identical sides", p.ID)
	}
	if p.Token0.IsNative() && p.Token1.IsNative() {
		return ErrIdenticalAssets.Wrapf("pool %s has two native sides", p.ID)
	}
	token0, _ := SortAssets(p.Token0, p.Token1)
	if !token0.Equal(p.Token0) {
		return ErrInvalidPoolState.Wrapf("pool %s sides are not canonically ordered", p.ID)
	}
	if p.FeeBps < 1 || p.FeeBps > MaxFeeBps {
		return ErrInvalidFee.Wrapf("fee %d bps outside [1, %d]", p.FeeBps, MaxFeeBps)
	}
	if p.Reserve0.IsNil() || p.Reserve1.IsNil() || p.TotalSupply.IsNil() {
		return ErrInvalidPoolState.Wrapf("pool %s has nil amounts", p.ID)
	}
	if p.Reserve0.IsNegative() || p.Reserve1.IsNegative() {
		return ErrInvalidPoolState.Wrapf("pool %s has negative reserves", p.ID)
	}
	if p.Reserve0.GT(MaxReserve) || p.Reserve1.GT(MaxReserve) {
		return ErrReserveOverflow.Wrapf("pool %s reserve exceeds 2^112-1", p.ID)
	}
	if p.TotalSupply.LT(math.NewInt(MinimumLiquidity)) {
		return ErrBelowMinimumLiquidity.Wrapf(
			"pool %s supply %s below locked floor %d", p.ID, p.TotalSupply, MinimumLiquidity)
	}
	expectedID, err := NewPoolID(p.Token0, p.Token1, p.FeeBps)
	if err != nil {
		return err
	}
	if expectedID != p.ID {
		return ErrInvalidPoolID.Wrapf("pool id %s does not match pair/fee", p.ID)
	}
	return nil
}
