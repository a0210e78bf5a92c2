package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type names
const (
	TypeMsgCreatePool      = "create_pool"
	TypeMsgAddLiquidity    = "add_liquidity"
	TypeMsgRemoveLiquidity = "remove_liquidity"
	TypeMsgSwap            = "swap"
	TypeMsgSwapMultiHop    = "swap_multi_hop"
)

// MsgServer defines the AMM message server interface.
type MsgServer interface {
	CreatePool(context.Context, *MsgCreatePool) (*MsgCreatePoolResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
	SwapMultiHop(context.Context, *MsgSwapMultiHop) (*MsgSwapMultiHopResponse, error)
}

// MsgCreatePool creates a new pool for an unordered asset pair and fee tier
// and seeds it with the initial deposit. FeeBps 0 selects the default fee.
type MsgCreatePool struct {
	Creator string   `json:"creator"`
	AssetA  Asset    `json:"asset_a"`
	AssetB  Asset    `json:"asset_b"`
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
	FeeBps  uint32   `json:"fee_bps"`
}

// ValidateBasic performs stateless validation of MsgCreatePool.
func (m *MsgCreatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Creator); err != nil {
		return ErrInvalidRecipient.Wrapf("invalid creator address: %v", err)
	}
	if err := m.AssetA.Validate(); err != nil {
		return err
	}
	if err := m.AssetB.Validate(); err != nil {
		return err
	}
	if m.AssetA.Equal(m.AssetB) {
		return ErrIdenticalAssets.Wrap("pool assets must differ")
	}
	if m.AssetA.IsNative() && m.AssetB.IsNative() {
		return ErrIdenticalAssets.Wrap("both assets are the native asset")
	}
	if m.AmountA.IsNil() || !m.AmountA.IsPositive() {
		return ErrInvalidAmount.Wrap("amount A must be positive")
	}
	if m.AmountB.IsNil() || !m.AmountB.IsPositive() {
		return ErrInvalidAmount.Wrap("amount B must be positive")
	}
	if m.FeeBps > MaxFeeBps {
		return ErrInvalidFee.Wrapf("fee %d bps above %d", m.FeeBps, MaxFeeBps)
	}
	return nil
}

// MsgCreatePoolResponse is the response for CreatePool.
type MsgCreatePoolResponse struct {
	PoolID    string   `json:"pool_id"`
	Liquidity math.Int `json:"liquidity"`
}

// MsgAddLiquidity deposits up to the desired amounts at the pool's current
// ratio and mints proportional shares.
type MsgAddLiquidity struct {
	Provider       string   `json:"provider"`
	PoolID         string   `json:"pool_id"`
	Amount0Desired math.Int `json:"amount0_desired"`
	Amount1Desired math.Int `json:"amount1_desired"`
}

// ValidateBasic performs stateless validation of MsgAddLiquidity.
func (m *MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Provider); err != nil {
		return ErrInvalidRecipient.Wrapf("invalid provider address: %v", err)
	}
	if _, err := PoolIDFromString(m.PoolID); err != nil {
		return err
	}
	if m.Amount0Desired.IsNil() || !m.Amount0Desired.IsPositive() {
		return ErrInvalidAmount.Wrap("amount0 must be positive")
	}
	if m.Amount1Desired.IsNil() || !m.Amount1Desired.IsPositive() {
		return ErrInvalidAmount.Wrap("amount1 must be positive")
	}
	return nil
}

// MsgAddLiquidityResponse is the response for AddLiquidity.
type MsgAddLiquidityResponse struct {
	Liquidity math.Int `json:"liquidity"`
	Amount0   math.Int `json:"amount0"`
	Amount1   math.Int `json:"amount1"`
}

// MsgRemoveLiquidity burns shares and withdraws the proportional reserves.
type MsgRemoveLiquidity struct {
	Provider  string   `json:"provider"`
	PoolID    string   `json:"pool_id"`
	Liquidity math.Int `json:"liquidity"`
}

// ValidateBasic performs stateless validation of MsgRemoveLiquidity.
func (m *MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Provider); err != nil {
		return ErrInvalidRecipient.Wrapf("invalid provider address: %v", err)
	}
	if _, err := PoolIDFromString(m.PoolID); err != nil {
		return err
	}
	if m.Liquidity.IsNil() || !m.Liquidity.IsPositive() {
		return ErrInvalidAmount.Wrap("liquidity must be positive")
	}
	return nil
}

// MsgRemoveLiquidityResponse is the response for RemoveLiquidity.
type MsgRemoveLiquidityResponse struct {
	Amount0 math.Int `json:"amount0"`
	Amount1 math.Int `json:"amount1"`
}

// MsgSwap swaps an exact input amount against a single pool.
type MsgSwap struct {
	Trader       string   `json:"trader"`
	PoolID       string   `json:"pool_id"`
	AssetIn      Asset    `json:"asset_in"`
	AmountIn     math.Int `json:"amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
	Recipient    string   `json:"recipient"`
}

// ValidateBasic performs stateless validation of MsgSwap.
func (m *MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Trader); err != nil {
		return ErrInvalidRecipient.Wrapf("invalid trader address: %v", err)
	}
	if _, err := PoolIDFromString(m.PoolID); err != nil {
		return err
	}
	if err := m.AssetIn.Validate(); err != nil {
		return err
	}
	if m.AmountIn.IsNil() || !m.AmountIn.IsPositive() {
		return ErrInvalidAmount.Wrap("amount in must be positive")
	}
	if m.MinAmountOut.IsNil() || m.MinAmountOut.IsNegative() {
		return ErrInvalidAmount.Wrap("min amount out cannot be negative")
	}
	if _, err := sdk.AccAddressFromBech32(m.Recipient); err != nil {
		return ErrInvalidRecipient.Wrapf("invalid recipient address: %v", err)
	}
	return nil
}

// MsgSwapResponse is the response for Swap.
type MsgSwapResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

// MsgSwapMultiHop routes an exact input through a chain of pools. Path holds
// the ordered assets; PoolIDs holds one pool per consecutive pair.
type MsgSwapMultiHop struct {
	Trader       string   `json:"trader"`
	Path         []Asset  `json:"path"`
	PoolIDs      []string `json:"pool_ids"`
	AmountIn     math.Int `json:"amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
	Recipient    string   `json:"recipient"`
}

// ValidateBasic performs stateless validation of MsgSwapMultiHop.
func (m *MsgSwapMultiHop) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Trader); err != nil {
		return ErrInvalidRecipient.Wrapf("invalid trader address: %v", err)
	}
	if len(m.Path) < 2 {
		return ErrInvalidRoute.Wrapf("path needs at least 2 assets, got %d", len(m.Path))
	}
	if len(m.PoolIDs) != len(m.Path)-1 {
		return ErrInvalidRoute.Wrapf("need %d pool ids for %d assets, got %d",
			len(m.Path)-1, len(m.Path), len(m.PoolIDs))
	}
	if len(m.PoolIDs) > MaxSwapHops {
		return ErrInvalidRoute.Wrapf("route has %d hops, maximum is %d", len(m.PoolIDs), MaxSwapHops)
	}
	for _, asset := range m.Path {
		if err := asset.Validate(); err != nil {
			return err
		}
	}
	for _, id := range m.PoolIDs {
		if _, err := PoolIDFromString(id); err != nil {
			return err
		}
	}
	if m.AmountIn.IsNil() || !m.AmountIn.IsPositive() {
		return ErrInvalidAmount.Wrap("amount in must be positive")
	}
	if m.MinAmountOut.IsNil() || m.MinAmountOut.IsNegative() {
		return ErrInvalidAmount.Wrap("min amount out cannot be negative")
	}
	if _, err := sdk.AccAddressFromBech32(m.Recipient); err != nil {
		return ErrInvalidRecipient.Wrapf("invalid recipient address: %v", err)
	}
	return nil
}

// MsgSwapMultiHopResponse is the response for SwapMultiHop.
type MsgSwapMultiHopResponse struct {
	AmountOut math.Int `json:"amount_out"`
}
