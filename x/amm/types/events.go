package types

// Event types emitted by the AMM module
const (
	EventTypePoolCreated       = "amm_pool_created"
	EventTypeLiquidityAdded    = "amm_liquidity_added"
	EventTypeLiquidityRemoved  = "amm_liquidity_removed"
	EventTypeSwap              = "amm_swap"
	EventTypeMultiHopSwap      = "amm_multihop_swap"
	EventTypeFlashBorrow       = "amm_flash_borrow"
)

// Event attribute keys
const (
	AttributeKeyPoolID    = "pool_id"
	AttributeKeyCreator   = "creator"
	AttributeKeyProvider  = "provider"
	AttributeKeyTrader    = "trader"
	AttributeKeyBorrower  = "borrower"
	AttributeKeyRecipient = "recipient"
	AttributeKeyToken0    = "token0"
	AttributeKeyToken1    = "token1"
	AttributeKeyFeeBps    = "fee_bps"
	AttributeKeyAmount0   = "amount0"
	AttributeKeyAmount1   = "amount1"
	AttributeKeyAssetIn   = "asset_in"
	AttributeKeyAssetOut  = "asset_out"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeyLiquidity = "liquidity"
	AttributeKeyAsset     = "asset"
	AttributeKeyAmount    = "amount"
	AttributeKeyFee       = "fee"
	AttributeKeyHops      = "hops"
	AttributeKeyHopIndex  = "hop_index"
)
