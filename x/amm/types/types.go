package types

import (
	"github.com/cosmos/cosmos-sdk/types/address"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

const (
	// MinimumLiquidity is the share floor permanently locked to the
	// locked-share account at pool creation. A pool's total supply can
	// never fall below it, so reserves can never be fully drained.
	MinimumLiquidity = 1000

	// FeeDenominator is the basis-point denominator for all fee math.
	FeeDenominator = 10000

	// MaxFeeBps bounds the per-pool swap fee (10%).
	MaxFeeBps = 1000

	// MaxSwapHops caps the route length of a multi-hop swap.
	MaxSwapHops = 10
)

// ModuleAddress returns the module account address holding all pool reserves.
func ModuleAddress() sdk.AccAddress {
	return sdk.AccAddress(address.Module(ModuleName))
}

// LockedShareAddress returns the address that holds the permanently locked
// MinimumLiquidity shares of every pool. Nothing can sign for it, so the
// locked floor is never withdrawable or transferable.
func LockedShareAddress() sdk.AccAddress {
	return sdk.AccAddress(address.Module(ModuleName, []byte("locked_shares")))
}
