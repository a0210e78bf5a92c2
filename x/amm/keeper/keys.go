package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vortexlabs/vortex/x/amm/types"
)

// Store key prefixes
var (
	// PoolKeyPrefix is the prefix for pool records keyed by pool id.
	PoolKeyPrefix = []byte{0x01}

	// ShareKeyPrefix is the prefix for per-account liquidity shares.
	ShareKeyPrefix = []byte{0x02}

	// ParamsKey is the key for module parameters.
	ParamsKey = []byte{0x03}
)

// PoolKey returns the store key for a pool record.
func PoolKey(id types.PoolID) []byte {
	return append(PoolKeyPrefix, id.Bytes()...)
}

// ShareKey returns the store key for an account's shares in a pool.
func ShareKey(id types.PoolID, account sdk.AccAddress) []byte {
	key := append(ShareKeyPrefix, id.Bytes()...)
	return append(key, account.Bytes()...)
}

// SharesByPoolPrefix returns the prefix covering all share positions of a pool.
func SharesByPoolPrefix(id types.PoolID) []byte {
	return append(ShareKeyPrefix, id.Bytes()...)
}
