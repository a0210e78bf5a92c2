package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vortexlabs/vortex/x/amm/types"
)

// RegisterInvariants registers the AMM module invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "pool-records", PoolRecordsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "share-supply", ShareSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "reserve-backing", ReserveBackingInvariant(k))
}

// AllInvariants runs all AMM invariants.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, inv := range []sdk.Invariant{
			PoolRecordsInvariant(k),
			ShareSupplyInvariant(k),
			ReserveBackingInvariant(k),
		} {
			if msg, broken := inv(ctx); broken {
				return msg, broken
			}
		}
		return "", false
	}
}

// PoolRecordsInvariant checks that every stored pool is structurally valid:
// canonical ordering, fee bounds, non-negative capped reserves, and a supply
// at or above the locked floor.
func PoolRecordsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var msg string
		var broken bool
		k.IteratePools(ctx, func(pool types.Pool) bool {
			if err := pool.Validate(); err != nil {
				msg += fmt.Sprintf("\tpool %s invalid: %v\n", pool.ID, err)
				broken = true
			}
			return false
		})
		return sdk.FormatInvariant(types.ModuleName, "pool-records", msg), broken
	}
}

// ShareSupplyInvariant checks that each pool's total supply equals the sum of
// its share positions and that the locked-share account holds exactly the
// MinimumLiquidity floor.
func ShareSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		lockedAddr := k.lockedAddress.String()
		var msg string
		var broken bool

		k.IteratePools(ctx, func(pool types.Pool) bool {
			sum := math.ZeroInt()
			locked := math.ZeroInt()
			k.IterateShares(ctx, pool.ID, func(account sdk.AccAddress, shares math.Int) bool {
				sum = sum.Add(shares)
				if account.String() == lockedAddr {
					locked = shares
				}
				return false
			})

			if !sum.Equal(pool.TotalSupply) {
				msg += fmt.Sprintf("\tpool %s supply %s != share sum %s\n", pool.ID, pool.TotalSupply, sum)
				broken = true
			}
			if !locked.Equal(math.NewInt(types.MinimumLiquidity)) {
				msg += fmt.Sprintf("\tpool %s locked shares %s != %d\n", pool.ID, locked, types.MinimumLiquidity)
				broken = true
			}
			return false
		})

		return sdk.FormatInvariant(types.ModuleName, "share-supply", msg), broken
	}
}

// ReserveBackingInvariant checks that the module account's bank balances
// cover the sum of all tracked reserves per denom.
func ReserveBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		tracked := make(map[string]math.Int)
		var msg string
		var broken bool

		k.IteratePools(ctx, func(pool types.Pool) bool {
			for _, side := range []struct {
				asset   types.Asset
				reserve math.Int
			}{
				{pool.Token0, pool.Reserve0},
				{pool.Token1, pool.Reserve1},
			} {
				denom, err := k.resolveDenom(ctx, side.asset)
				if err != nil {
					msg += fmt.Sprintf("\tpool %s: %v\n", pool.ID, err)
					broken = true
					continue
				}
				total, ok := tracked[denom]
				if !ok {
					total = math.ZeroInt()
				}
				tracked[denom] = total.Add(side.reserve)
			}
			return false
		})

		for denom, total := range tracked {
			held := k.bankKeeper.GetBalance(ctx, k.moduleAddress, denom).Amount
			if held.LT(total) {
				msg += fmt.Sprintf("\tdenom %s: module holds %s, reserves track %s\n", denom, held, total)
				broken = true
			}
		}

		return sdk.FormatInvariant(types.ModuleName, "reserve-backing", msg), broken
	}
}
