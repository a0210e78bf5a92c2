package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the narrow transfer capability the AMM consumes. The module
// never moves assets any other way; the real x/bank keeper satisfies it.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// FlashBorrower receives a flash-borrowed amount and must return at least
// amount+fee to the module account before the callback returns. The callback
// runs with the reentrancy guard held, so it cannot call back into any
// mutating AMM operation.
type FlashBorrower interface {
	OnFlashBorrow(ctx sdk.Context, poolID PoolID, asset Asset, amount, fee math.Int, payload []byte) error
}
