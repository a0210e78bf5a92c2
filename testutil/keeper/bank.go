package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

// MockBankKeeper is a minimal bank keeper backed by its own KVStore. Because
// balances live in the multistore, state branched with CacheContext rolls
// them back together with module state on abort.
type MockBankKeeper struct {
	storeKey storetypes.StoreKey
}

// NewMockBankKeeper creates a mock bank keeper writing to the given store key.
func NewMockBankKeeper(storeKey storetypes.StoreKey) *MockBankKeeper {
	return &MockBankKeeper{storeKey: storeKey}
}

func balanceKey(addr sdk.AccAddress, denom string) []byte {
	key := append([]byte{0x01}, address.MustLengthPrefix(addr)...)
	return append(key, []byte(denom)...)
}

func (m *MockBankKeeper) getBalance(ctx sdk.Context, addr sdk.AccAddress, denom string) math.Int {
	bz := ctx.KVStore(m.storeKey).Get(balanceKey(addr, denom))
	if bz == nil {
		return math.ZeroInt()
	}
	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(err)
	}
	return amount
}

func (m *MockBankKeeper) setBalance(ctx sdk.Context, addr sdk.AccAddress, denom string, amount math.Int) {
	store := ctx.KVStore(m.storeKey)
	key := balanceKey(addr, denom)
	if amount.IsZero() {
		store.Delete(key)
		return
	}
	bz, err := amount.Marshal()
	if err != nil {
		panic(err)
	}
	store.Set(key, bz)
}

func (m *MockBankKeeper) send(ctx sdk.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	for _, coin := range amt {
		balance := m.getBalance(ctx, from, coin.Denom)
		if balance.LT(coin.Amount) {
			return fmt.Errorf("insufficient funds: %s has %s%s, need %s", from, balance, coin.Denom, coin.Amount)
		}
		m.setBalance(ctx, from, coin.Denom, balance.Sub(coin.Amount))
		m.setBalance(ctx, to, coin.Denom, m.getBalance(ctx, to, coin.Denom).Add(coin.Amount))
	}
	return nil
}

// GetBalance implements the AMM bank keeper contract.
func (m *MockBankKeeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.getBalance(sdk.UnwrapSDKContext(ctx), addr, denom))
}

// SendCoinsFromAccountToModule implements the AMM bank keeper contract.
func (m *MockBankKeeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.send(sdk.UnwrapSDKContext(ctx), senderAddr, sdk.AccAddress(address.Module(recipientModule)), amt)
}

// SendCoinsFromModuleToAccount implements the AMM bank keeper contract.
func (m *MockBankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.send(sdk.UnwrapSDKContext(ctx), sdk.AccAddress(address.Module(senderModule)), recipientAddr, amt)
}

// SendCoins moves coins between two plain accounts. Flash-borrow tests use it
// to repay the module account from inside the callback.
func (m *MockBankKeeper) SendCoins(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	return m.send(sdk.UnwrapSDKContext(ctx), from, to, amt)
}

// FundAccount mints amt to addr out of thin air.
func (m *MockBankKeeper) FundAccount(ctx context.Context, addr sdk.AccAddress, amt sdk.Coins) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	for _, coin := range amt {
		m.setBalance(sdkCtx, addr, coin.Denom, m.getBalance(sdkCtx, addr, coin.Denom).Add(coin.Amount))
	}
}
