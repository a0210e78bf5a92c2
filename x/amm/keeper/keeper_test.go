package keeper_test

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	keepertest "github.com/vortexlabs/vortex/testutil/keeper"
	"github.com/vortexlabs/vortex/x/amm/keeper"
	"github.com/vortexlabs/vortex/x/amm/types"
)

var (
	creatorAddr = sdk.AccAddress([]byte("creator_____________"))
	providerAddr = sdk.AccAddress([]byte("provider____________"))
	traderAddr   = sdk.AccAddress([]byte("trader______________"))
	otherAddr    = sdk.AccAddress([]byte("other_______________"))
)

func setupKeeper(t rapid.TB) (keeper.Keeper, *keepertest.MockBankKeeper, sdk.Context) {
	return keepertest.AmmKeeper(t)
}

func fund(ctx sdk.Context, bank *keepertest.MockBankKeeper, addr sdk.AccAddress, denom string, amount int64) {
	bank.FundAccount(ctx, addr, sdk.NewCoins(sdk.NewInt64Coin(denom, amount)))
}

// createTestPool funds the creator and creates a uatom/uusdt pool at the
// given reserves and fee tier.
func createTestPool(
	t rapid.TB,
	k keeper.Keeper,
	bank *keepertest.MockBankKeeper,
	ctx sdk.Context,
	amountAtom, amountUsdt int64,
	feeBps uint32,
) types.PoolID {
	t.Helper()

	fund(ctx, bank, creatorAddr, "uatom", amountAtom)
	fund(ctx, bank, creatorAddr, "uusdt", amountUsdt)

	poolID, _, err := k.CreatePool(ctx,
		creatorAddr,
		types.NewFungibleAsset("uatom"), types.NewFungibleAsset("uusdt"),
		math.NewInt(amountAtom), math.NewInt(amountUsdt),
		feeBps,
	)
	require.NoError(t, err)
	return poolID
}

func balanceOf(ctx sdk.Context, bank *keepertest.MockBankKeeper, addr sdk.AccAddress, denom string) math.Int {
	return bank.GetBalance(ctx, addr, denom).Amount
}
