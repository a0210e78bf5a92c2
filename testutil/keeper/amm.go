package keeper

import (
	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/vortexlabs/vortex/x/amm/keeper"
	"github.com/vortexlabs/vortex/x/amm/types"
)

// AmmKeeper creates a test keeper for the AMM module backed by an in-memory
// multistore and the store-backed mock bank keeper.
func AmmKeeper(t rapid.TB) (keeper.Keeper, *MockBankKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey("mockbank")

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	bankKeeper := NewMockBankKeeper(bankStoreKey)
	k := keeper.NewKeeper(storeKey, bankKeeper)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	keeper.InitGenesis(ctx, k, *types.DefaultGenesis())

	return k, bankKeeper, ctx
}
