package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vortexlabs/vortex/x/amm/keeper"
	"github.com/vortexlabs/vortex/x/amm/types"
)

func TestReentrancyGuard(t *testing.T) {
	guard := keeper.NewReentrancyGuard()

	require.NoError(t, guard.Enter())
	require.ErrorIs(t, guard.Enter(), types.ErrReentrancy)

	guard.Exit()
	require.NoError(t, guard.Enter())
	guard.Exit()
}

func TestReentrancyGuardSequentialOperations(t *testing.T) {
	guard := keeper.NewReentrancyGuard()

	for i := 0; i < 10; i++ {
		require.NoError(t, guard.Enter())
		guard.Exit()
	}
}
