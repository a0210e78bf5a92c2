package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vortexlabs/vortex/x/amm/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the AMM MsgServer interface.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (k msgServer) CreatePool(goCtx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, types.ErrInvalidRecipient.Wrapf("invalid creator address: %v", err)
	}

	poolID, liquidity, err := k.Keeper.CreatePool(ctx, creator, msg.AssetA, msg.AssetB, msg.AmountA, msg.AmountB, msg.FeeBps)
	if err != nil {
		return nil, err
	}

	return &types.MsgCreatePoolResponse{
		PoolID:    poolID.String(),
		Liquidity: liquidity,
	}, nil
}

func (k msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidRecipient.Wrapf("invalid provider address: %v", err)
	}
	poolID, err := types.PoolIDFromString(msg.PoolID)
	if err != nil {
		return nil, err
	}

	liquidity, amount0, amount1, err := k.Keeper.AddLiquidity(ctx, provider, poolID, msg.Amount0Desired, msg.Amount1Desired)
	if err != nil {
		return nil, err
	}

	return &types.MsgAddLiquidityResponse{
		Liquidity: liquidity,
		Amount0:   amount0,
		Amount1:   amount1,
	}, nil
}

func (k msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidRecipient.Wrapf("invalid provider address: %v", err)
	}
	poolID, err := types.PoolIDFromString(msg.PoolID)
	if err != nil {
		return nil, err
	}

	amount0, amount1, err := k.Keeper.RemoveLiquidity(ctx, provider, poolID, msg.Liquidity)
	if err != nil {
		return nil, err
	}

	return &types.MsgRemoveLiquidityResponse{
		Amount0: amount0,
		Amount1: amount1,
	}, nil
}

func (k msgServer) Swap(goCtx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, types.ErrInvalidRecipient.Wrapf("invalid trader address: %v", err)
	}
	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, types.ErrInvalidRecipient.Wrapf("invalid recipient address: %v", err)
	}
	poolID, err := types.PoolIDFromString(msg.PoolID)
	if err != nil {
		return nil, err
	}

	amountOut, err := k.Keeper.Swap(ctx, trader, poolID, msg.AssetIn, msg.AmountIn, msg.MinAmountOut, recipient)
	if err != nil {
		return nil, err
	}

	return &types.MsgSwapResponse{AmountOut: amountOut}, nil
}

func (k msgServer) SwapMultiHop(goCtx context.Context, msg *types.MsgSwapMultiHop) (*types.MsgSwapMultiHopResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, types.ErrInvalidRecipient.Wrapf("invalid trader address: %v", err)
	}
	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, types.ErrInvalidRecipient.Wrapf("invalid recipient address: %v", err)
	}

	poolIDs := make([]types.PoolID, len(msg.PoolIDs))
	for i, raw := range msg.PoolIDs {
		id, err := types.PoolIDFromString(raw)
		if err != nil {
			return nil, err
		}
		poolIDs[i] = id
	}

	amountOut, err := k.Keeper.SwapMultiHop(ctx, trader, msg.Path, poolIDs, msg.AmountIn, msg.MinAmountOut, recipient)
	if err != nil {
		return nil, err
	}

	return &types.MsgSwapMultiHopResponse{AmountOut: amountOut}, nil
}
