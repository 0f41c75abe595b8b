package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pairpool/pairpool/x/amm/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the amm MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// AddLiquidity handles a deposit of both pool assets.
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: invalid provider address: %w", err)
	}
	to, err := sdk.AccAddressFromBech32(msg.To)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: invalid recipient address: %w", err)
	}

	amountA, amountB, shares, err := ms.Keeper.AddLiquidity(goCtx, provider,
		msg.TokenA, msg.TokenB,
		msg.AmountADesired, msg.AmountBDesired, msg.AmountAMin, msg.AmountBMin,
		to, msg.Deadline)
	if err != nil {
		return nil, err
	}

	return &types.MsgAddLiquidityResponse{
		AmountA: amountA,
		AmountB: amountB,
		Shares:  shares,
	}, nil
}

// RemoveLiquidity handles a withdrawal against burned claim tokens.
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: invalid provider address: %w", err)
	}
	to, err := sdk.AccAddressFromBech32(msg.To)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: invalid recipient address: %w", err)
	}

	amountA, amountB, err := ms.Keeper.RemoveLiquidity(goCtx, provider,
		msg.TokenA, msg.TokenB,
		msg.Liquidity, msg.AmountAMin, msg.AmountBMin,
		to, msg.Deadline)
	if err != nil {
		return nil, err
	}

	return &types.MsgRemoveLiquidityResponse{
		AmountA: amountA,
		AmountB: amountB,
	}, nil
}

// Swap handles an exact-input token swap.
func (ms msgServer) Swap(goCtx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Swap: validate: %w", err)
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("Swap: invalid trader address: %w", err)
	}
	to, err := sdk.AccAddressFromBech32(msg.To)
	if err != nil {
		return nil, fmt.Errorf("Swap: invalid recipient address: %w", err)
	}

	amountOut, err := ms.Keeper.SwapExactTokensForTokens(goCtx, trader,
		msg.TokenIn, msg.TokenOut, msg.AmountIn, msg.AmountOutMin, to, msg.Deadline)
	if err != nil {
		return nil, err
	}

	return &types.MsgSwapResponse{AmountOut: amountOut}, nil
}
