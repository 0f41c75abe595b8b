package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pairpool/pairpool/x/amm/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the amm QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Params returns the module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	params, err := qs.Keeper.GetParams(goCtx)
	if err != nil {
		return nil, status.Error(codes.Internal, "load params")
	}

	return &types.QueryParamsResponse{Params: params}, nil
}

// Pool returns the current pool state
func (qs queryServer) Pool(goCtx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	pool, err := qs.Keeper.GetPool(goCtx)
	if err != nil {
		return nil, status.Error(codes.NotFound, "pool not found")
	}

	return &types.QueryPoolResponse{Pool: pool}, nil
}

// Price returns the spot price of the base token quoted in the quote token
func (qs queryServer) Price(goCtx context.Context, req *types.QueryPriceRequest) (*types.QueryPriceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.BaseToken == "" || req.QuoteToken == "" {
		return nil, status.Error(codes.InvalidArgument, "base and quote tokens must be set")
	}

	price, err := qs.Keeper.GetPrice(goCtx, req.BaseToken, req.QuoteToken)
	if err != nil {
		return nil, err
	}

	return &types.QueryPriceResponse{Price: price}, nil
}

// EstimateSwap quotes an exact-input swap without executing it
func (qs queryServer) EstimateSwap(goCtx context.Context, req *types.QueryEstimateSwapRequest) (*types.QueryEstimateSwapResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.TokenIn == "" || req.TokenOut == "" {
		return nil, status.Error(codes.InvalidArgument, "input and output tokens must be set")
	}
	if req.AmountIn.IsNil() || !req.AmountIn.IsPositive() {
		return nil, status.Error(codes.InvalidArgument, "amount_in must be positive")
	}

	amountOut, err := qs.Keeper.EstimateSwap(goCtx, req.TokenIn, req.TokenOut, req.AmountIn)
	if err != nil {
		return nil, err
	}

	return &types.QueryEstimateSwapResponse{AmountOut: amountOut}, nil
}
