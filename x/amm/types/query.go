package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer defines the gRPC query service for the amm module.
type QueryServer interface {
	// Params returns the module parameters.
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	// Pool returns the current pool state.
	Pool(context.Context, *QueryPoolRequest) (*QueryPoolResponse, error)
	// Price returns the spot price of the base token quoted in the quote token.
	Price(context.Context, *QueryPriceRequest) (*QueryPriceResponse, error)
	// EstimateSwap quotes an exact-input swap without executing it.
	EstimateSwap(context.Context, *QueryEstimateSwapRequest) (*QueryEstimateSwapResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryPoolRequest struct{}

type QueryPoolResponse struct {
	Pool Pool `json:"pool"`
}

type QueryPriceRequest struct {
	BaseToken  string `json:"base_token"`
	QuoteToken string `json:"quote_token"`
}

type QueryPriceResponse struct {
	// Price is reserveQuote * 10^18 / reserveBase, truncated.
	Price math.Int `json:"price"`
}

type QueryEstimateSwapRequest struct {
	TokenIn  string   `json:"token_in"`
	TokenOut string   `json:"token_out"`
	AmountIn math.Int `json:"amount_in"`
}

type QueryEstimateSwapResponse struct {
	AmountOut math.Int `json:"amount_out"`
}
