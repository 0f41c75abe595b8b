package keeper

import (
	"context"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pairpool/pairpool/x/amm/types"
)

// PriceScale is the 10^18 fixed-point scale used by GetPrice.
var PriceScale = math.NewIntWithDecimal(1, 18)

// GetAmountOut prices an exact-input swap against the given reserves using
// the fee-bearing constant-product formula, entirely in truncating integer
// arithmetic:
//
//	amountInWithFee = amountIn * (10000 - feeBps)
//	amountOut = amountInWithFee * reserveOut / (reserveIn*10000 + amountInWithFee)
//
// With the default 30 bps fee this is the canonical 997/1000 split. The same
// function prices both the quote path and the execution path, so the two can
// never disagree.
func GetAmountOut(amountIn, reserveIn, reserveOut math.Int, feeBps uint64) (math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("input amount must be positive")
	}
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return math.Int{}, types.ErrInsufficientLiquidity.Wrap("pool reserves must be positive")
	}
	if feeBps >= types.FeeDenominator {
		return math.Int{}, types.ErrInvalidAmount.Wrapf("fee %d bps consumes entire input", feeBps)
	}

	feeFactor := math.NewIntFromUint64(types.FeeDenominator - feeBps)
	amountInWithFee, err := SafeMul(amountIn, feeFactor)
	if err != nil {
		return math.Int{}, err
	}

	numerator, err := SafeMul(amountInWithFee, reserveOut)
	if err != nil {
		return math.Int{}, err
	}
	scaledReserveIn, err := SafeMul(reserveIn, math.NewInt(types.FeeDenominator))
	if err != nil {
		return math.Int{}, err
	}
	denominator, err := SafeAdd(scaledReserveIn, amountInWithFee)
	if err != nil {
		return math.Int{}, err
	}

	return SafeQuo(numerator, denominator)
}

// SwapExactTokensForTokens swaps an exact amountIn of tokenIn for tokenOut,
// paying the output to the recipient. The full input amount, fee included,
// is added to the input reserve, which is what makes the reserve product
// strictly grow on every fee-bearing swap.
func (k Keeper) SwapExactTokensForTokens(
	ctx context.Context,
	trader sdk.AccAddress,
	tokenIn, tokenOut string,
	amountIn, amountOutMin math.Int,
	to sdk.AccAddress,
	deadline int64,
) (math.Int, error) {
	zero := math.ZeroInt()

	start := time.Now()
	defer func() {
		if k.metrics != nil {
			k.metrics.SwapLatency.Observe(time.Since(start).Seconds())
		}
	}()

	if err := checkDeadline(ctx, deadline); err != nil {
		return zero, err
	}

	if tokenIn == tokenOut {
		return zero, types.ErrInvalidPair.Wrap("cannot swap identical tokens")
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return zero, types.ErrInvalidAmount.Wrap("amount in must be positive")
	}
	if amountOutMin.IsNil() || amountOutMin.IsNegative() {
		return zero, types.ErrInvalidAmount.Wrap("minimum amount out cannot be negative")
	}

	pool, err := k.GetPool(ctx)
	if err != nil {
		return zero, err
	}
	reserveIn, reserveOut, ok := pool.ReservesFor(tokenIn, tokenOut)
	if !ok {
		return zero, types.ErrInvalidPair.Wrapf(
			"pool pair is %s/%s, got %s/%s", pool.TokenA, pool.TokenB, tokenIn, tokenOut)
	}
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return zero, types.ErrInsufficientLiquidity.Wrap("pool has no liquidity")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return zero, err
	}

	amountOut, err := GetAmountOut(amountIn, reserveIn, reserveOut, params.SwapFeeBps)
	if err != nil {
		return zero, err
	}
	if amountOut.LT(amountOutMin) {
		return zero, types.ErrSlippageExceeded.Wrapf("amount out %s below minimum %s", amountOut, amountOutMin)
	}
	if amountOut.GTE(reserveOut) {
		return zero, types.ErrInsufficientLiquidity.Wrapf("amount out %s >= reserve %s", amountOut, reserveOut)
	}

	// Transfers first; pool state is only written once both legs succeed.
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, trader, types.ModuleName,
		sdk.NewCoins(sdk.NewCoin(tokenIn, amountIn))); err != nil {
		return zero, types.ErrTransferFailed.Wrapf("input transfer: %v", err)
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, to,
		sdk.NewCoins(sdk.NewCoin(tokenOut, amountOut))); err != nil {
		return zero, types.ErrTransferFailed.Wrapf("output transfer: %v", err)
	}

	oldProduct, err := SafeMul(pool.ReserveA, pool.ReserveB)
	if err != nil {
		return zero, err
	}

	newReserveIn, err := SafeAdd(reserveIn, amountIn)
	if err != nil {
		return zero, err
	}
	newReserveOut, err := SafeSub(reserveOut, amountOut)
	if err != nil {
		return zero, err
	}
	if tokenIn == pool.TokenA {
		pool.ReserveA = newReserveIn
		pool.ReserveB = newReserveOut
	} else {
		pool.ReserveB = newReserveIn
		pool.ReserveA = newReserveOut
	}

	// The product must never shrink across a swap; a decrease means a
	// pricing or rounding defect and aborts before the state is saved.
	newProduct, err := SafeMul(pool.ReserveA, pool.ReserveB)
	if err != nil {
		return zero, err
	}
	if newProduct.LT(oldProduct) {
		return zero, types.ErrInvariantViolation.Wrapf(
			"reserve product decreased: %s -> %s", oldProduct, newProduct)
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return zero, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, to.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn),
			sdk.NewAttribute(types.AttributeKeyTokenOut, tokenOut),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
		),
	)

	if k.metrics != nil {
		k.metrics.SwapsTotal.WithLabelValues(tokenIn, tokenOut).Inc()
		k.metrics.SwapVolume.WithLabelValues(tokenIn).Add(intToFloat(amountIn))
		k.metrics.PoolReserves.WithLabelValues(pool.TokenA).Set(intToFloat(pool.ReserveA))
		k.metrics.PoolReserves.WithLabelValues(pool.TokenB).Set(intToFloat(pool.ReserveB))
	}

	return amountOut, nil
}

// EstimateSwap prices a swap against current reserves without executing it.
func (k Keeper) EstimateSwap(ctx context.Context, tokenIn, tokenOut string, amountIn math.Int) (math.Int, error) {
	if tokenIn == tokenOut {
		return math.Int{}, types.ErrInvalidPair.Wrap("cannot swap identical tokens")
	}
	pool, err := k.GetPool(ctx)
	if err != nil {
		return math.Int{}, err
	}
	reserveIn, reserveOut, ok := pool.ReservesFor(tokenIn, tokenOut)
	if !ok {
		return math.Int{}, types.ErrInvalidPair.Wrapf(
			"pool pair is %s/%s, got %s/%s", pool.TokenA, pool.TokenB, tokenIn, tokenOut)
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, err
	}
	return GetAmountOut(amountIn, reserveIn, reserveOut, params.SwapFeeBps)
}

// GetPrice returns the spot price of one base token in units of the quote
// token, scaled by 10^18 and truncated. Pure read, no state mutation.
func (k Keeper) GetPrice(ctx context.Context, base, quote string) (math.Int, error) {
	pool, err := k.GetPool(ctx)
	if err != nil {
		return math.Int{}, err
	}
	reserveBase, reserveQuote, ok := pool.ReservesFor(base, quote)
	if !ok {
		return math.Int{}, types.ErrInvalidPair.Wrapf(
			"pool pair is %s/%s, got %s/%s", pool.TokenA, pool.TokenB, base, quote)
	}
	if reserveBase.IsZero() {
		return math.Int{}, types.ErrInsufficientLiquidity.Wrapf("no reserve of %s", base)
	}
	return SafeMulDiv(reserveQuote, PriceScale, reserveBase)
}
