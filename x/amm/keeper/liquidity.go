package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pairpool/pairpool/x/amm/types"
)

// checkDeadline rejects the operation once block time has passed the
// caller-supplied expiry. Runs before any other precondition so an expired
// call has zero side effects.
func checkDeadline(ctx context.Context, deadline int64) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if now := sdkCtx.BlockTime().Unix(); now > deadline {
		return types.ErrExpired.Wrapf("deadline %d passed at block time %d", deadline, now)
	}
	return nil
}

// AddLiquidity deposits both pool assets at the pool's current ratio and
// mints claim tokens to the recipient. Amounts are given in the caller's
// token order, which may be the reverse of the pool's; returned amounts use
// the caller's order as well.
//
// The first deposit into an empty pool bootstraps it: the desired amounts
// are taken as-is and the minted claim amount is the integer square root of
// their product. Every later deposit is matched to the reserve ratio and
// mints the smaller of the two proportional shares, rounding in the pool's
// favor.
func (k Keeper) AddLiquidity(
	ctx context.Context,
	provider sdk.AccAddress,
	tokenA, tokenB string,
	amountADesired, amountBDesired, amountAMin, amountBMin math.Int,
	to sdk.AccAddress,
	deadline int64,
) (amountA, amountB, shares math.Int, err error) {
	zero := math.ZeroInt()

	if err := checkDeadline(ctx, deadline); err != nil {
		return zero, zero, zero, err
	}

	pool, flipped, err := k.resolvePool(ctx, tokenA, tokenB)
	if err != nil {
		return zero, zero, zero, err
	}

	// Work in the pool's token order internally.
	if flipped {
		amountADesired, amountBDesired = amountBDesired, amountADesired
		amountAMin, amountBMin = amountBMin, amountAMin
	}

	if amountADesired.IsNil() || !amountADesired.IsPositive() ||
		amountBDesired.IsNil() || !amountBDesired.IsPositive() {
		return zero, zero, zero, types.ErrInvalidAmount.Wrap("desired amounts must be positive")
	}
	if amountAMin.IsNil() || amountAMin.IsNegative() || amountBMin.IsNil() || amountBMin.IsNegative() {
		return zero, zero, zero, types.ErrInvalidAmount.Wrap("minimum amounts cannot be negative")
	}
	if amountAMin.GT(amountADesired) || amountBMin.GT(amountBDesired) {
		return zero, zero, zero, types.ErrInvalidAmount.Wrap("minimum amounts exceed desired amounts")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return zero, zero, zero, err
	}

	if !pool.Bootstrapped() {
		if !pool.TotalShares.IsZero() {
			return zero, zero, zero, types.ErrInvalidPoolState.Wrap("pool has shares but zero reserves")
		}
		amountA = amountADesired
		amountB = amountBDesired

		product, err := SafeMul(amountA, amountB)
		if err != nil {
			return zero, zero, zero, err
		}
		shares, err = IntSqrt(product)
		if err != nil {
			return zero, zero, zero, err
		}
		if shares.LT(params.MinInitialShares) {
			return zero, zero, zero, types.ErrInsufficientLiquidityMinted.Wrapf(
				"initial shares %s below minimum %s", shares, params.MinInitialShares)
		}
	} else {
		if pool.TotalShares.IsZero() {
			return zero, zero, zero, types.ErrInvalidPoolState.Wrap("pool has reserves but zero shares")
		}

		// Match the offered amounts to the reserve ratio without ever
		// taking more than offered on either side.
		amountBOptimal, err := SafeMulDiv(amountADesired, pool.ReserveB, pool.ReserveA)
		if err != nil {
			return zero, zero, zero, err
		}
		if amountBOptimal.LTE(amountBDesired) {
			if amountBOptimal.LT(amountBMin) {
				return zero, zero, zero, types.ErrSlippageExceeded.Wrapf(
					"amount B %s below minimum %s", amountBOptimal, amountBMin)
			}
			amountA = amountADesired
			amountB = amountBOptimal
		} else {
			amountAOptimal, err := SafeMulDiv(amountBDesired, pool.ReserveA, pool.ReserveB)
			if err != nil {
				return zero, zero, zero, err
			}
			if amountAOptimal.GT(amountADesired) {
				return zero, zero, zero, types.ErrInvalidAmount.Wrap("offered amounts do not match pool ratio")
			}
			if amountAOptimal.LT(amountAMin) {
				return zero, zero, zero, types.ErrSlippageExceeded.Wrapf(
					"amount A %s below minimum %s", amountAOptimal, amountAMin)
			}
			amountA = amountAOptimal
			amountB = amountBDesired
		}

		// The smaller proportional share of the two sides; biases rounding
		// toward the pool and tolerates drift from earlier truncation.
		sharesA, err := SafeMulDiv(amountA, pool.TotalShares, pool.ReserveA)
		if err != nil {
			return zero, zero, zero, err
		}
		sharesB, err := SafeMulDiv(amountB, pool.TotalShares, pool.ReserveB)
		if err != nil {
			return zero, zero, zero, err
		}
		shares = MinInt(sharesA, sharesB)
		if shares.IsZero() {
			return zero, zero, zero, types.ErrInsufficientLiquidityMinted.Wrap("deposit too small")
		}
	}

	newTotalShares, err := SafeAdd(pool.TotalShares, shares)
	if err != nil {
		return zero, zero, zero, err
	}

	// All checks passed; pull the deposit, then record state against the
	// ledger's post-transfer balances.
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	moduleAddr := k.GetModuleAddress()

	deposit := sdk.NewCoins(sdk.NewCoin(pool.TokenA, amountA), sdk.NewCoin(pool.TokenB, amountB))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, provider, types.ModuleName, deposit); err != nil {
		return zero, zero, zero, types.ErrTransferFailed.Wrapf("deposit transfer: %v", err)
	}

	pool.ReserveA = k.bankKeeper.GetBalance(ctx, moduleAddr, pool.TokenA).Amount
	pool.ReserveB = k.bankKeeper.GetBalance(ctx, moduleAddr, pool.TokenB).Amount
	pool.TotalShares = newTotalShares

	if err := k.SetPool(ctx, pool); err != nil {
		return zero, zero, zero, err
	}

	shareCoins := sdk.NewCoins(sdk.NewCoin(pool.ShareDenom, shares))
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, shareCoins); err != nil {
		return zero, zero, zero, types.ErrTransferFailed.Wrapf("share mint: %v", err)
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, to, shareCoins); err != nil {
		return zero, zero, zero, types.ErrTransferFailed.Wrapf("share transfer: %v", err)
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddLiquidity,
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, to.String()),
			sdk.NewAttribute(types.AttributeKeyTokenA, pool.TokenA),
			sdk.NewAttribute(types.AttributeKeyTokenB, pool.TokenB),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	if k.metrics != nil {
		k.metrics.LiquidityAdded.WithLabelValues(pool.TokenA).Add(intToFloat(amountA))
		k.metrics.LiquidityAdded.WithLabelValues(pool.TokenB).Add(intToFloat(amountB))
		k.metrics.PoolReserves.WithLabelValues(pool.TokenA).Set(intToFloat(pool.ReserveA))
		k.metrics.PoolReserves.WithLabelValues(pool.TokenB).Set(intToFloat(pool.ReserveB))
	}

	if flipped {
		amountA, amountB = amountB, amountA
	}
	return amountA, amountB, shares, nil
}

// RemoveLiquidity burns claim tokens and pays out the proportional share of
// the pool's assets. Amounts are computed against the ledger's current
// balances rather than the cached reserves, from a single snapshot taken
// before any transfer, so prior rounding dust is distributed rather than
// stranded.
func (k Keeper) RemoveLiquidity(
	ctx context.Context,
	provider sdk.AccAddress,
	tokenA, tokenB string,
	liquidity, amountAMin, amountBMin math.Int,
	to sdk.AccAddress,
	deadline int64,
) (amountA, amountB math.Int, err error) {
	zero := math.ZeroInt()

	if err := checkDeadline(ctx, deadline); err != nil {
		return zero, zero, err
	}

	pool, flipped, err := k.resolvePool(ctx, tokenA, tokenB)
	if err != nil {
		return zero, zero, err
	}
	if flipped {
		amountAMin, amountBMin = amountBMin, amountAMin
	}

	if liquidity.IsNil() || !liquidity.IsPositive() {
		return zero, zero, types.ErrInvalidAmount.Wrap("liquidity must be positive")
	}
	if amountAMin.IsNil() || amountAMin.IsNegative() || amountBMin.IsNil() || amountBMin.IsNegative() {
		return zero, zero, types.ErrInvalidAmount.Wrap("minimum amounts cannot be negative")
	}

	if pool.TotalShares.IsZero() {
		return zero, zero, types.ErrInsufficientLiquidity.Wrap("pool has no outstanding shares")
	}
	if !pool.Bootstrapped() {
		return zero, zero, types.ErrInvalidPoolState.Wrap("pool has shares but zero reserves")
	}

	// Consistent snapshot: supply and both balances are read before any
	// transfer so the redemption cannot see a partially updated state.
	moduleAddr := k.GetModuleAddress()
	totalShares := pool.TotalShares
	balanceA := k.bankKeeper.GetBalance(ctx, moduleAddr, pool.TokenA).Amount
	balanceB := k.bankKeeper.GetBalance(ctx, moduleAddr, pool.TokenB).Amount

	userShares := k.bankKeeper.GetBalance(ctx, provider, pool.ShareDenom).Amount
	if liquidity.GT(userShares) {
		return zero, zero, types.ErrInsufficientShares.Wrapf("have %s, need %s", userShares, liquidity)
	}

	amountA, err = SafeMulDiv(liquidity, balanceA, totalShares)
	if err != nil {
		return zero, zero, err
	}
	amountB, err = SafeMulDiv(liquidity, balanceB, totalShares)
	if err != nil {
		return zero, zero, err
	}
	if amountA.IsZero() || amountB.IsZero() {
		return zero, zero, types.ErrInvalidAmount.Wrap("withdrawal amount rounds to zero")
	}

	if amountA.LT(amountAMin) {
		return zero, zero, types.ErrSlippageExceeded.Wrapf("amount A %s below minimum %s", amountA, amountAMin)
	}
	if amountB.LT(amountBMin) {
		return zero, zero, types.ErrSlippageExceeded.Wrapf("amount B %s below minimum %s", amountB, amountBMin)
	}

	newTotalShares, err := SafeSub(totalShares, liquidity)
	if err != nil {
		return zero, zero, err
	}

	// Pull and burn the claim tokens, then pay out.
	shareCoins := sdk.NewCoins(sdk.NewCoin(pool.ShareDenom, liquidity))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, provider, types.ModuleName, shareCoins); err != nil {
		return zero, zero, types.ErrTransferFailed.Wrapf("share transfer: %v", err)
	}
	if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, shareCoins); err != nil {
		return zero, zero, types.ErrTransferFailed.Wrapf("share burn: %v", err)
	}

	payout := sdk.NewCoins(sdk.NewCoin(pool.TokenA, amountA), sdk.NewCoin(pool.TokenB, amountB))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, to, payout); err != nil {
		return zero, zero, types.ErrTransferFailed.Wrapf("withdrawal transfer: %v", err)
	}

	// Reserves are set to the ledger's post-transfer balances.
	pool.ReserveA = k.bankKeeper.GetBalance(ctx, moduleAddr, pool.TokenA).Amount
	pool.ReserveB = k.bankKeeper.GetBalance(ctx, moduleAddr, pool.TokenB).Amount
	pool.TotalShares = newTotalShares

	if err := k.SetPool(ctx, pool); err != nil {
		return zero, zero, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemoveLiquidity,
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, to.String()),
			sdk.NewAttribute(types.AttributeKeyTokenA, pool.TokenA),
			sdk.NewAttribute(types.AttributeKeyTokenB, pool.TokenB),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, liquidity.String()),
		),
	)

	if k.metrics != nil {
		k.metrics.LiquidityRemoved.WithLabelValues(pool.TokenA).Add(intToFloat(amountA))
		k.metrics.LiquidityRemoved.WithLabelValues(pool.TokenB).Add(intToFloat(amountB))
		k.metrics.PoolReserves.WithLabelValues(pool.TokenA).Set(intToFloat(pool.ReserveA))
		k.metrics.PoolReserves.WithLabelValues(pool.TokenB).Set(intToFloat(pool.ReserveB))
	}

	if flipped {
		amountA, amountB = amountB, amountA
	}
	return amountA, amountB, nil
}
