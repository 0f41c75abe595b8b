package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pairpool/pairpool/x/amm/types"
)

// RegisterInvariants registers all amm module invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "reserve-backing", ReserveBackingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "share-supply", ShareSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pool-consistency", PoolConsistencyInvariant(k))
}

// AllInvariants runs all invariants of the amm module.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if res, stop := ReserveBackingInvariant(k)(ctx); stop {
			return res, stop
		}
		if res, stop := ShareSupplyInvariant(k)(ctx); stop {
			return res, stop
		}
		return PoolConsistencyInvariant(k)(ctx)
	}
}

// ReserveBackingInvariant checks that the module account holds at least the
// recorded reserves of both assets.
func ReserveBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		pool, err := k.GetPool(ctx)
		if err != nil {
			if types.ErrPoolNotFound.Is(err) {
				return sdk.FormatInvariant(types.ModuleName, "reserve-backing", "no pool configured"), false
			}
			return sdk.FormatInvariant(types.ModuleName, "reserve-backing", err.Error()), true
		}

		moduleAddr := k.GetModuleAddress()
		balanceA := k.bankKeeper.GetBalance(ctx, moduleAddr, pool.TokenA).Amount
		balanceB := k.bankKeeper.GetBalance(ctx, moduleAddr, pool.TokenB).Amount

		var msg string
		broken := false
		if balanceA.LT(pool.ReserveA) {
			broken = true
			msg += fmt.Sprintf("module balance for %s (%s) < reserve (%s)\n", pool.TokenA, balanceA, pool.ReserveA)
		}
		if balanceB.LT(pool.ReserveB) {
			broken = true
			msg += fmt.Sprintf("module balance for %s (%s) < reserve (%s)\n", pool.TokenB, balanceB, pool.ReserveB)
		}

		return sdk.FormatInvariant(types.ModuleName, "reserve-backing", msg), broken
	}
}

// ShareSupplyInvariant checks that the ledger's outstanding claim-token
// supply equals the pool's recorded total shares.
func ShareSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		pool, err := k.GetPool(ctx)
		if err != nil {
			if types.ErrPoolNotFound.Is(err) {
				return sdk.FormatInvariant(types.ModuleName, "share-supply", "no pool configured"), false
			}
			return sdk.FormatInvariant(types.ModuleName, "share-supply", err.Error()), true
		}

		supply := k.bankKeeper.GetSupply(ctx, pool.ShareDenom).Amount
		if !supply.Equal(pool.TotalShares) {
			return sdk.FormatInvariant(types.ModuleName, "share-supply",
				fmt.Sprintf("ledger supply %s != pool total shares %s", supply, pool.TotalShares)), true
		}

		return sdk.FormatInvariant(types.ModuleName, "share-supply", "supply matches total shares"), false
	}
}

// PoolConsistencyInvariant checks the pool record itself: ordered pair,
// non-negative amounts, and no half-drained or shareless-but-funded state.
func PoolConsistencyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		pool, err := k.GetPool(ctx)
		if err != nil {
			if types.ErrPoolNotFound.Is(err) {
				return sdk.FormatInvariant(types.ModuleName, "pool-consistency", "no pool configured"), false
			}
			return sdk.FormatInvariant(types.ModuleName, "pool-consistency", err.Error()), true
		}

		if err := pool.Validate(); err != nil {
			return sdk.FormatInvariant(types.ModuleName, "pool-consistency", err.Error()), true
		}

		return sdk.FormatInvariant(types.ModuleName, "pool-consistency", "pool state is consistent"), false
	}
}
