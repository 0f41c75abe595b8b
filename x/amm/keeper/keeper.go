package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/pairpool/pairpool/x/amm/types"
)

// Keeper owns the pool's reserve and claim-supply state and implements the
// deposit, withdrawal, swap and price operations on top of the bank ledger.
type Keeper struct {
	storeKey   storetypes.StoreKey
	bankKeeper types.BankKeeper
	moduleAddr sdk.AccAddress
	metrics    *Metrics
}

// NewKeeper creates a new amm Keeper instance. The module account address is
// computed once and cached; it holds both reserve assets on behalf of the
// pool.
func NewKeeper(key storetypes.StoreKey, bankKeeper types.BankKeeper) Keeper {
	return Keeper{
		storeKey:   key,
		bankKeeper: bankKeeper,
		moduleAddr: authtypes.NewModuleAddress(types.ModuleName),
		metrics:    moduleMetrics(),
	}
}

// getStore returns the KVStore for the amm module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// GetModuleAddress returns the cached module account address.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddr
}
