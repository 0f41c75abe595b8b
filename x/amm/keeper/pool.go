package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pairpool/pairpool/x/amm/types"
)

// GetPool retrieves the pool record. Returns ErrPoolNotFound if the module
// was started without a configured pair.
func (k Keeper) GetPool(ctx context.Context) (types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolKey)
	if bz == nil {
		return types.Pool{}, types.ErrPoolNotFound.Wrap("no pool configured")
	}

	var pool types.Pool
	if err := json.Unmarshal(bz, &pool); err != nil {
		return types.Pool{}, fmt.Errorf("GetPool: unmarshal pool: %w", err)
	}
	return pool, nil
}

// SetPool saves the pool record to the store.
func (k Keeper) SetPool(ctx context.Context, pool types.Pool) error {
	bz, err := json.Marshal(pool)
	if err != nil {
		return fmt.Errorf("SetPool: marshal pool: %w", err)
	}
	k.getStore(ctx).Set(types.PoolKey, bz)
	return nil
}

// InitPool installs an empty pool for the given pair. Called once from
// genesis; reinitializing an existing pool is rejected, the pair is immutable
// for the lifetime of the deployment.
func (k Keeper) InitPool(ctx context.Context, tokenA, tokenB string) (types.Pool, error) {
	if _, err := k.GetPool(ctx); err == nil {
		return types.Pool{}, types.ErrInvalidPoolState.Wrap("pool already initialized")
	}

	pool := types.NewPool(tokenA, tokenB)
	if err := pool.Validate(); err != nil {
		return types.Pool{}, err
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return types.Pool{}, err
	}
	return pool, nil
}

// resolvePool loads the pool and checks the caller-supplied pair against it.
// flipped reports that the caller's (tokenA, tokenB) is the pool's pair in
// reverse order.
func (k Keeper) resolvePool(ctx context.Context, tokenA, tokenB string) (types.Pool, bool, error) {
	pool, err := k.GetPool(ctx)
	if err != nil {
		return types.Pool{}, false, err
	}

	flipped, ok := pool.MatchesPair(tokenA, tokenB)
	if !ok {
		return types.Pool{}, false, types.ErrInvalidPair.Wrapf(
			"pool pair is %s/%s, got %s/%s", pool.TokenA, pool.TokenB, tokenA, tokenB)
	}
	return pool, flipped, nil
}
