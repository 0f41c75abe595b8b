package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/pairpool/pairpool/testutil/keeper"
	"github.com/pairpool/pairpool/x/amm/keeper"
	"github.com/pairpool/pairpool/x/amm/types"
)

func TestInvariants_NoPool(t *testing.T) {
	k, ctx, _ := keepertest.AmmKeeper(t)

	_, broken := keeper.AllInvariants(k)(ctx)
	require.False(t, broken)
}

func TestInvariants_HoldAfterOperations(t *testing.T) {
	k, ctx, bank, provider := setupFixture(t)
	bootstrap(t, k, ctx, provider, 1_000_000, 4_000_000)

	trader := testAddr()
	bank.FundAccount(trader, sdkCoins(10_000_000, 10_000_000))

	_, err := k.SwapExactTokensForTokens(ctx, trader, tokenA, tokenB,
		math.NewInt(50_000), math.ZeroInt(), trader, futureDeadline())
	require.NoError(t, err)

	_, _, err = k.RemoveLiquidity(ctx, provider, tokenA, tokenB,
		math.NewInt(500), math.ZeroInt(), math.ZeroInt(), provider, futureDeadline())
	require.NoError(t, err)

	msg, broken := keeper.AllInvariants(k)(ctx)
	require.False(t, broken, msg)
}

func TestShareSupplyInvariant_DetectsDrift(t *testing.T) {
	k, ctx, bank, provider := setupFixture(t)
	bootstrap(t, k, ctx, provider, 1_000_000, 4_000_000)

	// Mint share supply behind the keeper's back.
	shareDenom := types.ShareDenom(tokenA, tokenB)
	require.NoError(t, bank.MintCoins(ctx, types.ModuleName,
		sdk.NewCoins(sdk.NewCoin(shareDenom, math.NewInt(1)))))

	_, broken := keeper.ShareSupplyInvariant(k)(ctx)
	require.True(t, broken)
}

func TestReserveBackingInvariant_DetectsShortfall(t *testing.T) {
	k, ctx, bank, provider := setupFixture(t)
	bootstrap(t, k, ctx, provider, 1_000_000, 4_000_000)

	// Drain part of the module account directly.
	outsider := testAddr()
	require.NoError(t, bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, outsider,
		sdk.NewCoins(sdk.NewCoin(tokenA, math.NewInt(1)))))

	_, broken := keeper.ReserveBackingInvariant(k)(ctx)
	require.True(t, broken)
}

func TestPoolConsistencyInvariant_DetectsTornState(t *testing.T) {
	k, ctx, _, provider := setupFixture(t)
	bootstrap(t, k, ctx, provider, 1_000_000, 4_000_000)

	pool, err := k.GetPool(ctx)
	require.NoError(t, err)
	pool.ReserveB = math.ZeroInt()
	require.NoError(t, k.SetPool(ctx, pool))

	_, broken := keeper.PoolConsistencyInvariant(k)(ctx)
	require.True(t, broken)
}
