package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/pairpool/pairpool/x/amm/keeper"
	"github.com/pairpool/pairpool/x/amm/types"
)

func TestMsgServer_AddLiquidity(t *testing.T) {
	k, ctx, _, provider := setupFixture(t)
	ms := keeper.NewMsgServerImpl(k)

	resp, err := ms.AddLiquidity(ctx, types.NewMsgAddLiquidity(
		provider.String(), tokenA, tokenB,
		math.NewInt(1000), math.NewInt(4000), math.ZeroInt(), math.ZeroInt(),
		provider.String(), futureDeadline(),
	))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), resp.AmountA)
	require.Equal(t, math.NewInt(4000), resp.AmountB)
	require.Equal(t, math.NewInt(2000), resp.Shares)
}

func TestMsgServer_AddLiquidity_InvalidMsg(t *testing.T) {
	k, ctx, _, provider := setupFixture(t)
	ms := keeper.NewMsgServerImpl(k)

	_, err := ms.AddLiquidity(ctx, types.NewMsgAddLiquidity(
		"badaddress", tokenA, tokenB,
		math.NewInt(1000), math.NewInt(4000), math.ZeroInt(), math.ZeroInt(),
		provider.String(), futureDeadline(),
	))
	require.Error(t, err)
}

func TestMsgServer_RemoveLiquidity(t *testing.T) {
	k, ctx, _, provider := setupFixture(t)
	bootstrap(t, k, ctx, provider, 1000, 4000)
	ms := keeper.NewMsgServerImpl(k)

	resp, err := ms.RemoveLiquidity(ctx, types.NewMsgRemoveLiquidity(
		provider.String(), tokenA, tokenB,
		math.NewInt(500), math.ZeroInt(), math.ZeroInt(),
		provider.String(), futureDeadline(),
	))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(250), resp.AmountA)
	require.Equal(t, math.NewInt(1000), resp.AmountB)
}

func TestMsgServer_Swap(t *testing.T) {
	k, ctx, trader := setupSwapFixture(t)
	ms := keeper.NewMsgServerImpl(k)

	resp, err := ms.Swap(ctx, types.NewMsgSwap(
		trader.String(), tokenA, tokenB,
		math.NewInt(1_000_000), math.NewInt(1),
		trader.String(), futureDeadline(),
	))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_813_221), resp.AmountOut)
}

func TestMsgServer_Swap_SlippageSurfaces(t *testing.T) {
	k, ctx, trader := setupSwapFixture(t)
	ms := keeper.NewMsgServerImpl(k)

	_, err := ms.Swap(ctx, types.NewMsgSwap(
		trader.String(), tokenA, tokenB,
		math.NewInt(1_000_000), math.NewInt(2_000_000),
		trader.String(), futureDeadline(),
	))
	require.ErrorIs(t, err, types.ErrSlippageExceeded)
}
