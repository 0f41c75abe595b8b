package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/pairpool/pairpool/testutil/keeper"
	"github.com/pairpool/pairpool/x/amm/types"
)

func TestInitPool(t *testing.T) {
	k, ctx, _ := keepertest.AmmKeeper(t)

	pool, err := k.InitPool(ctx, "uusdc", "uatom")
	require.NoError(t, err)
	require.Equal(t, "uatom", pool.TokenA)
	require.Equal(t, "uusdc", pool.TokenB)

	// The pair is immutable once configured.
	_, err = k.InitPool(ctx, "uatom", "uosmo")
	require.Error(t, err)
}

func TestGetPool_NotConfigured(t *testing.T) {
	k, ctx, _ := keepertest.AmmKeeper(t)

	_, err := k.GetPool(ctx)
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

func TestParams_RoundTrip(t *testing.T) {
	k, ctx, _ := keepertest.AmmKeeper(t)

	params := types.Params{SwapFeeBps: 100, MinInitialShares: math.NewInt(5000)}
	require.NoError(t, k.SetParams(ctx, params))

	got, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, params, got)
}

func TestSetParams_Invalid(t *testing.T) {
	k, ctx, _ := keepertest.AmmKeeper(t)

	err := k.SetParams(ctx, types.Params{SwapFeeBps: types.FeeDenominator, MinInitialShares: math.NewInt(1)})
	require.Error(t, err)
}
