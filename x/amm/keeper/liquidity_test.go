package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/pairpool/pairpool/testutil/keeper"
	"github.com/pairpool/pairpool/x/amm/keeper"
	"github.com/pairpool/pairpool/x/amm/types"
)

const (
	tokenA = "uatom"
	tokenB = "uusdc"
)

func testAddr() sdk.AccAddress {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
}

func sdkCoins(amountA, amountB int64) sdk.Coins {
	return sdk.NewCoins(
		sdk.NewCoin(tokenA, math.NewInt(amountA)),
		sdk.NewCoin(tokenB, math.NewInt(amountB)),
	)
}

func futureDeadline() int64 {
	return keepertest.TestBlockTime.Unix() + 600
}

func expiredDeadline() int64 {
	return keepertest.TestBlockTime.Unix() - 1
}

// setupFixture returns a keeper with an initialized empty pool and a funded
// provider account.
func setupFixture(t *testing.T) (keeper.Keeper, sdk.Context, *keepertest.MockBankKeeper, sdk.AccAddress) {
	k, ctx, bank := keepertest.AmmKeeper(t)
	keepertest.SetupPool(t, k, ctx, tokenA, tokenB)

	provider := testAddr()
	bank.FundAccount(provider, sdk.NewCoins(
		sdk.NewCoin(tokenA, math.NewInt(1_000_000_000)),
		sdk.NewCoin(tokenB, math.NewInt(1_000_000_000)),
	))
	return k, ctx, bank, provider
}

// bootstrap seeds the pool with the given amounts and returns minted shares.
func bootstrap(t *testing.T, k keeper.Keeper, ctx sdk.Context, provider sdk.AccAddress, amountA, amountB int64) math.Int {
	_, _, shares, err := k.AddLiquidity(ctx, provider, tokenA, tokenB,
		math.NewInt(amountA), math.NewInt(amountB), math.ZeroInt(), math.ZeroInt(),
		provider, futureDeadline())
	require.NoError(t, err)
	return shares
}

func TestAddLiquidity_Bootstrap(t *testing.T) {
	k, ctx, bank, provider := setupFixture(t)

	amountA, amountB, shares, err := k.AddLiquidity(ctx, provider, tokenA, tokenB,
		math.NewInt(1000), math.NewInt(4000), math.ZeroInt(), math.ZeroInt(),
		provider, futureDeadline())
	require.NoError(t, err)

	// floor(sqrt(1000*4000)) = 2000
	require.Equal(t, math.NewInt(1000), amountA)
	require.Equal(t, math.NewInt(4000), amountB)
	require.Equal(t, math.NewInt(2000), shares)

	pool, err := k.GetPool(ctx)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), pool.ReserveA)
	require.Equal(t, math.NewInt(4000), pool.ReserveB)
	require.Equal(t, math.NewInt(2000), pool.TotalShares)

	require.Equal(t, math.NewInt(2000), bank.GetBalance(ctx, provider, pool.ShareDenom).Amount)
	require.Equal(t, math.NewInt(2000), bank.GetSupply(ctx, pool.ShareDenom).Amount)
}

func TestAddLiquidity_BootstrapBelowMinimum(t *testing.T) {
	k, ctx, _, provider := setupFixture(t)

	// floor(sqrt(100)) = 10, below the default 1000 minimum
	_, _, _, err := k.AddLiquidity(ctx, provider, tokenA, tokenB,
		math.NewInt(10), math.NewInt(10), math.ZeroInt(), math.ZeroInt(),
		provider, futureDeadline())
	require.ErrorIs(t, err, types.ErrInsufficientLiquidityMinted)
}

func TestAddLiquidity_RatioPreserved(t *testing.T) {
	k, ctx, _, provider := setupFixture(t)
	bootstrap(t, k, ctx, provider, 1000, 4000)

	// Offer 100/1000; only 100/400 fits the 1:4 ratio.
	amountA, amountB, shares, err := k.AddLiquidity(ctx, provider, tokenA, tokenB,
		math.NewInt(100), math.NewInt(1000), math.ZeroInt(), math.ZeroInt(),
		provider, futureDeadline())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), amountA)
	require.Equal(t, math.NewInt(400), amountB)
	require.Equal(t, math.NewInt(200), shares)

	pool, err := k.GetPool(ctx)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1100), pool.ReserveA)
	require.Equal(t, math.NewInt(4400), pool.ReserveB)
	require.Equal(t, math.NewInt(2200), pool.TotalShares)
}

func TestAddLiquidity_RatioOtherSide(t *testing.T) {
	k, ctx, _, provider := setupFixture(t)
	bootstrap(t, k, ctx, provider, 1000, 4000)

	// B is the limiting side: offering 1000/400 scales A down to 100.
	amountA, amountB, shares, err := k.AddLiquidity(ctx, provider, tokenA, tokenB,
		math.NewInt(1000), math.NewInt(400), math.ZeroInt(), math.ZeroInt(),
		provider, futureDeadline())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), amountA)
	require.Equal(t, math.NewInt(400), amountB)
	require.Equal(t, math.NewInt(200), shares)
}

func TestAddLiquidity_SlippageExceeded(t *testing.T) {
	k, ctx, _, provider := setupFixture(t)
	bootstrap(t, k, ctx, provider, 1000, 4000)

	// Ratio scales B down to 400, below the 401 floor.
	_, _, _, err := k.AddLiquidity(ctx, provider, tokenA, tokenB,
		math.NewInt(100), math.NewInt(1000), math.ZeroInt(), math.NewInt(401),
		provider, futureDeadline())
	require.ErrorIs(t, err, types.ErrSlippageExceeded)
}

func TestAddLiquidity_FlippedTokenOrder(t *testing.T) {
	k, ctx, _, provider := setupFixture(t)

	// Caller order is reversed; returned amounts follow the caller.
	amountB, amountA, shares, err := k.AddLiquidity(ctx, provider, tokenB, tokenA,
		math.NewInt(4000), math.NewInt(1000), math.ZeroInt(), math.ZeroInt(),
		provider, futureDeadline())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(4000), amountB)
	require.Equal(t, math.NewInt(1000), amountA)
	require.Equal(t, math.NewInt(2000), shares)

	pool, err := k.GetPool(ctx)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), pool.ReserveA)
	require.Equal(t, math.NewInt(4000), pool.ReserveB)
}

func TestAddLiquidity_ExpiredDeadline(t *testing.T) {
	k, ctx, bank, provider := setupFixture(t)
	balanceBefore := bank.GetBalance(ctx, provider, tokenA).Amount

	_, _, _, err := k.AddLiquidity(ctx, provider, tokenA, tokenB,
		math.NewInt(1000), math.NewInt(4000), math.ZeroInt(), math.ZeroInt(),
		provider, expiredDeadline())
	require.ErrorIs(t, err, types.ErrExpired)

	// No transfer happened.
	require.Equal(t, balanceBefore, bank.GetBalance(ctx, provider, tokenA).Amount)
}

func TestAddLiquidity_WrongPair(t *testing.T) {
	k, ctx, _, provider := setupFixture(t)

	_, _, _, err := k.AddLiquidity(ctx, provider, tokenA, "uosmo",
		math.NewInt(1000), math.NewInt(4000), math.ZeroInt(), math.ZeroInt(),
		provider, futureDeadline())
	require.ErrorIs(t, err, types.ErrInvalidPair)
}

func TestAddLiquidity_ZeroAmount(t *testing.T) {
	k, ctx, _, provider := setupFixture(t)

	_, _, _, err := k.AddLiquidity(ctx, provider, tokenA, tokenB,
		math.ZeroInt(), math.NewInt(4000), math.ZeroInt(), math.ZeroInt(),
		provider, futureDeadline())
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestAddLiquidity_InsufficientFunds(t *testing.T) {
	k, ctx, _, _ := setupFixture(t)
	pauper := testAddr()

	_, _, _, err := k.AddLiquidity(ctx, pauper, tokenA, tokenB,
		math.NewInt(1000), math.NewInt(4000), math.ZeroInt(), math.ZeroInt(),
		pauper, futureDeadline())
	require.ErrorIs(t, err, types.ErrTransferFailed)
}

func TestAddLiquidity_MintsToRecipient(t *testing.T) {
	k, ctx, bank, provider := setupFixture(t)
	recipient := testAddr()

	_, _, shares, err := k.AddLiquidity(ctx, provider, tokenA, tokenB,
		math.NewInt(1000), math.NewInt(4000), math.ZeroInt(), math.ZeroInt(),
		recipient, futureDeadline())
	require.NoError(t, err)

	shareDenom := types.ShareDenom(tokenA, tokenB)
	require.Equal(t, shares, bank.GetBalance(ctx, recipient, shareDenom).Amount)
	require.True(t, bank.GetBalance(ctx, provider, shareDenom).Amount.IsZero())
}

func TestRemoveLiquidity_Proportional(t *testing.T) {
	k, ctx, bank, provider := setupFixture(t)
	bootstrap(t, k, ctx, provider, 1000, 4000)

	balanceABefore := bank.GetBalance(ctx, provider, tokenA).Amount
	balanceBBefore := bank.GetBalance(ctx, provider, tokenB).Amount

	// 500 of 2000 shares redeem a quarter of each reserve.
	amountA, amountB, err := k.RemoveLiquidity(ctx, provider, tokenA, tokenB,
		math.NewInt(500), math.ZeroInt(), math.ZeroInt(), provider, futureDeadline())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(250), amountA)
	require.Equal(t, math.NewInt(1000), amountB)

	pool, err := k.GetPool(ctx)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(750), pool.ReserveA)
	require.Equal(t, math.NewInt(3000), pool.ReserveB)
	require.Equal(t, math.NewInt(1500), pool.TotalShares)

	require.Equal(t, balanceABefore.AddRaw(250), bank.GetBalance(ctx, provider, tokenA).Amount)
	require.Equal(t, balanceBBefore.AddRaw(1000), bank.GetBalance(ctx, provider, tokenB).Amount)
	require.Equal(t, math.NewInt(1500), bank.GetSupply(ctx, pool.ShareDenom).Amount)
}

func TestRemoveLiquidity_FullDrain(t *testing.T) {
	k, ctx, bank, provider := setupFixture(t)
	shares := bootstrap(t, k, ctx, provider, 1000, 4000)

	amountA, amountB, err := k.RemoveLiquidity(ctx, provider, tokenA, tokenB,
		shares, math.ZeroInt(), math.ZeroInt(), provider, futureDeadline())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), amountA)
	require.Equal(t, math.NewInt(4000), amountB)

	pool, err := k.GetPool(ctx)
	require.NoError(t, err)
	require.True(t, pool.ReserveA.IsZero())
	require.True(t, pool.ReserveB.IsZero())
	require.True(t, pool.TotalShares.IsZero())
	require.True(t, bank.GetSupply(ctx, pool.ShareDenom).Amount.IsZero())
}

func TestRemoveLiquidity_InsufficientShares(t *testing.T) {
	k, ctx, _, provider := setupFixture(t)
	shares := bootstrap(t, k, ctx, provider, 1000, 4000)

	_, _, err := k.RemoveLiquidity(ctx, provider, tokenA, tokenB,
		shares.AddRaw(1), math.ZeroInt(), math.ZeroInt(), provider, futureDeadline())
	require.ErrorIs(t, err, types.ErrInsufficientShares)
}

func TestRemoveLiquidity_EmptyPool(t *testing.T) {
	k, ctx, _, provider := setupFixture(t)

	_, _, err := k.RemoveLiquidity(ctx, provider, tokenA, tokenB,
		math.NewInt(100), math.ZeroInt(), math.ZeroInt(), provider, futureDeadline())
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}

func TestRemoveLiquidity_SlippageExceeded(t *testing.T) {
	k, ctx, _, provider := setupFixture(t)
	bootstrap(t, k, ctx, provider, 1000, 4000)

	// 500 shares redeem 250 of token A; demand 251.
	_, _, err := k.RemoveLiquidity(ctx, provider, tokenA, tokenB,
		math.NewInt(500), math.NewInt(251), math.ZeroInt(), provider, futureDeadline())
	require.ErrorIs(t, err, types.ErrSlippageExceeded)
}

func TestRemoveLiquidity_ExpiredDeadline(t *testing.T) {
	k, ctx, bank, provider := setupFixture(t)
	bootstrap(t, k, ctx, provider, 1000, 4000)

	shareDenom := types.ShareDenom(tokenA, tokenB)
	sharesBefore := bank.GetBalance(ctx, provider, shareDenom).Amount

	_, _, err := k.RemoveLiquidity(ctx, provider, tokenA, tokenB,
		math.NewInt(500), math.ZeroInt(), math.ZeroInt(), provider, expiredDeadline())
	require.ErrorIs(t, err, types.ErrExpired)
	require.Equal(t, sharesBefore, bank.GetBalance(ctx, provider, shareDenom).Amount)
}

func TestRemoveLiquidity_FlippedTokenOrder(t *testing.T) {
	k, ctx, _, provider := setupFixture(t)
	bootstrap(t, k, ctx, provider, 1000, 4000)

	// Caller order reversed; min bounds and returned amounts follow it.
	amountB, amountA, err := k.RemoveLiquidity(ctx, provider, tokenB, tokenA,
		math.NewInt(500), math.NewInt(1000), math.NewInt(250), provider, futureDeadline())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), amountB)
	require.Equal(t, math.NewInt(250), amountA)
}

func TestRemoveLiquidity_DistributesSwapFees(t *testing.T) {
	k, ctx, bank, provider := setupFixture(t)
	shares := bootstrap(t, k, ctx, provider, 1_000_000, 1_000_000)

	trader := testAddr()
	bank.FundAccount(trader, sdk.NewCoins(
		sdk.NewCoin(tokenA, math.NewInt(10_000_000)),
		sdk.NewCoin(tokenB, math.NewInt(10_000_000)),
	))

	// Trade back and forth to accumulate fees inside the pool.
	out, err := k.SwapExactTokensForTokens(ctx, trader, tokenA, tokenB,
		math.NewInt(100_000), math.ZeroInt(), trader, futureDeadline())
	require.NoError(t, err)
	_, err = k.SwapExactTokensForTokens(ctx, trader, tokenB, tokenA,
		out, math.ZeroInt(), trader, futureDeadline())
	require.NoError(t, err)

	// Draining all shares must return at least the original deposit on one
	// side; fees make the total payout across both sides exceed it.
	amountA, amountB, err := k.RemoveLiquidity(ctx, provider, tokenA, tokenB,
		shares, math.ZeroInt(), math.ZeroInt(), provider, futureDeadline())
	require.NoError(t, err)
	require.True(t, amountA.Add(amountB).GT(math.NewInt(2_000_000)),
		"payout %s + %s should exceed the original deposit", amountA, amountB)
}
