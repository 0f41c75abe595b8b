package keeper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/pairpool/pairpool/x/amm/keeper"
	"github.com/pairpool/pairpool/x/amm/types"
)

// TestBlockTime is the block time stamped on every fixture context. Deadline
// checks in tests are written against this instant.
var TestBlockTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// AmmKeeper creates a test keeper for the amm module backed by an in-memory
// store and an in-memory bank ledger.
func AmmKeeper(t testing.TB) (keeper.Keeper, sdk.Context, *MockBankKeeper) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	bank := NewMockBankKeeper()
	k := keeper.NewKeeper(storeKey, bank)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: TestBlockTime}, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, ctx, bank
}

// SetupPool initializes the pool pair for tests that operate on it.
func SetupPool(t testing.TB, k keeper.Keeper, ctx sdk.Context, tokenA, tokenB string) types.Pool {
	pool, err := k.InitPool(ctx, tokenA, tokenB)
	require.NoError(t, err)
	return pool
}

// MockBankKeeper is an in-memory implementation of the bank ledger used by
// keeper tests. Balances are tracked per bech32 address, supply per denom.
type MockBankKeeper struct {
	balances map[string]sdk.Coins
	supply   sdk.Coins
}

var _ types.BankKeeper = (*MockBankKeeper)(nil)

func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{
		balances: make(map[string]sdk.Coins),
	}
}

// FundAccount credits an account and grows supply, mirroring a mint plus
// transfer in the real bank module.
func (m *MockBankKeeper) FundAccount(addr sdk.AccAddress, amt sdk.Coins) {
	m.balances[addr.String()] = m.balances[addr.String()].Add(amt...)
	m.supply = m.supply.Add(amt...)
}

func (m *MockBankKeeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

func (m *MockBankKeeper) GetSupply(ctx context.Context, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.supply.AmountOf(denom))
}

func (m *MockBankKeeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.send(senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

func (m *MockBankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.send(authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}

func (m *MockBankKeeper) MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error {
	addr := authtypes.NewModuleAddress(moduleName)
	m.balances[addr.String()] = m.balances[addr.String()].Add(amt...)
	m.supply = m.supply.Add(amt...)
	return nil
}

func (m *MockBankKeeper) BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error {
	addr := authtypes.NewModuleAddress(moduleName)
	balance := m.balances[addr.String()]
	if !balance.IsAllGTE(amt) {
		return fmt.Errorf("insufficient module balance to burn %s", amt)
	}
	m.balances[addr.String()] = balance.Sub(amt...)
	m.supply = m.supply.Sub(amt...)
	return nil
}

func (m *MockBankKeeper) send(from, to sdk.AccAddress, amt sdk.Coins) error {
	balance := m.balances[from.String()]
	if !balance.IsAllGTE(amt) {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", from, balance, amt)
	}
	m.balances[from.String()] = balance.Sub(amt...)
	m.balances[to.String()] = m.balances[to.String()].Add(amt...)
	return nil
}
