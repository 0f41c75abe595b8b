package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Pool is the reserve and claim-token state for the module's single token
// pair. TokenA and TokenB are fixed at initialization and kept in
// lexicographic order; reserves and total shares are mutated only by the
// keeper's deposit, withdrawal and swap operations.
type Pool struct {
	TokenA      string   `json:"token_a"`
	TokenB      string   `json:"token_b"`
	ReserveA    math.Int `json:"reserve_a"`
	ReserveB    math.Int `json:"reserve_b"`
	TotalShares math.Int `json:"total_shares"`
	ShareDenom  string   `json:"share_denom"`
}

// NewPool returns an empty pool for the given pair. Tokens are sorted so the
// stored pair is order-independent; reserves and shares start at zero and the
// first deposit bootstraps them.
func NewPool(tokenA, tokenB string) Pool {
	if tokenA > tokenB {
		tokenA, tokenB = tokenB, tokenA
	}
	return Pool{
		TokenA:      tokenA,
		TokenB:      tokenB,
		ReserveA:    math.ZeroInt(),
		ReserveB:    math.ZeroInt(),
		TotalShares: math.ZeroInt(),
		ShareDenom:  ShareDenom(tokenA, tokenB),
	}
}

// Validate checks structural well-formedness of the pool record.
func (p Pool) Validate() error {
	if p.TokenA == "" || p.TokenB == "" {
		return ErrInvalidPoolState.Wrap("token denoms cannot be empty")
	}
	if p.TokenA == p.TokenB {
		return ErrInvalidPoolState.Wrap("pool tokens must be different")
	}
	if p.TokenA > p.TokenB {
		return ErrInvalidPoolState.Wrapf("pool tokens not ordered: %s > %s", p.TokenA, p.TokenB)
	}
	if err := sdk.ValidateDenom(p.TokenA); err != nil {
		return ErrInvalidPoolState.Wrapf("invalid token A denom: %v", err)
	}
	if err := sdk.ValidateDenom(p.TokenB); err != nil {
		return ErrInvalidPoolState.Wrapf("invalid token B denom: %v", err)
	}
	if p.ShareDenom != ShareDenom(p.TokenA, p.TokenB) {
		return ErrInvalidPoolState.Wrapf("share denom %s does not match pair", p.ShareDenom)
	}
	if p.ReserveA.IsNil() || p.ReserveB.IsNil() || p.TotalShares.IsNil() {
		return ErrInvalidPoolState.Wrap("reserves and total shares must be set")
	}
	if p.ReserveA.IsNegative() || p.ReserveB.IsNegative() || p.TotalShares.IsNegative() {
		return ErrInvalidPoolState.Wrap("reserves and total shares cannot be negative")
	}
	return p.validateConsistency()
}

// validateConsistency rejects the torn states a correct engine can never
// produce: shares without reserves, reserves without shares, or a single
// drained side.
func (p Pool) validateConsistency() error {
	if p.ReserveA.IsZero() && p.ReserveB.IsZero() {
		if !p.TotalShares.IsZero() {
			return ErrInvalidPoolState.Wrap("pool has shares but zero reserves")
		}
		return nil
	}
	if p.ReserveA.IsZero() || p.ReserveB.IsZero() {
		return ErrInvalidPoolState.Wrap("pool has a zero reserve on one side only")
	}
	if p.TotalShares.IsZero() {
		return ErrInvalidPoolState.Wrap("pool has reserves but zero shares")
	}
	return nil
}

// Bootstrapped reports whether the pool has received its first deposit.
func (p Pool) Bootstrapped() bool {
	return !p.ReserveA.IsZero() && !p.ReserveB.IsZero()
}

// MatchesPair reports whether (tokenA, tokenB) is the pool's pair. flipped is
// true when the caller supplied the pair in reverse order.
func (p Pool) MatchesPair(tokenA, tokenB string) (flipped bool, ok bool) {
	switch {
	case tokenA == p.TokenA && tokenB == p.TokenB:
		return false, true
	case tokenA == p.TokenB && tokenB == p.TokenA:
		return true, true
	default:
		return false, false
	}
}

// ReservesFor returns the (reserveIn, reserveOut) pair for a swap taking
// tokenIn and paying tokenOut. ok is false if the tokens are not the pool's
// pair.
func (p Pool) ReservesFor(tokenIn, tokenOut string) (reserveIn, reserveOut math.Int, ok bool) {
	switch {
	case tokenIn == p.TokenA && tokenOut == p.TokenB:
		return p.ReserveA, p.ReserveB, true
	case tokenIn == p.TokenB && tokenOut == p.TokenA:
		return p.ReserveB, p.ReserveA, true
	default:
		return math.Int{}, math.Int{}, false
	}
}
