package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// FeeDenominator is the basis-point scale for the swap fee. A SwapFeeBps of
// 30 reproduces the canonical 997/1000 constant-product fee split.
const FeeDenominator = 10_000

// Params holds the module's adjustable parameters.
type Params struct {
	// SwapFeeBps is the proportional swap fee in basis points, taken from
	// the input side and retained inside the pool.
	SwapFeeBps uint64 `json:"swap_fee_bps"`
	// MinInitialShares is the minimum claim-token amount the bootstrap
	// deposit must mint. Guards against dust pools whose share pricing is
	// trivially manipulable.
	MinInitialShares math.Int `json:"min_initial_shares"`
}

// DefaultParams returns the default module parameters.
func DefaultParams() Params {
	return Params{
		SwapFeeBps:       30, // 0.3%
		MinInitialShares: math.NewInt(1000),
	}
}

// Validate validates the parameter set.
func (p Params) Validate() error {
	if p.SwapFeeBps >= FeeDenominator {
		return fmt.Errorf("swap fee must be below %d basis points, got %d", FeeDenominator, p.SwapFeeBps)
	}
	if p.MinInitialShares.IsNil() || p.MinInitialShares.IsNegative() {
		return fmt.Errorf("min initial shares must be non-negative")
	}
	return nil
}
