package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/pairpool/pairpool/x/amm/types"
)

// Overflow-checked arithmetic for pool computations. math.Int panics past
// 2^256 on in-place operations, so every multi-word step goes through big.Int
// and rejects results at or beyond 2^256 instead of wrapping or panicking.

var maxInt256 = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

// SafeAdd adds two math.Int values with overflow checking.
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())
	if result.Cmp(maxInt256) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrapf("addition overflow: %s + %s", a, b)
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeSub subtracts b from a, rejecting underflow below zero.
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, types.ErrOverflow.Wrapf("underflow: cannot subtract %s from %s", b, a)
	}
	return a.Sub(b), nil
}

// SafeMul multiplies two math.Int values with overflow checking.
func SafeMul(a, b math.Int) (math.Int, error) {
	if a.IsZero() || b.IsZero() {
		return math.ZeroInt(), nil
	}
	result := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if result.Cmp(maxInt256) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrapf("multiplication overflow: %s * %s", a, b)
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeQuo divides a by b with truncation, rejecting a zero divisor.
func SafeQuo(a, b math.Int) (math.Int, error) {
	if b.IsZero() {
		return math.Int{}, types.ErrOverflow.Wrap("division by zero")
	}
	return math.NewIntFromBigInt(new(big.Int).Quo(a.BigInt(), b.BigInt())), nil
}

// SafeMulDiv computes (a * b) / c with truncating division. The intermediate
// product is carried at full precision, so it only fails on a zero divisor or
// a quotient past 2^256.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, types.ErrOverflow.Wrap("division by zero")
	}
	product := new(big.Int).Mul(a.BigInt(), b.BigInt())
	result := product.Quo(product, c.BigInt())
	if result.Cmp(maxInt256) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrapf("overflow in (%s * %s) / %s", a, b, c)
	}
	return math.NewIntFromBigInt(result), nil
}

// IntSqrt returns the exact floor of the square root of y using Babylonian
// iteration. Seeds the initial claim-token minting, so floor exactness is
// required: any bias here would permanently skew share pricing.
func IntSqrt(y math.Int) (math.Int, error) {
	if y.IsNil() || y.IsNegative() {
		return math.Int{}, types.ErrOverflow.Wrap("square root of negative value")
	}
	yBig := y.BigInt()
	if yBig.Cmp(big.NewInt(3)) > 0 {
		z := new(big.Int).Set(yBig)
		x := new(big.Int).Quo(yBig, big.NewInt(2))
		x.Add(x, big.NewInt(1))
		for x.Cmp(z) < 0 {
			z.Set(x)
			t := new(big.Int).Quo(yBig, x)
			t.Add(t, x)
			x = t.Quo(t, big.NewInt(2))
		}
		return math.NewIntFromBigInt(z), nil
	}
	if !y.IsZero() {
		return math.OneInt(), nil
	}
	return math.ZeroInt(), nil
}

// MinInt returns the smaller of two math.Int values.
func MinInt(a, b math.Int) math.Int {
	if a.LT(b) {
		return a
	}
	return b
}
