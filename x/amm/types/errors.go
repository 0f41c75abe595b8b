package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors. Every operation failure maps to one of these;
// the first failing check aborts the operation before any state or balance
// change.
var (
	ErrExpired                     = errors.Register(ModuleName, 2, "deadline exceeded")
	ErrInvalidPair                 = errors.Register(ModuleName, 3, "token pair does not match pool")
	ErrInvalidAmount               = errors.Register(ModuleName, 4, "invalid amount")
	ErrSlippageExceeded            = errors.Register(ModuleName, 5, "amount outside slippage bounds")
	ErrInsufficientLiquidity       = errors.Register(ModuleName, 6, "insufficient liquidity in pool")
	ErrInsufficientLiquidityMinted = errors.Register(ModuleName, 7, "liquidity minted rounds to zero")
	ErrInsufficientShares          = errors.Register(ModuleName, 8, "insufficient liquidity shares")
	ErrTransferFailed              = errors.Register(ModuleName, 9, "ledger transfer failed")
	ErrPoolNotFound                = errors.Register(ModuleName, 10, "pool not found")
	ErrInvalidPoolState            = errors.Register(ModuleName, 11, "invalid pool state")
	ErrOverflow                    = errors.Register(ModuleName, 12, "arithmetic overflow")
	ErrInvariantViolation          = errors.Register(ModuleName, 13, "pool invariant violated")
	ErrInvalidAddress              = errors.Register(ModuleName, 14, "invalid address")
)
