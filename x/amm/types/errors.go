package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrInvalidPoolID         = errors.Register(ModuleName, 2, "invalid pool id")
	ErrPoolNotFound          = errors.Register(ModuleName, 3, "pool not found")
	ErrPoolAlreadyExists     = errors.Register(ModuleName, 4, "pool already exists")
	ErrInvalidAsset          = errors.Register(ModuleName, 5, "invalid asset identifier")
	ErrIdenticalAssets       = errors.Register(ModuleName, 6, "assets must be distinct")
	ErrInvalidAmount         = errors.Register(ModuleName, 7, "amount must be positive")
	ErrInvalidFee            = errors.Register(ModuleName, 8, "fee out of range")
	ErrInvalidRecipient      = errors.Register(ModuleName, 9, "invalid recipient")
	ErrInvalidRoute          = errors.Register(ModuleName, 10, "invalid swap route")
	ErrAssetNotInPool        = errors.Register(ModuleName, 11, "asset is not a side of the pool")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 12, "insufficient liquidity")
	ErrBelowMinimumLiquidity = errors.Register(ModuleName, 13, "liquidity at or below locked minimum")
	ErrInsufficientShares    = errors.Register(ModuleName, 14, "insufficient liquidity shares")
	ErrRatioMismatch         = errors.Register(ModuleName, 15, "deposit does not match pool ratio")
	ErrSlippageExceeded      = errors.Register(ModuleName, 16, "output below caller minimum")
	ErrRepaymentShortfall    = errors.Register(ModuleName, 17, "flash borrow repayment shortfall")
	ErrReentrancy            = errors.Register(ModuleName, 18, "reentrant call rejected")
	ErrTransferFailed        = errors.Register(ModuleName, 19, "asset transfer failed")
	ErrReserveOverflow       = errors.Register(ModuleName, 20, "reserve exceeds maximum")
	ErrInvariantViolation    = errors.Register(ModuleName, 21, "pool invariant violated")
	ErrInvalidPoolState      = errors.Register(ModuleName, 22, "invalid pool state")
	ErrOverflow              = errors.Register(ModuleName, 23, "arithmetic overflow")
)
