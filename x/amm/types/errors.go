package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrSameAsset             = errors.Register(ModuleName, 2, "cannot pair an asset with itself")
	ErrNoPool                = errors.Register(ModuleName, 3, "pool does not exist")
	ErrInsufficientLPBalance = errors.Register(ModuleName, 4, "insufficient lp token balance")
	ErrSlippageTooHigh       = errors.Register(ModuleName, 5, "slippage bound exceeded")
	ErrArithmeticOverflow    = errors.Register(ModuleName, 6, "arithmetic overflow")
	ErrArithmeticUnderflow   = errors.Register(ModuleName, 7, "arithmetic underflow")
	ErrNotAllowedToSetFee    = errors.Register(ModuleName, 8, "origin is not allowed to set the fee")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 9, "insufficient liquidity")
	ErrInsufficientRepayment = errors.Register(ModuleName, 10, "flash loan not repaid in full")
	ErrCallFailed            = errors.Register(ModuleName, 11, "flash loan callback failed")
	ErrInvalidAsset          = errors.Register(ModuleName, 12, "invalid asset id")
	ErrZeroAmount            = errors.Register(ModuleName, 13, "amount cannot be zero")
	ErrInvalidFee            = errors.Register(ModuleName, 14, "invalid fee rate")
	ErrAssetNotInPool        = errors.Register(ModuleName, 15, "asset is not part of the pool")
	ErrInsufficientLPMinted  = errors.Register(ModuleName, 16, "deposit too small to mint lp tokens")
	ErrInvalidPool           = errors.Register(ModuleName, 17, "invalid pool")
	ErrInvalidGenesis        = errors.Register(ModuleName, 18, "invalid genesis state")
	ErrReentrancy            = errors.Register(ModuleName, 19, "operation not allowed during a flash loan")
)
