package types

import (
	"cosmossdk.io/errors"
)

// Assets module sentinel errors
var (
	ErrUnknownAsset        = errors.Register(ModuleName, 2, "unknown asset")
	ErrAssetExists         = errors.Register(ModuleName, 3, "asset already exists")
	ErrInsufficientBalance = errors.Register(ModuleName, 4, "insufficient balance")
	ErrBelowMinimum        = errors.Register(ModuleName, 5, "balance would fall below the minimum")
	ErrInvalidAmount       = errors.Register(ModuleName, 6, "invalid amount")
	ErrInvalidAsset        = errors.Register(ModuleName, 7, "invalid asset id")
	ErrOverflow            = errors.Register(ModuleName, 8, "balance overflow")
	ErrReservedAsset       = errors.Register(ModuleName, 9, "asset id is reserved")
)
