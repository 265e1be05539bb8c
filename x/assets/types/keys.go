package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "assets"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

var (
	// AssetKeyPrefix is the prefix for asset metadata
	AssetKeyPrefix = []byte{0x01}

	// BalanceKeyPrefix is the prefix for account balances
	BalanceKeyPrefix = []byte{0x02}
)

func encodeID(id string) []byte {
	bz := make([]byte, 0, len(id)+1)
	bz = append(bz, byte(len(id)))
	return append(bz, id...)
}

// GetAssetKey returns the store key for an asset's metadata
func GetAssetKey(id string) []byte {
	return append(append([]byte{}, AssetKeyPrefix...), encodeID(id)...)
}

// GetBalancesPrefix returns the prefix for all balances of an asset
func GetBalancesPrefix(id string) []byte {
	return append(append([]byte{}, BalanceKeyPrefix...), encodeID(id)...)
}

// GetBalanceKey returns the store key for an account's balance of an asset
func GetBalanceKey(id string, account sdk.AccAddress) []byte {
	return append(GetBalancesPrefix(id), address.MustLengthPrefix(account)...)
}
