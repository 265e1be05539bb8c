package types

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// GovModuleName is the module whose account is the default fee authority
	GovModuleName = "gov"
)

var (
	// PoolKeyPrefix is the prefix for pool storage, keyed by pool id
	PoolKeyPrefix = []byte{0x01}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x02}

	// FlashLoanLockKey is set while a flash loan callback runs. It only ever
	// exists inside the loan's cached store.
	FlashLoanLockKey = []byte{0x03}
)

// GetPoolKey returns the store key for a pool
func GetPoolKey(poolID AssetID) []byte {
	return append(append([]byte{}, PoolKeyPrefix...), poolID.Bytes()...)
}
