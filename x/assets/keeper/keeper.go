package keeper

import (
	"context"
	"strings"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/x/assets/types"
)

// Keeper of the assets store
type Keeper struct {
	storeKey storetypes.StoreKey
	reserved []reservation
}

// reservation restricts creation of ids starting with prefix to admin.
type reservation struct {
	prefix string
	admin  sdk.AccAddress
}

// NewKeeper creates a new assets Keeper instance
func NewKeeper(key storetypes.StoreKey) Keeper {
	return Keeper{storeKey: key}
}

// WithReservedPrefix returns a copy of k in which only admin may create
// assets whose id starts with prefix.
func (k Keeper) WithReservedPrefix(prefix string, admin sdk.AccAddress) Keeper {
	reserved := make([]reservation, 0, len(k.reserved)+1)
	reserved = append(reserved, k.reserved...)
	k.reserved = append(reserved, reservation{prefix: prefix, admin: admin})
	return k
}

func (k Keeper) checkReserved(id string, admin sdk.AccAddress) error {
	for _, r := range k.reserved {
		if strings.HasPrefix(id, r.prefix) && !admin.Equals(r.admin) {
			return types.ErrReservedAsset.Wrapf("%s may only be created by %s", id, r.admin)
		}
	}
	return nil
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
