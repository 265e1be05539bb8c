package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/paw-chain/pawswap/x/amm/types"
)

// Keeper of the amm store
type Keeper struct {
	storeKey      storetypes.StoreKey
	assetKeeper   types.AssetKeeper
	authority     sdk.AccAddress
	moduleAddress sdk.AccAddress
	metrics       *AMMMetrics
}

// NewKeeper creates a new amm Keeper instance. authority is the only account
// allowed to change the fee; an empty authority defaults to the gov module
// account.
func NewKeeper(key storetypes.StoreKey, assetKeeper types.AssetKeeper, authority sdk.AccAddress) Keeper {
	if len(authority) == 0 {
		authority = authtypes.NewModuleAddress(types.GovModuleName)
	}
	return Keeper{
		storeKey:      key,
		assetKeeper:   assetKeeper,
		authority:     authority,
		moduleAddress: authtypes.NewModuleAddress(types.ModuleName),
		metrics:       NewAMMMetrics(),
	}
}

// getStore returns the KVStore for the amm module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// GetModuleAddress returns the custody account that holds every pool's
// reserves.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddress
}

// GetAuthority returns the account allowed to set the fee.
func (k Keeper) GetAuthority() sdk.AccAddress {
	return k.authority
}
