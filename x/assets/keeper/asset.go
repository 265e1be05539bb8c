package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/x/assets/types"
)

// CreateAsset registers a new asset with zero supply.
func (k Keeper) CreateAsset(ctx context.Context, id string, admin sdk.AccAddress, isSufficient bool, minBalance math.Int) error {
	if err := types.ValidateID(id); err != nil {
		return err
	}
	if err := k.checkReserved(id, admin); err != nil {
		return err
	}
	if k.AssetExists(ctx, id) {
		return types.ErrAssetExists.Wrap(id)
	}

	asset := types.Asset{
		Admin:        admin,
		IsSufficient: isSufficient,
		MinBalance:   minBalance,
		Supply:       math.ZeroInt(),
	}
	if err := asset.Validate(); err != nil {
		return err
	}
	if err := k.setAsset(ctx, id, asset); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCreated,
			sdk.NewAttribute(types.AttributeKeyAsset, id),
			sdk.NewAttribute(types.AttributeKeyAdmin, admin.String()),
		),
	)
	return nil
}

// GetAsset returns an asset's metadata.
func (k Keeper) GetAsset(ctx context.Context, id string) (types.Asset, error) {
	bz := k.getStore(ctx).Get(types.GetAssetKey(id))
	if bz == nil {
		return types.Asset{}, types.ErrUnknownAsset.Wrap(id)
	}
	return types.UnmarshalAsset(bz)
}

// AssetAdmin returns the account that created id.
func (k Keeper) AssetAdmin(ctx context.Context, id string) (sdk.AccAddress, error) {
	asset, err := k.GetAsset(ctx, id)
	if err != nil {
		return nil, err
	}
	return asset.Admin, nil
}

// AssetExists reports whether id has been created.
func (k Keeper) AssetExists(ctx context.Context, id string) bool {
	return k.getStore(ctx).Has(types.GetAssetKey(id))
}

// TotalIssuance returns the supply of id, zero for unknown assets.
func (k Keeper) TotalIssuance(ctx context.Context, id string) math.Int {
	asset, err := k.GetAsset(ctx, id)
	if err != nil {
		return math.ZeroInt()
	}
	return asset.Supply
}

func (k Keeper) setAsset(ctx context.Context, id string, asset types.Asset) error {
	bz, err := asset.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode asset %s: %w", id, err)
	}
	k.getStore(ctx).Set(types.GetAssetKey(id), bz)
	return nil
}
