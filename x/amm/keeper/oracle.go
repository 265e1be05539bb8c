package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/x/amm/types"
)

// GetSpotPrice returns the marginal price of assetIn in units of assetOut,
// reserveOut / reserveIn, ignoring fees.
func (k Keeper) GetSpotPrice(ctx context.Context, assetIn, assetOut types.AssetID) (math.LegacyDec, error) {
	pool, _, err := k.GetPoolByAssets(ctx, assetIn, assetOut)
	if err != nil {
		return math.LegacyDec{}, err
	}
	return types.SpotPrice(assetIn, pool)
}

// PriceOracle reports the spot price through an event as well as returning it.
func (k Keeper) PriceOracle(ctx context.Context, assetIn, assetOut types.AssetID) (math.LegacyDec, error) {
	price, err := k.GetSpotPrice(ctx, assetIn, assetOut)
	if err != nil {
		return math.LegacyDec{}, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePriceOracle,
			sdk.NewAttribute(types.AttributeKeyAssetIn, assetIn.String()),
			sdk.NewAttribute(types.AttributeKeyAssetOut, assetOut.String()),
			sdk.NewAttribute(types.AttributeKeyRate, price.String()),
		),
	)
	return price, nil
}
