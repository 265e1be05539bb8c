package keeper

import (
	"context"
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/x/amm/types"
)

// GetParams returns the current parameters, or the defaults if none are set.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	bz := k.getStore(ctx).Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams(), nil
	}
	return types.UnmarshalParams(bz)
}

// SetParams validates and stores the parameters.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	k.getStore(ctx).Set(types.ParamsKey, params.Marshal())
	return nil
}

// GetFee returns the swap fee in basis points.
func (k Keeper) GetFee(ctx context.Context) (uint32, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}
	return params.SwapFeeBps, nil
}

// SetFee replaces the swap fee. Only the keeper authority may call it.
func (k Keeper) SetFee(ctx context.Context, caller sdk.AccAddress, feeBps uint32) error {
	if !caller.Equals(k.authority) {
		return types.ErrNotAllowedToSetFee.Wrapf("%s is not %s", caller, k.authority)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	previous := params.SwapFeeBps
	params.SwapFeeBps = feeBps
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	k.metrics.FeeBps.Set(float64(feeBps))
	k.Logger(ctx).Info("swap fee updated", "previous_bps", previous, "fee_bps", feeBps)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeeUpdated,
			sdk.NewAttribute(types.AttributeKeyAccount, caller.String()),
			sdk.NewAttribute(types.AttributeKeyFee, strconv.FormatUint(uint64(feeBps), 10)),
		),
	)
	return nil
}

func (k Keeper) loadParams(ctx context.Context) (types.Params, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.Params{}, fmt.Errorf("failed to load amm params: %w", err)
	}
	return params, nil
}
