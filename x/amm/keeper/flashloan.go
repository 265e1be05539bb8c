package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/pkg/telemetry"
	"github.com/paw-chain/pawswap/x/amm/types"
	assetstypes "github.com/paw-chain/pawswap/x/assets/types"
)

// FlashLoan lends amount of asset from the custody account to borrower, runs
// receiver, and requires the custody balance to end at least fee above where
// it started. The loan and everything receiver does form one unit of work.
// The fee is kept by custody and does not change pool reserves. While
// receiver runs, liquidity changes, swaps and nested loans fail with
// ErrReentrancy.
func (k Keeper) FlashLoan(
	ctx context.Context,
	borrower sdk.AccAddress,
	asset types.AssetID,
	amount math.Int,
	receiver types.FlashLoanReceiver,
) (err error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	_, span := telemetry.StartModuleSpan(sdkCtx.Context(), types.ModuleName, "flash_loan")
	defer func() {
		telemetry.RecordError(span, err)
		status := "repaid"
		if err != nil {
			status = "failed"
		}
		k.metrics.FlashLoans.WithLabelValues(asset.String(), status).Inc()
		span.End()
	}()

	if err := k.requireNoFlashLoan(ctx); err != nil {
		return err
	}
	if err := asset.Validate(); err != nil {
		return err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrZeroAmount.Wrap("loan amount must be positive")
	}
	if receiver == nil {
		return types.ErrCallFailed.Wrap("no receiver")
	}

	custody := k.GetModuleAddress()
	before := k.assetKeeper.Balance(ctx, asset.String(), custody)
	if before.LT(amount) {
		return types.ErrInsufficientLiquidity.Wrapf("custody holds %s %s, requested %s", before, asset, amount)
	}

	params, err := k.loadParams(ctx)
	if err != nil {
		return err
	}
	fee, err := params.FeeAmount(amount)
	if err != nil {
		return err
	}
	required, err := types.CheckedAdd(before, fee)
	if err != nil {
		return err
	}

	cacheCtx, writeFn := sdkCtx.CacheContext()
	if err := k.acquireFlashLoanLock(cacheCtx); err != nil {
		return err
	}
	if err := k.assetKeeper.Transfer(cacheCtx, asset.String(), custody, borrower, amount, assetstypes.Expendable); err != nil {
		return err
	}
	if err := receiver.OnFlashLoan(cacheCtx, borrower, asset, amount, fee); err != nil {
		return types.ErrCallFailed.Wrap(err.Error())
	}
	if after := k.assetKeeper.Balance(cacheCtx, asset.String(), custody); after.LT(required) {
		return types.ErrInsufficientRepayment.Wrapf("custody holds %s %s, needs %s", after, asset, required)
	}
	k.releaseFlashLoanLock(cacheCtx)

	writeFn()

	k.Logger(ctx).Info("flash loan repaid",
		"borrower", borrower.String(),
		"asset", asset,
		"amount", amount.String(),
		"fee", fee.String(),
	)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFlashLoan,
			sdk.NewAttribute(types.AttributeKeyAccount, borrower.String()),
			sdk.NewAttribute(types.AttributeKeyAsset, asset.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyFeeAmount, fee.String()),
		),
	)
	return nil
}
