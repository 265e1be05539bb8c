package keeper

import (
	"context"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.opentelemetry.io/otel/attribute"

	"github.com/paw-chain/pawswap/pkg/telemetry"
	"github.com/paw-chain/pawswap/x/amm/types"
	assetstypes "github.com/paw-chain/pawswap/x/assets/types"
)

const (
	swapKindExactIn  = "exact_in"
	swapKindExactOut = "exact_out"
)

// CalculateOut prices selling amountIn of input into pool at the current fee.
func (k Keeper) CalculateOut(ctx context.Context, amountIn math.Int, input types.AssetID, pool types.Pool) (math.Int, types.Pool, error) {
	params, err := k.loadParams(ctx)
	if err != nil {
		return math.Int{}, types.Pool{}, err
	}
	return types.CalculateOut(amountIn, input, pool, params)
}

// CalculateIn prices buying amountOut of output from pool at the current fee.
func (k Keeper) CalculateIn(ctx context.Context, amountOut math.Int, output types.AssetID, pool types.Pool) (math.Int, types.Pool, error) {
	params, err := k.loadParams(ctx)
	if err != nil {
		return math.Int{}, types.Pool{}, err
	}
	return types.CalculateIn(amountOut, output, pool, params)
}

// QuoteExactIn returns the output of selling amountIn of assetIn for
// assetOut without changing state.
func (k Keeper) QuoteExactIn(ctx context.Context, assetIn, assetOut types.AssetID, amountIn math.Int) (math.Int, error) {
	pool, _, err := k.GetPoolByAssets(ctx, assetIn, assetOut)
	if err != nil {
		return math.Int{}, err
	}
	out, _, err := k.CalculateOut(ctx, amountIn, assetIn, pool)
	return out, err
}

// QuoteExactOut returns the input needed to buy amountOut of assetOut with
// assetIn without changing state.
func (k Keeper) QuoteExactOut(ctx context.Context, assetIn, assetOut types.AssetID, amountOut math.Int) (math.Int, error) {
	pool, _, err := k.GetPoolByAssets(ctx, assetIn, assetOut)
	if err != nil {
		return math.Int{}, err
	}
	in, _, err := k.CalculateIn(ctx, amountOut, assetOut, pool)
	return in, err
}

// SwapExactInForOut sells exactly exactIn of assetIn and fails with
// ErrSlippageTooHigh if fewer than minOut of assetOut would be received.
func (k Keeper) SwapExactInForOut(
	ctx context.Context,
	caller sdk.AccAddress,
	assetIn, assetOut types.AssetID,
	exactIn, minOut math.Int,
) (amountOut math.Int, err error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	_, span := telemetry.StartModuleSpan(sdkCtx.Context(), types.ModuleName, "swap_exact_in")
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if err := k.requireNoFlashLoan(ctx); err != nil {
		return math.Int{}, err
	}
	pool, poolID, err := k.GetPoolByAssets(ctx, assetIn, assetOut)
	if err != nil {
		return math.Int{}, err
	}
	telemetry.AddSpanAttributes(span, attribute.String("pool_id", poolID.String()))
	if exactIn.IsNil() || !exactIn.IsPositive() {
		return math.Int{}, types.ErrZeroAmount.Wrap("exact input must be positive")
	}
	if minOut.IsNil() {
		return math.Int{}, types.ErrSlippageTooHigh.Wrap("minimum output is required")
	}

	amountOut, updated, err := k.CalculateOut(ctx, exactIn, assetIn, pool)
	if err != nil {
		return math.Int{}, err
	}
	if amountOut.LT(minOut) {
		return math.Int{}, types.ErrSlippageTooHigh.Wrapf("output %s below minimum %s", amountOut, minOut)
	}

	if err := k.executeSwap(sdkCtx, caller, poolID, assetIn, assetOut, exactIn, amountOut, updated, swapKindExactIn); err != nil {
		return math.Int{}, err
	}
	return amountOut, nil
}

// SwapInForExactOut buys exactly exactOut of assetOut and fails with
// ErrSlippageTooHigh if more than maxIn of assetIn would be required.
func (k Keeper) SwapInForExactOut(
	ctx context.Context,
	caller sdk.AccAddress,
	assetIn, assetOut types.AssetID,
	maxIn, exactOut math.Int,
) (amountIn math.Int, err error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	_, span := telemetry.StartModuleSpan(sdkCtx.Context(), types.ModuleName, "swap_exact_out")
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if err := k.requireNoFlashLoan(ctx); err != nil {
		return math.Int{}, err
	}
	pool, poolID, err := k.GetPoolByAssets(ctx, assetIn, assetOut)
	if err != nil {
		return math.Int{}, err
	}
	telemetry.AddSpanAttributes(span, attribute.String("pool_id", poolID.String()))
	if exactOut.IsNil() || !exactOut.IsPositive() {
		return math.Int{}, types.ErrZeroAmount.Wrap("exact output must be positive")
	}
	if maxIn.IsNil() {
		return math.Int{}, types.ErrSlippageTooHigh.Wrap("maximum input is required")
	}

	amountIn, updated, err := k.CalculateIn(ctx, exactOut, assetOut, pool)
	if err != nil {
		return math.Int{}, err
	}
	if amountIn.GT(maxIn) {
		return math.Int{}, types.ErrSlippageTooHigh.Wrapf("input %s above maximum %s", amountIn, maxIn)
	}

	if err := k.executeSwap(sdkCtx, caller, poolID, assetIn, assetOut, amountIn, exactOut, updated, swapKindExactOut); err != nil {
		return math.Int{}, err
	}
	return amountIn, nil
}

// executeSwap moves the funds and stores the post-trade pool in one unit of
// work.
func (k Keeper) executeSwap(
	sdkCtx sdk.Context,
	caller sdk.AccAddress,
	poolID types.AssetID,
	assetIn, assetOut types.AssetID,
	amountIn, amountOut math.Int,
	updated types.Pool,
	kind string,
) error {
	start := time.Now()
	cacheCtx, writeFn := sdkCtx.CacheContext()
	custody := k.GetModuleAddress()

	if err := k.assetKeeper.Transfer(cacheCtx, assetIn.String(), caller, custody, amountIn, assetstypes.Expendable); err != nil {
		k.metrics.OperationErrors.WithLabelValues("swap").Inc()
		return err
	}
	if err := k.assetKeeper.Transfer(cacheCtx, assetOut.String(), custody, caller, amountOut, assetstypes.Protect); err != nil {
		k.metrics.OperationErrors.WithLabelValues("swap").Inc()
		return err
	}
	if err := k.SetPool(cacheCtx, poolID, updated); err != nil {
		return err
	}

	writeFn()

	k.metrics.SwapsTotal.WithLabelValues(poolID.String(), assetIn.String(), assetOut.String(), kind).Inc()
	k.metrics.SwapVolume.WithLabelValues(poolID.String(), assetIn.String()).Add(toFloat(amountIn))
	k.metrics.SwapLatency.Observe(time.Since(start).Seconds())
	k.metrics.recordPool(poolID, updated)

	k.Logger(sdkCtx).Debug("swap executed",
		"pool_id", poolID,
		"trader", caller.String(),
		"kind", kind,
		"amount_in", amountIn.String(),
		"amount_out", amountOut.String(),
	)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, poolID.String()),
			sdk.NewAttribute(types.AttributeKeyAccount, caller.String()),
			sdk.NewAttribute(types.AttributeKeyAssetIn, assetIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAssetOut, assetOut.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
		),
	)
	return nil
}
