package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/pkg/telemetry"
	"github.com/paw-chain/pawswap/x/amm/types"
	assetstypes "github.com/paw-chain/pawswap/x/assets/types"
)

// AddLiquidity deposits amountA of assetA and amountB of assetB from caller
// and mints LP tokens for the canonical pool, opening it if needed. Either
// the whole deposit lands or nothing changes.
func (k Keeper) AddLiquidity(
	ctx context.Context,
	caller sdk.AccAddress,
	assetA, assetB types.AssetID,
	amountA, amountB math.Int,
) (lpMinted math.Int, err error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	_, span := telemetry.StartModuleSpan(sdkCtx.Context(), types.ModuleName, "add_liquidity")
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if err := k.requireNoFlashLoan(ctx); err != nil {
		return math.Int{}, err
	}
	pair, err := types.NewPoolPair(assetA, amountA, assetB, amountB)
	if err != nil {
		return math.Int{}, err
	}
	for _, amt := range []math.Int{pair.Amount1, pair.Amount2} {
		if amt.IsNil() || !amt.IsPositive() {
			return math.Int{}, types.ErrZeroAmount.Wrap("deposit amounts must be positive")
		}
		if err := types.ValidateAmount(amt); err != nil {
			return math.Int{}, err
		}
	}
	poolID := types.DerivePoolID(pair.Asset1, pair.Asset2)

	current, found, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, err
	}

	var updated types.Pool
	if found {
		if lpMinted, err = types.AdditionalLPAmount(current, pair); err != nil {
			return math.Int{}, err
		}
		if updated, err = current.Deposit(pair, lpMinted); err != nil {
			return math.Int{}, err
		}
	} else {
		if err := k.checkFreshLPAsset(ctx, poolID); err != nil {
			return math.Int{}, err
		}
		if lpMinted, err = types.InitialLPAmount(pair); err != nil {
			return math.Int{}, err
		}
		updated = types.NewPool(pair, lpMinted)
	}
	if !lpMinted.IsPositive() {
		return math.Int{}, types.ErrInsufficientLPMinted.Wrapf("%s %s + %s %s", pair.Amount1, pair.Asset1, pair.Amount2, pair.Asset2)
	}

	cacheCtx, writeFn := sdkCtx.CacheContext()
	custody := k.GetModuleAddress()

	if err := k.assetKeeper.Transfer(cacheCtx, pair.Asset1.String(), caller, custody, pair.Amount1, assetstypes.Expendable); err != nil {
		return math.Int{}, err
	}
	if err := k.assetKeeper.Transfer(cacheCtx, pair.Asset2.String(), caller, custody, pair.Amount2, assetstypes.Expendable); err != nil {
		return math.Int{}, err
	}
	if !k.assetKeeper.AssetExists(cacheCtx, poolID.String()) {
		if err := k.assetKeeper.CreateAsset(cacheCtx, poolID.String(), custody, true, math.OneInt()); err != nil {
			return math.Int{}, err
		}
	}
	if err := k.assetKeeper.MintInto(cacheCtx, poolID.String(), caller, lpMinted); err != nil {
		return math.Int{}, err
	}
	if err := k.SetPool(cacheCtx, poolID, updated); err != nil {
		return math.Int{}, err
	}

	writeFn()

	k.metrics.LiquidityAdded.WithLabelValues(poolID.String()).Inc()
	k.metrics.recordPool(poolID, updated)
	k.Logger(ctx).Debug("liquidity added",
		"pool_id", poolID,
		"provider", caller.String(),
		"lp_minted", lpMinted.String(),
		"new_pool", !found,
	)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityAdded,
			sdk.NewAttribute(types.AttributeKeyPoolID, poolID.String()),
			sdk.NewAttribute(types.AttributeKeyAccount, caller.String()),
			sdk.NewAttribute(types.AttributeKeyAsset1, pair.Asset1.String()),
			sdk.NewAttribute(types.AttributeKeyAmount1, pair.Amount1.String()),
			sdk.NewAttribute(types.AttributeKeyAsset2, pair.Asset2.String()),
			sdk.NewAttribute(types.AttributeKeyAmount2, pair.Amount2.String()),
			sdk.NewAttribute(types.AttributeKeyLPAmount, lpMinted.String()),
		),
	)

	return lpMinted, nil
}

// RemoveLiquidity burns lpAmount of the caller's LP tokens for the pool of
// assetA and assetB and pays out the proportional share of both reserves.
// The amounts are returned in the caller's argument order. The pool is
// deleted when its last LP token is burned.
func (k Keeper) RemoveLiquidity(
	ctx context.Context,
	caller sdk.AccAddress,
	assetA, assetB types.AssetID,
	lpAmount math.Int,
) (amountA, amountB math.Int, err error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	_, span := telemetry.StartModuleSpan(sdkCtx.Context(), types.ModuleName, "remove_liquidity")
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if err := k.requireNoFlashLoan(ctx); err != nil {
		return math.Int{}, math.Int{}, err
	}
	pool, poolID, err := k.GetPoolByAssets(ctx, assetA, assetB)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if lpAmount.IsNil() || !lpAmount.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrZeroAmount.Wrap("lp amount must be positive")
	}
	if balance := k.assetKeeper.Balance(ctx, poolID.String(), caller); balance.LT(lpAmount) {
		return math.Int{}, math.Int{}, types.ErrInsufficientLPBalance.Wrapf("have %s, redeeming %s", balance, lpAmount)
	}

	amount1, amount2, err := types.RedeemAmounts(pool, lpAmount)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	updated, err := pool.Withdraw(amount1, amount2, lpAmount)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	cacheCtx, writeFn := sdkCtx.CacheContext()
	custody := k.GetModuleAddress()

	if _, err := k.assetKeeper.BurnFrom(cacheCtx, poolID.String(), caller, lpAmount, assetstypes.Exact, assetstypes.Polite); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if updated.LPSupply.IsZero() {
		k.RemovePool(cacheCtx, poolID)
	} else if err := k.SetPool(cacheCtx, poolID, updated); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.assetKeeper.Transfer(cacheCtx, pool.Pair.Asset1.String(), custody, caller, amount1, assetstypes.Expendable); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.assetKeeper.Transfer(cacheCtx, pool.Pair.Asset2.String(), custody, caller, amount2, assetstypes.Expendable); err != nil {
		return math.Int{}, math.Int{}, err
	}

	writeFn()

	k.metrics.LiquidityRemoved.WithLabelValues(poolID.String()).Inc()
	if updated.LPSupply.IsZero() {
		k.metrics.forgetPool(poolID)
	} else {
		k.metrics.recordPool(poolID, updated)
	}
	k.Logger(ctx).Debug("liquidity removed",
		"pool_id", poolID,
		"provider", caller.String(),
		"lp_burned", lpAmount.String(),
		"pool_closed", updated.LPSupply.IsZero(),
	)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityRemoved,
			sdk.NewAttribute(types.AttributeKeyPoolID, poolID.String()),
			sdk.NewAttribute(types.AttributeKeyAccount, caller.String()),
			sdk.NewAttribute(types.AttributeKeyAsset1, pool.Pair.Asset1.String()),
			sdk.NewAttribute(types.AttributeKeyAmount1, amount1.String()),
			sdk.NewAttribute(types.AttributeKeyAsset2, pool.Pair.Asset2.String()),
			sdk.NewAttribute(types.AttributeKeyAmount2, amount2.String()),
			sdk.NewAttribute(types.AttributeKeyLPAmount, lpAmount.String()),
		),
	)

	if assetA == pool.Pair.Asset1 {
		return amount1, amount2, nil
	}
	return amount2, amount1, nil
}

// checkFreshLPAsset ensures a pool being opened does not inherit LP tokens
// issued outside the amm. A leftover LP asset from a closed pool is reused
// only if custody created it and nothing is outstanding.
func (k Keeper) checkFreshLPAsset(ctx context.Context, poolID types.AssetID) error {
	if !k.assetKeeper.AssetExists(ctx, poolID.String()) {
		return nil
	}
	admin, err := k.assetKeeper.AssetAdmin(ctx, poolID.String())
	if err != nil {
		return err
	}
	if !admin.Equals(k.GetModuleAddress()) {
		return types.ErrInvalidPool.Wrapf("lp asset %s was created by %s", poolID, admin)
	}
	if issued := k.assetKeeper.TotalIssuance(ctx, poolID.String()); !issued.IsZero() {
		return types.ErrInvalidPool.Wrapf("lp asset %s already has %s outstanding", poolID, issued)
	}
	return nil
}

// LPBalance returns account's LP token balance for the pool of a and b.
func (k Keeper) LPBalance(ctx context.Context, account sdk.AccAddress, a, b types.AssetID) (math.Int, error) {
	poolID, err := types.PoolIDFor(a, b)
	if err != nil {
		return math.Int{}, err
	}
	return k.assetKeeper.Balance(ctx, poolID.String(), account), nil
}
