package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/x/amm/types"
)

// RegisterInvariants registers all amm invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "pool-reserves", PoolReservesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "positive-reserves", PositiveReservesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "lp-supply", LPSupplyInvariant(k))
}

// AllInvariants runs all invariants of the amm module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := PoolReservesInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = PositiveReservesInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return LPSupplyInvariant(k)(ctx)
	}
}

// PoolReservesInvariant checks that the custody account holds at least the
// sum of all pool reserves of each asset. Pools share custody, so the check
// is per asset, not per pool.
func PoolReservesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		owed := map[types.AssetID]math.Int{}
		var order []types.AssetID
		add := func(asset types.AssetID, amount math.Int) {
			if cur, ok := owed[asset]; ok {
				owed[asset] = cur.Add(amount)
				return
			}
			owed[asset] = amount
			order = append(order, asset)
		}

		if err := k.IteratePools(ctx, func(_ types.AssetID, pool types.Pool) bool {
			add(pool.Pair.Asset1, pool.Pair.Amount1)
			add(pool.Pair.Asset2, pool.Pair.Amount2)
			return false
		}); err != nil {
			count++
			msg += err.Error() + "\n"
		}

		custody := k.GetModuleAddress()
		for _, asset := range order {
			balance := k.assetKeeper.Balance(ctx, asset.String(), custody)
			if balance.LT(owed[asset]) {
				count++
				msg += fmt.Sprintf("custody balance for %s (%s) < reserves (%s)\n", asset, balance, owed[asset])
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "pool-reserves",
			fmt.Sprintf("found %d under-collateralized assets\n%s", count, msg),
		), broken
	}
}

// PositiveReservesInvariant checks that every stored pool is valid, which
// includes both reserves and the LP supply being positive.
func PositiveReservesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		if err := k.IteratePools(ctx, func(poolID types.AssetID, pool types.Pool) bool {
			if err := pool.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("pool %s: %v\n", poolID, err)
			}
			return false
		}); err != nil {
			count++
			msg += err.Error() + "\n"
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "positive-reserves",
			fmt.Sprintf("found %d invalid pools\n%s", count, msg),
		), broken
	}
}

// LPSupplyInvariant checks that each pool's recorded LP supply equals the
// total issuance of its LP asset.
func LPSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		if err := k.IteratePools(ctx, func(poolID types.AssetID, pool types.Pool) bool {
			issued := k.assetKeeper.TotalIssuance(ctx, poolID.String())
			if !issued.Equal(pool.LPSupply) {
				count++
				msg += fmt.Sprintf("pool %s: lp supply %s != issued %s\n", poolID, pool.LPSupply, issued)
			}
			return false
		}); err != nil {
			count++
			msg += err.Error() + "\n"
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "lp-supply",
			fmt.Sprintf("found %d lp supply mismatches\n%s", count, msg),
		), broken
	}
}
