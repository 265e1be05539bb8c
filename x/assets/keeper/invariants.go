package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/x/assets/types"
)

// IterateAssets calls cb for every registered asset until cb returns true.
func (k Keeper) IterateAssets(ctx sdk.Context, cb func(id string, asset types.Asset) (stop bool)) error {
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.AssetKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		rest := iterator.Key()[len(types.AssetKeyPrefix):]
		if len(rest) == 0 || int(rest[0]) != len(rest)-1 {
			return fmt.Errorf("malformed asset key %x", iterator.Key())
		}
		asset, err := types.UnmarshalAsset(iterator.Value())
		if err != nil {
			return err
		}
		if cb(string(rest[1:]), asset) {
			break
		}
	}
	return nil
}

// RegisterInvariants registers the assets module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "total-supply", TotalSupplyInvariant(k))
}

// TotalSupplyInvariant checks that every asset's supply equals the sum of
// its balances.
func TotalSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		err := k.IterateAssets(ctx, func(id string, asset types.Asset) bool {
			sum := math.ZeroInt()
			if err := k.IterateBalances(ctx, id, func(_ sdk.AccAddress, amount math.Int) bool {
				sum = sum.Add(amount)
				return false
			}); err != nil {
				count++
				msg += fmt.Sprintf("%s: %v\n", id, err)
				return false
			}
			if !sum.Equal(asset.Supply) {
				count++
				msg += fmt.Sprintf("%s: supply %s != sum of balances %s\n", id, asset.Supply, sum)
			}
			return false
		})
		if err != nil {
			count++
			msg += err.Error() + "\n"
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "total-supply",
			fmt.Sprintf("found %d supply mismatches\n%s", count, msg),
		), broken
	}
}
