package keeper

import (
	"context"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/x/amm/types"
)

// GetPool returns the pool stored under poolID.
func (k Keeper) GetPool(ctx context.Context, poolID types.AssetID) (types.Pool, bool, error) {
	bz := k.getStore(ctx).Get(types.GetPoolKey(poolID))
	if bz == nil {
		return types.Pool{}, false, nil
	}
	pool, err := types.UnmarshalPool(bz)
	if err != nil {
		return types.Pool{}, false, fmt.Errorf("failed to decode pool %s: %w", poolID, err)
	}
	return pool, true, nil
}

// HasPool reports whether a pool is stored under poolID.
func (k Keeper) HasPool(ctx context.Context, poolID types.AssetID) bool {
	return k.getStore(ctx).Has(types.GetPoolKey(poolID))
}

// GetPoolByAssets looks a pool up by its two assets in either order.
func (k Keeper) GetPoolByAssets(ctx context.Context, a, b types.AssetID) (types.Pool, types.AssetID, error) {
	poolID, err := types.PoolIDFor(a, b)
	if err != nil {
		return types.Pool{}, "", err
	}
	pool, found, err := k.GetPool(ctx, poolID)
	if err != nil {
		return types.Pool{}, "", err
	}
	if !found {
		return types.Pool{}, "", types.ErrNoPool.Wrapf("%s/%s", a, b)
	}
	return pool, poolID, nil
}

// SetPool stores a pool. Pools with no LP supply are removed with
// RemovePool instead.
func (k Keeper) SetPool(ctx context.Context, poolID types.AssetID, pool types.Pool) error {
	if err := pool.Validate(); err != nil {
		return err
	}
	if id := pool.ID(); id != poolID {
		return types.ErrInvalidPool.Wrapf("pool %s stored under %s", id, poolID)
	}

	bz, err := pool.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode pool %s: %w", poolID, err)
	}
	k.getStore(ctx).Set(types.GetPoolKey(poolID), bz)
	return nil
}

// RemovePool deletes a pool.
func (k Keeper) RemovePool(ctx context.Context, poolID types.AssetID) {
	k.getStore(ctx).Delete(types.GetPoolKey(poolID))

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolRemoved,
			sdk.NewAttribute(types.AttributeKeyPoolID, poolID.String()),
		),
	)
}

// IteratePools calls cb for every pool until cb returns true.
func (k Keeper) IteratePools(ctx context.Context, cb func(poolID types.AssetID, pool types.Pool) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		pool, err := types.UnmarshalPool(iterator.Value())
		if err != nil {
			return fmt.Errorf("failed to decode pool at %x: %w", iterator.Key(), err)
		}
		if cb(pool.ID(), pool) {
			break
		}
	}
	return nil
}

// GetAllPools returns every stored pool.
func (k Keeper) GetAllPools(ctx context.Context) ([]types.Pool, error) {
	pools := []types.Pool{}
	err := k.IteratePools(ctx, func(_ types.AssetID, pool types.Pool) bool {
		pools = append(pools, pool)
		return false
	})
	return pools, err
}
