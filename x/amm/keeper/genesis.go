package keeper

import (
	"context"
	"fmt"

	"github.com/paw-chain/pawswap/x/amm/types"
)

// InitGenesis initializes the amm module's state from a genesis state. Pool
// reserves and LP tokens must already be held by the asset ledger.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return err
	}
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}
	for _, pool := range genState.Pools {
		if err := k.SetPool(ctx, pool.ID(), pool); err != nil {
			return fmt.Errorf("failed to set pool %s: %w", pool.ID(), err)
		}
		k.metrics.recordPool(pool.ID(), pool)
	}
	k.metrics.FeeBps.Set(float64(genState.Params.SwapFeeBps))
	return nil
}

// ExportGenesis returns the amm module's exported genesis.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	pools, err := k.GetAllPools(ctx)
	if err != nil {
		return nil, err
	}
	return &types.GenesisState{
		Params: params,
		Pools:  pools,
	}, nil
}
