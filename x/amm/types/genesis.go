package types

import (
	"encoding/json"
	"fmt"
)

// GenesisState is the amm module state at genesis.
type GenesisState struct {
	Params Params `json:"params" yaml:"params"`
	Pools  []Pool `json:"pools" yaml:"pools"`
}

// DefaultGenesis returns the default genesis state for the amm module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Pools:  []Pool{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return ErrInvalidGenesis.Wrap(err.Error())
	}

	seen := make(map[AssetID]struct{}, len(gs.Pools))
	for i, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return ErrInvalidGenesis.Wrapf("pool %d: %s", i, err)
		}
		id := pool.ID()
		if _, ok := seen[id]; ok {
			return ErrInvalidGenesis.Wrapf("duplicate pool %s", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// ParseGenesis decodes a JSON genesis document and validates it.
func ParseGenesis(bz []byte) (*GenesisState, error) {
	var gs GenesisState
	if err := json.Unmarshal(bz, &gs); err != nil {
		return nil, fmt.Errorf("failed to decode amm genesis: %w", err)
	}
	if gs.Pools == nil {
		gs.Pools = []Pool{}
	}
	if err := gs.Validate(); err != nil {
		return nil, err
	}
	return &gs, nil
}
