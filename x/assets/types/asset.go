package types

import (
	"encoding/json"
	"fmt"
	"math/big"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Asset is the metadata kept for every fungible asset.
type Asset struct {
	Admin        sdk.AccAddress `json:"admin"`
	IsSufficient bool           `json:"is_sufficient"`
	MinBalance   math.Int       `json:"min_balance"`
	Supply       math.Int       `json:"supply"`
}

// Validate checks an asset's amounts.
func (a Asset) Validate() error {
	if a.MinBalance.IsNil() || a.MinBalance.IsNegative() {
		return ErrInvalidAmount.Wrap("min balance must be non-negative")
	}
	if a.Supply.IsNil() || a.Supply.IsNegative() {
		return ErrInvalidAmount.Wrap("supply must be non-negative")
	}
	return nil
}

// Marshal encodes the asset for storage.
func (a Asset) Marshal() ([]byte, error) {
	return json.Marshal(a)
}

// UnmarshalAsset decodes an asset written by Marshal.
func UnmarshalAsset(bz []byte) (Asset, error) {
	var a Asset
	if err := json.Unmarshal(bz, &a); err != nil {
		return Asset{}, fmt.Errorf("failed to decode asset: %w", err)
	}
	return a, nil
}

// ValidateID checks an asset id against the denomination rules.
func ValidateID(id string) error {
	if err := sdk.ValidateDenom(id); err != nil {
		return ErrInvalidAsset.Wrapf("%q: %s", id, err)
	}
	return nil
}

// MaxSupply bounds balances and total issuance to 128 bits.
var MaxSupply = math.NewIntFromBigInt(
	new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)),
)
