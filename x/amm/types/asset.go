package types

import (
	"bytes"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AssetID identifies a fungible asset. It uses the bank denomination syntax,
// so any id accepted by sdk.ValidateDenom is a valid asset id.
type AssetID string

// Bytes returns the canonical encoding of the id: a one byte length followed
// by the raw id bytes. Ordering and pool id derivation both use it.
func (a AssetID) Bytes() []byte {
	bz := make([]byte, 0, len(a)+1)
	bz = append(bz, byte(len(a)))
	return append(bz, a...)
}

func (a AssetID) String() string {
	return string(a)
}

// Validate checks the id against the denomination rules.
func (a AssetID) Validate() error {
	if err := sdk.ValidateDenom(string(a)); err != nil {
		return ErrInvalidAsset.Wrapf("%q: %s", string(a), err)
	}
	return nil
}

// Compare orders two ids by their canonical encodings.
func (a AssetID) Compare(b AssetID) int {
	return bytes.Compare(a.Bytes(), b.Bytes())
}

// Less reports whether a sorts before b.
func (a AssetID) Less(b AssetID) bool {
	return a.Compare(b) < 0
}

// Canonicalize returns the two ids in canonical order. Pairing an asset with
// itself is rejected.
func Canonicalize(a, b AssetID) (AssetID, AssetID, error) {
	if err := a.Validate(); err != nil {
		return "", "", err
	}
	if err := b.Validate(); err != nil {
		return "", "", err
	}

	switch a.Compare(b) {
	case 0:
		return "", "", ErrSameAsset.Wrapf("%s", a)
	case 1:
		return b, a, nil
	default:
		return a, b, nil
	}
}
