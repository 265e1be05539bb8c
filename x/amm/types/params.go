package types

import (
	"encoding/binary"
	"fmt"

	"cosmossdk.io/math"
)

const (
	// FeeDenominator is the basis point scale of the swap fee.
	FeeDenominator uint32 = 10_000

	// DefaultSwapFeeBps is a 3% swap fee.
	DefaultSwapFeeBps uint32 = 300

	paramsEncodingVersion byte = 0x01
)

// Params defines the parameters for the amm module.
type Params struct {
	// SwapFeeBps is the fee charged on swaps and flash loans, in basis points.
	SwapFeeBps uint32 `json:"swap_fee_bps" yaml:"swap_fee_bps"`
}

// DefaultParams returns default amm parameters
func DefaultParams() Params {
	return Params{SwapFeeBps: DefaultSwapFeeBps}
}

// Validate checks that the fee is strictly below 100%.
func (p Params) Validate() error {
	return ValidateFee(p.SwapFeeBps)
}

// ValidateFee checks a fee in basis points.
func ValidateFee(bps uint32) error {
	if bps >= FeeDenominator {
		return ErrInvalidFee.Wrapf("fee %d bps must be below %d", bps, FeeDenominator)
	}
	return nil
}

// FeeAmount returns ceil(x * fee), the fee charged on x. The result never
// exceeds x.
func (p Params) FeeAmount(x math.Int) (math.Int, error) {
	scaled, err := CheckedMul(x, math.NewIntFromUint64(uint64(p.SwapFeeBps)))
	if err != nil {
		return math.Int{}, err
	}
	return CheckedQuoCeil(scaled, math.NewIntFromUint64(uint64(FeeDenominator)))
}

// Marshal encodes params as a version byte followed by the fee.
func (p Params) Marshal() []byte {
	bz := make([]byte, 5)
	bz[0] = paramsEncodingVersion
	binary.BigEndian.PutUint32(bz[1:], p.SwapFeeBps)
	return bz
}

// UnmarshalParams decodes params written by Marshal.
func UnmarshalParams(bz []byte) (Params, error) {
	if len(bz) != 5 || bz[0] != paramsEncodingVersion {
		return Params{}, fmt.Errorf("invalid params encoding: %x", bz)
	}
	return Params{SwapFeeBps: binary.BigEndian.Uint32(bz[1:])}, nil
}

func (p Params) String() string {
	return fmt.Sprintf("swap_fee: %d bps", p.SwapFeeBps)
}
