package types

import (
	"math/big"

	"cosmossdk.io/math"
)

// AmountBits is the width of a stored asset amount.
const AmountBits = 128

// MaxAmount is the largest amount a reserve, balance or supply may hold.
var MaxAmount = math.NewIntFromBigInt(
	new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), AmountBits), big.NewInt(1)),
)

// ValidateAmount checks that x is a storable amount.
func ValidateAmount(x math.Int) error {
	if x.IsNil() || x.IsNegative() {
		return ErrArithmeticUnderflow.Wrap("amount must be non-negative")
	}
	if x.GT(MaxAmount) {
		return ErrArithmeticOverflow.Wrapf("amount %s exceeds %d bits", x, AmountBits)
	}
	return nil
}

// CheckedAdd adds two amounts, failing if the sum does not fit in an amount.
func CheckedAdd(a, b math.Int) (math.Int, error) {
	sum, err := a.SafeAdd(b)
	if err != nil {
		return math.Int{}, ErrArithmeticOverflow.Wrapf("%s + %s: %s", a, b, err)
	}
	if sum.GT(MaxAmount) {
		return math.Int{}, ErrArithmeticOverflow.Wrapf("%s + %s", a, b)
	}
	return sum, nil
}

// CheckedSub subtracts b from a, failing if the result would be negative.
func CheckedSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, ErrArithmeticUnderflow.Wrapf("%s - %s", a, b)
	}
	return a.Sub(b), nil
}

// CheckedMul returns the wide product of two values. Products of two amounts
// always fit; wider operands fail with ErrArithmeticOverflow.
func CheckedMul(a, b math.Int) (math.Int, error) {
	prod, err := a.SafeMul(b)
	if err != nil {
		return math.Int{}, ErrArithmeticOverflow.Wrapf("%s * %s: %s", a, b, err)
	}
	return prod, nil
}

// CheckedQuo returns floor(a / b).
func CheckedQuo(a, b math.Int) (math.Int, error) {
	if b.IsZero() {
		return math.Int{}, ErrArithmeticUnderflow.Wrap("division by zero")
	}
	return a.Quo(b), nil
}

// CheckedQuoCeil returns ceil(a / b) for non-negative operands.
func CheckedQuoCeil(a, b math.Int) (math.Int, error) {
	if b.IsZero() {
		return math.Int{}, ErrArithmeticUnderflow.Wrap("division by zero")
	}
	q, r := new(big.Int).QuoRem(a.BigInt(), b.BigInt(), new(big.Int))
	if r.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return math.NewIntFromBigInt(q), nil
}

// CheckedNarrow converts a wide intermediate back to an amount.
func CheckedNarrow(x math.Int) (math.Int, error) {
	if err := ValidateAmount(x); err != nil {
		return math.Int{}, err
	}
	return x, nil
}

// IntegerSqrt returns floor(sqrt(x)) for x >= 0.
func IntegerSqrt(x math.Int) math.Int {
	if x.IsNil() || !x.IsPositive() {
		return math.ZeroInt()
	}
	return math.NewIntFromBigInt(new(big.Int).Sqrt(x.BigInt()))
}

// MulDiv returns floor(a * b / c) with a wide intermediate product.
func MulDiv(a, b, c math.Int) (math.Int, error) {
	prod, err := CheckedMul(a, b)
	if err != nil {
		return math.Int{}, err
	}
	q, err := CheckedQuo(prod, c)
	if err != nil {
		return math.Int{}, err
	}
	return CheckedNarrow(q)
}
