package types

import (
	"cosmossdk.io/math"
)

// Swap pricing follows x * y = k. Every post-trade reserve computed by a
// division is rounded up, so the trader always absorbs the rounding and the
// reserve product never decreases, even with a zero fee.

// CalculateOut prices selling amountIn of input into pool. It returns the
// amount paid out and the pool after the trade. The fee stays in the input
// reserve. The new output reserve is rounded up rather than down, which pays
// one unit less whenever k does not divide evenly: 150 sold into (500, 500)
// at 300 bps pays 112 where floor division would pay 113.
func CalculateOut(amountIn math.Int, input AssetID, pool Pool, params Params) (math.Int, Pool, error) {
	reserveIn, reserveOut, err := pool.Reserves(input)
	if err != nil {
		return math.Int{}, Pool{}, err
	}

	fee, err := params.FeeAmount(amountIn)
	if err != nil {
		return math.Int{}, Pool{}, err
	}
	inAfterFee, err := CheckedSub(amountIn, fee)
	if err != nil {
		return math.Int{}, Pool{}, err
	}

	k, err := CheckedMul(reserveIn, reserveOut)
	if err != nil {
		return math.Int{}, Pool{}, err
	}
	newReserveIn, err := CheckedAdd(reserveIn, inAfterFee)
	if err != nil {
		return math.Int{}, Pool{}, err
	}
	newReserveOut, err := CheckedQuoCeil(k, newReserveIn)
	if err != nil {
		return math.Int{}, Pool{}, err
	}
	if !newReserveOut.IsPositive() {
		return math.Int{}, Pool{}, ErrInsufficientLiquidity.Wrapf("trade would drain %s", pool.ID())
	}

	amountOut, err := CheckedSub(reserveOut, newReserveOut)
	if err != nil {
		return math.Int{}, Pool{}, err
	}
	finalReserveIn, err := CheckedAdd(newReserveIn, fee)
	if err != nil {
		return math.Int{}, Pool{}, err
	}

	return amountOut, pool.WithReserves(input, finalReserveIn, newReserveOut), nil
}

// CalculateIn prices buying exactly amountOut of output from pool. It returns
// the input required, fee included, and the pool after the trade.
func CalculateIn(amountOut math.Int, output AssetID, pool Pool, params Params) (math.Int, Pool, error) {
	input, err := pool.Counterpart(output)
	if err != nil {
		return math.Int{}, Pool{}, err
	}
	reserveIn, reserveOut, err := pool.Reserves(input)
	if err != nil {
		return math.Int{}, Pool{}, err
	}
	if amountOut.GTE(reserveOut) {
		return math.Int{}, Pool{}, ErrInsufficientLiquidity.Wrapf("requested %s of %s, reserve is %s", amountOut, output, reserveOut)
	}

	k, err := CheckedMul(reserveIn, reserveOut)
	if err != nil {
		return math.Int{}, Pool{}, err
	}
	newReserveOut, err := CheckedSub(reserveOut, amountOut)
	if err != nil {
		return math.Int{}, Pool{}, err
	}
	newReserveIn, err := CheckedQuoCeil(k, newReserveOut)
	if err != nil {
		return math.Int{}, Pool{}, err
	}
	if newReserveIn, err = CheckedNarrow(newReserveIn); err != nil {
		return math.Int{}, Pool{}, err
	}

	required, err := CheckedSub(newReserveIn, reserveIn)
	if err != nil {
		return math.Int{}, Pool{}, err
	}
	fee, err := params.FeeAmount(required)
	if err != nil {
		return math.Int{}, Pool{}, err
	}
	amountIn, err := CheckedAdd(required, fee)
	if err != nil {
		return math.Int{}, Pool{}, err
	}
	finalReserveIn, err := CheckedAdd(newReserveIn, fee)
	if err != nil {
		return math.Int{}, Pool{}, err
	}

	return amountIn, pool.WithReserves(input, finalReserveIn, newReserveOut), nil
}

// SpotPrice returns reserveOut / reserveIn for selling input into pool.
func SpotPrice(input AssetID, pool Pool) (math.LegacyDec, error) {
	reserveIn, reserveOut, err := pool.Reserves(input)
	if err != nil {
		return math.LegacyDec{}, err
	}
	if reserveIn.IsZero() {
		return math.LegacyDec{}, ErrInsufficientLiquidity.Wrapf("empty %s reserve", input)
	}
	return math.LegacyNewDecFromInt(reserveOut).Quo(math.LegacyNewDecFromInt(reserveIn)), nil
}
