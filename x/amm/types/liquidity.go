package types

import (
	"cosmossdk.io/math"
)

// InitialLPAmount returns floor(sqrt(amount1 * amount2)), the LP minted when
// a pool is opened with pair.
func InitialLPAmount(pair PoolPair) (math.Int, error) {
	product, err := CheckedMul(pair.Amount1, pair.Amount2)
	if err != nil {
		return math.Int{}, err
	}
	return CheckedNarrow(IntegerSqrt(product))
}

// AdditionalLPAmount returns the LP minted for depositing pair into pool:
// floor(sqrt((R1+a1)(R2+a2))) - floor(sqrt(R1*R2)).
func AdditionalLPAmount(pool Pool, pair PoolPair) (math.Int, error) {
	total1, err := CheckedAdd(pool.Pair.Amount1, pair.Amount1)
	if err != nil {
		return math.Int{}, err
	}
	total2, err := CheckedAdd(pool.Pair.Amount2, pair.Amount2)
	if err != nil {
		return math.Int{}, err
	}
	totalProduct, err := CheckedMul(total1, total2)
	if err != nil {
		return math.Int{}, err
	}
	currentProduct, err := CheckedMul(pool.Pair.Amount1, pool.Pair.Amount2)
	if err != nil {
		return math.Int{}, err
	}

	lp, err := CheckedSub(IntegerSqrt(totalProduct), IntegerSqrt(currentProduct))
	if err != nil {
		return math.Int{}, err
	}
	return CheckedNarrow(lp)
}

// Deposit returns the pool after adding pair to the reserves and minting lp.
func (p Pool) Deposit(pair PoolPair, lp math.Int) (Pool, error) {
	if pair.Asset1 != p.Pair.Asset1 || pair.Asset2 != p.Pair.Asset2 {
		return Pool{}, ErrAssetNotInPool.Wrapf("deposit %s/%s into %s", pair.Asset1, pair.Asset2, p.ID())
	}

	out := p
	var err error
	if out.Pair.Amount1, err = CheckedAdd(p.Pair.Amount1, pair.Amount1); err != nil {
		return Pool{}, err
	}
	if out.Pair.Amount2, err = CheckedAdd(p.Pair.Amount2, pair.Amount2); err != nil {
		return Pool{}, err
	}
	if out.LPSupply, err = CheckedAdd(p.LPSupply, lp); err != nil {
		return Pool{}, err
	}
	return out, nil
}

// RedeemAmounts returns floor(R_i * lp / supply) for both reserves.
func RedeemAmounts(pool Pool, lp math.Int) (amount1, amount2 math.Int, err error) {
	if lp.GT(pool.LPSupply) {
		return math.Int{}, math.Int{}, ErrInsufficientLPBalance.Wrapf("redeeming %s of %s", lp, pool.LPSupply)
	}
	if amount1, err = MulDiv(pool.Pair.Amount1, lp, pool.LPSupply); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if amount2, err = MulDiv(pool.Pair.Amount2, lp, pool.LPSupply); err != nil {
		return math.Int{}, math.Int{}, err
	}
	return amount1, amount2, nil
}

// Withdraw returns the pool after paying out the amounts and burning lp.
// A pool whose supply reaches zero must be removed by the caller.
func (p Pool) Withdraw(amount1, amount2, lp math.Int) (Pool, error) {
	out := p
	var err error
	if out.Pair.Amount1, err = CheckedSub(p.Pair.Amount1, amount1); err != nil {
		return Pool{}, err
	}
	if out.Pair.Amount2, err = CheckedSub(p.Pair.Amount2, amount2); err != nil {
		return Pool{}, err
	}
	if out.LPSupply, err = CheckedSub(p.LPSupply, lp); err != nil {
		return Pool{}, err
	}
	return out, nil
}
