package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// PoolPair is a pair of assets with an amount for each side. Asset1 always
// sorts before Asset2.
type PoolPair struct {
	Asset1  AssetID  `json:"asset_1" yaml:"asset_1"`
	Amount1 math.Int `json:"amount_1" yaml:"amount_1"`
	Asset2  AssetID  `json:"asset_2" yaml:"asset_2"`
	Amount2 math.Int `json:"amount_2" yaml:"amount_2"`
}

// NewPoolPair builds a canonical pair, swapping sides when a sorts after b.
func NewPoolPair(a AssetID, amountA math.Int, b AssetID, amountB math.Int) (PoolPair, error) {
	asset1, asset2, err := Canonicalize(a, b)
	if err != nil {
		return PoolPair{}, err
	}
	if asset1 != a {
		amountA, amountB = amountB, amountA
	}
	return PoolPair{
		Asset1:  asset1,
		Amount1: amountA,
		Asset2:  asset2,
		Amount2: amountB,
	}, nil
}

// Canonical re-orders an existing pair. It is a no-op on canonical pairs.
func (p PoolPair) Canonical() (PoolPair, error) {
	return NewPoolPair(p.Asset1, p.Amount1, p.Asset2, p.Amount2)
}

// AmountOf returns the amount held for asset.
func (p PoolPair) AmountOf(asset AssetID) (math.Int, error) {
	switch asset {
	case p.Asset1:
		return p.Amount1, nil
	case p.Asset2:
		return p.Amount2, nil
	default:
		return math.Int{}, ErrAssetNotInPool.Wrapf("%s not in %s/%s", asset, p.Asset1, p.Asset2)
	}
}

// Pool is a persisted pair of reserves together with the outstanding LP supply.
type Pool struct {
	Pair     PoolPair `json:"pair" yaml:"pair"`
	LPSupply math.Int `json:"lp_supply" yaml:"lp_supply"`
}

// NewPool returns a pool over pair with the given LP supply.
func NewPool(pair PoolPair, lpSupply math.Int) Pool {
	return Pool{Pair: pair, LPSupply: lpSupply}
}

// ID returns the pool's identifier, which is also its LP asset id.
func (p Pool) ID() AssetID {
	return DerivePoolID(p.Pair.Asset1, p.Pair.Asset2)
}

// Counterpart returns the other asset of the pool.
func (p Pool) Counterpart(asset AssetID) (AssetID, error) {
	switch asset {
	case p.Pair.Asset1:
		return p.Pair.Asset2, nil
	case p.Pair.Asset2:
		return p.Pair.Asset1, nil
	default:
		return "", ErrAssetNotInPool.Wrapf("%s not in %s/%s", asset, p.Pair.Asset1, p.Pair.Asset2)
	}
}

// Reserves returns the reserves on the input and output side of a trade that
// sells input into the pool.
func (p Pool) Reserves(input AssetID) (reserveIn, reserveOut math.Int, err error) {
	switch input {
	case p.Pair.Asset1:
		return p.Pair.Amount1, p.Pair.Amount2, nil
	case p.Pair.Asset2:
		return p.Pair.Amount2, p.Pair.Amount1, nil
	default:
		return math.Int{}, math.Int{}, ErrAssetNotInPool.Wrapf("%s not in %s/%s", input, p.Pair.Asset1, p.Pair.Asset2)
	}
}

// WithReserves returns a copy of the pool with the reserves replaced, using
// the same orientation as Reserves.
func (p Pool) WithReserves(input AssetID, reserveIn, reserveOut math.Int) Pool {
	out := p
	if input == p.Pair.Asset1 {
		out.Pair.Amount1, out.Pair.Amount2 = reserveIn, reserveOut
	} else {
		out.Pair.Amount1, out.Pair.Amount2 = reserveOut, reserveIn
	}
	return out
}

// Validate checks ordering and bounds of a stored pool.
func (p Pool) Validate() error {
	if err := p.Pair.Asset1.Validate(); err != nil {
		return err
	}
	if err := p.Pair.Asset2.Validate(); err != nil {
		return err
	}
	if !p.Pair.Asset1.Less(p.Pair.Asset2) {
		return ErrInvalidPool.Wrapf("assets %s/%s are not in canonical order", p.Pair.Asset1, p.Pair.Asset2)
	}
	for _, amt := range []math.Int{p.Pair.Amount1, p.Pair.Amount2, p.LPSupply} {
		if err := ValidateAmount(amt); err != nil {
			return ErrInvalidPool.Wrap(err.Error())
		}
		if !amt.IsPositive() {
			return ErrInvalidPool.Wrapf("pool %s has a zero reserve or supply", p.ID())
		}
	}
	return nil
}

func (p Pool) String() string {
	return fmt.Sprintf("%s{%s %s, %s %s, lp %s}",
		p.ID(), p.Pair.Amount1, p.Pair.Asset1, p.Pair.Amount2, p.Pair.Asset2, p.LPSupply)
}
