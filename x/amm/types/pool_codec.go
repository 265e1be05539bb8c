package types

import (
	"math/big"

	"cosmossdk.io/math"
)

// poolEncodingVersion prefixes every stored pool.
const poolEncodingVersion byte = 0x01

// Marshal encodes the pool as
//
//	version | enc(asset1) | amt(amount1) | enc(asset2) | amt(amount2) | amt(lp_supply)
//
// where enc is AssetID.Bytes and amt is a one byte length followed by the
// big-endian magnitude.
func (p Pool) Marshal() ([]byte, error) {
	bz := []byte{poolEncodingVersion}
	bz = append(bz, p.Pair.Asset1.Bytes()...)
	var err error
	if bz, err = appendAmount(bz, p.Pair.Amount1); err != nil {
		return nil, err
	}
	bz = append(bz, p.Pair.Asset2.Bytes()...)
	if bz, err = appendAmount(bz, p.Pair.Amount2); err != nil {
		return nil, err
	}
	return appendAmount(bz, p.LPSupply)
}

// UnmarshalPool decodes a pool written by Marshal.
func UnmarshalPool(bz []byte) (Pool, error) {
	r := poolReader{bz: bz}
	if v := r.readByte(); v != poolEncodingVersion {
		return Pool{}, ErrInvalidPool.Wrapf("unknown pool encoding version %d", v)
	}

	var p Pool
	p.Pair.Asset1 = r.asset()
	p.Pair.Amount1 = r.amount()
	p.Pair.Asset2 = r.asset()
	p.Pair.Amount2 = r.amount()
	p.LPSupply = r.amount()

	if r.err != nil {
		return Pool{}, r.err
	}
	if len(r.bz) != 0 {
		return Pool{}, ErrInvalidPool.Wrapf("%d trailing bytes", len(r.bz))
	}
	return p, nil
}

func appendAmount(bz []byte, x math.Int) ([]byte, error) {
	if err := ValidateAmount(x); err != nil {
		return nil, err
	}
	mag := x.BigInt().Bytes()
	bz = append(bz, byte(len(mag)))
	return append(bz, mag...), nil
}

type poolReader struct {
	bz  []byte
	err error
}

func (r *poolReader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if len(r.bz) < n {
		r.err = ErrInvalidPool.Wrap("truncated pool encoding")
		return nil
	}
	out := r.bz[:n]
	r.bz = r.bz[n:]
	return out
}

func (r *poolReader) readByte() byte {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *poolReader) asset() AssetID {
	n := r.readByte()
	return AssetID(r.take(int(n)))
}

func (r *poolReader) amount() math.Int {
	n := r.readByte()
	if r.err == nil && int(n) > AmountBits/8 {
		r.err = ErrInvalidPool.Wrapf("amount of %d bytes exceeds %d bits", n, AmountBits)
	}
	mag := r.take(int(n))
	if r.err != nil {
		return math.Int{}
	}
	return math.NewIntFromBigInt(new(big.Int).SetBytes(mag))
}
