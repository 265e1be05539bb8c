package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/paw-chain/pawswap/x/amm/types"
)

func TestInitialLPAmount(t *testing.T) {
	pair, err := types.NewPoolPair("asset1", amt(500), "asset2", amt(500))
	require.NoError(t, err)
	lp, err := types.InitialLPAmount(pair)
	require.NoError(t, err)
	requireInt(t, 500, lp)

	pair, err = types.NewPoolPair("asset1", amt(1000), "asset2", amt(4000))
	require.NoError(t, err)
	lp, err = types.InitialLPAmount(pair)
	require.NoError(t, err)
	requireInt(t, 2000, lp)

	pair, err = types.NewPoolPair("asset1", types.MaxAmount, "asset2", types.MaxAmount)
	require.NoError(t, err)
	lp, err = types.InitialLPAmount(pair)
	require.NoError(t, err)
	require.True(t, lp.Equal(types.MaxAmount))
}

func TestAdditionalLPAmount(t *testing.T) {
	pool := testPool(t, "asset1", 1000, "asset2", 4000, 2000)
	pair, err := types.NewPoolPair("asset1", amt(500), "asset2", amt(2000))
	require.NoError(t, err)

	lp, err := types.AdditionalLPAmount(pool, pair)
	require.NoError(t, err)
	requireInt(t, 1000, lp)

	updated, err := pool.Deposit(pair, lp)
	require.NoError(t, err)
	requireInt(t, 1500, updated.Pair.Amount1)
	requireInt(t, 6000, updated.Pair.Amount2)
	requireInt(t, 3000, updated.LPSupply)

	full := types.NewPool(types.PoolPair{
		Asset1: "asset1", Amount1: types.MaxAmount,
		Asset2: "asset2", Amount2: amt(1),
	}, amt(1))
	_, err = types.AdditionalLPAmount(full, pair)
	require.ErrorIs(t, err, types.ErrArithmeticOverflow)
}

func TestDepositRejectsForeignPair(t *testing.T) {
	pool := testPool(t, "asset1", 10, "asset2", 10, 10)
	pair, err := types.NewPoolPair("asset1", amt(1), "asset3", amt(1))
	require.NoError(t, err)
	_, err = pool.Deposit(pair, amt(1))
	require.ErrorIs(t, err, types.ErrAssetNotInPool)
}

func TestRedeemAmounts(t *testing.T) {
	pool := testPool(t, "asset1", 650, "asset2", 388, 500)

	a1, a2, err := types.RedeemAmounts(pool, amt(500))
	require.NoError(t, err)
	requireInt(t, 650, a1)
	requireInt(t, 388, a2)

	a1, a2, err = types.RedeemAmounts(pool, amt(3))
	require.NoError(t, err)
	requireInt(t, 3, a1) // floor(650*3/500)
	requireInt(t, 2, a2) // floor(388*3/500)

	_, _, err = types.RedeemAmounts(pool, amt(501))
	require.ErrorIs(t, err, types.ErrInsufficientLPBalance)

	_, err = pool.Withdraw(amt(651), amt(0), amt(0))
	require.ErrorIs(t, err, types.ErrArithmeticUnderflow)
}

func TestRedeemConservation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r1 := rapid.Int64Range(1, 1<<40).Draw(t, "r1")
		r2 := rapid.Int64Range(1, 1<<40).Draw(t, "r2")
		supply := rapid.Int64Range(1, 1<<40).Draw(t, "supply")
		lp := rapid.Int64Range(1, supply).Draw(t, "lp")
		pool := testPool(t, "asset1", r1, "asset2", r2, supply)

		a1, a2, err := types.RedeemAmounts(pool, amt(lp))
		require.NoError(t, err)
		require.True(t, a1.LTE(pool.Pair.Amount1))
		require.True(t, a2.LTE(pool.Pair.Amount2))

		updated, err := pool.Withdraw(a1, a2, amt(lp))
		require.NoError(t, err)
		require.True(t, updated.Pair.Amount1.Add(a1).Equal(pool.Pair.Amount1))
		require.True(t, updated.Pair.Amount2.Add(a2).Equal(pool.Pair.Amount2))
		if lp < supply {
			require.True(t, updated.Pair.Amount1.IsPositive())
			require.True(t, updated.Pair.Amount2.IsPositive())
		} else {
			require.True(t, updated.LPSupply.IsZero())
			require.True(t, updated.Pair.Amount1.IsZero())
		}
	})
}

func TestPositiveDepositAlwaysMints(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pool := testPool(t, "asset1",
			rapid.Int64Range(1, 1<<40).Draw(t, "r1"), "asset2",
			rapid.Int64Range(1, 1<<40).Draw(t, "r2"), 1)
		pair, err := types.NewPoolPair("asset1",
			amt(rapid.Int64Range(1, 1<<40).Draw(t, "a1")), "asset2",
			amt(rapid.Int64Range(1, 1<<40).Draw(t, "a2")))
		require.NoError(t, err)

		lp, err := types.AdditionalLPAmount(pool, pair)
		require.NoError(t, err)
		require.True(t, lp.IsPositive())
	})
}
