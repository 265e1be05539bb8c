package keeper_test

import (
	"cosmossdk.io/math"

	"github.com/paw-chain/pawswap/x/amm/types"
	assetstypes "github.com/paw-chain/pawswap/x/assets/types"
)

func (suite *KeeperTestSuite) seedPool() {
	suite.fund(suite.alice, map[types.AssetID]int64{asset1: 1000, asset2: 1000})
	suite.fund(suite.bob, map[types.AssetID]int64{asset1: 1000, asset2: 1000})
	_, err := suite.keeper.AddLiquidity(suite.ctx, suite.alice, asset1, asset2, math.NewInt(500), math.NewInt(500))
	suite.Require().NoError(err)
}

func (suite *KeeperTestSuite) TestSwapInForExactOut() {
	suite.seedPool()

	quote, err := suite.keeper.QuoteExactOut(suite.ctx, asset1, asset2, math.NewInt(100))
	suite.Require().NoError(err)
	suite.Require().Equal("129", quote.String())

	in, err := suite.keeper.SwapInForExactOut(suite.ctx, suite.bob, asset1, asset2, math.NewInt(150), math.NewInt(100))
	suite.Require().NoError(err)
	suite.Require().Equal("129", in.String())

	suite.requireBalance(629, asset1, suite.custody())
	suite.requireBalance(400, asset2, suite.custody())
	suite.requireBalance(871, asset1, suite.bob)
	suite.requireBalance(1100, asset2, suite.bob)

	pool := suite.pool(asset1, asset2)
	suite.Require().Equal("629", pool.Pair.Amount1.String())
	suite.Require().Equal("400", pool.Pair.Amount2.String())
	suite.Require().Equal("500", pool.LPSupply.String())
}

func (suite *KeeperTestSuite) TestSwapInForExactOutSlippage() {
	suite.seedPool()
	before := suite.pool(asset1, asset2).String()

	_, err := suite.keeper.SwapInForExactOut(suite.ctx, suite.bob, asset1, asset2, math.NewInt(20), math.NewInt(100))
	suite.Require().ErrorIs(err, types.ErrSlippageTooHigh)

	suite.Require().Equal(before, suite.pool(asset1, asset2).String())
	suite.requireBalance(1000, asset1, suite.bob)
	suite.requireBalance(1000, asset2, suite.bob)
}

func (suite *KeeperTestSuite) TestSwapExactInForOut() {
	suite.seedPool()

	quote, err := suite.keeper.QuoteExactIn(suite.ctx, asset1, asset2, math.NewInt(150))
	suite.Require().NoError(err)
	suite.Require().Equal("112", quote.String())

	_, err = suite.keeper.SwapExactInForOut(suite.ctx, suite.bob, asset1, asset2, math.NewInt(150), math.NewInt(113))
	suite.Require().ErrorIs(err, types.ErrSlippageTooHigh)
	suite.requireBalance(1000, asset1, suite.bob)

	out, err := suite.keeper.SwapExactInForOut(suite.ctx, suite.bob, asset1, asset2, math.NewInt(150), math.NewInt(112))
	suite.Require().NoError(err)
	suite.Require().Equal("112", out.String())

	suite.requireBalance(850, asset1, suite.bob)
	suite.requireBalance(1112, asset2, suite.bob)
	suite.requireBalance(650, asset1, suite.custody())
	suite.requireBalance(388, asset2, suite.custody())
}

func (suite *KeeperTestSuite) TestSwapErrors() {
	_, err := suite.keeper.SwapExactInForOut(suite.ctx, suite.bob, asset1, asset2, math.NewInt(10), math.ZeroInt())
	suite.Require().ErrorIs(err, types.ErrNoPool)
	_, err = suite.keeper.SwapInForExactOut(suite.ctx, suite.bob, asset1, asset2, math.NewInt(10), math.NewInt(1))
	suite.Require().ErrorIs(err, types.ErrNoPool)

	suite.seedPool()

	_, err = suite.keeper.SwapExactInForOut(suite.ctx, suite.bob, asset1, asset1, math.NewInt(10), math.ZeroInt())
	suite.Require().ErrorIs(err, types.ErrSameAsset)
	_, err = suite.keeper.SwapExactInForOut(suite.ctx, suite.bob, asset1, asset3, math.NewInt(10), math.ZeroInt())
	suite.Require().ErrorIs(err, types.ErrNoPool)

	_, err = suite.keeper.SwapExactInForOut(suite.ctx, suite.bob, asset1, asset2, math.ZeroInt(), math.ZeroInt())
	suite.Require().ErrorIs(err, types.ErrZeroAmount)
	_, err = suite.keeper.SwapInForExactOut(suite.ctx, suite.bob, asset1, asset2, math.NewInt(10), math.ZeroInt())
	suite.Require().ErrorIs(err, types.ErrZeroAmount)

	_, err = suite.keeper.SwapInForExactOut(suite.ctx, suite.bob, asset1, asset2, math.NewInt(1_000_000), math.NewInt(500))
	suite.Require().ErrorIs(err, types.ErrInsufficientLiquidity)

	// unset limits are rejected rather than compared
	_, err = suite.keeper.SwapExactInForOut(suite.ctx, suite.bob, asset1, asset2, math.NewInt(10), math.Int{})
	suite.Require().ErrorIs(err, types.ErrSlippageTooHigh)
	_, err = suite.keeper.SwapInForExactOut(suite.ctx, suite.bob, asset1, asset2, math.Int{}, math.NewInt(10))
	suite.Require().ErrorIs(err, types.ErrSlippageTooHigh)

	// carol has no funds; the failed transfer leaves the pool untouched
	before := suite.pool(asset1, asset2).String()
	_, err = suite.keeper.SwapExactInForOut(suite.ctx, suite.carol, asset1, asset2, math.NewInt(100), math.ZeroInt())
	suite.Require().ErrorIs(err, assetstypes.ErrInsufficientBalance)
	suite.Require().Equal(before, suite.pool(asset1, asset2).String())
}

func (suite *KeeperTestSuite) TestSwapThenRedeemEarnsFees() {
	suite.seedPool()

	_, err := suite.keeper.SwapExactInForOut(suite.ctx, suite.bob, asset1, asset2, math.NewInt(150), math.ZeroInt())
	suite.Require().NoError(err)

	a1, a2, err := suite.keeper.RemoveLiquidity(suite.ctx, suite.alice, asset1, asset2, math.NewInt(500))
	suite.Require().NoError(err)
	suite.Require().Equal("650", a1.String())
	suite.Require().Equal("388", a2.String())

	total := suite.balance(asset1, suite.alice).Add(suite.balance(asset2, suite.alice))
	suite.Require().True(total.GT(math.NewInt(2000)), total.String())
	suite.Require().True(a1.Add(a2).GT(math.NewInt(1000)))
	suite.Require().False(suite.keeper.HasPool(suite.ctx, types.DerivePoolID(asset1, asset2)))
}

func (suite *KeeperTestSuite) TestLongerStayEarnsMore() {
	suite.fund(suite.alice, map[types.AssetID]int64{asset1: 1000, asset2: 1000})
	suite.fund(suite.bob, map[types.AssetID]int64{asset1: 1000, asset2: 1000})
	suite.fund(suite.carol, map[types.AssetID]int64{asset1: 10_000, asset2: 10_000})

	_, err := suite.keeper.AddLiquidity(suite.ctx, suite.alice, asset1, asset2, math.NewInt(500), math.NewInt(500))
	suite.Require().NoError(err)
	_, err = suite.keeper.AddLiquidity(suite.ctx, suite.bob, asset1, asset2, math.NewInt(500), math.NewInt(500))
	suite.Require().NoError(err)

	churn := func() {
		for i := 0; i < 4; i++ {
			_, err := suite.keeper.SwapExactInForOut(suite.ctx, suite.carol, asset1, asset2, math.NewInt(150), math.ZeroInt())
			suite.Require().NoError(err)
			_, err = suite.keeper.SwapExactInForOut(suite.ctx, suite.carol, asset2, asset1, math.NewInt(150), math.ZeroInt())
			suite.Require().NoError(err)
		}
	}

	churn()
	held := suite.balance(asset1, suite.custody()).Add(suite.balance(asset2, suite.custody()))
	suite.Require().True(held.GT(math.NewInt(2000)), held.String())

	_, _, err = suite.keeper.RemoveLiquidity(suite.ctx, suite.bob, asset1, asset2, math.NewInt(500))
	suite.Require().NoError(err)

	churn()
	_, _, err = suite.keeper.RemoveLiquidity(suite.ctx, suite.alice, asset1, asset2, math.NewInt(500))
	suite.Require().NoError(err)

	aliceTotal := suite.balance(asset1, suite.alice).Add(suite.balance(asset2, suite.alice))
	bobTotal := suite.balance(asset1, suite.bob).Add(suite.balance(asset2, suite.bob))
	suite.Require().True(aliceTotal.GT(bobTotal), "alice %s, bob %s", aliceTotal, bobTotal)
}

func (suite *KeeperTestSuite) TestPriceOracle() {
	suite.fund(suite.alice, map[types.AssetID]int64{asset1: 1000, asset2: 1000})
	_, err := suite.keeper.AddLiquidity(suite.ctx, suite.alice, asset2, asset1, math.NewInt(1000), math.NewInt(400))
	suite.Require().NoError(err)

	price, err := suite.keeper.PriceOracle(suite.ctx, asset1, asset2)
	suite.Require().NoError(err)
	suite.Require().True(math.LegacyMustNewDecFromStr("2.5").Equal(price), price.String())

	price, err = suite.keeper.GetSpotPrice(suite.ctx, asset2, asset1)
	suite.Require().NoError(err)
	suite.Require().True(math.LegacyMustNewDecFromStr("0.4").Equal(price), price.String())

	found := false
	for _, ev := range suite.ctx.EventManager().Events() {
		if ev.Type == types.EventTypePriceOracle {
			found = true
		}
	}
	suite.Require().True(found)

	_, err = suite.keeper.PriceOracle(suite.ctx, asset1, asset3)
	suite.Require().ErrorIs(err, types.ErrNoPool)
}
