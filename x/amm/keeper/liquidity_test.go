package keeper_test

import (
	"cosmossdk.io/math"

	"github.com/paw-chain/pawswap/x/amm/types"
	assetstypes "github.com/paw-chain/pawswap/x/assets/types"
)

func (suite *KeeperTestSuite) TestAddLiquidityOpensPool() {
	suite.fund(suite.alice, map[types.AssetID]int64{asset1: 1000, asset2: 1000})

	lp, err := suite.keeper.AddLiquidity(suite.ctx, suite.alice, asset1, asset2, math.NewInt(500), math.NewInt(500))
	suite.Require().NoError(err)
	suite.Require().Equal("500", lp.String())

	poolID := types.DerivePoolID(asset1, asset2)
	suite.requireBalance(500, poolID, suite.alice)
	suite.requireBalance(500, asset1, suite.alice)
	suite.requireBalance(500, asset2, suite.alice)
	suite.requireBalance(500, asset1, suite.custody())
	suite.requireBalance(500, asset2, suite.custody())

	pool := suite.pool(asset1, asset2)
	suite.Require().Equal("500", pool.LPSupply.String())
	suite.Require().Equal(poolID, pool.ID())

	lpAsset, err := suite.chain.Assets.GetAsset(suite.ctx, poolID.String())
	suite.Require().NoError(err)
	suite.Require().Equal(suite.custody(), lpAsset.Admin)
	suite.Require().Equal("1", lpAsset.MinBalance.String())
}

func (suite *KeeperTestSuite) TestAddLiquidityArgumentOrder() {
	suite.fund(suite.alice, map[types.AssetID]int64{asset1: 1000, asset2: 1000})

	_, err := suite.keeper.AddLiquidity(suite.ctx, suite.alice, asset1, asset2, math.NewInt(500), math.NewInt(500))
	suite.Require().NoError(err)
	lp, err := suite.keeper.AddLiquidity(suite.ctx, suite.alice, asset2, asset1, math.NewInt(500), math.NewInt(500))
	suite.Require().NoError(err)
	suite.Require().Equal("500", lp.String())

	pools, err := suite.keeper.GetAllPools(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pools, 1)

	balance, err := suite.keeper.LPBalance(suite.ctx, suite.alice, asset2, asset1)
	suite.Require().NoError(err)
	suite.Require().Equal("1000", balance.String())
}

func (suite *KeeperTestSuite) TestAddLiquidityAmountsFollowAssets() {
	suite.fund(suite.alice, map[types.AssetID]int64{asset1: 1000, asset2: 4000})

	_, err := suite.keeper.AddLiquidity(suite.ctx, suite.alice, asset2, asset1, math.NewInt(4000), math.NewInt(1000))
	suite.Require().NoError(err)

	pool := suite.pool(asset1, asset2)
	suite.Require().Equal(asset1, pool.Pair.Asset1)
	suite.Require().Equal("1000", pool.Pair.Amount1.String())
	suite.Require().Equal("4000", pool.Pair.Amount2.String())
	suite.Require().Equal("2000", pool.LPSupply.String())
}

func (suite *KeeperTestSuite) TestAddLiquidityErrors() {
	suite.fund(suite.alice, map[types.AssetID]int64{asset1: 1000, asset2: 1000})

	_, err := suite.keeper.AddLiquidity(suite.ctx, suite.alice, asset1, asset1, math.NewInt(500), math.NewInt(500))
	suite.Require().ErrorIs(err, types.ErrSameAsset)

	_, err = suite.keeper.AddLiquidity(suite.ctx, suite.alice, asset1, asset2, math.ZeroInt(), math.NewInt(500))
	suite.Require().ErrorIs(err, types.ErrZeroAmount)

	_, err = suite.keeper.AddLiquidity(suite.ctx, suite.alice, asset1, asset2, types.MaxAmount.AddRaw(1), math.NewInt(500))
	suite.Require().ErrorIs(err, types.ErrArithmeticOverflow)

	_, err = suite.keeper.AddLiquidity(suite.ctx, suite.alice, asset1, "", math.NewInt(1), math.NewInt(1))
	suite.Require().ErrorIs(err, types.ErrInvalidAsset)

	suite.Require().False(suite.keeper.HasPool(suite.ctx, types.DerivePoolID(asset1, asset2)))
}

func (suite *KeeperTestSuite) TestAddLiquidityRollsBackOnFailedTransfer() {
	// bob holds enough of asset1 but not of asset2
	suite.fund(suite.bob, map[types.AssetID]int64{asset1: 1000, asset2: 100})

	_, err := suite.keeper.AddLiquidity(suite.ctx, suite.bob, asset1, asset2, math.NewInt(500), math.NewInt(500))
	suite.Require().ErrorIs(err, assetstypes.ErrInsufficientBalance)

	suite.requireBalance(1000, asset1, suite.bob)
	suite.requireBalance(100, asset2, suite.bob)
	suite.requireBalance(0, asset1, suite.custody())
	suite.Require().False(suite.keeper.HasPool(suite.ctx, types.DerivePoolID(asset1, asset2)))
	suite.Require().False(suite.chain.Assets.AssetExists(suite.ctx, types.DerivePoolID(asset1, asset2).String()))
}

func (suite *KeeperTestSuite) TestRemoveLiquidity() {
	suite.fund(suite.alice, map[types.AssetID]int64{asset1: 1000, asset2: 1000})
	_, err := suite.keeper.AddLiquidity(suite.ctx, suite.alice, asset1, asset2, math.NewInt(500), math.NewInt(500))
	suite.Require().NoError(err)

	a2, a1, err := suite.keeper.RemoveLiquidity(suite.ctx, suite.alice, asset2, asset1, math.NewInt(200))
	suite.Require().NoError(err)
	suite.Require().Equal("200", a1.String())
	suite.Require().Equal("200", a2.String())

	pool := suite.pool(asset1, asset2)
	suite.Require().Equal("300", pool.Pair.Amount1.String())
	suite.Require().Equal("300", pool.LPSupply.String())
	suite.requireBalance(700, asset1, suite.alice)
	suite.requireBalance(300, types.DerivePoolID(asset1, asset2), suite.alice)

	// burning the last LP tokens closes the pool
	_, _, err = suite.keeper.RemoveLiquidity(suite.ctx, suite.alice, asset1, asset2, math.NewInt(300))
	suite.Require().NoError(err)
	suite.Require().False(suite.keeper.HasPool(suite.ctx, types.DerivePoolID(asset1, asset2)))
	suite.requireBalance(1000, asset1, suite.alice)
	suite.requireBalance(1000, asset2, suite.alice)
	suite.requireBalance(0, asset1, suite.custody())

	// and it can be opened again under the same LP asset
	lp, err := suite.keeper.AddLiquidity(suite.ctx, suite.alice, asset1, asset2, math.NewInt(100), math.NewInt(400))
	suite.Require().NoError(err)
	suite.Require().Equal("200", lp.String())
}

func (suite *KeeperTestSuite) TestRemoveLiquidityErrors() {
	_, _, err := suite.keeper.RemoveLiquidity(suite.ctx, suite.alice, asset1, asset2, math.NewInt(1))
	suite.Require().ErrorIs(err, types.ErrNoPool)

	_, _, err = suite.keeper.RemoveLiquidity(suite.ctx, suite.alice, asset1, asset1, math.NewInt(1))
	suite.Require().ErrorIs(err, types.ErrSameAsset)

	suite.fund(suite.alice, map[types.AssetID]int64{asset1: 1000, asset2: 1000})
	_, err = suite.keeper.AddLiquidity(suite.ctx, suite.alice, asset1, asset2, math.NewInt(500), math.NewInt(500))
	suite.Require().NoError(err)

	_, _, err = suite.keeper.RemoveLiquidity(suite.ctx, suite.alice, asset1, asset2, math.ZeroInt())
	suite.Require().ErrorIs(err, types.ErrZeroAmount)

	_, _, err = suite.keeper.RemoveLiquidity(suite.ctx, suite.alice, asset1, asset2, math.NewInt(501))
	suite.Require().ErrorIs(err, types.ErrInsufficientLPBalance)

	_, _, err = suite.keeper.RemoveLiquidity(suite.ctx, suite.bob, asset1, asset2, math.NewInt(1))
	suite.Require().ErrorIs(err, types.ErrInsufficientLPBalance)

	suite.Require().Equal("500", suite.pool(asset1, asset2).LPSupply.String())
}

func (suite *KeeperTestSuite) TestAddLiquidityRejectsOutstandingLPTokens() {
	lpID := types.DerivePoolID(asset1, asset2)

	// only custody may create lp assets
	err := suite.chain.Assets.CreateAsset(suite.ctx, lpID.String(), suite.carol, true, math.OneInt())
	suite.Require().ErrorIs(err, assetstypes.ErrReservedAsset)
	suite.Require().Error(suite.chain.FundAccount(suite.carol, lpID.String(), math.NewInt(10_000)))

	// lp tokens minted around the amm block the pool from opening
	suite.Require().NoError(suite.chain.Assets.CreateAsset(suite.ctx, lpID.String(), suite.custody(), true, math.OneInt()))
	suite.Require().NoError(suite.chain.Assets.MintInto(suite.ctx, lpID.String(), suite.carol, math.NewInt(10_000)))

	suite.fund(suite.alice, map[types.AssetID]int64{asset1: 500, asset2: 500})
	_, err = suite.keeper.AddLiquidity(suite.ctx, suite.alice, asset1, asset2, math.NewInt(500), math.NewInt(500))
	suite.Require().ErrorIs(err, types.ErrInvalidPool)

	suite.requireBalance(500, asset1, suite.alice)
	suite.requireBalance(500, asset2, suite.alice)
	suite.Require().False(suite.keeper.HasPool(suite.ctx, lpID))
}
