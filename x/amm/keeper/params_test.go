package keeper_test

import (
	"cosmossdk.io/math"

	keepertest "github.com/paw-chain/pawswap/testutil/keeper"
	"github.com/paw-chain/pawswap/x/amm/types"
)

func (suite *KeeperTestSuite) TestDefaultFee() {
	fee, err := suite.keeper.GetFee(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(types.DefaultSwapFeeBps, fee)
}

func (suite *KeeperTestSuite) TestSetFee() {
	err := suite.keeper.SetFee(suite.ctx, suite.alice, 100)
	suite.Require().ErrorIs(err, types.ErrNotAllowedToSetFee)

	err = suite.keeper.SetFee(suite.ctx, keepertest.FeeAuthority, types.FeeDenominator)
	suite.Require().ErrorIs(err, types.ErrInvalidFee)

	fee, err := suite.keeper.GetFee(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(types.DefaultSwapFeeBps, fee)

	suite.Require().NoError(suite.keeper.SetFee(suite.ctx, keepertest.FeeAuthority, 0))
	fee, err = suite.keeper.GetFee(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(uint32(0), fee)

	// a zero fee prices exact-out 100 from 500/500 at the bare curve
	suite.seedPool()
	in, err := suite.keeper.QuoteExactOut(suite.ctx, asset1, asset2, math.NewInt(100))
	suite.Require().NoError(err)
	suite.Require().Equal("125", in.String())
}

func (suite *KeeperTestSuite) TestSetParams() {
	suite.Require().ErrorIs(suite.keeper.SetParams(suite.ctx, types.Params{SwapFeeBps: 20_000}), types.ErrInvalidFee)
	suite.Require().NoError(suite.keeper.SetParams(suite.ctx, types.Params{SwapFeeBps: 30}))

	params, err := suite.keeper.GetParams(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(uint32(30), params.SwapFeeBps)
}
