package keeper_test

import (
	"cosmossdk.io/math"

	"github.com/paw-chain/pawswap/x/amm/keeper"
	"github.com/paw-chain/pawswap/x/amm/types"
)

func (suite *KeeperTestSuite) TestInvariantsHold() {
	suite.seedPool()
	_, err := suite.keeper.SwapExactInForOut(suite.ctx, suite.bob, asset2, asset1, math.NewInt(77), math.ZeroInt())
	suite.Require().NoError(err)

	msg, broken := keeper.AllInvariants(suite.keeper)(suite.ctx)
	suite.Require().False(broken, msg)
}

func (suite *KeeperTestSuite) TestInvariantsDetectCorruption() {
	suite.seedPool()
	poolID := types.DerivePoolID(asset1, asset2)
	original := suite.pool(asset1, asset2)

	inflated := original
	inflated.Pair.Amount1 = original.Pair.Amount1.AddRaw(1)
	suite.Require().NoError(suite.keeper.SetPool(suite.ctx, poolID, inflated))
	_, broken := keeper.PoolReservesInvariant(suite.keeper)(suite.ctx)
	suite.Require().True(broken)

	minted := original
	minted.LPSupply = original.LPSupply.AddRaw(1)
	suite.Require().NoError(suite.keeper.SetPool(suite.ctx, poolID, minted))
	_, broken = keeper.LPSupplyInvariant(suite.keeper)(suite.ctx)
	suite.Require().True(broken)
	_, broken = keeper.AllInvariants(suite.keeper)(suite.ctx)
	suite.Require().True(broken)

	suite.Require().NoError(suite.keeper.SetPool(suite.ctx, poolID, original))
	_, broken = keeper.PositiveReservesInvariant(suite.keeper)(suite.ctx)
	suite.Require().False(broken)
}
