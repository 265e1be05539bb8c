package keeper_test

import (
	"context"
	"errors"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/x/amm/types"
	assetstypes "github.com/paw-chain/pawswap/x/assets/types"
)

// repay returns a receiver that sends back amount plus extra to custody.
func (suite *KeeperTestSuite) repay(extra func(fee math.Int) math.Int) types.FlashLoanReceiver {
	return types.FlashLoanReceiverFunc(func(ctx context.Context, borrower sdk.AccAddress, asset types.AssetID, amount, fee math.Int) error {
		owed := amount.Add(extra(fee))
		return suite.chain.Assets.Transfer(ctx, asset.String(), borrower, suite.custody(), owed, assetstypes.Expendable)
	})
}

func (suite *KeeperTestSuite) TestFlashLoanRepaid() {
	suite.seedPool()
	suite.fund(suite.carol, map[types.AssetID]int64{asset1: 50})

	err := suite.keeper.FlashLoan(suite.ctx, suite.carol, asset1, math.NewInt(400), suite.repay(func(fee math.Int) math.Int {
		suite.Require().Equal("12", fee.String())
		return fee
	}))
	suite.Require().NoError(err)

	suite.requireBalance(38, asset1, suite.carol)
	suite.requireBalance(512, asset1, suite.custody())
	// the fee is custody surplus, not pool reserve
	suite.Require().Equal("500", suite.pool(asset1, asset2).Pair.Amount1.String())
}

func (suite *KeeperTestSuite) TestFlashLoanUnderpaid() {
	suite.seedPool()
	suite.fund(suite.carol, map[types.AssetID]int64{asset1: 50})

	err := suite.keeper.FlashLoan(suite.ctx, suite.carol, asset1, math.NewInt(400), suite.repay(func(fee math.Int) math.Int {
		return fee.SubRaw(1)
	}))
	suite.Require().ErrorIs(err, types.ErrInsufficientRepayment)

	suite.requireBalance(50, asset1, suite.carol)
	suite.requireBalance(500, asset1, suite.custody())
}

func (suite *KeeperTestSuite) TestFlashLoanCallbackFails() {
	suite.seedPool()

	err := suite.keeper.FlashLoan(suite.ctx, suite.carol, asset1, math.NewInt(100),
		types.FlashLoanReceiverFunc(func(context.Context, sdk.AccAddress, types.AssetID, math.Int, math.Int) error {
			return errors.New("strategy reverted")
		}))
	suite.Require().ErrorIs(err, types.ErrCallFailed)

	suite.requireBalance(0, asset1, suite.carol)
	suite.requireBalance(500, asset1, suite.custody())
}

func (suite *KeeperTestSuite) TestFlashLoanErrors() {
	suite.seedPool()
	noop := suite.repay(func(fee math.Int) math.Int { return fee })

	err := suite.keeper.FlashLoan(suite.ctx, suite.carol, asset1, math.NewInt(501), noop)
	suite.Require().ErrorIs(err, types.ErrInsufficientLiquidity)

	err = suite.keeper.FlashLoan(suite.ctx, suite.carol, asset1, math.ZeroInt(), noop)
	suite.Require().ErrorIs(err, types.ErrZeroAmount)

	err = suite.keeper.FlashLoan(suite.ctx, suite.carol, asset1, math.NewInt(1), nil)
	suite.Require().ErrorIs(err, types.ErrCallFailed)

	err = suite.keeper.FlashLoan(suite.ctx, suite.carol, "", math.NewInt(1), noop)
	suite.Require().ErrorIs(err, types.ErrInvalidAsset)
}

func (suite *KeeperTestSuite) TestFlashLoanRejectsPoolOperationsInCallback() {
	tests := []struct {
		name string
		call func(ctx context.Context, borrower sdk.AccAddress, amount math.Int) error
	}{
		{"add liquidity", func(ctx context.Context, borrower sdk.AccAddress, amount math.Int) error {
			_, err := suite.keeper.AddLiquidity(ctx, borrower, asset1, asset2, amount, amount)
			return err
		}},
		{"remove liquidity", func(ctx context.Context, borrower sdk.AccAddress, _ math.Int) error {
			_, _, err := suite.keeper.RemoveLiquidity(ctx, borrower, asset1, asset2, math.OneInt())
			return err
		}},
		{"swap exact in", func(ctx context.Context, borrower sdk.AccAddress, amount math.Int) error {
			_, err := suite.keeper.SwapExactInForOut(ctx, borrower, asset1, asset2, amount, math.ZeroInt())
			return err
		}},
		{"swap exact out", func(ctx context.Context, borrower sdk.AccAddress, _ math.Int) error {
			_, err := suite.keeper.SwapInForExactOut(ctx, borrower, asset1, asset2, math.NewInt(1_000_000), math.NewInt(10))
			return err
		}},
		{"nested loan", func(ctx context.Context, borrower sdk.AccAddress, _ math.Int) error {
			return suite.keeper.FlashLoan(ctx, borrower, asset2, math.NewInt(10), suite.repay(func(fee math.Int) math.Int { return fee }))
		}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			suite.seedPool()
			suite.fund(suite.carol, map[types.AssetID]int64{asset1: 50, asset2: 1000})
			poolBefore := suite.pool(asset1, asset2).String()

			var inner error
			err := suite.keeper.FlashLoan(suite.ctx, suite.carol, asset1, math.NewInt(400),
				types.FlashLoanReceiverFunc(func(ctx context.Context, borrower sdk.AccAddress, asset types.AssetID, amount, fee math.Int) error {
					if inner = tt.call(ctx, borrower, amount); inner != nil {
						return inner
					}
					return suite.chain.Assets.Transfer(ctx, asset.String(), borrower, suite.custody(), amount.Add(fee), assetstypes.Expendable)
				}))
			suite.Require().ErrorIs(inner, types.ErrReentrancy)
			suite.Require().ErrorIs(err, types.ErrCallFailed)

			lp, err := suite.keeper.LPBalance(suite.ctx, suite.carol, asset1, asset2)
			suite.Require().NoError(err)
			suite.Require().True(lp.IsZero())
			suite.requireBalance(50, asset1, suite.carol)
			suite.requireBalance(500, asset1, suite.custody())
			suite.Require().Equal(poolBefore, suite.pool(asset1, asset2).String())
		})
	}
}

func (suite *KeeperTestSuite) TestFlashLoanReleasesLock() {
	suite.seedPool()
	suite.fund(suite.carol, map[types.AssetID]int64{asset1: 50})

	suite.Require().NoError(suite.keeper.FlashLoan(suite.ctx, suite.carol, asset1, math.NewInt(100), suite.repay(func(fee math.Int) math.Int {
		return fee
	})))

	_, err := suite.keeper.SwapExactInForOut(suite.ctx, suite.bob, asset1, asset2, math.NewInt(10), math.ZeroInt())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.keeper.FlashLoan(suite.ctx, suite.carol, asset1, math.NewInt(100), suite.repay(func(fee math.Int) math.Int {
		return fee
	})))
}
