package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	assetstypes "github.com/paw-chain/pawswap/x/assets/types"
)

// AssetKeeper defines the fungible asset ledger the amm keeper moves funds
// through. Implemented by x/assets.
type AssetKeeper interface {
	CreateAsset(ctx context.Context, id string, admin sdk.AccAddress, isSufficient bool, minBalance math.Int) error
	MintInto(ctx context.Context, id string, account sdk.AccAddress, amount math.Int) error
	BurnFrom(ctx context.Context, id string, account sdk.AccAddress, amount math.Int, precision assetstypes.Precision, fortitude assetstypes.Fortitude) (math.Int, error)
	Transfer(ctx context.Context, id string, from, to sdk.AccAddress, amount math.Int, preservation assetstypes.Preservation) error
	Balance(ctx context.Context, id string, account sdk.AccAddress) math.Int
	TotalIssuance(ctx context.Context, id string) math.Int
	AssetExists(ctx context.Context, id string) bool
	AssetAdmin(ctx context.Context, id string) (sdk.AccAddress, error)
}

// FlashLoanReceiver is called with the borrowed funds already credited to
// the borrower. It must return amount plus the fee to the pool custody
// account before returning.
type FlashLoanReceiver interface {
	OnFlashLoan(ctx context.Context, borrower sdk.AccAddress, asset AssetID, amount, fee math.Int) error
}

// FlashLoanReceiverFunc adapts a function to FlashLoanReceiver.
type FlashLoanReceiverFunc func(ctx context.Context, borrower sdk.AccAddress, asset AssetID, amount, fee math.Int) error

// OnFlashLoan calls f.
func (f FlashLoanReceiverFunc) OnFlashLoan(ctx context.Context, borrower sdk.AccAddress, asset AssetID, amount, fee math.Int) error {
	return f(ctx, borrower, asset, amount, fee)
}
