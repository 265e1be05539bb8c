package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/pawswap/pkg/sandbox"
	"github.com/paw-chain/pawswap/x/amm/keeper"
	"github.com/paw-chain/pawswap/x/amm/types"
)

// FeeAuthority is the account allowed to set the fee in test chains.
var FeeAuthority = sdk.AccAddress([]byte("fee_authority_______"))

// AMMChain creates an in-memory chain with the amm and assets keepers.
func AMMChain(t testing.TB) *sandbox.Chain {
	chain, err := sandbox.New(sandbox.Options{
		Logger:    log.NewNopLogger(),
		Authority: FeeAuthority,
	})
	require.NoError(t, err)
	return chain
}

// AMMKeeper creates a test keeper for the amm module
func AMMKeeper(t testing.TB) (keeper.Keeper, sdk.Context) {
	chain := AMMChain(t)
	return chain.AMM, chain.Ctx
}

// TestAddr returns a deterministic 20 byte address for index i.
func TestAddr(i int) sdk.AccAddress {
	addr := make([]byte, 20)
	copy(addr, "test_account")
	addr[19] = byte(i)
	addr[18] = byte(i >> 8)
	return addr
}

// FundAccount mints the given balances into who, creating assets as needed.
func FundAccount(t testing.TB, chain *sandbox.Chain, who sdk.AccAddress, balances map[types.AssetID]int64) {
	for asset, amount := range balances {
		require.NoError(t, chain.FundAccount(who, asset.String(), math.NewInt(amount)))
	}
}

// CreateTestPool funds creator and opens a pool with the given reserves.
func CreateTestPool(t testing.TB, chain *sandbox.Chain, creator sdk.AccAddress, assetA, assetB types.AssetID, amountA, amountB int64) types.AssetID {
	FundAccount(t, chain, creator, map[types.AssetID]int64{assetA: amountA, assetB: amountB})
	_, err := chain.AMM.AddLiquidity(chain.Ctx, creator, assetA, assetB, math.NewInt(amountA), math.NewInt(amountB))
	require.NoError(t, err)

	poolID, err := types.PoolIDFor(assetA, assetB)
	require.NoError(t, err)
	return poolID
}

// RequireInvariants fails the test if any invariant is broken.
func RequireInvariants(t testing.TB, chain *sandbox.Chain) {
	msg, broken := chain.CheckInvariants()
	require.False(t, broken, msg)
}
