// Package sandbox wires the amm and assets keepers over an in-memory
// multistore. It backs the pawswap CLI simulator and the keeper test helpers.
package sandbox

import (
	"fmt"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	ammkeeper "github.com/paw-chain/pawswap/x/amm/keeper"
	ammtypes "github.com/paw-chain/pawswap/x/amm/types"
	assetskeeper "github.com/paw-chain/pawswap/x/assets/keeper"
	assetstypes "github.com/paw-chain/pawswap/x/assets/types"
)

// Chain is a single-node state machine holding both keepers.
type Chain struct {
	Ctx    sdk.Context
	AMM    ammkeeper.Keeper
	Assets assetskeeper.Keeper

	store      storetypes.CommitMultiStore
	invariants *InvariantRegistry
}

// Options configure a Chain.
type Options struct {
	Logger log.Logger
	// Authority may set the fee. Empty selects the gov module account.
	Authority sdk.AccAddress
	// Genesis seeds the amm module; nil selects the default genesis.
	Genesis *ammtypes.GenesisState
}

// New builds a chain over a fresh in-memory database.
func New(opts Options) (*Chain, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	ammKey := storetypes.NewKVStoreKey(ammtypes.StoreKey)
	assetsKey := storetypes.NewKVStoreKey(assetstypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(ammKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(assetsKey, storetypes.StoreTypeIAVL, db)
	if err := stateStore.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load store: %w", err)
	}

	custody := authtypes.NewModuleAddress(ammtypes.ModuleName)
	assets := assetskeeper.NewKeeper(assetsKey).WithReservedPrefix(ammtypes.LPAssetPrefix, custody)
	amm := ammkeeper.NewKeeper(ammKey, assets, opts.Authority)

	invariants := NewInvariantRegistry()
	ammkeeper.RegisterInvariants(invariants, amm)
	assetskeeper.RegisterInvariants(invariants, assets)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{ChainID: "pawswap-sandbox", Height: 1}, false, logger)

	genesis := opts.Genesis
	if genesis == nil {
		genesis = ammtypes.DefaultGenesis()
	}
	if err := amm.InitGenesis(ctx, *genesis); err != nil {
		return nil, fmt.Errorf("failed to init amm genesis: %w", err)
	}

	return &Chain{
		Ctx:    ctx,
		AMM:    amm,
		Assets: assets,

		store:      stateStore,
		invariants: invariants,
	}, nil
}

// FundAccount mints amount of asset into who, creating the asset with the
// amm custody account as admin if it does not exist yet. LP assets can only
// be obtained by depositing.
func (c *Chain) FundAccount(who sdk.AccAddress, asset string, amount math.Int) error {
	if ammtypes.IsPoolID(ammtypes.AssetID(asset)) {
		return fmt.Errorf("cannot fund lp asset %s", asset)
	}
	if !c.Assets.AssetExists(c.Ctx, asset) {
		if err := c.Assets.CreateAsset(c.Ctx, asset, c.AMM.GetModuleAddress(), true, math.OneInt()); err != nil {
			return err
		}
	}
	return c.Assets.MintInto(c.Ctx, asset, who, amount)
}

// Commit persists the working state as a new version and advances the block
// height.
func (c *Chain) Commit() storetypes.CommitID {
	id := c.store.Commit()
	header := c.Ctx.BlockHeader()
	header.Height++
	c.Ctx = c.Ctx.WithBlockHeader(header).WithMultiStore(c.store)
	return id
}

// CheckInvariants runs every registered invariant and reports the first
// broken one.
func (c *Chain) CheckInvariants() (string, bool) {
	return c.invariants.Check(c.Ctx)
}
