// Package keeper implements the amm module keeper.
//
// The amm module runs constant-product pools over pairs of fungible assets.
// Every pool is keyed by an id derived from its canonically ordered asset
// pair, and that id is also the asset id of the pool's LP token.
//
// # Operations
//
// AddLiquidity and RemoveLiquidity move reserves in and out of a pool and
// mint or burn LP tokens. SwapExactInForOut and SwapInForExactOut trade
// against a pool under x * y = k with a fee kept in the input reserve.
// FlashLoan lends custody funds for the duration of a callback.
//
// Each operation runs in a cache context and is written back only when every
// step succeeded, so a failed operation leaves no trace in either the pool
// ledger or the asset ledger.
//
// # Custody
//
// Reserves of all pools are held by the module account. Assets move through
// the AssetKeeper interface, implemented by x/assets.
//
// # Usage
//
//	lp, err := k.AddLiquidity(ctx, provider, "uatom", "upaw", amtAtom, amtPaw)
//	out, err := k.SwapExactInForOut(ctx, trader, "uatom", "upaw", in, minOut)
package keeper
