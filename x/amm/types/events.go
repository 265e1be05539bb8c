package types

// Event types for the amm module
const (
	EventTypeLiquidityAdded   = "liquidity_added"
	EventTypeLiquidityRemoved = "liquidity_removed"
	EventTypeSwap             = "swap"
	EventTypePriceOracle      = "price_oracle"
	EventTypeFeeUpdated       = "fee_updated"
	EventTypeFlashLoan        = "flash_loan"
	EventTypePoolRemoved      = "pool_removed"
)

// Event attribute keys
const (
	AttributeKeyPoolID    = "pool_id"
	AttributeKeyAccount   = "account"
	AttributeKeyAsset1    = "asset_1"
	AttributeKeyAmount1   = "amount_1"
	AttributeKeyAsset2    = "asset_2"
	AttributeKeyAmount2   = "amount_2"
	AttributeKeyLPAmount  = "lp_amount"
	AttributeKeyAssetIn   = "asset_in"
	AttributeKeyAssetOut  = "asset_out"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeyRate      = "rate"
	AttributeKeyFee       = "fee_bps"
	AttributeKeyAsset     = "asset"
	AttributeKeyAmount    = "amount"
	AttributeKeyFeeAmount = "fee_amount"
)
