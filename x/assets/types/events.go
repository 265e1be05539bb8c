package types

// Event types for the assets module
const (
	EventTypeCreated     = "asset_created"
	EventTypeMinted      = "asset_minted"
	EventTypeBurned      = "asset_burned"
	EventTypeTransferred = "asset_transferred"

	AttributeKeyAsset  = "asset"
	AttributeKeyAdmin  = "admin"
	AttributeKeyFrom   = "from"
	AttributeKeyTo     = "to"
	AttributeKeyAmount = "amount"
)
