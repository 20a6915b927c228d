package indexer

// Upstream wire shapes. The indexer is inconsistent about numeric encoding
// (sometimes JSON numbers, sometimes quoted strings), so numeric-ish fields
// are declared as `any` and coerced by the normalize package.

// FeeEntry is one raw fee observation from /historical/fees.
type FeeEntry struct {
	Timestamp      int64  `json:"timestamp"`
	Date           string `json:"date"`
	QuoteTokenFees any    `json:"quoteTokenFees"`
	GovTokenFees   any    `json:"govTokenFees"`
	FeesUSD        any    `json:"feesUSD"`
	Volume0        any    `json:"volume0"`
	Volume1        any    `json:"volume1"`
	VolumeUSD      any    `json:"volumeUSD"`
}

// FeeSummary carries aggregate totals for the requested window.
type FeeSummary struct {
	TotalFeesUSD any `json:"totalFeesUSD"`
}

// FeeMetadata echoes the window the indexer actually answered for.
type FeeMetadata struct {
	RequestedStartDate string `json:"requestedStartDate"`
	RequestedEndDate   string `json:"requestedEndDate"`
}

// FeeHistoryResponse is the raw /historical/fees payload.
type FeeHistoryResponse struct {
	Data         []FeeEntry  `json:"data"`
	Summary      FeeSummary  `json:"summary"`
	Metadata     FeeMetadata `json:"metadata"`
	Token0Symbol string      `json:"token0Symbol"`
	Token1Symbol string      `json:"token1Symbol"`
}

// PriceImpactEntry holds modeled impacts keyed by trade-size label.
type PriceImpactEntry struct {
	Timestamp   int64          `json:"timestamp"`
	BuyImpacts  map[string]any `json:"buyImpacts"`
	SellImpacts map[string]any `json:"sellImpacts"`
}

// PriceImpactResponse is the raw /historical/price-impact payload.
type PriceImpactResponse struct {
	Data []PriceImpactEntry `json:"data"`
}

// InventoryEntry is one raw composition observation from /live/inventory.
type InventoryEntry struct {
	Timestamp     int64 `json:"timestamp"`
	Token0Amount  any   `json:"token0Amount"`
	Token1Amount  any   `json:"token1Amount"`
	Token0Ratio   any   `json:"token0Ratio"`
	Token1Ratio   any   `json:"token1Ratio"`
	TotalValueUSD any   `json:"totalValueUSD"`
}

// InventoryResponse is the raw /live/inventory payload.
type InventoryResponse struct {
	Data []InventoryEntry `json:"data"`
}

// VaultBalanceEntry is one raw balance observation from /historical/vault-balance.
type VaultBalanceEntry struct {
	Timestamp     int64  `json:"timestamp"`
	Date          string `json:"date"`
	Token0Balance any    `json:"token0Balance"`
	Token1Balance any    `json:"token1Balance"`
	TotalUSD      any    `json:"totalUSD"`
}

// VaultBalanceResponse is the raw /historical/vault-balance payload.
type VaultBalanceResponse struct {
	Data []VaultBalanceEntry `json:"data"`
}

// VaultEntry is one raw vault record from /vaults/list.
type VaultEntry struct {
	ChainID      int64  `json:"chainId"`
	Address      string `json:"vaultAddress"`
	Name         string `json:"name"`
	Token0Symbol string `json:"token0Symbol"`
	Token1Symbol string `json:"token1Symbol"`
}

// VaultListResponse is the raw /vaults/list payload.
type VaultListResponse struct {
	Vaults []VaultEntry `json:"vaults"`
}
