// Package model defines the normalized response contract served to dashboard clients.
package model

// Vault identifies an on-chain liquidity position tracked by the indexer.
// It is immutable and supplied per request via the route path.
type Vault struct {
	// ChainID is the numeric identifier of the blockchain network
	ChainID int64 `json:"chainId"`

	// Address is the vault contract address, 0x-prefixed hex
	Address string `json:"vaultAddress"`
}

// FeeHistoryPoint is a single normalized fee observation.
//
// Upstream names quoteTokenFees/govTokenFees; the contract exposes them as
// fees0/fees1. Numeric fields are coerced to strings so clients never see
// float formatting drift; missing or non-finite upstream values become "0".
type FeeHistoryPoint struct {
	// Timestamp is the Unix timestamp of the observation
	Timestamp int64 `json:"timestamp"`

	// Date is the upstream-provided calendar label for the point
	Date string `json:"date"`

	// Fees0 is the fee amount accrued in token0 (upstream quoteTokenFees)
	Fees0 string `json:"fees0"`

	// Fees1 is the fee amount accrued in token1 (upstream govTokenFees)
	Fees1 string `json:"fees1"`

	// FeesUSD is the USD value of fees accrued at this point
	FeesUSD string `json:"feesUSD"`

	// Optional volume fields, present only when upstream reports them
	Volume0   string `json:"volume0,omitempty"`
	Volume1   string `json:"volume1,omitempty"`
	VolumeUSD string `json:"volumeUSD,omitempty"`
}

// FeeHistory is the normalized fee-history response.
type FeeHistory struct {
	Vault Vault             `json:"vault"`
	Data  []FeeHistoryPoint `json:"data"`

	// TotalFees is the summary USD total reported upstream, "0" when absent
	TotalFees string `json:"totalFees"`

	// Echoed effective query window (RFC3339)
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	// Token symbols, possibly backfilled from the vault list endpoint.
	// Empty when neither source knows them; never a failure.
	Token0Symbol string `json:"token0Symbol"`
	Token1Symbol string `json:"token1Symbol"`

	// AllZeros is set when every point carries zero fees and zero volume
	// and the upstream summary confirms no fee activity
	AllZeros bool `json:"allZeros"`

	// HasNoFees is set when the window contains no fee activity at all,
	// including the empty-data case
	HasNoFees bool `json:"hasNoFees"`

	// TriedExtendedRange is set when the caller supplied neither date bound
	// and the service substituted the extended 90-day window
	TriedExtendedRange bool `json:"triedExtendedRange"`
}

// Trade direction labels for price-impact points
const (
	DirectionBuy  = "buy"
	DirectionSell = "sell"
)

// PriceImpactPoint is one flattened (timestamp, size, direction) observation.
type PriceImpactPoint struct {
	// Timestamp is the Unix timestamp of the modeled quote
	Timestamp int64 `json:"timestamp"`

	// TradeSize is the notional USD order size label from upstream
	TradeSize string `json:"tradeSize"`

	// PriceImpactPercent is the absolute impact fraction, e.g. 0.02 for 2%
	PriceImpactPercent float64 `json:"priceImpactPercent"`

	// PriceImpactBps is PriceImpactPercent scaled by 100, matching the
	// contract consumers already depend on. Note the scale: this is
	// fraction*100, not fraction*10000.
	PriceImpactBps float64 `json:"priceImpactBps"`

	// Direction is "buy" or "sell"
	Direction string `json:"direction"`
}

// PriceImpact is the normalized price-impact response.
type PriceImpact struct {
	Vault     Vault              `json:"vault"`
	TradeSize string             `json:"tradeSize"`
	Data      []PriceImpactPoint `json:"data"`
}

// InventoryPoint is a single observation of a vault's token composition.
type InventoryPoint struct {
	Timestamp int64 `json:"timestamp"`

	// Token amounts, coerced to strings like fee fields
	Token0Amount string `json:"token0Amount"`
	Token1Amount string `json:"token1Amount"`

	// Ratios are fractions of total vault value held in each token
	Token0Ratio float64 `json:"token0Ratio"`
	Token1Ratio float64 `json:"token1Ratio"`

	TotalValueUSD string `json:"totalValueUSD"`
}

// Inventory is the normalized inventory response. When a display timeframe
// was requested the series is resampled to that timeframe's bucket count.
type Inventory struct {
	Vault     Vault            `json:"vault"`
	Timeframe string           `json:"timeframe,omitempty"`
	Data      []InventoryPoint `json:"data"`
}

// VaultBalancePoint is a single normalized balance observation.
type VaultBalancePoint struct {
	Timestamp     int64  `json:"timestamp"`
	Date          string `json:"date"`
	Token0Balance string `json:"token0Balance"`
	Token1Balance string `json:"token1Balance"`
	TotalUSD      string `json:"totalUSD"`
}

// VaultBalance is the normalized vault-balance response.
type VaultBalance struct {
	Vault     Vault               `json:"vault"`
	StartDate string              `json:"startDate"`
	EndDate   string              `json:"endDate"`
	Data      []VaultBalancePoint `json:"data"`
}

// VaultSummary is one entry of the normalized vault list.
type VaultSummary struct {
	ChainID      int64  `json:"chainId"`
	ChainName    string `json:"chainName"`
	Address      string `json:"vaultAddress"`
	Name         string `json:"name,omitempty"`
	Token0Symbol string `json:"token0Symbol"`
	Token1Symbol string `json:"token1Symbol"`
}

// VaultList is the normalized vault-list response.
type VaultList struct {
	Vaults []VaultSummary `json:"vaults"`
}
