package normalize

import (
	"time"

	"github.com/yourorg/vault-analytics-api/internal/indexer"
	"github.com/yourorg/vault-analytics-api/internal/model"
	"github.com/yourorg/vault-analytics-api/internal/types"
)

// Inventory normalizes a raw inventory payload. Amount fields follow the
// same coercion rules as fees; ratios that cannot be represented default to
// zero so the series stays finite.
func Inventory(vault model.Vault, resp *indexer.InventoryResponse) model.Inventory {
	out := model.Inventory{
		Vault: vault,
		Data:  make([]model.InventoryPoint, 0, len(resp.Data)),
	}

	for _, entry := range resp.Data {
		ratio0, _ := coerceFloat(entry.Token0Ratio)
		ratio1, _ := coerceFloat(entry.Token1Ratio)
		out.Data = append(out.Data, model.InventoryPoint{
			Timestamp:     entry.Timestamp,
			Token0Amount:  decimalOrZero(entry.Token0Amount),
			Token1Amount:  decimalOrZero(entry.Token1Amount),
			Token0Ratio:   ratio0,
			Token1Ratio:   ratio1,
			TotalValueUSD: decimalOrZero(entry.TotalValueUSD),
		})
	}
	return out
}

// VaultBalanceHistory normalizes a raw balance payload using the fee
// coercion rules.
func VaultBalanceHistory(vault model.Vault, r DateRange, resp *indexer.VaultBalanceResponse) model.VaultBalance {
	out := model.VaultBalance{
		Vault:     vault,
		StartDate: r.Start.UTC().Format(time.RFC3339),
		EndDate:   r.End.UTC().Format(time.RFC3339),
		Data:      make([]model.VaultBalancePoint, 0, len(resp.Data)),
	}

	for _, entry := range resp.Data {
		out.Data = append(out.Data, model.VaultBalancePoint{
			Timestamp:     entry.Timestamp,
			Date:          entry.Date,
			Token0Balance: decimalOrZero(entry.Token0Balance),
			Token1Balance: decimalOrZero(entry.Token1Balance),
			TotalUSD:      decimalOrZero(entry.TotalUSD),
		})
	}
	return out
}

// VaultList normalizes the raw vault list, resolving chain display names
// from the registry.
func VaultList(resp *indexer.VaultListResponse) model.VaultList {
	out := model.VaultList{
		Vaults: make([]model.VaultSummary, 0, len(resp.Vaults)),
	}

	for _, entry := range resp.Vaults {
		out.Vaults = append(out.Vaults, model.VaultSummary{
			ChainID:      entry.ChainID,
			ChainName:    types.ChainID(entry.ChainID).Name(),
			Address:      entry.Address,
			Name:         entry.Name,
			Token0Symbol: entry.Token0Symbol,
			Token1Symbol: entry.Token1Symbol,
		})
	}
	return out
}
