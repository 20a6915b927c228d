// Package types contains shared type definitions used across multiple packages
package types

// ChainID is the numeric identifier of a blockchain network as used by the
// upstream indexer and in inbound route parameters.
type ChainID int64

// Chain IDs the indexer is known to track
const (
	ChainEthereum  ChainID = 1
	ChainOptimism  ChainID = 10
	ChainBSC       ChainID = 56
	ChainPolygon   ChainID = 137
	ChainBase      ChainID = 8453
	ChainArbitrum  ChainID = 42161
	ChainAvalanche ChainID = 43114
)

// chainNames maps known chain IDs to their display names
var chainNames = map[ChainID]string{
	ChainEthereum:  "ethereum",
	ChainOptimism:  "optimism",
	ChainBSC:       "binance",
	ChainPolygon:   "polygon",
	ChainBase:      "base",
	ChainArbitrum:  "arbitrum",
	ChainAvalanche: "avalanche",
}

// Name returns the display name for a chain ID, or "unknown" for IDs the
// registry has no entry for. Unknown chains are still proxied; the name is
// cosmetic only.
func (c ChainID) Name() string {
	if name, ok := chainNames[c]; ok {
		return name
	}
	return "unknown"
}

// Known reports whether the chain ID has a registry entry.
func (c ChainID) Known() bool {
	_, ok := chainNames[c]
	return ok
}

// KnownChainCount returns the number of chains in the registry.
func KnownChainCount() int {
	return len(chainNames)
}
