package indexer

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"

	"github.com/yourorg/vault-analytics-api/internal/model"
)

// SymbolLookup is the explicit optional result of a best-effort symbol
// backfill. Found is false when the lookup failed or matched nothing; the
// symbols are then empty and the caller proceeds without them.
type SymbolLookup struct {
	Token0 string
	Token1 string
	Found  bool
}

// VaultSymbols looks the vault up in the indexer's vault list to recover its
// token symbols. The lookup never fails the caller: any error is logged and
// reported as Found=false.
func (c *Client) VaultSymbols(ctx context.Context, vault model.Vault) SymbolLookup {
	resp, err := c.VaultList(ctx, vault.ChainID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"chainId":      vault.ChainID,
			"vaultAddress": vault.Address,
		}).Debugf("Symbol backfill lookup failed: %v", err)
		return SymbolLookup{}
	}

	want := common.HexToAddress(vault.Address)
	for _, entry := range resp.Vaults {
		if entry.ChainID == vault.ChainID && common.HexToAddress(entry.Address) == want {
			return SymbolLookup{
				Token0: entry.Token0Symbol,
				Token1: entry.Token1Symbol,
				Found:  entry.Token0Symbol != "" || entry.Token1Symbol != "",
			}
		}
	}
	return SymbolLookup{}
}
