package indexer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/vault-analytics-api/internal/config"
	"github.com/yourorg/vault-analytics-api/internal/model"
)

var testVault = model.Vault{ChainID: 1, Address: "0x1f98431c8ad98523631ae4a59f267346ea31f984"}

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	upstream := httptest.NewServer(handler)
	t.Cleanup(upstream.Close)

	return New(config.Config{
		IndexerBaseURL:   upstream.URL,
		RequestTimeout:   5 * time.Second,
		UpstreamRetryMax: 0,
	})
}

func TestFeeHistory_ForwardsIdentifiersAndWindow(t *testing.T) {
	var gotQuery map[string]string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/historical/fees", r.URL.Path)
		gotQuery = map[string]string{
			"chainId":      r.URL.Query().Get("chainId"),
			"vaultAddress": r.URL.Query().Get("vaultAddress"),
			"startDate":    r.URL.Query().Get("startDate"),
			"endDate":      r.URL.Query().Get("endDate"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"timestamp":1,"quoteTokenFees":100}]}`))
	}))

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	resp, err := client.FeeHistory(context.Background(), testVault, start, end)
	require.NoError(t, err)

	assert.Equal(t, "1", gotQuery["chainId"])
	assert.Equal(t, testVault.Address, gotQuery["vaultAddress"])
	assert.Equal(t, "2025-03-01T00:00:00Z", gotQuery["startDate"])
	assert.Equal(t, "2025-06-01T00:00:00Z", gotQuery["endDate"])
	require.Len(t, resp.Data, 1)
	assert.Equal(t, float64(100), resp.Data[0].QuoteTokenFees)
}

func TestGet_UpstreamErrorWithJSONDetails(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"reason":"vault not indexed"}`))
	}))

	_, err := client.FeeHistory(context.Background(), testVault, time.Now().Add(-time.Hour), time.Now())
	require.Error(t, err)

	upErr, ok := err.(*UpstreamError)
	require.True(t, ok, "non-2xx must surface as *UpstreamError")
	assert.Equal(t, http.StatusNotFound, upErr.StatusCode)
	assert.Equal(t, "404 Not Found", upErr.Status)
	assert.Equal(t, map[string]any{"reason": "vault not indexed"}, upErr.Details)
	assert.Contains(t, upErr.URL, "/historical/fees")
}

func TestGet_UpstreamErrorWithRawTextDetails(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))

	_, err := client.VaultList(context.Background(), 0)
	require.Error(t, err)

	upErr, ok := err.(*UpstreamError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, upErr.StatusCode)
	assert.Equal(t, "upstream exploded", upErr.Details)
}

func TestVaultSymbols(t *testing.T) {
	listBody := `{"vaults":[
		{"chainId":1,"vaultAddress":"0x1F98431C8AD98523631AE4A59F267346EA31F984","token0Symbol":"USDC","token1Symbol":"WETH"},
		{"chainId":137,"vaultAddress":"0x1f98431c8ad98523631ae4a59f267346ea31f984","token0Symbol":"WMATIC","token1Symbol":"WETH"}
	]}`

	t.Run("found with case-insensitive address match", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/vaults/list", r.URL.Path)
			w.Write([]byte(listBody))
		}))

		sym := client.VaultSymbols(context.Background(), testVault)
		assert.True(t, sym.Found)
		assert.Equal(t, "USDC", sym.Token0)
		assert.Equal(t, "WETH", sym.Token1)
	})

	t.Run("absent vault", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"vaults":[]}`))
		}))

		sym := client.VaultSymbols(context.Background(), testVault)
		assert.False(t, sym.Found)
		assert.Empty(t, sym.Token0)
	})

	t.Run("upstream failure is swallowed", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		sym := client.VaultSymbols(context.Background(), testVault)
		assert.False(t, sym.Found)
	})
}

func TestVaultList_ChainFilter(t *testing.T) {
	var gotChainID string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotChainID = r.URL.Query().Get("chainId")
		w.Write([]byte(`{"vaults":[]}`))
	}))

	_, err := client.VaultList(context.Background(), 42161)
	require.NoError(t, err)
	assert.Equal(t, "42161", gotChainID)

	_, err = client.VaultList(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, gotChainID, "chainId of zero must not be forwarded")
}
