// Package indexer provides the HTTP client for the upstream vault indexer API.
package indexer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/yourorg/vault-analytics-api/internal/config"
	"github.com/yourorg/vault-analytics-api/internal/model"
	"github.com/yourorg/vault-analytics-api/internal/otel"
)

// Endpoint suffixes appended to the configured indexer base URL
const (
	pathHistoricalFees        = "/historical/fees"
	pathHistoricalPriceImpact = "/historical/price-impact"
	pathHistoricalBalance     = "/historical/vault-balance"
	pathLiveInventory         = "/live/inventory"
	pathVaultList             = "/vaults/list"
)

// UpstreamError is a non-2xx response reported by the indexer. It carries
// everything the API layer needs to mirror the failure back to the caller.
type UpstreamError struct {
	// StatusCode is the upstream HTTP status code
	StatusCode int

	// Status is the upstream status text, e.g. "404 Not Found"
	Status string

	// Details is the parsed upstream error body, or the raw text when the
	// body was not valid JSON
	Details any

	// URL is the forwarded upstream URL
	URL string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("indexer returned %s for %s", e.Status, e.URL)
}

// Client is the upstream indexer API client. It performs a single round-trip
// per call; transport retries are disabled unless configured otherwise.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates an indexer client from configuration.
func New(cfg config.Config) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.UpstreamRetryMax
	retryClient.RetryWaitMin = 500 * time.Millisecond
	retryClient.RetryWaitMax = 3 * time.Second
	retryClient.Logger = nil

	httpClient := retryClient.StandardClient()
	httpClient.Timeout = cfg.RequestTimeout

	return &Client{
		baseURL:    cfg.IndexerBaseURL,
		apiKey:     cfg.IndexerAPIKey,
		httpClient: httpClient,
	}
}

// get performs one GET against the indexer and decodes the body into out.
// Non-2xx responses come back as *UpstreamError.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	ctx, span := otel.Tracer().Start(ctx, "indexer.get")
	span.SetAttributes(attribute.String("indexer.path", path))
	defer span.End()

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	logrus.Debugf("Fetching from indexer: %s", fullURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		otel.RecordError(ctx, err)
		return fmt.Errorf("error fetching from indexer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		upErr := &UpstreamError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Details:    parseErrorDetails(body),
			URL:        fullURL,
		}
		otel.RecordError(ctx, upErr)
		return upErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding indexer response: %w", err)
	}
	return nil
}

// parseErrorDetails decodes an upstream error body as JSON, falling back to
// the raw text when it isn't.
func parseErrorDetails(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	var details any
	if err := json.Unmarshal(body, &details); err != nil {
		return string(body)
	}
	return details
}

// vaultQuery builds the identifier query parameters every vault-scoped
// endpoint forwards.
func vaultQuery(vault model.Vault) url.Values {
	q := url.Values{}
	q.Set("chainId", fmt.Sprintf("%d", vault.ChainID))
	q.Set("vaultAddress", vault.Address)
	return q
}

// FeeHistory retrieves raw fee history for a vault over the given window.
func (c *Client) FeeHistory(ctx context.Context, vault model.Vault, start, end time.Time) (*FeeHistoryResponse, error) {
	q := vaultQuery(vault)
	q.Set("startDate", start.UTC().Format(time.RFC3339))
	q.Set("endDate", end.UTC().Format(time.RFC3339))

	var resp FeeHistoryResponse
	if err := c.get(ctx, pathHistoricalFees, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PriceImpact retrieves raw modeled price impact for a vault at a trade size.
func (c *Client) PriceImpact(ctx context.Context, vault model.Vault, tradeSize string) (*PriceImpactResponse, error) {
	q := vaultQuery(vault)
	q.Set("tradeSize", tradeSize)

	var resp PriceImpactResponse
	if err := c.get(ctx, pathHistoricalPriceImpact, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Inventory retrieves the current raw inventory series for a vault.
func (c *Client) Inventory(ctx context.Context, vault model.Vault) (*InventoryResponse, error) {
	var resp InventoryResponse
	if err := c.get(ctx, pathLiveInventory, vaultQuery(vault), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VaultBalance retrieves raw balance history for a vault over the given window.
func (c *Client) VaultBalance(ctx context.Context, vault model.Vault, start, end time.Time) (*VaultBalanceResponse, error) {
	q := vaultQuery(vault)
	q.Set("startDate", start.UTC().Format(time.RFC3339))
	q.Set("endDate", end.UTC().Format(time.RFC3339))

	var resp VaultBalanceResponse
	if err := c.get(ctx, pathHistoricalBalance, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VaultList retrieves the raw vault list, optionally filtered to one chain.
// A chainID of zero requests all chains.
func (c *Client) VaultList(ctx context.Context, chainID int64) (*VaultListResponse, error) {
	q := url.Values{}
	if chainID != 0 {
		q.Set("chainId", fmt.Sprintf("%d", chainID))
	}

	var resp VaultListResponse
	if err := c.get(ctx, pathVaultList, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
