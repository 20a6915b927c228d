package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"

	"github.com/yourorg/vault-analytics-api/internal/model"
	"github.com/yourorg/vault-analytics-api/internal/normalize"
	"github.com/yourorg/vault-analytics-api/internal/resample"
	"github.com/yourorg/vault-analytics-api/internal/types"
)

// vaultFromRequest validates the path identifiers. On failure it writes a
// 400 envelope and reports ok=false; upstream is never contacted for a
// request that fails here.
func (s *Server) vaultFromRequest(w http.ResponseWriter, r *http.Request, route string) (model.Vault, requestIDs, bool) {
	vars := mux.Vars(r)
	ids := requestIDs{
		route:        route,
		chainID:      vars["chainId"],
		vaultAddress: vars["vaultAddress"],
	}

	chainID, err := strconv.ParseInt(ids.chainID, 10, 64)
	if err != nil || chainID <= 0 {
		s.writeError(w, http.StatusBadRequest, ErrorEnvelope{
			Error:        "Invalid chain ID",
			Message:      "chainId must be a positive integer",
			ChainID:      ids.chainID,
			VaultAddress: ids.vaultAddress,
		})
		return model.Vault{}, ids, false
	}

	if !common.IsHexAddress(ids.vaultAddress) {
		s.writeError(w, http.StatusBadRequest, ErrorEnvelope{
			Error:        "Invalid vault address",
			Message:      "vaultAddress must be a hex contract address",
			ChainID:      ids.chainID,
			VaultAddress: ids.vaultAddress,
		})
		return model.Vault{}, ids, false
	}

	return model.Vault{ChainID: chainID, Address: ids.vaultAddress}, ids, true
}

// resolveRange derives the effective date window from the query, writing a
// 400 envelope when a supplied bound does not parse.
func (s *Server) resolveRange(w http.ResponseWriter, query url.Values, ids requestIDs) (normalize.DateRange, bool) {
	rng, err := normalize.ResolveDateRange(query.Get("startDate"), query.Get("endDate"), time.Now())
	if err != nil {
		s.writeError(w, http.StatusBadRequest, ErrorEnvelope{
			Error:        "Invalid date range",
			Message:      err.Error(),
			ChainID:      ids.chainID,
			VaultAddress: ids.vaultAddress,
		})
		return normalize.DateRange{}, false
	}
	return rng, true
}

// handleFeeHistory proxies /historical/fees and serves the normalized fee
// series. Token symbols missing from the primary response are backfilled
// best-effort from the vault list.
func (s *Server) handleFeeHistory(w http.ResponseWriter, r *http.Request) {
	vault, ids, ok := s.vaultFromRequest(w, r, "fees")
	if !ok {
		return
	}
	rng, ok := s.resolveRange(w, r.URL.Query(), ids)
	if !ok {
		return
	}

	resp, err := s.indexer.FeeHistory(r.Context(), vault, rng.Start, rng.End)
	if err != nil {
		s.writeFetchError(w, "Failed to fetch fee history", ids, err)
		return
	}

	out := normalize.FeeHistory(vault, rng, resp)
	if out.Token0Symbol == "" && out.Token1Symbol == "" {
		if sym := s.indexer.VaultSymbols(r.Context(), vault); sym.Found {
			out.Token0Symbol = sym.Token0
			out.Token1Symbol = sym.Token1
		}
	}

	s.writeJSON(w, s.cfg.RevalidateHistorical, out)
}

// handlePriceImpact proxies /historical/price-impact and serves the
// flattened impact points.
func (s *Server) handlePriceImpact(w http.ResponseWriter, r *http.Request) {
	vault, ids, ok := s.vaultFromRequest(w, r, "price_impact")
	if !ok {
		return
	}

	tradeSize := r.URL.Query().Get("tradeSize")
	if tradeSize == "" {
		tradeSize = s.cfg.DefaultTradeSize
	}

	resp, err := s.indexer.PriceImpact(r.Context(), vault, tradeSize)
	if err != nil {
		s.writeFetchError(w, "Failed to fetch price impact", ids, err)
		return
	}

	s.writeJSON(w, s.cfg.RevalidateHistorical, normalize.PriceImpact(vault, tradeSize, resp))
}

// handleInventory proxies /live/inventory. An optional timeframe selector
// resamples the series to that timeframe's display bucket count.
func (s *Server) handleInventory(w http.ResponseWriter, r *http.Request) {
	vault, ids, ok := s.vaultFromRequest(w, r, "inventory")
	if !ok {
		return
	}

	tf := resample.Timeframe(r.URL.Query().Get("timeframe"))
	if tf != "" && !tf.Valid() {
		s.writeError(w, http.StatusBadRequest, ErrorEnvelope{
			Error:        "Invalid timeframe",
			Message:      "timeframe must be one of 24h, 1W, 1M",
			ChainID:      ids.chainID,
			VaultAddress: ids.vaultAddress,
		})
		return
	}

	resp, err := s.indexer.Inventory(r.Context(), vault)
	if err != nil {
		s.writeFetchError(w, "Failed to fetch inventory", ids, err)
		return
	}

	out := normalize.Inventory(vault, resp)
	if tf != "" {
		out.Data = resample.Inventory(out.Data, tf)
		out.Timeframe = string(tf)
	}

	s.writeJSON(w, s.cfg.RevalidateLive, out)
}

// handleVaultBalance proxies /historical/vault-balance.
func (s *Server) handleVaultBalance(w http.ResponseWriter, r *http.Request) {
	vault, ids, ok := s.vaultFromRequest(w, r, "balance")
	if !ok {
		return
	}
	rng, ok := s.resolveRange(w, r.URL.Query(), ids)
	if !ok {
		return
	}

	resp, err := s.indexer.VaultBalance(r.Context(), vault, rng.Start, rng.End)
	if err != nil {
		s.writeFetchError(w, "Failed to fetch vault balance", ids, err)
		return
	}

	s.writeJSON(w, s.cfg.RevalidateHistorical, normalize.VaultBalanceHistory(vault, rng, resp))
}

// handleVaultList proxies /vaults/list, optionally filtered to one chain.
func (s *Server) handleVaultList(w http.ResponseWriter, r *http.Request) {
	ids := requestIDs{route: "vault_list", chainID: r.URL.Query().Get("chainId")}

	var chainID int64
	if ids.chainID != "" {
		parsed, err := strconv.ParseInt(ids.chainID, 10, 64)
		if err != nil || parsed <= 0 {
			s.writeError(w, http.StatusBadRequest, ErrorEnvelope{
				Error:   "Invalid chain ID",
				Message: "chainId must be a positive integer",
				ChainID: ids.chainID,
			})
			return
		}
		chainID = parsed
	}

	resp, err := s.indexer.VaultList(r.Context(), chainID)
	if err != nil {
		s.writeFetchError(w, "Failed to fetch vault list", ids, err)
		return
	}

	s.writeJSON(w, s.cfg.RevalidateHistorical, normalize.VaultList(resp))
}

// handleHealth is a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":    "OK",
		"version":   "1.0.0",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleStatus provides detailed service status information
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	upstream := s.cfg.IndexerBaseURL
	if u, err := url.Parse(upstream); err == nil && u.Host != "" {
		upstream = u.Host
	}

	status := map[string]any{
		"status":      "operational",
		"uptime":      time.Since(s.startTime).String(),
		"version":     "1.0.0",
		"upstream":    upstream,
		"knownChains": types.KnownChainCount(),
		"configuration": map[string]any{
			"defaultTradeSize":     s.cfg.DefaultTradeSize,
			"revalidateHistorical": s.cfg.RevalidateHistorical,
			"revalidateLive":       s.cfg.RevalidateLive,
			"rateLimited":          s.limiter != nil,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}
