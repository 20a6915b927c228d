package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/yourorg/vault-analytics-api/internal/indexer"
)

// ErrorEnvelope is the uniform error shape returned for every failure class.
// Upstream-reported failures mirror the upstream status code; local failures
// are 500s.
type ErrorEnvelope struct {
	// Error is a fixed human-readable description of the failed operation
	Error string `json:"error"`

	// Message is the upstream status text, or the local error message
	Message string `json:"message"`

	// Details is the parsed upstream error body when one was returned,
	// or its raw text when it wasn't JSON
	Details any `json:"details,omitempty"`

	// Originally requested identifiers, echoed as received
	ChainID      string `json:"chainId,omitempty"`
	VaultAddress string `json:"vaultAddress,omitempty"`

	// URL is the forwarded upstream URL, when the failure came from upstream
	URL string `json:"url,omitempty"`
}

// writeError sends an error envelope with the given status.
func (s *Server) writeError(w http.ResponseWriter, statusCode int, envelope ErrorEnvelope) {
	logrus.WithFields(logrus.Fields{
		"status":       statusCode,
		"chainId":      envelope.ChainID,
		"vaultAddress": envelope.VaultAddress,
	}).Warn(envelope.Error + ": " + envelope.Message)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(envelope)
}

// writeFetchError maps a failed upstream call onto the envelope. Indexer-
// reported failures keep their status code, status text and details; anything
// else (unreachable host, malformed JSON, request construction) becomes a
// fixed-shape 500.
func (s *Server) writeFetchError(w http.ResponseWriter, fixedMsg string, ids requestIDs, err error) {
	var upErr *indexer.UpstreamError
	if errors.As(err, &upErr) {
		s.metrics.upstreamErrors.WithLabelValues(ids.route).Inc()
		s.writeError(w, upErr.StatusCode, ErrorEnvelope{
			Error:        fixedMsg,
			Message:      upErr.Status,
			Details:      upErr.Details,
			ChainID:      ids.chainID,
			VaultAddress: ids.vaultAddress,
			URL:          upErr.URL,
		})
		return
	}

	message := "Unknown error"
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	s.writeError(w, http.StatusInternalServerError, ErrorEnvelope{
		Error:        fixedMsg,
		Message:      message,
		ChainID:      ids.chainID,
		VaultAddress: ids.vaultAddress,
	})
}

// requestIDs carries the raw inbound identifiers for error reporting.
type requestIDs struct {
	route        string
	chainID      string
	vaultAddress string
}
