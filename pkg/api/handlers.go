package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/goran-ethernal/SolanaRelay/internal/common"
	"github.com/goran-ethernal/SolanaRelay/internal/logger"
	"github.com/goran-ethernal/SolanaRelay/internal/metrics"
	"github.com/goran-ethernal/SolanaRelay/pkg/relay"
)

const rootMessage = "Moralis Solana relay is running"

// Relayer is the part of *relay.Relay the handlers depend on.
type Relayer interface {
	Handle(ctx context.Context, route relay.Route, network, identifier string, query url.Values) (json.RawMessage, error)
	CheckAPIKey(ctx context.Context) error
	APIKeyConfigured() bool
}

// Handler handles HTTP requests for the API.
type Handler struct {
	relay Relayer
	log   *logger.Logger
	now   func() time.Time
}

// NewHandler creates a new API handler.
func NewHandler(r Relayer, log *logger.Logger) *Handler {
	return &Handler{
		relay: r,
		log:   log,
		now:   time.Now,
	}
}

// Root reports that the relay is up. It never calls the upstream.
// @Summary Service status
// @Description Fixed status message, independent of upstream health and API key configuration
// @Tags Health
// @Produce json
// @Success 200 {object} StatusResponse "Relay is running"
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, StatusResponse{
		Message: rootMessage,
		Version: common.Version,
	})
}

// Health returns the health status of the relay.
// @Summary Health check
// @Description Relay liveness and whether an upstream API key is configured
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Relay health status"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if !h.relay.APIKeyConfigured() {
		status = "degraded"
	}

	respondJSON(w, http.StatusOK, HealthResponse{
		Status:           status,
		Timestamp:        h.now().UTC(),
		Version:          common.Version,
		APIKeyConfigured: h.relay.APIKeyConfigured(),
		Routes:           len(relay.Routes()),
	})
}

// TestAPIKey performs one upstream call to check that the configured API key is accepted.
// @Summary Check the upstream API key
// @Description Fetches wrapped SOL metadata from the gateway and reports the outcome
// @Tags Health
// @Produce json
// @Success 200 {object} APIKeyCheckResponse "API key accepted"
// @Failure 401 {object} ErrorResponse "API key rejected"
// @Failure 500 {object} ErrorResponse "API key missing or upstream unavailable"
// @Router /test-api-key [get]
func (h *Handler) TestAPIKey(w http.ResponseWriter, r *http.Request) {
	if err := h.relay.CheckAPIKey(r.Context()); err != nil {
		h.respondRelayError(w, "test-api-key", err)
		return
	}

	respondJSON(w, http.StatusOK, APIKeyCheckResponse{
		Status:  "ok",
		Message: "API key accepted by the upstream gateway",
	})
}

// RelayRoute returns the handler that relays route to the upstream gateway.
// Every relayed route is served by this one handler; the route table drives the differences.
// Its Swagger entries are written by hand in the docs package.
func (h *Handler) RelayRoute(route relay.Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := h.relay.Handle(
			r.Context(),
			route,
			r.PathValue(relay.PathParamNetwork),
			r.PathValue(route.IdentifierParam),
			r.URL.Query(),
		)
		if err != nil {
			h.respondRelayError(w, route.Name, err)
			return
		}

		respondRawJSON(w, http.StatusOK, body)
	}
}

// respondRelayError maps a relay error onto its status and error body.
func (h *Handler) respondRelayError(w http.ResponseWriter, routeName string, err error) {
	relayErr := relay.AsError(err)
	metrics.RelayErrorInc(routeName, string(relayErr.Kind))

	if relayErr.StatusCode >= http.StatusInternalServerError {
		h.log.Warnw("relay request failed", "route", routeName, "kind", relayErr.Kind, "error", err)
	} else {
		h.log.Debugw("relay request rejected", "route", routeName, "kind", relayErr.Kind, "error", err)
	}

	respondJSON(w, relayErr.StatusCode, ErrorResponse{
		Error:   http.StatusText(relayErr.StatusCode),
		Kind:    string(relayErr.Kind),
		Message: relayErr.Message,
		Code:    relayErr.StatusCode,
	})
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	// Encode JSON first to catch any errors before writing status
	encoded, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	respondRawJSON(w, status, encoded)
}

// respondRawJSON writes an already encoded JSON body.
func respondRawJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Headers already sent, a failed write can only be dropped
	_, _ = w.Write(body)
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}
