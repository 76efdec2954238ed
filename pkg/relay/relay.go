package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/goran-ethernal/SolanaRelay/internal/common"
	"github.com/goran-ethernal/SolanaRelay/internal/logger"
	"github.com/goran-ethernal/SolanaRelay/pkg/config"
	"github.com/goran-ethernal/SolanaRelay/pkg/moralis"
)

const (
	// UpstreamNetwork is the only network name the gateway is called with.
	UpstreamNetwork = "mainnet"

	// pumpSuffix is stripped from identifiers copied from pump.fun links.
	pumpSuffix = "pump"

	// apiKeyProbeAddress is the wrapped SOL mint, used to check the API key.
	apiKeyProbeAddress = "So11111111111111111111111111111111111111112"
)

// Networks lists the accepted values of the network path parameter (compared lowercased).
var Networks = []string{"mainnet", "solana"}

// Relay validates inbound requests, forwards them to the gateway and maps the answer.
// It holds no mutable state and is safe for concurrent use.
type Relay struct {
	client      moralis.Client
	apiKeyIsSet bool
	now         func() time.Time
	log         *logger.Logger
}

// Option customizes a Relay.
type Option func(*Relay)

// WithClock overrides the time source used for OHLCV windows.
func WithClock(now func() time.Time) Option {
	return func(r *Relay) {
		r.now = now
	}
}

// New creates a relay that calls the gateway through client.
// cfg is copied; later changes to it have no effect.
func New(cfg config.MoralisConfig, client moralis.Client, log *logger.Logger, opts ...Option) *Relay {
	r := &Relay{
		client:      client,
		apiKeyIsSet: strings.TrimSpace(cfg.APIKey) != "",
		now:         time.Now,
		log:         log,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// APIKeyConfigured reports whether an upstream API key was provided.
func (r *Relay) APIKeyConfigured() bool {
	return r.apiKeyIsSet
}

// ValidateNetwork checks network against Networks and returns the upstream network name.
func ValidateNetwork(network string) (string, error) {
	if !slices.Contains(Networks, strings.ToLower(network)) {
		return "", NewInvalidArgumentError("unsupported network %q: must be one of %s",
			network, strings.Join(Networks, ", "))
	}

	return UpstreamNetwork, nil
}

// NormalizeIdentifier strips a trailing "pump" (any case) from an address.
func NormalizeIdentifier(identifier string) string {
	if len(identifier) >= len(pumpSuffix) &&
		strings.EqualFold(identifier[len(identifier)-len(pumpSuffix):], pumpSuffix) {
		return identifier[:len(identifier)-len(pumpSuffix)]
	}

	return identifier
}

// BuildRequest validates the inbound values for route and returns the upstream request.
// It never touches the network.
func (r *Relay) BuildRequest(route Route, network, identifier string, query url.Values) (moralis.Request, error) {
	upstreamNetwork, err := ValidateNetwork(network)
	if err != nil {
		return moralis.Request{}, err
	}

	id := NormalizeIdentifier(identifier)
	if id == "" {
		return moralis.Request{}, NewInvalidArgumentError("%s must not be empty", route.IdentifierParam)
	}

	now := r.now()
	upstreamQuery := url.Values{}
	for _, p := range route.Params {
		if err := p.Apply(query.Get(p.Name), now, upstreamQuery); err != nil {
			return moralis.Request{}, err
		}
	}

	return moralis.Request{
		Operation: route.Name,
		Path:      route.BuildUpstreamPath(upstreamNetwork, id),
		Query:     upstreamQuery,
	}, nil
}

// Handle relays one request for route. On success it returns the upstream JSON body
// unchanged; otherwise the error is a *Error.
func (r *Relay) Handle(ctx context.Context, route Route, network, identifier string,
	query url.Values) (json.RawMessage, error) {
	req, err := r.BuildRequest(route, network, identifier, query)
	if err != nil {
		return nil, err
	}

	if !r.apiKeyIsSet {
		return nil, NewConfigurationError("upstream API key is not configured (set MORALIS_API_KEY)")
	}

	resp, err := r.client.Get(ctx, req)
	if err != nil {
		r.log.Warnw("upstream unavailable", "route", route.Name, "error", err)
		return nil, NewUpstreamUnavailableError(err)
	}

	body, err := mapResponse(resp)
	if err != nil {
		r.log.Debugw("upstream returned an error", "route", route.Name, "status", resp.StatusCode, "error", err)
		return nil, err
	}

	return body, nil
}

// CheckAPIKey performs one fixed upstream call to verify that the API key is accepted.
func (r *Relay) CheckAPIKey(ctx context.Context) error {
	_, err := r.Handle(ctx, RouteTokenInfo, UpstreamNetwork, apiKeyProbeAddress, nil)
	return err
}

// mapResponse turns an upstream response into a body or a typed error.
func mapResponse(resp *moralis.Response) (json.RawMessage, error) {
	message := upstreamMessage(resp)

	switch resp.StatusCode {
	case http.StatusOK:
		if !json.Valid(resp.Body) {
			return nil, &Error{
				Kind:       KindUpstreamError,
				StatusCode: http.StatusBadGateway,
				Message:    "upstream returned a non-JSON body: " + message,
			}
		}
		return json.RawMessage(resp.Body), nil
	case http.StatusBadRequest:
		return nil, &Error{Kind: KindInvalidArgument, StatusCode: http.StatusBadRequest, Message: message}
	case http.StatusUnauthorized:
		return nil, &Error{Kind: KindUnauthorized, StatusCode: http.StatusUnauthorized, Message: message}
	case http.StatusNotFound:
		return nil, &Error{Kind: KindNotFound, StatusCode: http.StatusNotFound, Message: message}
	}

	status := resp.StatusCode
	if status < http.StatusBadRequest || status > 599 {
		// a non-error status without a body we can relay
		status = http.StatusBadGateway
	}

	return nil, &Error{
		Kind:       KindUpstreamError,
		StatusCode: status,
		Message:    fmt.Sprintf("upstream returned status %d: %s", resp.StatusCode, message),
	}
}

func upstreamMessage(resp *moralis.Response) string {
	return common.TruncateString(strings.TrimSpace(string(resp.Body)), maxUpstreamMessageChars)
}
