package moralis

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/goran-ethernal/SolanaRelay/internal/logger"
	"github.com/goran-ethernal/SolanaRelay/pkg/config"
	pkgmoralis "github.com/goran-ethernal/SolanaRelay/pkg/moralis"
)

// Compile-time check to ensure Client implements pkgmoralis.Client interface.
var _ pkgmoralis.Client = (*Client)(nil)

// Headers sent on every upstream request.
const (
	HeaderAPIKey    = "X-API-Key"
	HeaderAccept    = "Accept"
	HeaderUserAgent = "User-Agent"

	acceptJSON = "application/json"
)

// Client is the HTTP client for the Moralis Solana gateway.
// It implements the pkgmoralis.Client interface.
type Client struct {
	http      *http.Client
	baseURL   string
	apiKey    string
	userAgent string
	log       *logger.Logger
}

// NewClient creates a client for the configured gateway. cfg is expected to have
// defaults applied; an empty API key is sent as-is.
func NewClient(cfg config.MoralisConfig, log *logger.Logger) *Client {
	return &Client{
		http: &http.Client{
			Timeout: cfg.RequestTimeout.Duration,
		},
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		userAgent: cfg.UserAgent,
		log:       log,
	}
}

// Get issues a single GET request against the gateway. It never retries.
func (c *Client) Get(ctx context.Context, r pkgmoralis.Request) (*pkgmoralis.Response, error) {
	endpoint := c.baseURL + r.Path
	if len(r.Query) > 0 {
		endpoint += "?" + r.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", r.Operation, err)
	}
	req.Header.Set(HeaderAccept, acceptJSON)
	req.Header.Set(HeaderAPIKey, c.apiKey)
	req.Header.Set(HeaderUserAgent, c.userAgent)

	UpstreamRequestInc(r.Operation)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		errType := ClassifyTransportError(err)
		UpstreamErrorInc(r.Operation, errType)
		c.log.Warnw("upstream request failed",
			"operation", r.Operation,
			"path", r.Path,
			"error_type", errType,
			"error", err,
		)
		return nil, fmt.Errorf("upstream %s request failed (%s): %w", r.Operation, errType, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		errType := ClassifyTransportError(err)
		UpstreamErrorInc(r.Operation, errType)
		return nil, fmt.Errorf("failed to read upstream %s response: %w", r.Operation, err)
	}

	elapsed := time.Since(start)
	UpstreamDuration(r.Operation, elapsed)
	UpstreamResponseInc(r.Operation, strconv.Itoa(resp.StatusCode))

	c.log.Debugw("upstream response",
		"operation", r.Operation,
		"path", r.Path,
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", elapsed,
	)

	return &pkgmoralis.Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
