package moralis

import (
	"context"
	"net/url"
)

// Request describes one GET against the Moralis Solana gateway.
type Request struct {
	// Operation is a low-cardinality name used for logs and metrics (e.g. "token-info").
	Operation string

	// Path is appended verbatim to the configured base URL and must already be escaped.
	Path string

	// Query holds the query parameters to forward; nil or empty sends none.
	Query url.Values
}

// Response is the raw upstream answer. Any status code is returned without interpretation.
type Response struct {
	StatusCode int
	Body       []byte
}

// Client defines the interface for talking to the upstream gateway.
// This abstraction allows for easier testing and alternative implementations.
type Client interface {
	// Get issues a single GET request. A non-nil error means no HTTP response was received.
	Get(ctx context.Context, req Request) (*Response, error)
}
