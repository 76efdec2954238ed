package api

import "time"

// StatusResponse is returned by the root endpoint.
type StatusResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status           string    `json:"status"`
	Timestamp        time.Time `json:"timestamp"`
	Version          string    `json:"version"`
	APIKeyConfigured bool      `json:"api_key_configured"`
	Routes           int       `json:"routes"`
}

// APIKeyCheckResponse reports the outcome of a successful upstream key probe.
type APIKeyCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
