package moralis

import (
	"context"
	"errors"
	"net"
	"syscall"
)

// Transport error categories used as metric labels.
const (
	ErrTypeTimeout           = "timeout"
	ErrTypeConnectionRefused = "connection_refused"
	ErrTypeConnectionReset   = "connection_reset"
	ErrTypeDNS               = "dns"
	ErrTypeCanceled          = "canceled"
	ErrTypeOther             = "other"
)

// ClassifyTransportError maps a failure to reach the gateway onto a small set of categories.
func ClassifyTransportError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.Canceled) {
		return ErrTypeCanceled
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTypeTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ErrTypeDNS
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return ErrTypeConnectionRefused
	}

	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EPIPE) {
		return ErrTypeConnectionReset
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTypeTimeout
	}

	return ErrTypeOther
}
