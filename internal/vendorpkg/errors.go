package vendor

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrNotConfigured indicates the vendor's credentials are absent. The
// controller skips the vendor without counting an attempt.
var ErrNotConfigured = errors.New("vendor not configured")

// ErrNeedsVision indicates a document is scanned (too little extractable
// text) and the cheap text path must not be used; the controller should
// escalate to a vision-capable adapter instead.
var ErrNeedsVision = errors.New("document appears scanned; needs vision fallback")

// TimeoutError indicates the vendor call exceeded its deadline. Kept
// distinct from UnreachableError so callers can decide whether to escalate
// or surface the failure.
type TimeoutError struct {
	Vendor string
	Err    error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out: %v", e.Vendor, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// UnreachableError indicates the vendor could not be reached or returned a
// server-side failure.
type UnreachableError struct {
	Vendor string
	Err    error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("%s unreachable: %v", e.Vendor, e.Err)
}

func (e *UnreachableError) Unwrap() error { return e.Err }

// InvalidResponseError indicates the vendor responded but the payload could
// not be parsed into the canonical schema.
type InvalidResponseError struct {
	Vendor string
	Err    error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("%s returned an invalid response: %v", e.Vendor, e.Err)
}

func (e *InvalidResponseError) Unwrap() error { return e.Err }

// ClassifyTransportError wraps a transport-level error as a timeout or an
// unreachable error for the given vendor.
func ClassifyTransportError(vendorName string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Vendor: vendorName, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{Vendor: vendorName, Err: err}
	}
	return &UnreachableError{Vendor: vendorName, Err: err}
}
