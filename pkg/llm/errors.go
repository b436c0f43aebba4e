package llm

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a provider failure per the propagation policy: which
// kinds are retryable, which are fatal, and how backoff scales.
type ErrorKind string

// Error kinds.
const (
	KindTransientTransport ErrorKind = "transient_transport"
	KindQuotaExceeded      ErrorKind = "quota_exceeded"
	KindAuthFailure        ErrorKind = "auth_failure"
	KindModelUnavailable   ErrorKind = "model_unavailable"
	KindSchemaError        ErrorKind = "schema_error"
)

// Error is a classified provider error.
type Error struct {
	Kind       ErrorKind
	StatusCode int // 0 when the failure happened below HTTP
	err        error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("llm %s (status %d): %v", e.Kind, e.StatusCode, e.err)
	}
	return fmt.Sprintf("llm %s: %v", e.Kind, e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}

// Retryable reports whether a retry can reasonably succeed. ModelUnavailable
// is retryable within the client's own attempt budget, then surfaces as
// fatal to the caller.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindTransientTransport, KindQuotaExceeded, KindModelUnavailable:
		return true
	default:
		return false
	}
}

func newError(kind ErrorKind, status int, err error) *Error {
	return &Error{Kind: kind, StatusCode: status, err: err}
}

// KindOf extracts the error kind, or "" for unclassified errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsRetryable reports whether err is a classified retryable provider error.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable()
}

// IsAuthFailure reports a credential rejection. Never retried; alerts.
func IsAuthFailure(err error) bool {
	return KindOf(err) == KindAuthFailure
}

// IsQuotaExceeded reports provider throttling; retryable on longer backoff.
func IsQuotaExceeded(err error) bool {
	return KindOf(err) == KindQuotaExceeded
}
