// Package errors implements the tiered error taxonomy shared by every
// collaborator-facing component: validation failures, provider rate limits,
// other provider failures, and orchestration faults.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorTier classifies an error by how it should be handled.
type ErrorTier int

const (
	// TierValidation indicates missing or malformed structured input.
	// Surfaced immediately, never retried.
	TierValidation ErrorTier = iota

	// TierRateLimit indicates rate limiting or quota exhaustion from an
	// external provider. Retried with backoff up to the attempt ceiling.
	TierRateLimit

	// TierProvider indicates any other provider failure (model or search).
	// Not retried; callers may degrade to a generative fallback.
	TierProvider

	// TierOrchestration indicates a fault inside the dispatcher itself.
	// Converted to a manager-tagged error reply at the containment boundary.
	TierOrchestration
)

var tierNames = map[ErrorTier]string{
	TierValidation:    "validation",
	TierRateLimit:     "rate_limit",
	TierProvider:      "provider",
	TierOrchestration: "orchestration",
}

func (t ErrorTier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "unknown"
}

// TieredError wraps an error with its tier and retry metadata.
type TieredError struct {
	Tier       ErrorTier
	Message    string
	Cause      error
	StatusCode int

	// RetryAfter is the provider-suggested delay, if the provider sent one.
	// Zero means no suggestion; the backoff schedule applies instead.
	RetryAfter time.Duration
}

func NewTieredError(tier ErrorTier, message string, cause error) *TieredError {
	return &TieredError{
		Tier:    tier,
		Message: message,
		Cause:   cause,
	}
}

func (e *TieredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Tier, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Tier, e.Message)
}

func (e *TieredError) Unwrap() error {
	return e.Cause
}

// WithStatusCode attaches the originating HTTP status code.
func (e *TieredError) WithStatusCode(code int) *TieredError {
	e.StatusCode = code
	return e
}

// WithRetryAfter attaches a provider-suggested retry delay.
func (e *TieredError) WithRetryAfter(d time.Duration) *TieredError {
	e.RetryAfter = d
	return e
}

// Validation builds a validation-tier error for missing required fields.
func Validation(message string) *TieredError {
	return NewTieredError(TierValidation, message, nil)
}

// RateLimited builds a rate-limit-tier error.
func RateLimited(message string, cause error) *TieredError {
	return NewTieredError(TierRateLimit, message, cause).
		WithStatusCode(http.StatusTooManyRequests)
}

// Provider builds a provider-tier error.
func Provider(message string, cause error) *TieredError {
	return NewTieredError(TierProvider, message, cause)
}

// Orchestration builds an orchestration-tier error.
func Orchestration(message string, cause error) *TieredError {
	return NewTieredError(TierOrchestration, message, cause)
}

// TierOf extracts the tier from an error chain. Unclassified errors are
// treated as provider failures, the no-retry default.
func TierOf(err error) ErrorTier {
	var te *TieredError
	if errors.As(err, &te) {
		return te.Tier
	}
	return TierProvider
}

// RetryAfterOf extracts the provider-suggested delay from an error chain.
func RetryAfterOf(err error) time.Duration {
	var te *TieredError
	if errors.As(err, &te) {
		return te.RetryAfter
	}
	return 0
}

// IsRateLimit reports whether the error chain carries a rate-limit tier.
func IsRateLimit(err error) bool {
	return TierOf(err) == TierRateLimit
}
