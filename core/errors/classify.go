package errors

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ClassifyHTTP maps an HTTP status code and headers from a collaborator
// response to a tiered error. A 429 (or 503 with Retry-After) becomes a
// rate-limit error carrying the suggested delay; everything else is a plain
// provider failure.
func ClassifyHTTP(statusCode int, header http.Header, cause error) *TieredError {
	switch {
	case statusCode == http.StatusTooManyRequests:
		return RateLimited("provider rate limited", cause).
			WithRetryAfter(parseRetryAfter(header))
	case statusCode == http.StatusServiceUnavailable && header.Get("Retry-After") != "":
		return RateLimited("provider overloaded", cause).
			WithStatusCode(statusCode).
			WithRetryAfter(parseRetryAfter(header))
	default:
		return Provider("provider request failed", cause).WithStatusCode(statusCode)
	}
}

// ClassifyMessage inspects an opaque SDK error string for rate-limit
// signatures. Providers that do not expose status codes still embed "429",
// "quota" or "rate" in their error text.
func ClassifyMessage(err error) *TieredError {
	if err == nil {
		return nil
	}

	var te *TieredError
	if errors.As(err, &te) {
		return te
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "429") && (strings.Contains(msg, "quota") || strings.Contains(msg, "rate")) {
		return RateLimited("provider rate limited", err)
	}
	if strings.Contains(msg, "resource_exhausted") || strings.Contains(msg, "rate limit") {
		return RateLimited("provider rate limited", err)
	}

	return Provider("provider call failed", err)
}

func parseRetryAfter(header http.Header) time.Duration {
	value := header.Get("Retry-After")
	if value == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}
