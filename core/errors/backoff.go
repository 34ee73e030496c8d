package errors

import (
	"math"
	"time"
)

// RetryPolicy defines the retry behavior applied to rate-limited calls.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int `yaml:"max_attempts"`

	// InitialDelay is the starting backoff duration.
	InitialDelay time.Duration `yaml:"initial_delay"`

	// MaxDelay caps the backoff duration.
	MaxDelay time.Duration `yaml:"max_delay"`

	// Multiplier is the backoff multiplier (default: 2.0).
	Multiplier float64 `yaml:"multiplier"`

	// UseRetryAfter means a provider-suggested delay wins over the schedule.
	UseRetryAfter bool `yaml:"use_retry_after"`
}

// DefaultRetryPolicy returns the policy applied to model and search calls.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:   3,
		InitialDelay:  1 * time.Second,
		MaxDelay:      60 * time.Second,
		Multiplier:    2.0,
		UseRetryAfter: true,
	}
}

// CalculateDelay computes the backoff delay for a given zero-based attempt.
// Formula: delay = initial * (multiplier ^ attempt), capped at MaxDelay.
func CalculateDelay(attempt int, policy RetryPolicy) time.Duration {
	multiplier := policy.Multiplier
	if multiplier <= 0 {
		multiplier = 2.0
	}

	factor := math.Pow(multiplier, float64(attempt))
	delay := time.Duration(float64(policy.InitialDelay) * factor)

	return capDelay(delay, policy.MaxDelay)
}

// DelayFor resolves the delay before the next attempt, preferring the
// provider-suggested value when the policy allows it.
func DelayFor(attempt int, err error, policy RetryPolicy) time.Duration {
	if policy.UseRetryAfter {
		if suggested := RetryAfterOf(err); suggested > 0 {
			return capDelay(suggested, policy.MaxDelay)
		}
	}
	return CalculateDelay(attempt, policy)
}

func capDelay(delay, maxDelay time.Duration) time.Duration {
	if maxDelay > 0 && delay > maxDelay {
		return maxDelay
	}
	return delay
}
