package pipeline

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy bounds retries of transient remote failures. Stages receive a
// policy at construction so tests can substitute a zero-delay one.
type RetryPolicy struct {
	MaxAttempts     uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

// DefaultSubmitPolicy is the short chunk-submission backoff
func DefaultSubmitPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     3,
		InitialInterval: 2 * time.Second,
		MaxInterval:     10 * time.Second,
		Multiplier:      2.0,
	}
}

// ZeroDelayPolicy retries immediately, for tests
func ZeroDelayPolicy(maxAttempts uint64) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: maxAttempts,
		Multiplier:  1.0,
	}
}

// Do runs op, retrying transient failures per the policy. The context bounds
// the whole sequence including backoff waits.
func (p RetryPolicy) Do(ctx context.Context, op func() error) error {
	attempts := p.MaxAttempts
	if attempts == 0 {
		attempts = 1
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.InitialInterval
	b.MaxInterval = p.MaxInterval
	b.Multiplier = p.Multiplier
	b.RandomizationFactor = 0.5
	b.MaxElapsedTime = 0 // attempt count bounds the sequence, not wall time

	return backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(b, attempts-1), ctx))
}
