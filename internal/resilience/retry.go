// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package resilience

import (
	"context"
	"math/rand"
	"time"
)

// RetryConfig holds retry behavior for one class of operation.
type RetryConfig struct {
	MaxRetries      int           // maximum retry attempts after the first try
	InitialInterval time.Duration // delay before the first retry
	MaxInterval     time.Duration // cap on the backoff delay
	Multiplier      float64       // exponential backoff multiplier
	MaxElapsedTime  time.Duration // total time budget, 0 = unbounded
	Jitter          bool          // add up to 25% random jitter

	// OnRetry, when set, is invoked before each retry attempt.
	OnRetry func(attempt int, err error)
}

// DefaultRetryConfig returns the defaults used for local operations.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:      3,
		InitialInterval: time.Second,
		MaxInterval:     30 * time.Second,
		Multiplier:      2.0,
		MaxElapsedTime:  2 * time.Minute,
		Jitter:          true,
	}
}

// RecognizerRetryConfig returns the short retry budget used around
// per-record recognizer calls. Records should degrade to partial quickly
// rather than stall the worker pool.
func RecognizerRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:      2,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     2 * time.Second,
		Multiplier:      2.0,
		MaxElapsedTime:  10 * time.Second,
		Jitter:          true,
	}
}

// RetryableOperation is an operation that can be retried.
type RetryableOperation func(ctx context.Context) error

// RetryWithBackoff executes operation with exponential backoff. The delay
// before attempt n is InitialInterval * Multiplier^(n-1), capped at
// MaxInterval. Non-retryable errors (per ClassifyError) return immediately.
func RetryWithBackoff(ctx context.Context, config RetryConfig, operation RetryableOperation) error {
	var lastErr error
	start := time.Now()

	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := float64(config.InitialInterval)
			for i := 1; i < attempt; i++ {
				delay *= config.Multiplier
			}
			if config.Jitter {
				delay += delay * 0.25 * rand.Float64()
			}
			capped := time.Duration(delay)
			if capped > config.MaxInterval {
				capped = config.MaxInterval
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(capped):
			}

			if config.OnRetry != nil {
				config.OnRetry(attempt, lastErr)
			}
		}

		if config.MaxElapsedTime > 0 && time.Since(start) > config.MaxElapsedTime {
			return lastErr
		}

		err := operation(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if !ClassifyError(err).IsRetryable() {
			return err
		}
	}

	return lastErr
}

// RetryableFunc is a retryable operation returning a value.
type RetryableFunc[T any] func(ctx context.Context) (T, error)

// RetryWithResult executes fn with retry logic and returns its result.
func RetryWithResult[T any](ctx context.Context, config RetryConfig, fn RetryableFunc[T]) (T, error) {
	var result T
	err := RetryWithBackoff(ctx, config, func(ctx context.Context) error {
		var e error
		result, e = fn(ctx)
		return e
	})
	return result, err
}

// IsRetryable reports whether err should be retried.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	return ClassifyError(err).IsRetryable()
}
