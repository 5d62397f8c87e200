package shell

import (
	"context"
	"errors"
	"time"
)

const (
	defaultMaxAttempts = 30
	defaultDelay       = 2 * time.Second

	logMsgWaitingForConnection = "waiting for connection"
	logMsgConnectionFailed     = "connection failed, giving up"
	logMsgConnected            = "connection established"
	logAttrAttempt             = "attempt"
	logAttrMaxAttempts         = "max_attempts"
	logAttrError               = "error"
	logAttrDelayMS             = "delay_ms"
)

// RetryableFunc represents a function that can be retried.
type RetryableFunc func(ctx context.Context) error

// RetryMetrics describes how a retried call went.
type RetryMetrics struct {
	// Attempts is the total number of attempts made (1 when the first one succeeded).
	Attempts int

	// TotalDelay is the cumulative time spent waiting between attempts.
	TotalDelay time.Duration

	// LastErrorType describes the final error: "none", "context_canceled", "context_deadline_exceeded" or "other".
	LastErrorType string

	// RetriesExhausted is true when every attempt failed.
	RetriesExhausted bool
}

// retryConfig holds configuration for fixed-delay retry logic.
type retryConfig struct {
	maxAttempts int
	delay       time.Duration
	logger      Logger
}

// RetryOption configures retry behavior using the functional options pattern.
type RetryOption func(*retryConfig) error

// RetryWithFixedDelay executes fn up to maxAttempts times, sleeping a fixed delay between attempts.
//
// Retry Schedule (default): 30 attempts, 2 s apart, ~ 1 minute worst case.
// Use Case: waiting for a database container that is still starting up.
//
// Every error is retried except context cancellation and deadline expiry, which end the loop immediately.
func RetryWithFixedDelay(ctx context.Context, fn RetryableFunc, options ...RetryOption) (RetryMetrics, error) {
	config, err := newRetryConfig(options...)
	if err != nil {
		return RetryMetrics{}, err
	}

	return retry(ctx, fn, config)
}

func newRetryConfig(options ...RetryOption) (*retryConfig, error) {
	config := &retryConfig{
		maxAttempts: defaultMaxAttempts,
		delay:       defaultDelay,
	}

	for _, option := range options {
		if err := option(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}

func retry(ctx context.Context, fn RetryableFunc, config *retryConfig) (RetryMetrics, error) {
	metrics := RetryMetrics{LastErrorType: getErrorType(nil)}

	var lastErr error

	for attempt := 1; attempt <= config.maxAttempts; attempt++ {
		metrics.Attempts = attempt

		lastErr = fn(ctx)
		if lastErr == nil {
			metrics.LastErrorType = getErrorType(nil)
			return metrics, nil
		}

		metrics.LastErrorType = getErrorType(lastErr)

		if !isRetryableError(lastErr) {
			return metrics, lastErr
		}

		if attempt == config.maxAttempts {
			break
		}

		if config.logger != nil {
			config.logger.Info(
				logMsgWaitingForConnection,
				logAttrAttempt, attempt,
				logAttrMaxAttempts, config.maxAttempts,
				logAttrDelayMS, config.delay.Milliseconds(),
				logAttrError, lastErr.Error(),
			)
		}

		select {
		case <-time.After(config.delay):
			metrics.TotalDelay += config.delay
		case <-ctx.Done():
			metrics.LastErrorType = getErrorType(ctx.Err())
			return metrics, ctx.Err()
		}
	}

	metrics.RetriesExhausted = true

	return metrics, lastErr
}

// ConnectWithRetry calls connect until it yields a handle or the retry budget is spent.
// Exhausting the budget returns an error wrapping ErrConnectionFailed and the last connection error.
func ConnectWithRetry[T any](
	ctx context.Context,
	connect func(ctx context.Context) (T, error),
	options ...RetryOption,
) (T, error) {

	var handle T

	config, err := newRetryConfig(options...)
	if err != nil {
		return handle, err
	}

	metrics, err := retry(
		ctx,
		func(ctx context.Context) error {
			h, connectErr := connect(ctx)
			if connectErr != nil {
				return connectErr
			}

			handle = h

			return nil
		},
		config,
	)

	if err != nil {
		if config.logger != nil {
			config.logger.Error(logMsgConnectionFailed, logAttrAttempt, metrics.Attempts, logAttrError, err.Error())
		}

		return handle, errors.Join(ErrConnectionFailed, err)
	}

	if config.logger != nil {
		config.logger.Info(logMsgConnected, logAttrAttempt, metrics.Attempts)
	}

	return handle, nil
}

// isRetryableError determines if an error should be retried.
// Cancellation and deadline errors come from the caller, so retrying them would only waste the budget.
func isRetryableError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	return true
}

// getErrorType extracts a string representation of the error type for logging.
func getErrorType(err error) string {
	if err == nil {
		return "none"
	}
	if errors.Is(err, context.Canceled) {
		return "context_canceled"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "context_deadline_exceeded"
	}

	return "other"
}

// WithMaxAttempts sets the maximum number of attempts.
func WithMaxAttempts(attempts int) RetryOption {
	return func(config *retryConfig) error {
		if attempts <= 0 {
			return ErrInvalidMaxAttempts
		}

		config.maxAttempts = attempts

		return nil
	}
}

// WithDelay sets the fixed delay between attempts.
func WithDelay(delay time.Duration) RetryOption {
	return func(config *retryConfig) error {
		if delay < 0 {
			return ErrNegativeDelay
		}

		config.delay = delay

		return nil
	}
}

// WithRetryLogger reports every failed attempt at info level.
func WithRetryLogger(logger Logger) RetryOption {
	return func(config *retryConfig) error {
		config.logger = logger
		return nil
	}
}
