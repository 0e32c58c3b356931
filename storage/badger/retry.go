package badger

import (
	"context"
	"log/slog"
	"time"

	"github.com/poiesic/locate/storage"
)

// RetryWithBackoff retries operation until it succeeds, maxAttempts is
// reached or ctx is done. The delay starts at baseDelay and doubles after
// every failed attempt. The last error is returned when all attempts fail.
func RetryWithBackoff(ctx context.Context, operation func() error, maxAttempts int, baseDelay time.Duration) error {
	if maxAttempts <= 0 {
		return storage.ErrInvalidMaxAttempts
	}

	var lastErr error
	delay := baseDelay
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = operation()
		if lastErr == nil {
			if attempt > 1 {
				slog.Debug("operation succeeded after retry", "attempt", attempt)
			}
			return nil
		}
		slog.Debug("operation failed", "attempt", attempt, "maxAttempts", maxAttempts, "err", lastErr)

		if attempt == maxAttempts {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}

	return lastErr
}

// OpenBackendWithRetry opens the database like OpenBackend, retrying while
// another process still holds the directory lock.
func OpenBackendWithRetry(ctx context.Context, filePath string, inMemory bool, logger *slog.Logger,
	maxAttempts int, baseDelay time.Duration) (*Backend, error) {
	var backend *Backend
	err := RetryWithBackoff(ctx, func() error {
		var err error
		backend, err = OpenBackend(filePath, inMemory, logger)
		return err
	}, maxAttempts, baseDelay)
	if err != nil {
		return nil, err
	}
	return backend, nil
}
