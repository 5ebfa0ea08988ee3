package device

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrSourceUnavailable marks a reader that has failed for good. Readers are never retried.
var ErrSourceUnavailable = errors.New("source unavailable")

// Reader supplies raw bytes from a vehicle interface link.
type Reader interface {
	// Read blocks until bytes arrive, ctx is done, or timeout elapses. A zero timeout means no
	// deadline; what the deadline bounds is up to the implementation. A read that times out
	// returns no bytes and a nil error. Any other error is permanent.
	Read(ctx context.Context, timeout time.Duration) ([]byte, error)
	Close() error
}

// Unavailable wraps err so that errors.Is(err, ErrSourceUnavailable) holds.
func Unavailable(err error) error {
	if err == nil || errors.Is(err, ErrSourceUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
}
