package geo

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// DefaultLocationTimeout bounds a device position request.
const DefaultLocationTimeout = 10 * time.Second

// ErrLocationUnavailable is matched by every LocationUnavailableError.
var ErrLocationUnavailable = errors.New("location unavailable")

// UnavailableReason explains why a device could not produce a position.
type UnavailableReason string

const (
	ReasonPermissionDenied    UnavailableReason = "permission_denied"
	ReasonPositionUnavailable UnavailableReason = "position_unavailable"
	ReasonTimeout             UnavailableReason = "timeout"
)

// LocationUnavailableError is returned when a position could not be acquired.
// It is retryable and distinct from a position that is out of range.
type LocationUnavailableError struct {
	Reason UnavailableReason
	Err    error
}

func (e *LocationUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("location unavailable (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("location unavailable (%s)", e.Reason)
}

func (e *LocationUnavailableError) Unwrap() error { return e.Err }

func (e *LocationUnavailableError) Is(target error) bool {
	return target == ErrLocationUnavailable
}

// Locator produces the current position of a device.
type Locator interface {
	CurrentPosition(ctx context.Context) (Point, error)
}

// LocatorFunc adapts a function to the Locator interface.
type LocatorFunc func(ctx context.Context) (Point, error)

func (f LocatorFunc) CurrentPosition(ctx context.Context) (Point, error) {
	return f(ctx)
}

// AcquirePosition asks loc for the current position and gives up after
// timeout, even when loc ignores its context. A non-positive timeout selects
// DefaultLocationTimeout.
func AcquirePosition(ctx context.Context, loc Locator, timeout time.Duration) (Point, error) {
	if timeout <= 0 {
		timeout = DefaultLocationTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		p   Point
		err error
	}
	// buffered so the locator goroutine can always finish after we give up
	done := make(chan result, 1)
	go func() {
		p, err := loc.CurrentPosition(ctx)
		done <- result{p, err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return Point{}, classify(res.err)
		}
		if !res.p.Valid() {
			return Point{}, &LocationUnavailableError{
				Reason: ReasonPositionUnavailable,
				Err:    fmt.Errorf("device reported invalid position %v,%v", res.p.Lat, res.p.Lng),
			}
		}
		return res.p, nil
	case <-ctx.Done():
		return Point{}, classify(ctx.Err())
	}
}

func classify(err error) error {
	var lue *LocationUnavailableError
	switch {
	case errors.As(err, &lue):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return &LocationUnavailableError{Reason: ReasonTimeout, Err: err}
	case errors.Is(err, context.Canceled):
		return err
	default:
		return &LocationUnavailableError{Reason: ReasonPositionUnavailable, Err: err}
	}
}
