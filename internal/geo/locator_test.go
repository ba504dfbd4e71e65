package geo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestAcquirePosition_OK(t *testing.T) {
	want := Point{50.46, 30.53}
	loc := LocatorFunc(func(ctx context.Context) (Point, error) {
		return want, nil
	})

	got, err := AcquirePosition(context.Background(), loc, time.Second)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestAcquirePosition_TimeoutWhenLocatorIgnoresContext(t *testing.T) {
	release := make(chan struct{})
	loc := LocatorFunc(func(ctx context.Context) (Point, error) {
		<-release
		return Point{1, 1}, nil
	})

	start := time.Now()
	_, err := AcquirePosition(context.Background(), loc, 20*time.Millisecond)
	close(release)

	if time.Since(start) > time.Second {
		t.Fatalf("acquisition was not bounded by the timeout")
	}

	var lue *LocationUnavailableError
	if !errors.As(err, &lue) {
		t.Fatalf("expected LocationUnavailableError, got %v", err)
	}
	if lue.Reason != ReasonTimeout {
		t.Fatalf("expected timeout reason, got %s", lue.Reason)
	}
	if !errors.Is(err, ErrLocationUnavailable) {
		t.Fatalf("expected errors.Is ErrLocationUnavailable")
	}
}

func TestAcquirePosition_TimeoutWhenLocatorHonoursContext(t *testing.T) {
	loc := LocatorFunc(func(ctx context.Context) (Point, error) {
		<-ctx.Done()
		return Point{}, ctx.Err()
	})

	_, err := AcquirePosition(context.Background(), loc, 10*time.Millisecond)

	var lue *LocationUnavailableError
	if !errors.As(err, &lue) || lue.Reason != ReasonTimeout {
		t.Fatalf("expected timeout, got %v", err)
	}
}

func TestAcquirePosition_PermissionDeniedPassesThrough(t *testing.T) {
	loc := LocatorFunc(func(ctx context.Context) (Point, error) {
		return Point{}, &LocationUnavailableError{Reason: ReasonPermissionDenied}
	})

	_, err := AcquirePosition(context.Background(), loc, time.Second)

	var lue *LocationUnavailableError
	if !errors.As(err, &lue) || lue.Reason != ReasonPermissionDenied {
		t.Fatalf("expected permission denied, got %v", err)
	}
}

func TestAcquirePosition_GenericErrorIsPositionUnavailable(t *testing.T) {
	loc := LocatorFunc(func(ctx context.Context) (Point, error) {
		return Point{}, errors.New("gps offline")
	})

	_, err := AcquirePosition(context.Background(), loc, time.Second)

	var lue *LocationUnavailableError
	if !errors.As(err, &lue) || lue.Reason != ReasonPositionUnavailable {
		t.Fatalf("expected position unavailable, got %v", err)
	}
}

func TestAcquirePosition_InvalidPosition(t *testing.T) {
	loc := LocatorFunc(func(ctx context.Context) (Point, error) {
		return Point{Lat: 123, Lng: 0}, nil
	})

	_, err := AcquirePosition(context.Background(), loc, time.Second)
	if !errors.Is(err, ErrLocationUnavailable) {
		t.Fatalf("expected ErrLocationUnavailable, got %v", err)
	}
}

func TestAcquirePosition_ParentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loc := LocatorFunc(func(ctx context.Context) (Point, error) {
		<-ctx.Done()
		return Point{}, ctx.Err()
	})

	_, err := AcquirePosition(ctx, loc, time.Second)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if errors.Is(err, ErrLocationUnavailable) {
		t.Fatalf("cancellation must not be reported as unavailable location")
	}
}
