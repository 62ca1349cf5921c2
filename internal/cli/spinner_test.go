package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerBasic(t *testing.T) {
	s := newSpinner("Rendering topology")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	// Stop() cancels the internal context, so Cancelled() cannot tell a
	// plain stop from a parent cancellation - only check it is callable.
	_ = s.Cancelled()
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "Rendering topology")
	s.Start()

	cancel()

	// Give the goroutine time to notice the cancellation
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
}

func TestSpinnerWithTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := newSpinnerWithContext(ctx, "Rendering topology")
	s.Start()

	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context timeout")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner("Rendering topology")
	s.Start()

	// Stopping repeatedly must not panic
	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithError(t *testing.T) {
	s := newSpinner("Rendering topology")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithError("Topology rendering failed")
}
