package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunSweepsImmediatelyAndOnTick(t *testing.T) {
	var calls int32
	s := &Scheduler{
		Interval: 10 * time.Millisecond,
		Sweep: func() (int, error) {
			atomic.AddInt32(&calls, 1)
			return 1, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for atomic.LoadInt32(&calls) < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 3 sweeps, got %d", atomic.LoadInt32(&calls))
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}

func TestRunContinuesAfterSweepError(t *testing.T) {
	var calls int32
	s := &Scheduler{
		Interval: 10 * time.Millisecond,
		Sweep: func() (int, error) {
			atomic.AddInt32(&calls, 1)
			return 0, errors.New("storage down")
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	deadline := time.After(2 * time.Second)
	for atomic.LoadInt32(&calls) < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected sweeps to continue after error, got %d", atomic.LoadInt32(&calls))
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestIntervalFromEnvDefault(t *testing.T) {
	t.Setenv("SETTLE_INTERVAL_SEC", "")
	if got := IntervalFromEnv(); got != 60*time.Second {
		t.Fatalf("expected default 60s, got %s", got)
	}
	t.Setenv("SETTLE_INTERVAL_SEC", "5")
	if got := IntervalFromEnv(); got != 5*time.Second {
		t.Fatalf("expected 5s, got %s", got)
	}
	t.Setenv("SETTLE_INTERVAL_SEC", "-1")
	if got := IntervalFromEnv(); got != 60*time.Second {
		t.Fatalf("expected default for invalid value, got %s", got)
	}
}
