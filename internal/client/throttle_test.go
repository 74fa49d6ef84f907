package client

import (
	"context"
	"testing"
	"time"
)

func TestDefaultThrottleConfig(t *testing.T) {
	cfg := DefaultThrottleConfig()
	if cfg.MutationDelay != 2*time.Second {
		t.Errorf("expected 2s default mutation delay, got %v", cfg.MutationDelay)
	}
}

func TestWaitZeroDelayReturnsImmediately(t *testing.T) {
	cfg := ThrottleConfig{MutationDelay: 0}

	start := time.Now()
	if err := cfg.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("zero delay should not block, waited %v", elapsed)
	}
}

func TestWaitHonorsDelay(t *testing.T) {
	cfg := ThrottleConfig{MutationDelay: 20 * time.Millisecond}

	start := time.Now()
	if err := cfg.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("expected to wait at least the configured delay, waited %v", elapsed)
	}
}

func TestWaitCancelledContext(t *testing.T) {
	cfg := ThrottleConfig{MutationDelay: 10 * time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := cfg.Wait(ctx)
	if err == nil {
		t.Fatal("expected context error from cancelled wait")
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("cancelled wait should return promptly, waited %v", elapsed)
	}
}
