package pacing_test

import (
	"context"
	"testing"
	"time"

	"blackbeard/internal/pacing"
)

func TestNoopNeverWaits(t *testing.T) {
	p := pacing.Noop()
	if err := p.Wait(context.Background()); err != nil {
		t.Fatalf("wait: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Wait(ctx); err == nil {
		t.Fatal("expected context error after cancel")
	}
}

func TestNonPositiveIntervalIsNoop(t *testing.T) {
	p := pacing.NewLimiter(0)
	start := time.Now()
	for i := 0; i < 100; i++ {
		if err := p.Wait(context.Background()); err != nil {
			t.Fatalf("wait: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("zero-interval pacer waited %v", elapsed)
	}
}

func TestLimiterFirstCallImmediate(t *testing.T) {
	p := pacing.NewLimiter(time.Minute)
	start := time.Now()
	if err := p.Wait(context.Background()); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("first call waited %v", elapsed)
	}
}

func TestLimiterHonorsCancellation(t *testing.T) {
	p := pacing.NewLimiter(time.Hour)
	if err := p.Wait(context.Background()); err != nil {
		t.Fatalf("first wait: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := p.Wait(ctx); err == nil {
		t.Fatal("expected error when the interval outlives the context")
	}
}

func TestLimiterSpacesCalls(t *testing.T) {
	interval := 30 * time.Millisecond
	p := pacing.NewLimiter(interval)

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := p.Wait(context.Background()); err != nil {
			t.Fatalf("wait %d: %v", i, err)
		}
	}
	if elapsed := time.Since(start); elapsed < 2*interval-5*time.Millisecond {
		t.Fatalf("three calls completed in %v, want at least ~%v", elapsed, 2*interval)
	}
}
