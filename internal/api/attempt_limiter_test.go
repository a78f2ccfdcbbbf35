package api

import (
	"testing"
	"time"
)

func TestAttemptLimiterForgetsOldFailures(t *testing.T) {
	t.Parallel()

	limiter := newAttemptLimiter(1, time.Hour)
	now := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)

	limiter.fail("127.0.0.1", now.Add(-2*time.Hour))
	if wait := limiter.blockedFor("127.0.0.1", now); wait != 0 {
		t.Fatalf("expected expired failure to be ignored, blocked for %s", wait)
	}

	limiter.fail("127.0.0.1", now.Add(-30*time.Minute))
	if wait := limiter.blockedFor("127.0.0.1", now); wait != 30*time.Minute {
		t.Fatalf("expected 30m block, got %s", wait)
	}

	limiter.reset("127.0.0.1")
	if wait := limiter.blockedFor("127.0.0.1", now); wait != 0 {
		t.Fatalf("expected reset to clear the block, got %s", wait)
	}
}

func TestAttemptLimiterBlocksUntilOldestCountedFailureExpires(t *testing.T) {
	t.Parallel()

	limiter := newAttemptLimiter(unlockAttemptLimit, unlockAttemptWindow)
	start := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)
	for attempt := 0; attempt < unlockAttemptLimit; attempt++ {
		limiter.fail("10.0.0.1", start.Add(time.Duration(attempt)*time.Minute))
	}

	now := start.Add(5 * time.Minute)
	if wait := limiter.blockedFor("10.0.0.1", now); wait != 10*time.Minute {
		t.Fatalf("expected 10m block, got %s", wait)
	}
	if wait := limiter.blockedFor("10.0.0.2", now); wait != 0 {
		t.Fatalf("expected other client to be unaffected, got %s", wait)
	}
	if wait := limiter.blockedFor("10.0.0.1", start.Add(unlockAttemptWindow+time.Second)); wait != 0 {
		t.Fatalf("expected block to lift once the first failure expires, got %s", wait)
	}
}
