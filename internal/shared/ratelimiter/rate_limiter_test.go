package ratelimiter

import (
	"testing"
	"time"
)

// TestNewRateLimiter は指定された設定でRateLimiterが生成されることを検証します。
func TestNewRateLimiter(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(8, time.Minute)

	if rl == nil {
		t.Fatal("expected non-nil rate limiter")
	}
	if rl.limit != 8 {
		t.Errorf("expected limit 8, got %d", rl.limit)
	}
	if rl.interval != time.Minute {
		t.Errorf("expected interval %v, got %v", time.Minute, rl.interval)
	}
	if rl.lastReset.IsZero() {
		t.Error("expected lastReset to be initialized")
	}
}

// TestRateLimiter_WaitIfNeeded_UnderLimit は上限未満の呼び出しでは待機しないことを検証します。
func TestRateLimiter_WaitIfNeeded_UnderLimit(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(5, time.Minute)

	start := time.Now()
	for i := 0; i < 5; i++ {
		rl.WaitIfNeeded()
	}
	elapsed := time.Since(start)

	// 上限ぴったりまでの呼び出しはブロックしないはず
	if elapsed > 100*time.Millisecond {
		t.Errorf("expected no blocking under the limit, waited %v", elapsed)
	}
}

// TestRateLimiter_WaitIfNeeded_BlocksOverLimit は上限を超えた呼び出しがintervalの残り時間だけ待機することを検証します。
func TestRateLimiter_WaitIfNeeded_BlocksOverLimit(t *testing.T) {
	t.Parallel()

	interval := 200 * time.Millisecond
	rl := NewRateLimiter(2, interval)

	rl.WaitIfNeeded()
	rl.WaitIfNeeded()

	start := time.Now()
	rl.WaitIfNeeded() // 3回目はintervalの残りを待つ
	elapsed := time.Since(start)

	if elapsed < 50*time.Millisecond {
		t.Errorf("expected the call over the limit to block, waited only %v", elapsed)
	}
}

// TestRateLimiter_WaitIfNeeded_ResetsAfterInterval はインターバル経過後にカウントがリセットされることを検証します。
func TestRateLimiter_WaitIfNeeded_ResetsAfterInterval(t *testing.T) {
	t.Parallel()

	interval := 50 * time.Millisecond
	rl := NewRateLimiter(2, interval)

	rl.WaitIfNeeded()
	rl.WaitIfNeeded()

	// インターバルを跨いでからの呼び出しはブロックしないはず
	time.Sleep(interval + 10*time.Millisecond)

	start := time.Now()
	rl.WaitIfNeeded()
	elapsed := time.Since(start)

	if elapsed > 25*time.Millisecond {
		t.Errorf("expected no blocking after interval reset, waited %v", elapsed)
	}
}
