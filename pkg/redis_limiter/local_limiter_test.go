package redis_limiter

import (
	"context"
	"errors"
	"testing"
)

func TestLocalLimiter(t *testing.T) {
	ctx := context.Background()
	l := NewLocalLimiter(2)

	if err := l.Acquire(ctx, "export"); err != nil {
		t.Fatalf("第一个槽位: %v", err)
	}
	if err := l.Acquire(ctx, "export"); err != nil {
		t.Fatalf("第二个槽位: %v", err)
	}

	err := l.Acquire(ctx, "export")
	var limit *ErrLimitReached
	if !errors.As(err, &limit) || limit.Max != 2 {
		t.Fatalf("期望 ErrLimitReached，实际 %v", err)
	}

	// 不同 key 互不影响
	if err := l.Acquire(ctx, "other"); err != nil {
		t.Errorf("其他 key 应可获取: %v", err)
	}

	l.Release(ctx, "export")
	if n, _ := l.GetCurrent(ctx, "export"); n != 1 {
		t.Errorf("释放后当前数 = %d, want 1", n)
	}
	if err := l.Acquire(ctx, "export"); err != nil {
		t.Errorf("释放后应可再次获取: %v", err)
	}

	l.Release(ctx, "export")
	l.Release(ctx, "export")
	l.Release(ctx, "export")
	if n, _ := l.GetCurrent(ctx, "export"); n != 0 {
		t.Errorf("多次释放后当前数 = %d, want 0", n)
	}
}
