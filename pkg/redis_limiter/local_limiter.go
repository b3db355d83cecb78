package redis_limiter

import (
	"context"
	"sync"
)

// LocalLimiter 进程内的并发限制器，未配置Redis时使用
type LocalLimiter struct {
	mu            sync.Mutex
	maxConcurrent int
	current       map[string]int
}

// NewLocalLimiter 创建进程内并发限制器
func NewLocalLimiter(maxConcurrent int) *LocalLimiter {
	return &LocalLimiter{
		maxConcurrent: maxConcurrent,
		current:       make(map[string]int),
	}
}

// Acquire 获取并发槽位，已满时立即返回 ErrLimitReached
func (l *LocalLimiter) Acquire(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current[key] >= l.maxConcurrent {
		return &ErrLimitReached{Max: l.maxConcurrent}
	}
	l.current[key]++
	return nil
}

// Release 释放并发槽位
func (l *LocalLimiter) Release(_ context.Context, key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current[key] <= 1 {
		delete(l.current, key)
		return
	}
	l.current[key]--
}

// GetCurrent 获取当前并发数
func (l *LocalLimiter) GetCurrent(_ context.Context, key string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current[key], nil
}
