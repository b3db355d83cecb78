package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"dmg-assess/internal/dto"

	"github.com/go-redis/redis/v8"
)

// ProgressStore 导出进度存储
type ProgressStore interface {
	Save(ctx context.Context, p *dto.ExportProgress) error
	Get(ctx context.Context, jobID string) (*dto.ExportProgress, error)
}

// ── 内存实现 ──

type progressEntry struct {
	progress  dto.ExportProgress
	expiresAt time.Time
}

// MemoryProgressStore 进程内进度存储，过期条目在读写时清理
type MemoryProgressStore struct {
	mu      sync.RWMutex
	entries map[string]progressEntry
	ttl     time.Duration
}

// NewMemoryProgressStore 创建内存进度存储
func NewMemoryProgressStore(ttl time.Duration) *MemoryProgressStore {
	return &MemoryProgressStore{
		entries: make(map[string]progressEntry),
		ttl:     ttl,
	}
}

// Save 保存进度快照
func (m *MemoryProgressStore) Save(_ context.Context, p *dto.ExportProgress) error {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, id)
		}
	}
	m.entries[p.JobID] = progressEntry{progress: *p, expiresAt: now.Add(m.ttl)}
	return nil
}

// Get 读取进度快照
func (m *MemoryProgressStore) Get(_ context.Context, jobID string) (*dto.ExportProgress, error) {
	m.mu.RLock()
	e, ok := m.entries[jobID]
	m.mu.RUnlock()

	if !ok || time.Now().After(e.expiresAt) {
		return nil, ErrJobNotFound
	}
	p := e.progress
	return &p, nil
}

// ── Redis 实现 ──

const progressKeyPrefix = "export:progress:"

// RedisProgressStore 进度写入 Redis，多实例部署时任意实例都能查询
type RedisProgressStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisProgressStore 创建Redis进度存储
func NewRedisProgressStore(client *redis.Client, ttl time.Duration) *RedisProgressStore {
	return &RedisProgressStore{client: client, ttl: ttl}
}

// Save 保存进度快照
func (r *RedisProgressStore) Save(ctx context.Context, p *dto.ExportProgress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("序列化导出进度失败: %w", err)
	}
	if err := r.client.Set(ctx, progressKeyPrefix+p.JobID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("保存导出进度失败: %w", err)
	}
	return nil
}

// Get 读取进度快照
func (r *RedisProgressStore) Get(ctx context.Context, jobID string) (*dto.ExportProgress, error) {
	data, err := r.client.Get(ctx, progressKeyPrefix+jobID).Bytes()
	if err == redis.Nil {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("读取导出进度失败: %w", err)
	}

	var p dto.ExportProgress
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("解析导出进度失败: %w", err)
	}
	return &p, nil
}
