package redis_limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// Limiter 并发槽位限制器
type Limiter interface {
	Acquire(ctx context.Context, key string) error
	Release(ctx context.Context, key string)
	GetCurrent(ctx context.Context, key string) (int, error)
}

// ErrLimitReached 槽位已满
type ErrLimitReached struct {
	Max int
}

func (e *ErrLimitReached) Error() string {
	return fmt.Sprintf("并发限制已达到上限: %d", e.Max)
}

// acquireScript 当前值小于上限时加一并续期，返回新值；否则返回当前值+1 表示失败
var acquireScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if current == false then
	current = 0
else
	current = tonumber(current)
end

if current >= tonumber(ARGV[1]) then
	return current + 1
end

local newCount = redis.call('INCR', KEYS[1])
redis.call('EXPIRE', KEYS[1], tonumber(ARGV[2]))
return newCount`)

// releaseScript 减一，归零时删除 key
var releaseScript = redis.NewScript(`
local count = redis.call('DECR', KEYS[1])
if tonumber(count) <= 0 then
	redis.call('DEL', KEYS[1])
	return 0
end
redis.call('EXPIRE', KEYS[1], tonumber(ARGV[1]))
return count`)

// RedisLimiter 基于Redis的并发限制器，多个服务实例共享同一组槽位
type RedisLimiter struct {
	client        *redis.Client
	maxConcurrent int
	keyPrefix     string
	ttl           time.Duration
	logger        *logrus.Logger
}

// NewRedisLimiter 创建基于Redis的并发限制器
func NewRedisLimiter(client *redis.Client, maxConcurrent int, keyPrefix string, ttl time.Duration, logger *logrus.Logger) *RedisLimiter {
	return &RedisLimiter{
		client:        client,
		maxConcurrent: maxConcurrent,
		keyPrefix:     keyPrefix,
		ttl:           ttl,
		logger:        logger,
	}
}

// Acquire 获取并发槽位
func (rl *RedisLimiter) Acquire(ctx context.Context, key string) error {
	redisKey := rl.keyPrefix + key

	result, err := acquireScript.Run(ctx, rl.client, []string{redisKey}, rl.maxConcurrent, int(rl.ttl.Seconds())).Int()
	if err != nil {
		return fmt.Errorf("执行Lua脚本失败: %w", err)
	}

	entry := rl.logger.WithFields(logrus.Fields{
		"key":     key,
		"current": result - 1,
		"max":     rl.maxConcurrent,
	})
	if result > rl.maxConcurrent {
		entry.Warn("[RedisLimiter] 槽位已满")
		return &ErrLimitReached{Max: rl.maxConcurrent}
	}

	entry.Debug("[RedisLimiter] 成功获取槽位")
	return nil
}

// Release 释放并发槽位
func (rl *RedisLimiter) Release(ctx context.Context, key string) {
	redisKey := rl.keyPrefix + key

	remaining, err := releaseScript.Run(ctx, rl.client, []string{redisKey}, int(rl.ttl.Seconds())).Int()
	if err != nil {
		rl.logger.WithError(err).Error("[RedisLimiter] 执行Lua脚本失败")
		return
	}
	rl.logger.WithFields(logrus.Fields{"key": key, "remaining": remaining}).Debug("[RedisLimiter] 释放槽位")
}

// GetCurrent 获取当前并发数
func (rl *RedisLimiter) GetCurrent(ctx context.Context, key string) (int, error) {
	current, err := rl.client.Get(ctx, rl.keyPrefix+key).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("获取当前并发数失败: %w", err)
	}
	return current, nil
}
