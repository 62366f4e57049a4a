package cache

import (
	"context"
	"errors"
	"time"

	pkgdb "terminal-terrace/lms-service/pkg/database"

	"github.com/redis/go-redis/v9"
)

// RedisStore 基于 Redis 的缓存实现
type RedisStore struct {
	redis *pkgdb.RedisClient
}

// NewRedisStore 创建 Redis 缓存实例
func NewRedisStore(redisClient *pkgdb.RedisClient) *RedisStore {
	return &RedisStore{redis: redisClient}
}

// Get 读取 key
// redis.Nil 映射为 ErrMiss，连接类错误原样返回，
// 吞掉基础设施错误会掩盖整体故障
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrMiss
		}
		return "", err
	}
	return value, nil
}

// Set 写入 key 并设置过期时间
func (s *RedisStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return s.redis.Set(ctx, key, value, ttl).Err()
}

// Remove 删除一个或多个 key
func (s *RedisStore) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.redis.Del(ctx, keys...).Err()
}
