package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss 表示 key 不存在（或已过期）
// 只有这个错误会触发回源，基础设施错误按后端故障向上传播
var ErrMiss = errors.New("cache: key not found")

// Store 键值缓存能力
// 以接口形式注入，生产环境绑定 Redis，测试环境绑定内存实现
type Store interface {
	// Get 读取 key，不存在时返回 ErrMiss
	Get(ctx context.Context, key string) (string, error)
	// Set 写入 key 并设置过期时间
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Remove 删除一个或多个 key，key 不存在不算错误
	Remove(ctx context.Context, keys ...string) error
}
