package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"
)

// LoadFn 回源函数，从实体存储读取单个实体，不存在时返回 (nil, nil)
type LoadFn[T any] func(ctx context.Context) (*T, error)

// LoadListFn 回源函数，从实体存储读取集合
type LoadListFn[T any] func(ctx context.Context) ([]T, error)

// GetOrLoad 单实体 cache-aside 读取
// 命中则反序列化返回，不再访问实体存储；
// 未命中则回源，结果非空才写缓存 —— 不缓存"不存在"，
// 避免已删除或尚未创建的 id 被长期缓存为空。
// 未命中路径没有 single-flight 合并，并发回源写入同值同 key，幂等
func GetOrLoad[T any](ctx context.Context, store Store, key string, ttl time.Duration, load LoadFn[T]) (*T, error) {
	cached, err := store.Get(ctx, key)
	if err == nil {
		var value T
		if jsonErr := json.Unmarshal([]byte(cached), &value); jsonErr == nil {
			return &value, nil
		}
		// 缓存内容损坏，删除后回源
		log.Printf("[cache] key=%s 反序列化失败，回源重建", key)
		if removeErr := store.Remove(ctx, key); removeErr != nil {
			log.Printf("[cache] key=%s 删除损坏条目失败: %v", key, removeErr)
		}
	} else if !errors.Is(err, ErrMiss) {
		// 基础设施错误向上传播，不当作未命中
		return nil, err
	}

	value, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}

	populate(ctx, store, key, value, ttl)
	return value, nil
}

// GetOrLoadList 集合 cache-aside 读取
// 空集合视为"不存在"，不写缓存
func GetOrLoadList[T any](ctx context.Context, store Store, key string, ttl time.Duration, load LoadListFn[T]) ([]T, error) {
	cached, err := store.Get(ctx, key)
	if err == nil {
		var values []T
		if jsonErr := json.Unmarshal([]byte(cached), &values); jsonErr == nil {
			return values, nil
		}
		log.Printf("[cache] key=%s 反序列化失败，回源重建", key)
		if removeErr := store.Remove(ctx, key); removeErr != nil {
			log.Printf("[cache] key=%s 删除损坏条目失败: %v", key, removeErr)
		}
	} else if !errors.Is(err, ErrMiss) {
		return nil, err
	}

	values, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return []T{}, nil
	}

	populate(ctx, store, key, values, ttl)
	return values, nil
}

// populate 回填缓存
// 读取已经成功，回填失败只记日志，不影响本次结果
func populate(ctx context.Context, store Store, key string, value any, ttl time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		log.Printf("[cache] key=%s 序列化失败: %v", key, err)
		return
	}
	if err := store.Set(ctx, key, string(payload), ttl); err != nil {
		log.Printf("[cache] key=%s 写入失败: %v", key, err)
	}
}

// Invalidate 失效指定 key
// 变更在实体存储提交成功后即视为完成，失效失败只记日志，
// 残留脏数据最多存活一个 TTL 窗口
func Invalidate(ctx context.Context, store Store, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := store.Remove(ctx, keys...); err != nil {
		log.Printf("[cache] 失效 keys=%v 失败: %v", keys, err)
	}
}
