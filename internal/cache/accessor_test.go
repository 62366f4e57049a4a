package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testEntity struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// errorStore 模拟基础设施故障的缓存
type errorStore struct {
	err error
}

func (s *errorStore) Get(context.Context, string) (string, error) { return "", s.err }
func (s *errorStore) Set(context.Context, string, string, time.Duration) error {
	return s.err
}
func (s *errorStore) Remove(context.Context, ...string) error { return s.err }

func TestGetOrLoadMissThenHit(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	loads := 0
	load := func(ctx context.Context) (*testEntity, error) {
		loads++
		return &testEntity{ID: 1, Title: "golang"}, nil
	}

	// 第一次未命中，回源并回填
	got, err := GetOrLoad(ctx, store, "Course_1", time.Minute, load)
	assert.NoError(t, err)
	assert.Equal(t, "golang", got.Title)
	assert.Equal(t, 1, loads)

	// 第二次命中缓存，不再回源
	got, err = GetOrLoad(ctx, store, "Course_1", time.Minute, load)
	assert.NoError(t, err)
	assert.Equal(t, "golang", got.Title)
	assert.Equal(t, 1, loads)
}

func TestGetOrLoadRoundTripLossless(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	original := &testEntity{ID: 42, Title: "从缓存和后端读到的值必须一致"}
	load := func(ctx context.Context) (*testEntity, error) {
		return original, nil
	}

	fromBackend, err := GetOrLoad(ctx, store, "Course_42", time.Minute, load)
	assert.NoError(t, err)

	fromCache, err := GetOrLoad(ctx, store, "Course_42", time.Minute, load)
	assert.NoError(t, err)

	assert.Equal(t, fromBackend, fromCache)
}

func TestGetOrLoadDoesNotCacheAbsence(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	loads := 0
	load := func(ctx context.Context) (*testEntity, error) {
		loads++
		return nil, nil
	}

	// 两次读取不存在的 id，应回源两次
	got, err := GetOrLoad(ctx, store, "Course_404", time.Minute, load)
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = GetOrLoad(ctx, store, "Course_404", time.Minute, load)
	assert.NoError(t, err)
	assert.Nil(t, got)

	assert.Equal(t, 2, loads)
	assert.Equal(t, 0, store.Len())
}

func TestGetOrLoadListDoesNotCacheEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	loads := 0
	load := func(ctx context.Context) ([]testEntity, error) {
		loads++
		return []testEntity{}, nil
	}

	values, err := GetOrLoadList(ctx, store, "Course_All", time.Minute, load)
	assert.NoError(t, err)
	assert.Empty(t, values)

	_, err = GetOrLoadList(ctx, store, "Course_All", time.Minute, load)
	assert.NoError(t, err)

	assert.Equal(t, 2, loads)
	assert.Equal(t, 0, store.Len())
}

func TestGetOrLoadListMissThenHit(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	loads := 0
	load := func(ctx context.Context) ([]testEntity, error) {
		loads++
		return []testEntity{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}, nil
	}

	values, err := GetOrLoadList(ctx, store, "Course_All", time.Minute, load)
	assert.NoError(t, err)
	assert.Len(t, values, 2)

	values, err = GetOrLoadList(ctx, store, "Course_All", time.Minute, load)
	assert.NoError(t, err)
	assert.Len(t, values, 2)
	assert.Equal(t, 1, loads)
}

func TestGetOrLoadPropagatesLoaderError(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	backendErr := errors.New("entity store unavailable")
	load := func(ctx context.Context) (*testEntity, error) {
		return nil, backendErr
	}

	_, err := GetOrLoad(ctx, store, "Course_1", time.Minute, load)
	assert.ErrorIs(t, err, backendErr)
	assert.Equal(t, 0, store.Len())
}

func TestGetOrLoadPropagatesInfrastructureError(t *testing.T) {
	ctx := context.Background()
	infraErr := errors.New("connection refused")
	store := &errorStore{err: infraErr}

	loads := 0
	load := func(ctx context.Context) (*testEntity, error) {
		loads++
		return &testEntity{ID: 1}, nil
	}

	// 连接类错误不当作未命中，直接向上传播
	_, err := GetOrLoad(ctx, store, "Course_1", time.Minute, load)
	assert.ErrorIs(t, err, infraErr)
	assert.Equal(t, 0, loads)
}

func TestGetOrLoadRebuildsCorruptEntry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	assert.NoError(t, store.Set(ctx, "Course_1", "{not json", time.Minute))

	load := func(ctx context.Context) (*testEntity, error) {
		return &testEntity{ID: 1, Title: "rebuilt"}, nil
	}

	got, err := GetOrLoad(ctx, store, "Course_1", time.Minute, load)
	assert.NoError(t, err)
	assert.Equal(t, "rebuilt", got.Title)

	// 损坏条目已被正常内容覆盖
	raw, err := store.Get(ctx, "Course_1")
	assert.NoError(t, err)

	var value testEntity
	assert.NoError(t, json.Unmarshal([]byte(raw), &value))
	assert.Equal(t, "rebuilt", value.Title)
}

func TestInvalidateRemovesKeys(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	assert.NoError(t, store.Set(ctx, "Course_1", `{"id":1}`, time.Minute))
	assert.NoError(t, store.Set(ctx, "Course_All", `[{"id":1}]`, time.Minute))

	Invalidate(ctx, store, "Course_1", "Course_All")

	_, err := store.Get(ctx, "Course_1")
	assert.ErrorIs(t, err, ErrMiss)
	_, err = store.Get(ctx, "Course_All")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	assert.NoError(t, store.Set(ctx, "Course_1", "v", 10*time.Millisecond))

	time.Sleep(20 * time.Millisecond)

	_, err := store.Get(ctx, "Course_1")
	assert.ErrorIs(t, err, ErrMiss)
}
