package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 定義快取與事件發佈操作介面，由 *redis.Client 直接實作
// ttl <= 0 表示不設過期
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

type FakeCache struct {
	GetFn     func(ctx context.Context, key string) *redis.StringCmd
	SetFn     func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	SetNXFn   func(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	DelFn     func(ctx context.Context, keys ...string) *redis.IntCmd
	PublishFn func(ctx context.Context, channel string, message any) *redis.IntCmd
	PingFn    func(ctx context.Context) *redis.StatusCmd
	CloseFn   func() error
}

// Get 執行 Fake 設定或 panic
func (f *FakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.GetFn != nil {
		return f.GetFn(ctx, key)
	}
	panic("unexpected Get")
}

// Set 執行 Fake 設定或 panic
func (f *FakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.SetFn != nil {
		return f.SetFn(ctx, key, value, expiration)
	}
	panic("unexpected Set")
}

// SetNX 執行 Fake 設定或 panic
func (f *FakeCache) SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd {
	if f.SetNXFn != nil {
		return f.SetNXFn(ctx, key, value, expiration)
	}
	panic("unexpected SetNX")
}

// Del 執行 Fake 設定或 panic
func (f *FakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.DelFn != nil {
		return f.DelFn(ctx, keys...)
	}
	panic("unexpected Del")
}

// Publish 執行 Fake 設定或 panic
func (f *FakeCache) Publish(ctx context.Context, channel string, message any) *redis.IntCmd {
	if f.PublishFn != nil {
		return f.PublishFn(ctx, channel, message)
	}
	panic("unexpected Publish")
}

// Ping 未設定時回傳 PONG
func (f *FakeCache) Ping(ctx context.Context) *redis.StatusCmd {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	return redis.NewStatusResult("PONG", nil)
}

// Close 執行 Fake 設定或 no-op
func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
