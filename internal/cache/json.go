package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// tombstone 標記剛失效的 key：存在期間 GetJSON 視為未命中，FillJSON 也無法回填
const tombstone = "\x00invalidated"

// GetJSON 讀取 key 並解碼到 dst；key 不存在或已失效時回傳 (false, nil)
func GetJSON(ctx context.Context, c Cache, key string, dst any) (bool, error) {
	raw, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if string(raw) == tombstone {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, err
	}
	return true, nil
}

// FillJSON 僅在 key 不存在時寫入 v 的 JSON（SETNX），回傳是否寫入
func FillJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) (bool, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return false, err
	}
	return c.SetNX(ctx, key, raw, ttl).Result()
}

// Invalidate 在 hold 期間以 tombstone 佔住 keys，
// 失效前已開始的讀取因此無法把舊資料回填。hold <= 0 時直接刪除。
func Invalidate(ctx context.Context, c Cache, hold time.Duration, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if hold <= 0 {
		return c.Del(ctx, keys...).Err()
	}
	var errs []error
	for _, key := range keys {
		if err := c.Set(ctx, key, tombstone, hold).Err(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}
