package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/fatima3985/InternLinkt/internal/cache"
	"github.com/fatima3985/InternLinkt/internal/logger"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	timeNow = time.Now
	jsonMarshal = json.Marshal
	InternshipCacheTTL = 5 * time.Minute
	logger.Configure(logger.Config{})
}

// fastHash 測試中改用最低成本以加速
func fastHash(t *testing.T) {
	t.Helper()
	bcryptGenerateFromPassword = func(p []byte, _ int) ([]byte, error) {
		return bcrypt.GenerateFromPassword(p, bcrypt.MinCost)
	}
	t.Cleanup(restoreGlobals)
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.Configure(logger.Config{Level: "debug", Output: &buf})
	t.Cleanup(restoreGlobals)
	return &buf
}

// rowSeq 依呼叫順序回傳 rows，並記錄每次的 SQL 與參數
type rowSeq struct {
	rows []pgx.Row
	sqls []string
	args [][]any
}

func (s *rowSeq) next(_ context.Context, sql string, args ...any) pgx.Row {
	s.sqls = append(s.sqls, sql)
	s.args = append(s.args, args)
	r := s.rows[0]
	s.rows = s.rows[1:]
	return r
}

// memCache 以 map 模擬 Redis 的 GET/SET/SETNX/DEL，不處理過期
func memCache() (*cache.FakeCache, map[string]string) {
	data := map[string]string{}
	str := func(v any) string {
		if b, ok := v.([]byte); ok {
			return string(b)
		}
		return v.(string)
	}
	c := &cache.FakeCache{
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			v, ok := data[key]
			if !ok {
				return redis.NewStringResult("", redis.Nil)
			}
			return redis.NewStringResult(v, nil)
		},
		SetFn: func(_ context.Context, key string, v any, _ time.Duration) *redis.StatusCmd {
			data[key] = str(v)
			return redis.NewStatusResult("OK", nil)
		},
		SetNXFn: func(_ context.Context, key string, v any, _ time.Duration) *redis.BoolCmd {
			if _, ok := data[key]; ok {
				return redis.NewBoolResult(false, nil)
			}
			data[key] = str(v)
			return redis.NewBoolResult(true, nil)
		},
		DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			for _, k := range keys {
				delete(data, k)
			}
			return redis.NewIntResult(int64(len(keys)), nil)
		},
	}
	return c, data
}
