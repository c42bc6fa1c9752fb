// Package config 讀取服務設定：預設值 → YAML 設定檔（可選）→ 環境變數
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 服務執行期設定
type Config struct {
	Port          string        `yaml:"port"`
	DatabaseURL   string        `yaml:"database_url"`
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
	WorkerCount   int           `yaml:"worker_count"`
	ResumeDir     string        `yaml:"resume_dir"`
	PublicDir     string        `yaml:"public_dir"`
	MaxUploadSize string        `yaml:"max_upload_size"`
	CacheTTL      time.Duration `yaml:"cache_ttl"`
	LogLevel      string        `yaml:"log_level"`
	LogPretty     bool          `yaml:"log_pretty"`
}

// Default 回傳預設設定
func Default() *Config {
	return &Config{
		Port:          "8080",
		RedisDB:       0,
		WorkerCount:   2,
		ResumeDir:     "./public/resumes",
		PublicDir:     "./public",
		MaxUploadSize: "10M",
		CacheTTL:      5 * time.Minute,
		LogLevel:      "info",
	}
}

// Load 依序套用預設值、設定檔與環境變數，最後驗證必填欄位。
// path 不存在時略過設定檔。
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("解析設定檔 %s 失敗: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("讀取設定檔 %s 失敗: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString("PORT", &cfg.Port)
	setString("DATABASE_URL", &cfg.DatabaseURL)
	setString("REDIS_ADDR", &cfg.RedisAddr)
	setString("REDIS_PASSWORD", &cfg.RedisPassword)
	setString("RESUME_DIR", &cfg.ResumeDir)
	setString("PUBLIC_DIR", &cfg.PublicDir)
	setString("MAX_UPLOAD_SIZE", &cfg.MaxUploadSize)
	setString("LOG_LEVEL", &cfg.LogLevel)

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("無效的 REDIS_DB: %v", err)
		}
		cfg.RedisDB = n
	}
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("無效的 WORKER_COUNT: %q", v)
		}
		cfg.WorkerCount = n
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("無效的 CACHE_TTL: %v", err)
		}
		cfg.CacheTTL = d
	}
	if v := os.Getenv("LOG_PRETTY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("無效的 LOG_PRETTY: %v", err)
		}
		cfg.LogPretty = b
	}
	return nil
}

func setString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		*dst = v
	}
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	if c.RedisAddr == "" {
		return fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}
	if c.RedisDB < 0 {
		return fmt.Errorf("無效的 REDIS_DB: %d", c.RedisDB)
	}
	if c.WorkerCount <= 0 {
		return fmt.Errorf("無效的 WORKER_COUNT: %d", c.WorkerCount)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("無效的 CACHE_TTL: %s", c.CacheTTL)
	}
	return nil
}

// Addr 回傳 echo 監聽位址
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
