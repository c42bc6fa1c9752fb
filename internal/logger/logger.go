// Package logger 包裝 zerolog，提供全域的結構化日誌
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config 日誌設定
type Config struct {
	// Level: debug / info / warn / error，其餘一律視為 info
	Level string
	// Pretty 使用 ConsoleWriter 輸出人類可讀格式
	Pretty bool
	// Output 預設為 os.Stdout
	Output io.Writer
}

var defaultLogger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Configure 依設定重建全域 logger
func Configure(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var w io.Writer = cfg.Output
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339}
	}
	defaultLogger = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func Debug() *zerolog.Event { return defaultLogger.Debug() }

func Info() *zerolog.Event { return defaultLogger.Info() }

func Warn() *zerolog.Event { return defaultLogger.Warn() }

func Error() *zerolog.Event { return defaultLogger.Error() }
