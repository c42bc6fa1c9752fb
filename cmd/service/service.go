// @title        InternLinkt API
// @version      1.0
// @description  InternLinkt 實習媒合平台後端 API 文件
// @host         localhost:8080
// @BasePath     /api
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatima3985/InternLinkt/internal/api"
	"github.com/fatima3985/InternLinkt/internal/cache"
	"github.com/fatima3985/InternLinkt/internal/config"
	"github.com/fatima3985/InternLinkt/internal/database"
	"github.com/fatima3985/InternLinkt/internal/logger"
	mw "github.com/fatima3985/InternLinkt/internal/middleware"
	"github.com/fatima3985/InternLinkt/internal/router"
	"github.com/fatima3985/InternLinkt/internal/service"
	"github.com/fatima3985/InternLinkt/internal/storage"
	"github.com/fatima3985/InternLinkt/internal/worker"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/fatima3985/InternLinkt/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// resumePrefix 履歷檔對外的 URL 前綴
const resumePrefix = "/resumes"

var (
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

func configPath() string {
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		return p
	}
	return "config.yaml"
}

func run() error {
	// .env 不存在時沿用既有環境變數
	_ = godotenv.Load()

	cfg, err := config.Load(configPath())
	if err != nil {
		return err
	}
	logger.Configure(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	service.InternshipCacheTTL = cfg.CacheTTL

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	rc, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer rc.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	blobs, err := storage.NewLocal(cfg.ResumeDir, resumePrefix)
	if err != nil {
		return fmt.Errorf("建立履歷目錄失敗: %v", err)
	}

	metrics := mw.NewMetrics()

	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(mw.RequestLogger())
	e.Use(metrics.Middleware())
	e.Use(middleware.BodyLimit(cfg.MaxUploadSize))

	e.GET("/metrics", metrics.Handler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static(blobs.Prefix(), blobs.Dir())
	e.Static("/", cfg.PublicDir)

	router.Setup(e, db, rc, wp, blobs)

	logger.Info().Str("addr", cfg.Addr()).Int("workers", cfg.WorkerCount).Msg("服務啟動")
	return startServer(e, cfg.Addr())
}

func main() {
	if err := run(); err != nil {
		logger.Error().Err(err).Msg("服務終止")
		exitFunc(1)
	}
}
