package main

// @title           Shelfshare Rentals API
// @version         1.0
// @description     Book rental marketplace: catalog search, library inventory, wallets and rentals.

// @contact.name   Sina Niyavarzi
// @contact.email  sinaniya@gmail.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/internal/config"
	"github.com/snnyvrz/shelfshare/internal/db"
	docs "github.com/snnyvrz/shelfshare/internal/docs"
	"github.com/snnyvrz/shelfshare/internal/handler"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const appVersion = "0.2.0"

func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func main() {
	startTime := time.Now()

	cfg := config.Load()

	gin.SetMode(cfg.GinMode)
	logger := newLogger(cfg)

	e := gin.Default()

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	docs.SwaggerInfo.BasePath = "/api"

	database, err := db.ConnectWithRetry(cfg)
	if err != nil {
		logger.Error("database unreachable", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}

	if err := db.Migrate(database); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	router := handler.Router{
		Config:    cfg,
		DB:        database,
		Logger:    logger,
		StartTime: startTime,
		Version:   appVersion,
	}
	if err := router.Mount(e); err != nil {
		logger.Error("failed to mount routes", "error", err)
		os.Exit(1)
	}

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logger.Info("listening", "port", cfg.Port, "mode", cfg.GinMode, "version", appVersion)
	if err := e.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
