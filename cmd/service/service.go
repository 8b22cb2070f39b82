// @title        Portfolio API
// @version      1.0
// @description  Portfolio content backend: public read API and session-authenticated admin CRUD.
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name portfolio_session
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/database"
	appmw "portfolio/internal/middleware"
	"portfolio/internal/model"
	"portfolio/internal/router"
	"portfolio/internal/service"
	"portfolio/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "portfolio/docs" // 引入 swag 產出的 docs
)

const memoryCacheCleanup = 10 * time.Minute

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	newMemoryCache  = func() cache.Cache { return cache.NewMemoryCache(memoryCacheCleanup) }
	runMigrationsFn = database.RunMigrations
	rollbackAllFn   = database.RollbackAll
	seedDefaultsFn  = store.SeedDefaults
	hashPassword    = service.HashPassword
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func openSessionStore(cfg *config.Config) (cache.Cache, error) {
	if cfg.RedisAddr == "" {
		slog.Warn("REDIS_ADDR not set, sessions are kept in memory and lost on restart")
		return newMemoryCache(), nil
	}
	return newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
}

func run(args []string) error {
	flags := flag.NewFlagSet("service", flag.ContinueOnError)
	reset := flags.Bool("reset", false, "roll back every migration before starting")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx := context.Background()
	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	sessions, err := openSessionStore(cfg)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer sessions.Close()

	if *reset {
		slog.Warn("resetting database")
		if err := rollbackAllFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("Migration rollback 失敗: %w", err)
		}
	}
	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	hash, err := hashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	seeded, err := seedDefaultsFn(ctx, db, model.AdminUser{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
	})
	if err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}
	if len(seeded) > 0 {
		slog.Info("seeded default content", "tables", seeded)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(appmw.CORS(cfg.CORSOrigins))
	e.Use(appmw.Metrics())

	authn := service.NewAuthenticator(db, service.NewSessions(sessions, cfg.SessionSecret, cfg.SessionTTL))
	cookie := appmw.SessionCookie{Secure: cfg.CookieSecure, TTL: cfg.SessionTTL}
	router.Setup(e, db, sessions, authn, cookie, os.DirFS(cfg.StaticDir))

	slog.Info("listening", "addr", cfg.Addr(), "static", cfg.StaticDir)
	return startServer(e, cfg.Addr())
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("service stopped", "err", err)
		exitFunc(1)
	}
}
