package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-scheduler/internal/audit"
	"github.com/BruksfildServices01/agenda-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/agenda-scheduler/internal/db"
	"github.com/BruksfildServices01/agenda-scheduler/internal/lock"
	"github.com/BruksfildServices01/agenda-scheduler/internal/logger"
	"github.com/BruksfildServices01/agenda-scheduler/internal/notification"
	"github.com/BruksfildServices01/agenda-scheduler/internal/routes"
	"github.com/BruksfildServices01/agenda-scheduler/internal/timezone"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	zl, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stores, closeDB, err := dbpkg.Open(cfg, zl)
	if err != nil {
		zl.Fatal("database init failed", zap.Error(err))
	}
	defer closeDB()

	locker, closeLocker := newLocker(rootCtx, cfg, zl)
	defer closeLocker()

	dispatcher := audit.NewDispatcher(audit.New(stores.Audit), zl)
	defer dispatcher.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:       cfg,
		Logger:       zl,
		Appointments: stores.Appointments,
		Catalog:      stores.Catalog,
		AuditStore:   stores.Audit,
		Audit:        dispatcher,
		Locker:       locker,
		Sender:       notification.NewSender(cfg.WhatsApp, zl),
		Clock:        timezone.SystemClock(),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server running",
			zap.String("addr", cfg.Addr()),
			zap.String("env", cfg.Env),
			zap.String("whatsapp_provider", string(cfg.WhatsApp.Provider)),
			zap.Bool("whatsapp_simulated", cfg.WhatsApp.Simulated),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-rootCtx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
}

// newLocker uses redis when REDIS_ADDR is set and an in-process locker
// otherwise.
func newLocker(ctx context.Context, cfg *config.Config, zl *zap.Logger) (lock.Locker, func()) {
	if cfg.RedisAddr == "" {
		zl.Info("agenda locks are in-process; set REDIS_ADDR to share them across instances")
		return lock.NewLocalLocker(), func() {}
	}

	rdb, err := lock.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		zl.Fatal("redis connection error", zap.Error(err))
	}
	zl.Info("connected to redis", zap.String("addr", cfg.RedisAddr))

	return lock.NewRedisLocker(rdb, cfg.LockTTL), func() {
		if err := rdb.Close(); err != nil {
			zl.Warn("error closing redis", zap.Error(err))
		}
	}
}
