package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/corteturno/corteturno/internal/config"
	"github.com/corteturno/corteturno/internal/db"
	"github.com/corteturno/corteturno/internal/logger"
	"github.com/corteturno/corteturno/internal/notify"
	"github.com/corteturno/corteturno/internal/reconcile"
	"github.com/corteturno/corteturno/internal/routes"
	ucAppointment "github.com/corteturno/corteturno/internal/usecase/appointment"

	infraRepo "github.com/corteturno/corteturno/internal/infra/repository"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Environment)
	defer log.Sync()

	database := db.NewDB(cfg)

	// Sink de notificaciones: Redis si hay más de una instancia del
	// API, memoria con TTL en el caso normal de una sola.
	var store notify.Store
	var memStore *notify.MemoryStore
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal("invalid REDIS_URL", zap.Error(err))
		}
		store = notify.NewRedisStore(redis.NewClient(opts), notify.DefaultTTL)
		log.Info("notification store: redis")
	} else {
		memStore = notify.NewMemoryStore(notify.DefaultTTL)
		memStore.Start()
		store = memStore
		log.Info("notification store: memory")
	}

	dispatcher := notify.NewDispatcher(store, log)
	dispatcher.Start()

	appointmentRepo := infraRepo.NewAppointmentGormRepository(database)
	reconciler := reconcile.NewReconciler(
		ucAppointment.NewListOverdue(appointmentRepo),
		dispatcher,
		log,
	)

	ctx, cancel := context.WithCancel(context.Background())
	reconciler.Start(ctx)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	routes.RegisterRoutes(r, database, cfg, dispatcher, store)

	go func() {
		log.Info("server listening", zap.String("addr", cfg.Addr()))
		if err := r.Run(cfg.Addr()); err != nil {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	cancel()
	reconciler.Stop()
	dispatcher.Stop()
	if memStore != nil {
		memStore.Stop()
	}
}
