package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/marketbay/storefront/internal/api"
	"github.com/marketbay/storefront/internal/core/service"
	"github.com/marketbay/storefront/internal/infrastructure/backend"
	"github.com/marketbay/storefront/internal/infrastructure/config"
	redisstore "github.com/marketbay/storefront/internal/infrastructure/db/redis"
	"github.com/marketbay/storefront/internal/infrastructure/queue"
	"github.com/marketbay/storefront/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	client := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, log)

	sessionStore := redisstore.NewSessionStore(rdb, cfg.SessionTTL)
	activityStore := redisstore.NewActivityStore(rdb, cfg.ActivityLimit)

	activitySvc := service.NewActivityService(activityStore, log)
	dispatcher := queue.NewDispatcher(cfg.ActivityWorkers, activitySvc, log)
	dispatcher.Start(ctx)

	sessions := service.NewSessionService(client, sessionStore, dispatcher, log)
	catalog := service.NewCatalogService(client, cfg.PageSize, log)
	carts := service.NewCartService(client, client, dispatcher, log)
	orders := service.NewOrderService(client, log)
	admin := service.NewAdminService(client, client, client, activitySvc, dispatcher, log)

	e := api.NewRouter(api.Deps{
		Sessions: sessions,
		Carts:    carts,
		Catalog:  catalog,
		Orders:   orders,
		Admin:    admin,
		Activity: activitySvc,
		Redis:    rdb,
		Backend:  client,
		Log:      log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("storefront console listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
