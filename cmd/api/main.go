package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/pantry-backend/api/routes"
	"github.com/angelmondragon/pantry-backend/internal/additionalinfo"
	"github.com/angelmondragon/pantry-backend/internal/consumption"
	"github.com/angelmondragon/pantry-backend/internal/products"
	"github.com/angelmondragon/pantry-backend/internal/shoppinglist"
	"github.com/angelmondragon/pantry-backend/internal/stock"
	"github.com/angelmondragon/pantry-backend/internal/users"
	"github.com/angelmondragon/pantry-backend/pkg/config"
	"github.com/angelmondragon/pantry-backend/pkg/db"
	"github.com/angelmondragon/pantry-backend/pkg/logger"
	"github.com/angelmondragon/pantry-backend/pkg/metrics"
	"github.com/angelmondragon/pantry-backend/pkg/migrate"
	"github.com/angelmondragon/pantry-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Format:      cfg.App.LogFormat,
	})

	if err := run(cfg, logg); err != nil {
		logg.Error(context.Background(), "api stopped", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logg *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		return err
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if cfg.DB.AutoMigrate {
		sqlDB, err := dbClient.SQL()
		if err != nil {
			return err
		}
		if err := migrate.Sync(ctx, sqlDB, cfg.DB.Driver, logg); err != nil {
			logg.Error(ctx, "failed to sync schema", err)
			return err
		}
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			logg.Error(ctx, "failed to bootstrap redis", err)
			return err
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	}

	services, err := buildServices(dbClient)
	if err != nil {
		logg.Error(ctx, "failed to build services", err)
		return err
	}

	addr := ":" + cfg.App.Port
	server := &http.Server{
		Addr:         addr,
		Handler:      routes.NewRouter(cfg, logg, dbClient, redisClient, metrics.NewHTTPMetrics(), services),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	logCtx := logg.WithFields(ctx, map[string]any{
		"env":    cfg.App.Env,
		"addr":   addr,
		"driver": dbClient.Driver(),
		"redis":  redisClient != nil,
	})
	if cfg.App.IsProd() && cfg.DB.IsSQLite() {
		logg.Warn(logCtx, "sqlite driver selected in production")
	}
	logg.Info(logCtx, "starting api server")

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logg.Info(logCtx, "shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-serveErr
}

func buildServices(dbClient *db.Client) (routes.Services, error) {
	conn := dbClient.DB()
	var (
		svc routes.Services
		err error
	)
	if svc.Products, err = products.NewService(products.NewRepository(conn), dbClient); err != nil {
		return svc, err
	}
	if svc.Users, err = users.NewService(users.NewRepository(conn), dbClient); err != nil {
		return svc, err
	}
	if svc.Stock, err = stock.NewService(stock.NewRepository(conn), dbClient); err != nil {
		return svc, err
	}
	if svc.Consumption, err = consumption.NewService(consumption.NewRepository(conn), dbClient); err != nil {
		return svc, err
	}
	if svc.AdditionalInfo, err = additionalinfo.NewService(additionalinfo.NewRepository(conn), dbClient); err != nil {
		return svc, err
	}
	if svc.ShoppingList, err = shoppinglist.NewService(shoppinglist.NewRepository(conn), dbClient); err != nil {
		return svc, err
	}
	return svc, nil
}
