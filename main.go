package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"pipeshare/config"
	"pipeshare/di"
	"pipeshare/driver/pipeline_db"
	"pipeshare/driver/pubsub"
	"pipeshare/rest"
	"pipeshare/utils/logger"
)

func main() {
	log := logger.InitLogger()
	log.Info("Starting server")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cfg := config.Load()

	pool, err := pipeline_db.InitDBConnectionPool(ctx)
	if err != nil {
		logger.Logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	redisDriver, err := pubsub.NewRedisDriverWithURL(cfg.Redis.URL)
	if err != nil {
		logger.Logger.Error("Failed to configure Redis", "error", err)
		os.Exit(1)
	}
	defer redisDriver.Close()

	if err := redisDriver.Ping(ctx); err != nil {
		logger.Logger.Error("Failed to ping Redis", "error", err)
		os.Exit(1)
	}

	container := di.NewApplicationComponents(pool, redisDriver, cfg.Push.SubscriberBuffer)

	if err := container.Hub.Run(ctx); err != nil {
		logger.Logger.Error("Failed to start event hub", "error", err)
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	rest.RegisterRoutes(e, container, cfg)

	address := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Logger.Info("Listening", "address", address)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		<-gCtx.Done()
		container.Hub.Shutdown()
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Logger.Error("Shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Logger.Info("Server exited properly")
}
