package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dispatch/cmd"
	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load(".env")

	configs, err := cmd.LoadConfig(os.LookupEnv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.AutoMigrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	var cache ports.StatsCache
	redisCache, err := cmd.NewStatsCache(ctx, configs)
	if err != nil {
		log.Fatalf("Error connecting to stats cache: %v", err)
	}
	if redisCache != nil {
		defer redisCache.Close()
		cache = redisCache
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, cache)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	if err = run(ctx, app, configs.HTTPPort, logger); err != nil {
		log.Fatalf("Service stopped with error: %v", err)
	}
}

func run(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e := httpadapter.NewEcho(app.NewHTTPServer(), logger)
	jobManager := app.NewJobManager(logger)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.InfoContext(gctx, "HTTP server starting", "port", port)
		if err := e.Start("0.0.0.0:" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		if err := jobManager.StartAll(); err != nil {
			return err
		}
		<-gctx.Done()
		jobManager.StopAll()
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
