// @title        People & Catalog API
// @version      1.0
// @description  Registration, partial updates and bounded reads over people, customers, employees, categories and items.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/storefront/people-catalog/internal/api"
	"github.com/storefront/people-catalog/internal/api/handler"
	"github.com/storefront/people-catalog/internal/core/ports"
	"github.com/storefront/people-catalog/internal/core/service"
	"github.com/storefront/people-catalog/internal/infrastructure/config"
	mongodb "github.com/storefront/people-catalog/internal/infrastructure/db/mongo"
	redisdb "github.com/storefront/people-catalog/internal/infrastructure/db/redis"
	"github.com/storefront/people-catalog/internal/infrastructure/db/sqlstore"
	"github.com/storefront/people-catalog/internal/infrastructure/queue"
	"github.com/storefront/people-catalog/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "people-catalog",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	store, err := sqlstore.Open(ctx, sqlstore.Config{
		Driver:          cfg.SQL.Driver,
		DSN:             cfg.SQL.DSN,
		MaxOpenConns:    cfg.SQL.MaxOpenConns,
		MaxIdleConns:    cfg.SQL.MaxIdleConns,
		ConnMaxLifetime: cfg.SQL.ConnMaxLifetime,
		Migrate:         cfg.SQL.Migrate,
	})
	if err != nil {
		return err
	}
	defer store.Close()
	log.Info().Str("driver", cfg.SQL.Driver).Msg("relational store ready")

	deps := []handler.Dependency{{Name: "sql", Ping: store.Ping}}

	var cache ports.QueryCache = redisdb.NopCache{}
	if cfg.Redis.Enabled {
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer client.Close()
		cache = redisdb.NewQueryCache(client, cfg.Redis.TTL)
		deps = append(deps, handler.Dependency{
			Name: "redis",
			Ping: func(ctx context.Context) error { return client.Ping(ctx).Err() },
		})
		log.Info().Str("addr", cfg.Redis.Addr).Msg("query cache enabled")
	}

	// The dispatcher outlives the HTTP server so queued events can drain.
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	var audit ports.AuditSink
	if cfg.Audit.Enabled {
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()

		repo := mongodb.NewAuditRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			return err
		}

		dispatcher := queue.NewDispatcher(cfg.Audit.Workers, repo, logger.Component("audit"))
		dispatcher.Start(workerCtx)
		defer dispatcher.Wait()
		defer cancelWorkers()

		audit = dispatcher
		deps = append(deps, handler.Dependency{
			Name: "mongo",
			Ping: func(ctx context.Context) error { return mongodb.Ping(ctx, client) },
		})
		log.Info().Str("database", cfg.Mongo.Database).Msg("audit trail enabled")
	}

	peopleRepo := sqlstore.NewPeopleRepository(store)
	catalogRepo := sqlstore.NewCatalogRepository(store)

	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	categories := service.NewCategoryResolver(catalogRepo)
	engine := service.NewPatchEngine(store, categories, hasher, logger.Component("patch"))
	registrar := service.NewRegistrar(peopleRepo, hasher, logger.Component("registrar"))

	svc := api.Services{
		People:  service.NewPeopleService(peopleRepo, registrar, engine, audit, cache, logger.Component("people")),
		Catalog: service.NewCatalogService(catalogRepo, categories, engine, audit, cache, logger.Component("catalog")),
		Query:   service.NewQueryService(peopleRepo, catalogRepo, cache, cfg.DefaultResultLimit, logger.Component("query")),
	}

	e := api.NewRouter(svc, deps, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
