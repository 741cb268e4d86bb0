package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/sync/errgroup"

	"estagio-gateway/internal/archive"
	jwttoken "estagio-gateway/internal/jwt_token"
	"estagio-gateway/internal/platform/config"
	"estagio-gateway/internal/platform/httpserver"
	"estagio-gateway/internal/platform/logger"
	"estagio-gateway/internal/platform/middleware"
	platformredis "estagio-gateway/internal/platform/redis"
	"estagio-gateway/internal/registry"
	registrymetrics "estagio-gateway/internal/registry/metrics"
	registrystore "estagio-gateway/internal/registry/store"
	httptransport "estagio-gateway/internal/transport/http"
	"estagio-gateway/internal/validation"
	validationhandler "estagio-gateway/internal/validation/handler"
	validationmetrics "estagio-gateway/internal/validation/metrics"
)

const archiveBuffer = 256

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Registry lookup path: HTTP client behind a TTL cache. Redis when
	// configured, in-process map otherwise.
	registryClient := registry.NewHTTPClient(cfg.RegistryBaseURL, cfg.RegistryTimeout)
	var registryStore registry.Store
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis unavailable", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		registryStore = registrystore.NewRedis(redisClient.Client, cfg.RegistryCacheTTL)
		log.Info("registry cache backed by redis")
	} else {
		registryStore = registrystore.NewMemory(cfg.RegistryCacheTTL)
		log.Info("registry cache backed by memory")
	}
	cachedRegistry := registry.NewCachedClient(registryClient, registryStore, log, registrymetrics.New())

	// Report archive: postgres when configured, in-process otherwise.
	var archiveStore archive.Store
	if cfg.Postgres.DSN != "" {
		db, err := sql.Open("pgx", cfg.Postgres.DSN)
		if err != nil {
			log.Error("postgres open failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		pgStore := archive.NewPostgresStore(db)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Error("postgres schema setup failed", "error", err)
			os.Exit(1)
		}
		archiveStore = pgStore
		log.Info("report archive backed by postgres")
	} else {
		archiveStore = archive.NewMemoryStore()
		log.Info("report archive backed by memory")
	}

	publisher := archive.NewPublisher(archiveBuffer)
	archiveWorker := archive.NewWorker(archiveStore, publisher.Inbox(), log)

	service := validation.NewService(cachedRegistry, publisher, log, validationmetrics.New())

	var jwtValidator middleware.JWTValidator
	if cfg.JWTSigningKey != "" {
		jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)
		jwtValidator = jwttoken.NewJWTServiceAdapter(jwtService)
		log.Info("bearer auth enabled")
	}

	handler := validationhandler.New(service, archiveStore, log, jwtValidator)
	router := httptransport.NewRouter(handler)
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := archiveWorker.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		log.Info("starting estagio-gateway", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
