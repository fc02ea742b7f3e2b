// @title        NyayaSetu API
// @version      1.0
// @description  Session, navigation and lawyer-verification backend for the NyayaSetu legal portal.
// @BasePath     /
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

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	mongodrv "go.mongodb.org/mongo-driver/mongo"

	"github.com/nyayasetu/nyayasetu/internal/api"
	"github.com/nyayasetu/nyayasetu/internal/api/metrics"
	"github.com/nyayasetu/nyayasetu/internal/core/ports"
	"github.com/nyayasetu/nyayasetu/internal/core/service"
	"github.com/nyayasetu/nyayasetu/internal/i18n"
	"github.com/nyayasetu/nyayasetu/internal/infrastructure/codec"
	"github.com/nyayasetu/nyayasetu/internal/infrastructure/config"
	"github.com/nyayasetu/nyayasetu/internal/infrastructure/db/mongo"
	"github.com/nyayasetu/nyayasetu/internal/infrastructure/db/postgres"
	"github.com/nyayasetu/nyayasetu/internal/infrastructure/db/redis"
	"github.com/nyayasetu/nyayasetu/internal/infrastructure/guard"
	"github.com/nyayasetu/nyayasetu/internal/infrastructure/http/handlers"
	"github.com/nyayasetu/nyayasetu/internal/infrastructure/memory"
	"github.com/nyayasetu/nyayasetu/internal/infrastructure/storage"
	"github.com/nyayasetu/nyayasetu/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "nyayasetu: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := pflag.NewFlagSet("nyayasetu", pflag.ContinueOnError)
	envFile := flags.String("env-file", ".env", "optional dotenv file loaded before reading the environment")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", *envFile, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "nyayasetu",
	})

	readiness := handlers.NewReadinessHandler()
	var closers []func()
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}()

	// --- Optional backends ---
	var mdb *mongodrv.Database
	if cfg.Mongo.URI != "" {
		store, err := mongo.Open(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		closers = append(closers, func() { _ = store.Close(context.Background()) })
		readiness.With("mongodb", store)
		if err := store.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to ensure portal indexes")
		}
		mdb = store.DB
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")
	}

	var submissions ports.SubmissionGuard = guard.NewLocal()
	var slot ports.SessionSlot

	if cfg.Redis.Addr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		closers = append(closers, func() { _ = rdb.Close() })
		readiness.With("redis", handlers.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() }))
		submissions = redis.NewSubmissionGuard(rdb, cfg.Session.Key, redis.DefaultGuardTTL)
		if cfg.Session.Backend == "redis" {
			slot = redis.NewSessionSlot(rdb, cfg.Session.Key)
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	}

	switch cfg.Session.Backend {
	case "postgres":
		pool, err := postgres.Connect(ctx, cfg.Postgres.DSN)
		if err != nil {
			return err
		}
		closers = append(closers, pool.Close)
		readiness.With("postgres", handlers.PingFunc(pool.Ping))
		slot = postgres.NewSessionSlot(pool, cfg.Session.Key)
	case "file":
		fileSlot, err := storage.NewFileSlot(cfg.Session.Dir, cfg.Session.Key)
		if err != nil {
			return err
		}
		readiness.With("session_file", fileSlot)
		slot = fileSlot
	}

	var idCodec ports.IdentityCodec = codec.NewJSON()
	if cfg.Session.SigningSecret != "" {
		idCodec = codec.NewJWT(cfg.Session.SigningSecret)
	}

	// --- Applications ---
	var (
		appRepo  ports.ApplicationRepository
		reviews  ports.ReviewLog
		accounts ports.AccountRepository
	)
	if mdb != nil {
		appRepo = mongo.NewApplicationRepository(mdb)
		reviews = mongo.NewReviewLog(mdb)
		if cfg.Auth.Mode == "directory" {
			accounts = mongo.NewAccountRepository(mdb)
		}
	} else {
		appRepo = memory.NewApplicationRepository()
		reviews = memory.NewReviewLog(logger.Component("reviews"))
	}

	apps := service.NewApplicationService(appRepo, reviews, accounts, nil, logger.Component("applications"))
	if cfg.SeedDemoApplications {
		if _, err := apps.SeedDemo(ctx); err != nil {
			return err
		}
	}

	// --- Session ---
	opts := []service.SessionStoreOption{
		service.WithApplicationRecorder(apps),
		service.WithLatency(cfg.Auth.LoginDelay, cfg.Auth.RegisterDelay),
	}
	if accounts != nil {
		dir := service.NewDirectoryResolver(accounts)
		opts = append(opts, service.WithCredentialResolver(dir), service.WithAccountEnroller(dir))
	}
	sessions := service.NewSessionStore(slot, idCodec, logger.Component("session"), opts...)

	readiness.WithRestored(sessions.Restored)
	restore(ctx, sessions, log)

	language, err := i18n.NewStore(i18n.Locale(cfg.DefaultLocale))
	if err != nil {
		return err
	}

	e := api.NewRouter(api.Deps{
		Log:          log,
		Sessions:     sessions,
		Applications: apps,
		Router:       service.NewModuleRouter(),
		Composer:     service.NewViewComposer(),
		Language:     language,
		Guard:        submissions,
		Readiness:    readiness,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("session_backend", cfg.Session.Backend).
			Str("auth_mode", cfg.Auth.Mode).
			Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
	return srv.Shutdown(shutdownCtx)
}

// restore adopts the persisted session before the server accepts requests.
// A read failure is logged and the portal starts anonymous.
func restore(ctx context.Context, sessions *service.SessionStore, log zerolog.Logger) {
	if err := sessions.Restore(ctx); err != nil {
		metrics.SessionRestoresTotal.WithLabelValues("error").Inc()
		log.Error().Err(err).Msg("could not read the persisted session, starting anonymous")
		return
	}
	if sessions.Session().Authenticated() {
		metrics.SessionRestoresTotal.WithLabelValues("authenticated").Inc()
		return
	}
	metrics.SessionRestoresTotal.WithLabelValues("anonymous").Inc()
}
