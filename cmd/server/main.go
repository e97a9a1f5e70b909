package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/adelingruian/MyNotes/internal/api"
	"github.com/adelingruian/MyNotes/internal/api/handler"
	"github.com/adelingruian/MyNotes/internal/core/service"
	"github.com/adelingruian/MyNotes/internal/infrastructure/db/mongo"
	"github.com/adelingruian/MyNotes/internal/infrastructure/db/redis"
	"github.com/adelingruian/MyNotes/internal/infrastructure/http/handlers"
	"github.com/adelingruian/MyNotes/internal/pkg/config"
	"github.com/adelingruian/MyNotes/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log := logger.Init(logger.Options{})
		log.Fatal().Err(err).Msg("load config")
	}
	log := logger.Init(logger.ForEnv(cfg.IsDevelopment(), cfg.LogLevel))

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()

	credentials := service.NewCredentialService(
		mongo.NewUserRepository(db),
		service.NewPBKDF2Hasher(cfg.Session.PBKDF2Iterations),
		log,
	)
	sessions := service.NewSessionService(redis.NewSessionStore(rdb), cfg.Session.Secret, cfg.Session.TTL, log)
	entries := service.NewEntryService(mongo.NewEntryRepository(db), log)

	e, err := api.NewRouter(api.Dependencies{
		Credentials: credentials,
		Sessions:    sessions,
		Entries:     entries,
		Readiness: map[string]handlers.Check{
			"mongodb": handlers.MongoCheck(db),
			"redis":   handlers.RedisCheck(rdb),
		},
	}, api.Options{
		Cookie: handler.CookieSettings{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
			TTL:    sessions.TTL(),
		},
	}, log)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
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
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
