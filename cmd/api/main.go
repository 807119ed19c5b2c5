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

	"phone_input_backend/internal/countries"
	"phone_input_backend/internal/events"
	apphttp "phone_input_backend/internal/http"
	"phone_input_backend/internal/http/router"
	"phone_input_backend/internal/phone"
	"phone_input_backend/internal/sessions"
	"phone_input_backend/internal/sessions/repository"
	"phone_input_backend/platform/config"
	"phone_input_backend/platform/logger"
	"phone_input_backend/platform/validator"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	base, err := loadCountries(cfg, log)
	if err != nil {
		log.Error("failed to load country table", "error", err, "file", cfg.CountriesFile)
		panic("failed to load country table: " + err.Error())
	}

	store, closeStore, err := initSessionStore(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize session store", "error", err)
		panic("failed to initialize session store: " + err.Error())
	}

	eventBus := events.NewInMemoryBus(log)
	val := validator.New()

	// ========================================================================
	// Domain Modules
	// ========================================================================

	sessionsModule, err := sessions.NewModule(store, eventBus, cfg, base, val, log)
	if err != nil {
		panic("failed to initialize sessions module: " + err.Error())
	}

	phoneModule, err := phone.NewModule(base, val)
	if err != nil {
		panic("failed to initialize phone module: " + err.Error())
	}

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   store,
		EventBus: eventBus,
		Modules: []apphttp.Module{
			sessionsModule,
			phoneModule,
		},
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received, gracefully shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		eventBus.Wait()
		return nil
	})

	err = g.Wait()
	closeStore()
	if err != nil {
		log.Error("server error", "error", err)
		stop()
		os.Exit(1)
	}
	log.Info("server stopped")
}

// loadCountries returns the configured replacement table, or nil to use the
// built-in one. Audit findings are logged; audit errors do not stop startup
// because the table already passed validation.
func loadCountries(cfg config.CountriesConfig, log *logger.Logger) ([]countries.Country, error) {
	path := cfg.GetCountriesFile()
	if path == "" {
		return nil, nil
	}

	base, err := countries.LoadFile(path)
	if err != nil {
		return nil, err
	}

	for _, f := range countries.Audit(base) {
		log.AuditFinding(f.Code, string(f.Severity), f.Message)
	}
	log.Info("country table loaded", "file", path, "countries", len(base))
	return base, nil
}

func initSessionStore(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (repository.Store, func(), error) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; sessions are kept in memory")
		return repository.NewMemoryStore(), func() {}, nil
	}

	client, err := repository.NewRedisClient(cfg)
	if err != nil {
		return nil, nil, err
	}

	store := repository.NewRedisStore(client)
	if err := withRetry(ctx, log, "redis connection", 5, 2*time.Second, func() error {
		return store.Ping(ctx)
	}); err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	log.Info("redis session store connected")

	return store, func() {
		_ = client.Close()
	}, nil
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return fmt.Errorf("%s: %w", name, lastErr)
}
