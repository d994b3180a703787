package main

import (
	"context"
	"errors"
	"eventsBoard/internal/config"
	"eventsBoard/internal/exporter/calendar"
	"eventsBoard/internal/http-server/router"
	"eventsBoard/internal/lib/logger/handlers/slogpretty"
	"eventsBoard/internal/lib/logger/sl"
	"eventsBoard/internal/lib/tokens"
	"eventsBoard/internal/metrics"
	"eventsBoard/internal/session"
	"eventsBoard/internal/storage/memory"
	"eventsBoard/internal/storage/postgres"
	"eventsBoard/internal/storage/supabase"
	"eventsBoard/internal/store"
	"fmt"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const evictInterval = 1 * time.Minute

type backends struct {
	events     store.EventsBackend
	categories store.CategoriesBackend
	auth       store.AuthBackend
	close      func() error
}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting events board", slog.String("env", cfg.Env), slog.String("backend", cfg.Backend))
	log.Debug("Debug messages are enabled")

	m := metrics.New(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)

	tm := tokens.New(cfg.Supabase.JWTSecret, cfg.Session.TokenTTL)

	be, err := setupBackends(log, cfg, m, tm)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	var verifier store.TokenVerifier
	if cfg.Supabase.JWTSecret != "" {
		verifier = tm
	}

	sessionStore, closeSessions := setupSessionStore(log, cfg)
	sessions := session.NewManager(log, sessionStore, cfg.Session.IdleTTL)

	handler := router.New(log, router.Deps{
		Events:       store.NewEventService(log, be.events, m),
		Categories:   store.NewCategoryService(log, be.categories),
		Auth:         store.NewAuthService(log, be.auth, verifier),
		Sessions:     sessions,
		Calendar:     calendar.NewEncoder(""),
		Metrics:      m,
		SecureCookie: cfg.Session.CookieSecure,
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go sessions.Run(ctx, evictInterval, m.SetSessions)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err := closeSessions(); err != nil {
		log.Error("failed to close session store", sl.Err(err))
	}

	if err := be.close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func setupBackends(log *slog.Logger, cfg *config.Config, m *metrics.Metrics, tm *tokens.Manager) (backends, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendMemory:
		seed, err := loadSeed(cfg.SeedPath)
		if err != nil {
			return backends{}, err
		}

		if cfg.Supabase.JWTSecret == "" {
			tm = tokens.New(uuid.NewString(), cfg.Session.TokenTTL)
		}

		st, err := memory.New(tm, seed)
		if err != nil {
			return backends{}, err
		}

		return backends{events: st, categories: st, auth: st, close: noop}, nil

	case config.BackendPostgres:
		client := supabase.New(log, cfg.Supabase, supabase.WithObserver(m))

		st, err := postgres.InitDB(&cfg.Database)
		if err != nil {
			return backends{}, err
		}

		return backends{events: st, categories: st, auth: client, close: st.Close}, nil

	case config.BackendSupabase:
		client := supabase.New(log, cfg.Supabase, supabase.WithObserver(m))

		return backends{events: client, categories: client, auth: client, close: noop}, nil
	}

	return backends{}, fmt.Errorf("unknown backend %q", cfg.Backend)
}

func loadSeed(path string) (memory.Seed, error) {
	if path == "" {
		return memory.DefaultSeed()
	}
	return memory.LoadSeed(path)
}

func setupSessionStore(log *slog.Logger, cfg *config.Config) (session.Store, func() error) {
	if cfg.Redis.Addr == "" {
		log.Info("sessions kept in memory")
		return session.NewMemoryStore(), func() error { return nil }
	}

	client := session.NewRedisClient(cfg.Redis)

	log.Info("sessions kept in redis", slog.String("addr", cfg.Redis.Addr))

	return session.NewRedisStore(client), client.Close
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
