// Package migrate applies the database script through the first strategy that works:
// the Supabase CLI, a direct Postgres connection, the exec_sql RPC, and finally printing
// the script for the dashboard SQL editor.
package migrate

import (
	"context"
	"errors"
	"eventsBoard/internal/lib/logger/sl"
	"eventsBoard/internal/models"
	"fmt"
	"log/slog"
	"os"
	"time"

	_ "embed"
)

//go:embed fix-rls.sql
var defaultScript string

// ErrUnavailable means a strategy's prerequisites are missing. The migrator moves on
// without counting it as a failure.
var ErrUnavailable = errors.New("strategy unavailable")

var ErrAllFailed = errors.New("no migration strategy succeeded")

const (
	StrategyCLI      = "cli"
	StrategyPostgres = "postgres"
	StrategyRPC      = "rpc"
	StrategyManual   = "manual"
)

type Strategy interface {
	Name() string
	Apply(ctx context.Context, script string) error
}

// Script returns the SQL at path, or the bundled script when path is empty.
func Script(path string) (string, error) {
	if path == "" {
		return defaultScript, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read migration script: %w", err)
	}

	return string(b), nil
}

type Result struct {
	Strategy string
	// Applied is false when the script was only handed to a human.
	Applied bool
}

type Migrator struct {
	log        *slog.Logger
	strategies []Strategy
}

func New(log *slog.Logger, strategies ...Strategy) *Migrator {
	return &Migrator{log: log, strategies: strategies}
}

// Run tries each strategy in order and stops at the first that succeeds.
func (m *Migrator) Run(ctx context.Context, script string) (Result, error) {
	const op = "migrate.Run"

	log := m.log.With(slog.String("op", op))

	var errs []error

	for i, s := range m.strategies {
		log := log.With(
			slog.String("strategy", s.Name()),
			slog.Int("step", i+1),
			slog.Int("of", len(m.strategies)),
		)

		log.Info("trying strategy")
		start := time.Now()

		err := s.Apply(ctx, script)
		switch {
		case err == nil:
			log.Info("strategy succeeded", slog.Duration("took", time.Since(start)))
			return Result{Strategy: s.Name(), Applied: s.Name() != StrategyManual}, nil
		case errors.Is(err, ErrUnavailable):
			log.Warn("strategy unavailable", sl.Err(err))
		default:
			log.Error("strategy failed", sl.Err(err))
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
		}

		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
	}

	errs = append([]error{ErrAllFailed}, errs...)

	return Result{}, errors.Join(errs...)
}

type CategoryLister interface {
	ListCategories(ctx context.Context, token string) ([]models.Category, error)
}

// Verify confirms the categories table is readable through the public API.
func (m *Migrator) Verify(ctx context.Context, lister CategoryLister) ([]models.Category, error) {
	const op = "migrate.Verify"

	categories, err := lister.ListCategories(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m.log.Info("categories readable", slog.String("op", op), slog.Int("count", len(categories)))

	return categories, nil
}
