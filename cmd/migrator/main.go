package main

import (
	"context"
	"errors"
	"eventsBoard/internal/config"
	"eventsBoard/internal/lib/logger/handlers/slogpretty"
	"eventsBoard/internal/lib/logger/sl"
	"eventsBoard/internal/migrate"
	"eventsBoard/internal/storage/postgres"
	"eventsBoard/internal/storage/supabase"
	"flag"
	"fmt"
	"github.com/fatih/color"
	"golang.org/x/term"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"
)

func main() {
	var (
		strategies string
		sqlPath    string
		workDir    string
		check      bool
		timeout    time.Duration
	)

	flag.StringVar(&strategies, "strategies", "", "comma separated strategy order (cli,postgres,rpc,manual)")
	flag.StringVar(&sqlPath, "sql", "", "path to the SQL script; the bundled script is used when empty")
	flag.StringVar(&workDir, "workdir", ".", "directory of the linked Supabase project")
	flag.BoolVar(&check, "check", false, "only report row counts of the app tables")
	flag.DurationVar(&timeout, "timeout", 5*time.Minute, "overall deadline")

	cfg := config.MustLoad()

	log := setupLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if check {
		if err := runCheck(ctx, cfg); err != nil {
			log.Error("check failed", sl.Err(err))
			os.Exit(1)
		}
		return
	}

	if strategies != "" {
		cfg.Migrate.Strategies = strings.Split(strategies, ",")
	}
	if sqlPath != "" {
		cfg.Migrate.SQLPath = sqlPath
	}

	if err := run(ctx, log, cfg, workDir); err != nil {
		log.Error("migration failed", sl.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, cfg *config.Config, workDir string) error {
	script, err := migrate.Script(cfg.Migrate.SQLPath)
	if err != nil {
		return err
	}

	public := supabase.New(log, cfg.Supabase)

	var rpc migrate.SQLRPC
	if cfg.Supabase.ServiceRoleKey != "" {
		rpc = supabase.New(log, cfg.Supabase, supabase.WithAPIKey(cfg.Supabase.ServiceRoleKey))
	}

	chosen, err := migrate.Build(cfg.Migrate.Strategies, map[string]migrate.Strategy{
		migrate.StrategyCLI:      migrate.NewCLI(cfg.Migrate.CLIPath, workDir),
		migrate.StrategyPostgres: &migrate.Postgres{Open: openDatabase(cfg.Database)},
		migrate.StrategyRPC:      &migrate.RPC{Client: rpc},
		migrate.StrategyManual:   &migrate.Manual{Out: os.Stdout, ProjectRef: public.ProjectRef()},
	})
	if err != nil {
		return err
	}

	m := migrate.New(log, chosen...)

	res, err := m.Run(ctx, script)
	if err != nil {
		return err
	}

	if !res.Applied {
		color.Yellow("Script printed above. Apply it manually, then rerun with -check.")
		return nil
	}

	color.Green("Migration applied via %s", res.Strategy)

	categories, err := m.Verify(ctx, public)
	if err != nil {
		color.Red("Categories are not readable yet: %v", err)
		return err
	}

	for _, c := range categories {
		fmt.Printf("  %-10s %s\n", c.Slug, c.Name)
	}

	return nil
}

// openDatabase asks for the database password when none is configured and stdin is a
// terminal.
func openDatabase(dbCfg config.Database) func(ctx context.Context) (migrate.Execer, func() error, error) {
	return func(ctx context.Context) (migrate.Execer, func() error, error) {
		if dbCfg.Password == "" {
			password, err := promptPassword()
			if err != nil {
				return nil, nil, err
			}
			dbCfg.Password = password
		}

		st, err := postgres.InitDB(&dbCfg)
		if err != nil {
			return nil, nil, err
		}

		return st, st.Close, nil
	}
}

func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("%w: no database password and stdin is not a terminal", migrate.ErrUnavailable)
	}

	fmt.Fprint(os.Stderr, "Database password (Project Settings > Database): ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	password := strings.TrimSpace(string(b))
	if password == "" {
		return "", fmt.Errorf("%w: empty database password", migrate.ErrUnavailable)
	}

	return password, nil
}

func runCheck(ctx context.Context, cfg *config.Config) error {
	open := openDatabase(cfg.Database)

	db, closeFn, err := open(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	st, ok := db.(*postgres.Storage)
	if !ok {
		return errors.New("unexpected database handle")
	}

	counts, failures := st.TableCounts(ctx)

	names := make([]string, 0, len(postgres.Tables))
	names = append(names, postgres.Tables...)
	sort.Strings(names)

	for _, name := range names {
		if err, ok := failures[name]; ok {
			color.Red("  %-12s %v", name, err)
			continue
		}
		color.Green("  %-12s %d rows", name, counts[name])
	}

	if len(failures) > 0 {
		return fmt.Errorf("%d of %d tables unreadable", len(failures), len(postgres.Tables))
	}

	return nil
}

func setupLogger() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelInfo,
		},
	}

	return slog.New(opts.NewPrettyHandler(os.Stderr))
}
