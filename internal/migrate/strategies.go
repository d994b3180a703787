package migrate

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// CLI pushes the linked project's migrations with the Supabase CLI.
type CLI struct {
	Path    string
	WorkDir string
	run     func(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

func NewCLI(path, workDir string) *CLI {
	return &CLI{Path: path, WorkDir: workDir, run: runCommand}
}

func (c *CLI) Name() string { return StrategyCLI }

func (c *CLI) Apply(ctx context.Context, _ string) error {
	if c.Path == "" {
		return fmt.Errorf("%w: no supabase cli configured", ErrUnavailable)
	}
	if _, err := exec.LookPath(c.Path); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if out, err := c.run(ctx, c.WorkDir, c.Path, "status", "--output", "json"); err != nil {
		return fmt.Errorf("%w: project not linked: %s", ErrUnavailable, strings.TrimSpace(string(out)))
	}

	if out, err := c.run(ctx, c.WorkDir, c.Path, "db", "push", "--yes"); err != nil {
		return fmt.Errorf("db push: %w: %s", err, strings.TrimSpace(string(out)))
	}

	return nil
}

func runCommand(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	return out.Bytes(), err
}

type Execer interface {
	Exec(ctx context.Context, script string) error
}

// Postgres runs the script over a direct database connection. Open returns
// ErrUnavailable when no password is known.
type Postgres struct {
	Open func(ctx context.Context) (Execer, func() error, error)
}

func (p *Postgres) Name() string { return StrategyPostgres }

func (p *Postgres) Apply(ctx context.Context, script string) error {
	db, closeFn, err := p.Open(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	return db.Exec(ctx, script)
}

type SQLRPC interface {
	ExecSQL(ctx context.Context, sql string) error
}

// RPC calls the exec_sql function with the service role key.
type RPC struct {
	Client SQLRPC
}

func (r *RPC) Name() string { return StrategyRPC }

func (r *RPC) Apply(ctx context.Context, script string) error {
	if r.Client == nil {
		return fmt.Errorf("%w: no service role key", ErrUnavailable)
	}

	return r.Client.ExecSQL(ctx, script)
}

// Manual prints the script and where to paste it.
type Manual struct {
	Out        io.Writer
	ProjectRef string
}

func (m *Manual) Name() string { return StrategyManual }

func (m *Manual) Apply(_ context.Context, script string) error {
	target := "the Supabase dashboard SQL editor"
	if m.ProjectRef != "" {
		target = "https://supabase.com/dashboard/project/" + m.ProjectRef + "/sql"
	}

	_, err := fmt.Fprintf(m.Out, "-- Run the following SQL in %s\n\n%s\n", target, script)
	return err
}

// Build orders strategies by name. Unknown names are an error.
func Build(names []string, available map[string]Strategy) ([]Strategy, error) {
	out := make([]Strategy, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		s, ok := available[name]
		if !ok {
			return nil, fmt.Errorf("unknown migration strategy %q", name)
		}
		out = append(out, s)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no migration strategies selected")
	}

	return out, nil
}
