package config

import (
	"errors"
	"flag"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"log"
	"os"
	"time"
)

const (
	BackendSupabase = "supabase"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	Backend    string `yaml:"backend" env:"BACKEND" env-default:"supabase"`
	SeedPath   string `yaml:"seed_path" env:"SEED_PATH"`
	HTTPServer `yaml:"http_server"`
	Supabase   Supabase `yaml:"supabase"`
	Database   Database `yaml:"database"`
	Redis      Redis    `yaml:"redis"`
	Session    Session  `yaml:"session"`
	Migrate    Migrate  `yaml:"migrate"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Supabase struct {
	URL            string        `yaml:"url" env:"SUPABASE_URL"`
	AnonKey        string        `yaml:"anon_key" env:"SUPABASE_ANON_KEY"`
	ServiceRoleKey string        `yaml:"service_role_key" env:"SUPABASE_SERVICE_ROLE_KEY"`
	JWTSecret      string        `yaml:"jwt_secret" env:"SUPABASE_JWT_SECRET"`
	Timeout        time.Duration `yaml:"timeout" env-default:"10s"`
	Retries        int           `yaml:"retries" env-default:"3"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"postgres"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"require"`
}

type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_URL"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Session struct {
	IdleTTL      time.Duration `yaml:"idle_ttl" env-default:"30m"`
	CookieSecure bool          `yaml:"cookie_secure" env:"SESSION_COOKIE_SECURE" env-default:"false"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"1h"`
}

type Migrate struct {
	Strategies []string `yaml:"strategies" env:"MIGRATE_STRATEGIES" env-separator:"," env-default:"cli,postgres,rpc,manual"`
	SQLPath    string   `yaml:"sql_path" env:"MIGRATE_SQL_PATH"`
	CLIPath    string   `yaml:"cli_path" env:"SUPABASE_CLI" env-default:"supabase"`
}

// MustLoad reads the config file named by -config or CONFIG_PATH and exits on failure.
func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

// Load loads an optional .env file, then the YAML config at path with env overrides.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendMemory:
		return nil
	case BackendSupabase, BackendPostgres:
		if c.Supabase.URL == "" || c.Supabase.AnonKey == "" {
			return fmt.Errorf("backend %q requires supabase.url and supabase.anon_key", c.Backend)
		}
		return nil
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
