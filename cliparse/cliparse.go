package cliparse

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	DefaultPort       = 5000
	DefaultSQLitePath = "stimmie.db"
	DefaultAPIURL     = "http://localhost:5000"
	DefaultTimeout    = 10 * time.Second
	DefaultLogLevel   = "info"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	APIURL       string
	CacheDir     string
	FallbackPath string
	CatalogPath  string
	Timeout      time.Duration
	LogLevel     string
}

// LoadEnvFile loads variables from a .env file without overriding ones
// already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// BindFlags registers every config flag on flags. Unset flags are filled
// from the environment by Resolve.
func BindFlags(flags *pflag.FlagSet, cfg *Config) {
	// Server
	flags.IntVarP(&cfg.Port, "port", "p", 0, "Server port (env PORT, default 5000)")
	flags.StringVarP(&cfg.DatabaseURL, "database-url", "d", "", "Database URL (env DATABASE_URL)")
	flags.StringVarP(&cfg.DatabaseType, "database-type", "t", "", "Database type: sqlite, postgres or mongo (env DATABASE_TYPE)")

	// Client
	flags.StringVar(&cfg.APIURL, "api-url", "", "Survey API base URL (env STIMMIE_API_URL)")
	flags.StringVar(&cfg.CacheDir, "cache-dir", "", "Snapshot cache directory (env STIMMIE_CACHE_DIR)")
	flags.StringVar(&cfg.FallbackPath, "fallback", "", "Fallback dataset file (env STIMMIE_FALLBACK)")
	flags.StringVar(&cfg.CatalogPath, "catalog", "", "Answer catalog YAML file (env STIMMIE_CATALOG)")
	flags.DurationVar(&cfg.Timeout, "timeout", 0, "Request timeout (env STIMMIE_TIMEOUT, default 10s)")

	flags.StringVar(&cfg.LogLevel, "log-level", "", "Log level: debug, info, warn, error (env LOG_LEVEL)")
}

// ParseFlags parses args and resolves the config
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	flags := pflag.NewFlagSet("stimmie", pflag.ContinueOnError)
	BindFlags(flags, &cfg)

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	return Resolve(cfg)
}

// Resolve fills unset fields from the environment, then from defaults,
// and validates the result. Values already set take precedence.
func Resolve(cfg Config) (Config, error) {
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	cfg.DatabaseType = strings.ToLower(cfg.DatabaseType)
	if cfg.DatabaseType == "mongodb" {
		cfg.DatabaseType = "mongo"
	}
	switch cfg.DatabaseType {
	case "sqlite", "postgres", "mongo":
	default:
		return Config{}, fmt.Errorf("unsupported database type %q (use sqlite, postgres or mongo)", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" && cfg.DatabaseType == "sqlite" {
		cfg.DatabaseURL = DefaultSQLitePath
	}

	if cfg.APIURL == "" {
		cfg.APIURL = envOr("STIMMIE_API_URL", DefaultAPIURL)
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = os.Getenv("STIMMIE_CACHE_DIR")
	}
	if cfg.FallbackPath == "" {
		cfg.FallbackPath = os.Getenv("STIMMIE_FALLBACK")
	}
	if cfg.CatalogPath == "" {
		cfg.CatalogPath = os.Getenv("STIMMIE_CATALOG")
	}

	if cfg.Timeout == 0 {
		if s := os.Getenv("STIMMIE_TIMEOUT"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid STIMMIE_TIMEOUT env variable")
			}
			cfg.Timeout = d
		} else {
			cfg.Timeout = DefaultTimeout
		}
	}
	if cfg.Timeout < 0 {
		return Config{}, errors.New("timeout must be positive")
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = envOr("LOG_LEVEL", DefaultLogLevel)
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// RequireDatabase reports an error when the database URL is missing.
func (c Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
