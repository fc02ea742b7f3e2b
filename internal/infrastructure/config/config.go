package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session SessionConfig
	Auth    AuthConfig

	DefaultLocale        string `env:"DEFAULT_LOCALE,         default=en"`
	SeedDemoApplications bool   `env:"SEED_DEMO_APPLICATIONS, default=true"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Postgres PostgresConfig
}

type SessionConfig struct {
	// Backend is one of file, redis, postgres.
	Backend       string `env:"SESSION_BACKEND,        default=file"`
	Key           string `env:"SESSION_KEY,            default=nyayasetu_user"`
	Dir           string `env:"SESSION_DIR,            default=.nyayasetu"`
	SigningSecret string `env:"SESSION_SIGNING_SECRET"`
}

type AuthConfig struct {
	// Mode is demo (email heuristic) or directory (bcrypt accounts in Mongo).
	Mode          string        `env:"AUTH_MODE,      default=demo"`
	LoginDelay    time.Duration `env:"LOGIN_DELAY,    default=1s"`
	RegisterDelay time.Duration `env:"REGISTER_DELAY, default=1500ms"`
}

type MongoConfig struct {
	// URI empty keeps applications in memory.
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=nyayasetu"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type PostgresConfig struct {
	DSN string `env:"POSTGRES_DSN"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool { return c.Env == "development" }

func (c *Config) validate() error {
	switch c.Session.Backend {
	case "file":
	case "redis":
		if c.Redis.Addr == "" {
			return fmt.Errorf("config: SESSION_BACKEND=redis requires REDIS_ADDR")
		}
	case "postgres":
		if c.Postgres.DSN == "" {
			return fmt.Errorf("config: SESSION_BACKEND=postgres requires POSTGRES_DSN")
		}
	default:
		return fmt.Errorf("config: unknown SESSION_BACKEND %q", c.Session.Backend)
	}

	switch c.Auth.Mode {
	case "demo":
	case "directory":
		if c.Mongo.URI == "" {
			return fmt.Errorf("config: AUTH_MODE=directory requires MONGO_URI")
		}
	default:
		return fmt.Errorf("config: unknown AUTH_MODE %q", c.Auth.Mode)
	}
	return nil
}
