package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

type (
	Container struct {
		App    *App
		HTTP   *HTTP
		Sheets *Sheets
		Cache  *Cache
		SQLite *SQLite
		Redis  *Redis
		Token  *Token
		Admin  *Admin
	}

	App struct {
		Name string `env:"APP_NAME" envDefault:"flowershop_content"`
		Env  string `env:"APP_ENV" envDefault:"local"`
	}

	HTTP struct {
		Env            string `env:"APP_ENV" envDefault:"local"`
		Port           string `env:"HTTP_PORT" envDefault:"8080"`
		AllowedOrigins string `env:"ALLOWED_ORIGINS" envDefault:"*"`
		URL            string `env:"HTTP_URL"`
	}

	Sheets struct {
		// URL of the Apps Script web app. Empty disables remote fetching.
		URL     string        `env:"SHEETS_API_URL"`
		UseAPI  bool          `env:"USE_SHEETS_API" envDefault:"true"`
		Timeout time.Duration `env:"SHEETS_TIMEOUT" envDefault:"10s"`
	}

	Cache struct {
		DurationMinutes int    `env:"CACHE_DURATION_MINUTES" envDefault:"5" validate:"gt=0"`
		Backend         string `env:"CACHE_BACKEND" envDefault:"sqlite" validate:"oneof=sqlite redis none"`
		KeyPrefix       string `env:"CACHE_KEY_PREFIX" envDefault:"sheets_cache_"`
	}

	SQLite struct {
		Path          string `env:"SQLITE_PATH" envDefault:"./data/content-cache.db"`
		MigrationsDir string `env:"SQLITE_MIGRATIONS_DIR" envDefault:"./internal/adapter/sqlite/migrations"`
	}

	Redis struct {
		Address  string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`
		Password string `env:"REDIS_PASSWORD"`
	}

	Token struct {
		Secret   string `env:"TOKEN_SECRET"`
		Duration string `env:"TOKEN_DURATION" envDefault:"24h"`
	}

	Admin struct {
		Email        string `env:"ADMIN_EMAIL"`
		PasswordHash string `env:"ADMIN_PASSWORD_HASH"`
	}
)

type settings struct {
	App    App
	HTTP   HTTP
	Sheets Sheets
	Cache  Cache
	SQLite SQLite
	Redis  Redis
	Token  Token
	Admin  Admin
}

// TTL is the cache lifetime shared by both tiers.
func (c *Cache) TTL() time.Duration {
	return time.Duration(c.DurationMinutes) * time.Minute
}

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	var s settings
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(&s); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Container{
		App:    &s.App,
		HTTP:   &s.HTTP,
		Sheets: &s.Sheets,
		Cache:  &s.Cache,
		SQLite: &s.SQLite,
		Redis:  &s.Redis,
		Token:  &s.Token,
		Admin:  &s.Admin,
	}, nil
}
