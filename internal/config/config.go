package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

type Config struct {
	App      AppConfig
	JWT      JWTConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	SeedDemo    bool
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type StorageConfig struct {
	Driver string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		SeedDemo:    parseBool(opt("SEED_DEMO", "false")),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  parseDuration(opt("JWT_ACCESS_EXPIRES_IN", "15m")),
		RefreshExpiresIn: parseDuration(opt("JWT_REFRESH_EXPIRES_IN", "168h")),
	}

	cfg.Storage = StorageConfig{
		Driver: opt("STORAGE_DRIVER", StorageDriverMemory),
	}
	if cfg.Storage.Driver != StorageDriverMemory && cfg.Storage.Driver != StorageDriverPostgres {
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST", "localhost"),
		DBPort:     opt("DB_PORT", "5432"),
		DBName:     opt("DB_NAME", ""),
		DBUser:     opt("DB_USER", ""),
		DBPassword: strings.TrimSpace(os.Getenv("DB_PASSWORD")),
		DBSSLMode:  opt("DB_SSL_MODE", "disable"),
	}
	if cfg.Storage.Driver == StorageDriverPostgres {
		if cfg.Database.DBName == "" {
			missing = append(missing, "DB_NAME")
		}
		if cfg.Database.DBUser == "" {
			missing = append(missing, "DB_USER")
		}
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: strings.TrimSpace(os.Getenv("REDIS_PASSWORD")),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func parseDuration(raw string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0
	}
	return d
}

func parseBool(raw string) bool {
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return b
}
