package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"laborlink/internal/config"
	"laborlink/internal/infrastructure/cache"
	"laborlink/internal/pkg/jwt"
	"laborlink/internal/storage"
	"laborlink/internal/storage/memory"
	"laborlink/internal/storage/postgres"
	"laborlink/internal/storage/seed"
)

// Container holds the long-lived collaborators the HTTP layer is built from.
type Container struct {
	Config config.Config
	Store  storage.Storage
	Cache  *cache.Redis
	JWT    jwt.Service
	Logger *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.App.SeedDemo {
		if err := seed.Apply(ctx, store); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
		logger.Printf("seeded demo data")
	}

	return &Container{
		Config: cfg,
		Store:  store,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		JWT:    jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessExpiresIn, cfg.JWT.RefreshExpiresIn),
		Logger: logger,
	}, nil
}

func openStore(ctx context.Context, cfg config.Config) (storage.Storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		st, err := postgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := st.EnsureSchema(ctx); err != nil {
			_ = st.Close()
			return nil, err
		}
		return st, nil
	case config.StorageDriverMemory:
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var firstErr error
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if c.Store != nil {
		if err := c.Store.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
