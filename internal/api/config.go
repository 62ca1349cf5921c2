package api

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/framegrid/framegrid/pkg/store"
)

// Config holds server settings read from FRAMEGRID_* environment variables.
type Config struct {
	// Addr is the listen address.
	Addr string `env:"FRAMEGRID_ADDR" envDefault:":8080"`

	// Store selects the plan store backend: memory, file, redis, or mongo.
	Store string `env:"FRAMEGRID_STORE" envDefault:"memory"`

	// StoreDir is the plan directory for the file backend. Empty means the
	// default under the user config directory.
	StoreDir string `env:"FRAMEGRID_STORE_DIR"`

	RedisAddr     string `env:"FRAMEGRID_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"FRAMEGRID_REDIS_PASSWORD"`
	RedisDB       int    `env:"FRAMEGRID_REDIS_DB" envDefault:"0"`

	MongoURI      string `env:"FRAMEGRID_MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"FRAMEGRID_MONGO_DB" envDefault:"framegrid"`
}

// LoadConfig parses the environment into a Config.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// OpenStore connects the configured backend and wraps it with store
// instrumentation so backend latency shows up on the observability hooks.
func (c Config) OpenStore(ctx context.Context) (store.Store, error) {
	backend := c.Store
	if backend == "" {
		backend = "memory"
	}

	var (
		inner store.Store
		err   error
	)
	switch backend {
	case "memory":
		inner = store.NewMemoryStore()
	case "file":
		inner, err = store.NewFileStore(c.StoreDir)
	case "redis":
		inner, err = store.NewRedisStore(ctx, store.RedisConfig{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		})
	case "mongo":
		inner, err = store.NewMongoStore(ctx, c.MongoURI, c.MongoDatabase)
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
	if err != nil {
		return nil, err
	}
	return store.Instrument(inner, backend), nil
}
