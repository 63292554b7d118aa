package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/protocols-go/internal/config"
	"github.com/mcoot/protocols-go/internal/dependencies/clock"
	"github.com/mcoot/protocols-go/internal/dependencies/random"
	"github.com/mcoot/protocols-go/internal/services/dice"
	"github.com/mcoot/protocols-go/internal/services/fleet"
	"github.com/mcoot/protocols-go/internal/storage"
	"github.com/mcoot/protocols-go/internal/storage/memory"
	redisstorage "github.com/mcoot/protocols-go/internal/storage/redis"
	"github.com/mcoot/protocols-go/internal/web/sse"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock     clock.Clock
	Random    random.Random
	Generator random.Generator

	// Services
	DiceService  *dice.Service
	FleetService *fleet.Service

	// Feed streams registrations and rolls to web clients
	Feed *sse.Hub
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Seed fixes the dice generator sequence (optional)
	// If zero, the generator is seeded from crypto/rand
	Seed uint64
}

// ConfigFromServer builds a factory Config from the environment-backed server settings
func ConfigFromServer(srv config.Server, logger *slog.Logger) Config {
	cfg := Config{
		Logger:      logger,
		StorageType: srv.StorageType,
		Seed:        srv.Seed,
	}
	if srv.StorageType == config.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = srv.RedisURL
		redisCfg.RollTTL = srv.RollTTL
		cfg.RedisConfig = &redisCfg
	}
	return cfg
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageTypeMemory
	}

	switch storageType {
	case config.StorageTypeMemory:
		store = memory.New()
	case config.StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	var gen *random.OneThroughTen
	if cfg.Seed != 0 {
		gen = random.NewOneThroughTen(cfg.Seed)
	} else {
		var err error
		gen, err = random.NewOneThroughTenFromEntropy()
		if err != nil {
			return nil, fmt.Errorf("seed generator: %w", err)
		}
	}

	return newWithDependencies(store, clock.New(), random.New(), gen, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, gen random.Generator, logger *slog.Logger) *App {
	diceService := dice.NewService(store, gen, clk, rnd, logger)
	fleetService := fleet.New(store, clk, rnd, logger)

	feed := sse.NewHub(logger)
	go feed.Run()

	broadcaster := sse.NewBroadcaster(feed, logger)
	diceService.AddListener(broadcaster)
	fleetService.AddListener(broadcaster)

	return &App{
		Storage:      store,
		Clock:        clk,
		Random:       rnd,
		Generator:    gen,
		DiceService:  diceService,
		FleetService: fleetService,
		Feed:         feed,
	}
}

// Close stops the feed and releases the storage connection, if any
func (a *App) Close() error {
	a.Feed.Close()
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
