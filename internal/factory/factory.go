package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/wordduel/internal/dependencies/clock"
	"github.com/mcoot/wordduel/internal/dependencies/random"
	"github.com/mcoot/wordduel/internal/services/lexicon"
	"github.com/mcoot/wordduel/internal/services/match"
	"github.com/mcoot/wordduel/internal/services/rules"
	"github.com/mcoot/wordduel/internal/services/scoring"
	"github.com/mcoot/wordduel/internal/sse"
	"github.com/mcoot/wordduel/internal/storage"
	"github.com/mcoot/wordduel/internal/storage/memory"
	redisstorage "github.com/mcoot/wordduel/internal/storage/redis"
	sqlitestorage "github.com/mcoot/wordduel/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Lexicon         *lexicon.Service
	Validator       *rules.Validator
	ScoringService  *scoring.Service
	MatchController *match.Controller
	HubManager      *sse.HubManager
	Broadcaster     *sse.Broadcaster
}

// Config holds configuration for the application factory
type Config struct {
	// LexiconPath is the path to the word list (optional)
	// If empty, the lexicon must be loaded manually
	LexiconPath string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend: "memory" (default), "redis" or "sqlite"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLiteConfig holds the database location (required if StorageType is "sqlite")
	SQLiteConfig *sqlitestorage.Config
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	app := newWithDependencies(store, clock.New(), random.New(), logger)

	if cfg.LexiconPath != "" {
		if err := app.Lexicon.Load(ctx, cfg.LexiconPath); err != nil {
			_ = app.Close()
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
	}

	return app, nil
}

func newStorage(ctx context.Context, cfg Config, logger *slog.Logger) (storage.Storage, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		return redisstorage.New(*cfg.RedisConfig)
	case StorageTypeSQLite:
		if cfg.SQLiteConfig == nil {
			return nil, errors.New("SQLiteConfig required when StorageType is sqlite")
		}
		return sqlitestorage.New(ctx, *cfg.SQLiteConfig, logger)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'sqlite'")
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	lexiconService := lexicon.New(store, logger)
	validator := rules.New(lexiconService)
	scoringService := scoring.New(lexiconService)
	matchController := match.NewController(store, validator, scoringService, clk, rnd, logger)
	hubManager := sse.NewHubManager(logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		Lexicon:         lexiconService,
		Validator:       validator,
		ScoringService:  scoringService,
		MatchController: matchController,
		HubManager:      hubManager,
		Broadcaster:     sse.NewBroadcaster(hubManager, logger),
	}
}

// Close disconnects event streams and releases the storage backend
func (a *App) Close() error {
	a.HubManager.Close()
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
