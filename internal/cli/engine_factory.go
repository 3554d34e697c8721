package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/statenav"
	"github.com/aretw0/statenav/internal/logging"
	"github.com/aretw0/statenav/pkg/adapters/file"
	"github.com/aretw0/statenav/pkg/adapters/redis"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/aretw0/statenav/pkg/persistence/middleware"
	"github.com/aretw0/statenav/pkg/ports"
	"github.com/aretw0/statenav/pkg/session"
)

// Options are the settings shared by the CLI commands.
type Options struct {
	// File is the YAML graph definition.
	File string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// Redis, when set, stores sessions in Redis instead of SessionDir.
	Redis string
	// SessionDir holds file-backed sessions.
	SessionDir string
	// JSONLogs switches the log handler to JSON.
	JSONLogs bool
	// SessionKey is a hex encoded AES-256 key; when set, snapshots are stored encrypted.
	SessionKey string
}

// CreateLogger configures the application logger.
// It writes to Stderr to keep Stdout for command output.
func CreateLogger(opts Options) (*slog.Logger, error) {
	if opts.LogLevel == "" {
		return logging.NewNop(), nil
	}
	level, err := logging.ParseLevel(opts.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(stderr, level, opts.JSONLogs), nil
}

// CreateEngine initializes an engine with standard CLI conventions.
func CreateEngine(opts Options, logger *slog.Logger, hooks domain.LifecycleHooks) (*statenav.Engine, error) {
	if opts.File == "" {
		return nil, fmt.Errorf("a graph file is required (--file)")
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		hooks = hooks.Merge(createDebugHooks(logger))
	}

	engine, err := statenav.New(opts.File,
		statenav.WithLogger(logger),
		statenav.WithLifecycleHooks(hooks),
	)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}

// Persistence bundles the session storage picked from Options.
type Persistence struct {
	Store  ports.SnapshotStore
	Locker ports.DistributedLocker
	close  func() error
}

// Close releases the backing connection, if any.
func (p *Persistence) Close() error {
	if p.close == nil {
		return nil
	}
	return p.close()
}

// Manager returns a session manager over the storage.
func (p *Persistence) Manager(engine *statenav.Engine, logger *slog.Logger) *session.Manager {
	opts := []session.Option{session.WithLogger(logger)}
	if engine != nil {
		opts = append(opts, session.WithEngine(engine))
	}
	if p.Locker != nil {
		opts = append(opts, session.WithLocker(p.Locker))
	}
	return session.NewManager(p.Store, opts...)
}

// CreatePersistence chooses Redis when an address is configured and the
// session directory otherwise. Store calls are logged and, with a
// SessionKey, encrypted.
func CreatePersistence(opts Options, logger *slog.Logger) (*Persistence, error) {
	mws := []middleware.Middleware{middleware.NewLoggingMiddleware(logger)}
	if opts.SessionKey != "" {
		key, err := middleware.ParseKey(opts.SessionKey)
		if err != nil {
			return nil, err
		}
		enc, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})
		if err != nil {
			return nil, err
		}
		mws = append(mws, enc)
	}

	if opts.Redis != "" {
		store := redis.New(opts.Redis, "", 0)
		return &Persistence{
			Store:  middleware.Chain(store, mws...),
			Locker: redis.NewLocker(store.Client(), redis.DefaultPrefix),
			close:  store.Close,
		}, nil
	}
	return &Persistence{Store: middleware.Chain(file.New(opts.SessionDir), mws...)}, nil
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnPathAttempt: func(ctx context.Context, e *domain.PathEvent) {
			logger.Debug("Path Attempt", "target", e.Target, "states", e.States, "score", e.Score, "attempt", e.Attempt)
		},
		OnTransition: func(ctx context.Context, e *domain.TransitionEvent) {
			logger.Debug("Transition", "from", e.From, "to", e.To, "ok", e.OK, "duration", e.Duration)
		},
		OnStateChanged: func(ctx context.Context, e *domain.StateEvent) {
			logger.Debug("State Changed", "state_id", e.StateID, "active", e.Active, "hidden", e.Hidden)
		},
		OnNavigation: func(ctx context.Context, e *domain.NavigationEvent) {
			logger.Debug("Navigation", "target", e.Target, "outcome", e.Outcome, "attempts", e.Attempts)
		},
	}
}
