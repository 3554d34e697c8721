package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/statenav"
	"github.com/aretw0/statenav/internal/logging"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/aretw0/statenav/pkg/ports"
)

// DefaultLockTTL bounds how long a distributed lock outlives a crashed holder.
const DefaultLockTTL = 30 * time.Second

// ErrNoEngine is returned by navigation calls on a manager built without an engine.
var ErrNoEngine = errors.New("session manager has no engine")

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager orchestrates session access, ensuring one navigation at a time per session.
// It uses Reference Counting to garbage collect unused locks.
type Manager struct {
	store  ports.SnapshotStore
	engine *statenav.Engine

	mu    sync.Mutex            // Global lock for the map
	locks map[string]*lockEntry // Map of active locks

	locker  ports.DistributedLocker // Optional distributed locker
	lockTTL time.Duration
	logger  *slog.Logger // Logger for internal events (like deferred errors)
}

// Result is the outcome of a navigation on a stored session.
type Result struct {
	SessionID string               `json:"session_id"`
	Target    string               `json:"target"`
	OK        bool                 `json:"ok"`
	Active    []string             `json:"active"`
	Snapshot  *domain.Snapshot     `json:"snapshot"`
	Diff      *domain.SnapshotDiff `json:"diff,omitempty"`
}

// Option configures the Manager.
type Option func(*Manager)

// WithEngine sets the engine used by Open and Close.
func WithEngine(engine *statenav.Engine) Option {
	return func(m *Manager) {
		m.engine = engine
	}
}

// WithLocker enables distributed locking.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithLockTTL sets the distributed lock TTL (default DefaultLockTTL).
func WithLockTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.lockTTL = ttl
		}
	}
}

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a new Session Manager with the given persistence store.
func NewManager(store ports.SnapshotStore, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		locks:   make(map[string]*lockEntry),
		lockTTL: DefaultLockTTL,
		logger:  logging.NewNop(), // Default to no-op
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(sessionID) after unlocking.
func (m *Manager) acquire(sessionID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		entry = &lockEntry{}
		m.locks[sessionID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		return // Should not happen if paired correctly
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, sessionID)
	}
}

// Load retrieves an existing session snapshot from the store.
func (m *Manager) Load(ctx context.Context, sessionID string) (*domain.Snapshot, error) {
	var snap *domain.Snapshot
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		var err error
		snap, err = m.store.Load(ctx, sessionID)
		return err
	})
	return snap, err
}

// LoadOrStart tries to load a session. If not found, it starts one with the
// given active states (or the engine's start states) and persists it.
func (m *Manager) LoadOrStart(ctx context.Context, sessionID string, active ...string) (*domain.Snapshot, error) {
	var snap *domain.Snapshot
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		var err error
		snap, err = m.loadOrStart(ctx, sessionID, active)
		return err
	})
	return snap, err
}

func (m *Manager) loadOrStart(ctx context.Context, sessionID string, active []string) (*domain.Snapshot, error) {
	snap, err := m.store.Load(ctx, sessionID)
	if err == nil {
		return snap, nil
	}
	if !errors.Is(err, domain.ErrSessionNotFound) {
		return nil, fmt.Errorf("failed to check session existence: %w", err)
	}
	if m.engine == nil {
		return nil, ErrNoEngine
	}

	// Not found, create new
	s, err := m.engine.Start(sessionID, active...)
	if err != nil {
		return nil, err
	}
	snap = s.Snapshot()

	// Persist immediately to reserve the ID
	if err := m.store.Save(ctx, sessionID, snap); err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	m.logger.Info("session started", "session_id", sessionID, "active", snap.Active)
	return snap, nil
}

// Open navigates a stored session to target and persists the result.
// Sessions that do not exist yet start on the engine's start states.
func (m *Manager) Open(ctx context.Context, sessionID, target string) (*Result, error) {
	return m.navigate(ctx, sessionID, target, m.engineOpen)
}

// Close closes target on a stored session and persists the result.
func (m *Manager) Close(ctx context.Context, sessionID, target string) (*Result, error) {
	return m.navigate(ctx, sessionID, target, m.engineClose)
}

func (m *Manager) engineOpen(ctx context.Context, s *statenav.Session, target string) (bool, error) {
	return m.engine.OpenState(ctx, s, target)
}

func (m *Manager) engineClose(ctx context.Context, s *statenav.Session, target string) (bool, error) {
	return m.engine.CloseState(ctx, s, target)
}

type operation func(ctx context.Context, s *statenav.Session, target string) (bool, error)

func (m *Manager) navigate(ctx context.Context, sessionID, target string, op operation) (*Result, error) {
	if m.engine == nil {
		return nil, ErrNoEngine
	}

	var result *Result
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		before, err := m.loadOrStart(ctx, sessionID, nil)
		if err != nil {
			return err
		}

		s := m.engine.Restore(before)
		ok, err := op(ctx, s, target)
		if err != nil {
			return err
		}

		after := s.Snapshot()
		if err := m.store.Save(ctx, sessionID, after); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		result = &Result{
			SessionID: sessionID,
			Target:    target,
			OK:        ok,
			Active:    m.engine.ActiveStateNames(s),
			Snapshot:  after,
			Diff:      domain.Diff(before, after),
		}
		return nil
	})
	return result, err
}

// Paths lists the candidate paths from a stored session to target.
func (m *Manager) Paths(ctx context.Context, sessionID, target string) (*domain.Paths, error) {
	if m.engine == nil {
		return nil, ErrNoEngine
	}
	snap, err := m.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return m.engine.Paths(m.engine.Restore(snap), target)
}

// Save persists the session snapshot.
func (m *Manager) Save(ctx context.Context, sessionID string, snap *domain.Snapshot) error {
	return m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		return m.store.Save(ctx, sessionID, snap)
	})
}

// Delete removes the session from the store.
func (m *Manager) Delete(ctx context.Context, sessionID string) error {
	return m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		return m.store.Delete(ctx, sessionID)
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Store returns the underlying snapshot store.
func (m *Manager) Store() ports.SnapshotStore {
	return m.store
}

// Engine returns the engine, or nil.
func (m *Manager) Engine() *statenav.Engine {
	return m.engine
}

// WithLock executes a function while holding the lock for the session.
func (m *Manager) WithLock(ctx context.Context, sessionID string, fn func(context.Context) error) error {
	entry := m.acquire(sessionID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(sessionID)
	}()

	// Distributed Locking
	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, sessionID, m.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				m.logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"session_id", sessionID,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}
