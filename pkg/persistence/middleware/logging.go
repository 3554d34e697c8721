package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aretw0/statenav/pkg/domain"
	"github.com/aretw0/statenav/pkg/ports"
)

type loggingMiddleware struct {
	next   ports.SnapshotStore
	logger *slog.Logger
}

// NewLoggingMiddleware logs every store call at debug level and failures at warn.
// A missing session is not a failure.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ports.SnapshotStore) ports.SnapshotStore {
		return &loggingMiddleware{next: next, logger: logger}
	}
}

func (m *loggingMiddleware) log(ctx context.Context, op, sessionID string, start time.Time, err error) {
	attrs := []any{"op", op, "session_id", sessionID, "duration", time.Since(start)}
	if err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		m.logger.WarnContext(ctx, "Snapshot store failed", append(attrs, "err", err)...)
		return
	}
	m.logger.DebugContext(ctx, "Snapshot store", attrs...)
}

func (m *loggingMiddleware) Save(ctx context.Context, sessionID string, snap *domain.Snapshot) error {
	start := time.Now()
	err := m.next.Save(ctx, sessionID, snap)
	m.log(ctx, "save", sessionID, start, err)
	return err
}

func (m *loggingMiddleware) Load(ctx context.Context, sessionID string) (*domain.Snapshot, error) {
	start := time.Now()
	snap, err := m.next.Load(ctx, sessionID)
	m.log(ctx, "load", sessionID, start, err)
	return snap, err
}

func (m *loggingMiddleware) Delete(ctx context.Context, sessionID string) error {
	start := time.Now()
	err := m.next.Delete(ctx, sessionID)
	m.log(ctx, "delete", sessionID, start, err)
	return err
}

func (m *loggingMiddleware) List(ctx context.Context) ([]string, error) {
	start := time.Now()
	ids, err := m.next.List(ctx)
	m.log(ctx, "list", "", start, err)
	return ids, err
}
