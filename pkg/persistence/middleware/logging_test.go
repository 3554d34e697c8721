package middleware_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/aretw0/statenav/pkg/adapters/memory"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/aretw0/statenav/pkg/persistence/middleware"
)

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	store := middleware.Chain(memory.NewStore(), middleware.NewLoggingMiddleware(logger))
	ctx := context.Background()

	if err := store.Save(ctx, "s1", domain.NewSnapshot("s1")); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load(ctx, "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("Expected ErrSessionNotFound, got %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "op=save") || !strings.Contains(out, "session_id=s1") {
		t.Errorf("Expected save to be logged, got:\n%s", out)
	}
	if strings.Contains(out, "level=WARN") {
		t.Errorf("A missing session should not log a warning, got:\n%s", out)
	}
}

func TestChain_EncryptsBeneathLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	enc, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: generateKey(t)})
	if err != nil {
		t.Fatal(err)
	}
	base := memory.NewStore()
	store := middleware.Chain(base, middleware.NewLoggingMiddleware(logger), enc)
	ctx := context.Background()

	snap := domain.NewSnapshot("s1")
	snap.Active = []domain.StateID{4}
	if err := store.Save(ctx, "s1", snap); err != nil {
		t.Fatal(err)
	}
	raw, err := base.Load(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if len(raw.Sealed) == 0 {
		t.Error("Expected the base store to hold a sealed snapshot")
	}
	if !strings.Contains(buf.String(), "op=save") {
		t.Error("Expected the outer logging middleware to see the save")
	}
}
