package log_test

import (
	"context"
	"testing"

	"customer-support/pkg/log"
)

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if got := log.RequestIDFromContext(ctx); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}

	ctx = log.WithRequestID(ctx, "req-1")
	if got := log.RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
}

func TestInit(t *testing.T) {
	t.Run("unknown level falls back", func(t *testing.T) {
		l := log.Init(log.ZapConfig{Level: "loud", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole})
		if l == nil {
			t.Fatal("expected logger")
		}
		l.Debugf(context.Background(), "debug %d", 1)
	})

	t.Run("json production", func(t *testing.T) {
		l := log.Init(log.ZapConfig{Level: "warn", Mode: log.ModeProduction, Encoding: log.EncodingJSON})
		l.Info(log.WithRequestID(context.Background(), "abc"), "suppressed")
	})

	t.Run("nop", func(t *testing.T) {
		l := log.NewNop()
		l.Errorf(context.Background(), "nothing %s", "here")
	})
}
