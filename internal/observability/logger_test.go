package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/davidbz/sticker/internal/config"
	"github.com/davidbz/sticker/internal/observability"
)

func TestFromContext_AddsIdentifiers(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	observability.SetLogger(zap.New(core))
	t.Cleanup(func() { observability.SetLogger(nil) })

	ctx := context.Background()
	ctx = observability.WithTraceID(ctx, "trace-1")
	ctx = observability.WithRequestID(ctx, "req-1")
	ctx = observability.WithQuoteID(ctx, "quote-1")

	observability.FromContext(ctx).Info("hello")

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	require.Equal(t, "trace-1", fields["trace_id"])
	require.Equal(t, "req-1", fields["request_id"])
	require.Equal(t, "quote-1", fields["quote_id"])
	require.NotContains(t, fields, "span_id")
}

func TestEventBus_Publish(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	bus := observability.NewEventBus(zap.New(core))

	ctx := observability.WithQuoteID(context.Background(), "quote-9")
	bus.Publish(ctx, "quote.computed", map[string]interface{}{
		"final_price": 147.6,
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "event published", entries[0].Message)

	fields := entries[0].ContextMap()
	require.Equal(t, "quote.computed", fields["event"])
	require.Equal(t, "quote-9", fields["quote_id"])
	require.InDelta(t, 147.6, fields["final_price"], 1e-9)
}

func TestEventBus_NilLogger(t *testing.T) {
	bus := observability.NewEventBus(nil)
	require.NotPanics(t, func() {
		bus.Publish(context.Background(), "quote.computed", nil)
	})
}

func TestInitLogger(t *testing.T) {
	t.Cleanup(func() { observability.SetLogger(nil) })

	t.Run("valid level", func(t *testing.T) {
		logger, err := observability.InitLogger(&config.LogConfig{Level: "debug"})
		require.NoError(t, err)
		require.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := observability.InitLogger(&config.LogConfig{Level: "loud"})
		require.Error(t, err)
	})
}

func TestGenerateIDs(t *testing.T) {
	require.Len(t, observability.GenerateTraceID(), 32)
	require.Len(t, observability.GenerateSpanID(), 16)
	require.NotEqual(t, observability.GenerateRequestID(), observability.GenerateRequestID())
}
