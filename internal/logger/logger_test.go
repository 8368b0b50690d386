package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	previous := log
	log = zap.New(core)
	t.Cleanup(func() { log = previous })

	ctx := WithFields(context.Background(), zap.String("assetID", "mint-1"))
	ctx = WithFields(ctx, zap.String("state", "closing"))

	InfoCtx(ctx, "transition")
	WarnCtx(context.Background(), "plain")

	entries := logs.All()
	require.Len(t, entries, 2)

	fields := entries[0].ContextMap()
	assert.Equal(t, "mint-1", fields["assetID"])
	assert.Equal(t, "closing", fields["state"])
	assert.NotContains(t, entries[1].ContextMap(), "assetID")
}

func TestDefaultLoggerIsUsableBeforeInitialize(t *testing.T) {
	assert.NotPanics(t, func() {
		Default().Info("no-op")
		ErrorCtx(context.Background(), nil)
	})
}

func TestInitialize(t *testing.T) {
	previous := log
	t.Cleanup(func() { log = previous })

	require.NoError(t, Initialize(Config{Debug: true}))
	assert.NotNil(t, Default())
}
