package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithAndInto(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	ctx := With(context.Background(), zap.String("wheel", "prizes"))
	ctx = Into(ctx, "draw")
	Info(ctx, "spin finished", zap.String("winner", "tea"))

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "draw", entries[0].LoggerName)
	assert.Equal(t, "prizes", entries[0].ContextMap()["wheel"])
	assert.Equal(t, "tea", entries[0].ContextMap()["winner"])
}

func TestFromContextNil(t *testing.T) {
	//nolint:staticcheck
	assert.Equal(t, zap.L(), FromContext(nil))
}
