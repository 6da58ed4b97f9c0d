package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestGet(t *testing.T) {
	l := Get()
	assert.NotNil(t, l)

	// subsequent calls return the same instance
	assert.Same(t, l, Get())
}

func TestFromCtx(t *testing.T) {
	ctx := context.Background()

	// no logger on the context returns the package logger
	l := FromCtx(ctx)
	assert.NotNil(t, l)

	attached := zap.NewNop().Sugar()
	ctx = WithCtx(ctx, attached)

	got, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger)
	assert.True(t, ok)
	assert.Same(t, attached, got)
}

func TestWithCtxSameLogger(t *testing.T) {
	l := zap.NewNop().Sugar()
	ctx := WithCtx(context.Background(), l)

	// attaching the same logger again returns the same context
	assert.Equal(t, ctx, WithCtx(ctx, l))
}
