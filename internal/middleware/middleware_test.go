package middleware_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/keshon/cix/internal/console"
	"github.com/keshon/cix/internal/middleware"
)

func TestWithDebugArgsPrint(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	root := console.New("cix")
	var got string
	echo := root.Branch("echo", nil, console.WithHandler(func(args string) error {
		got = args
		return nil
	}, middleware.WithDebugArgsPrint(zap.New(core))))

	require.NoError(t, echo.Handler("a b"))
	assert.Equal(t, "a b", got)

	entries := logs.FilterMessage("run command").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "cix/echo", fields["path"])
	assert.Equal(t, "a b", fields["args"])
}

func TestWithRequiredArgs(t *testing.T) {
	root := console.New("cix")
	ran := false
	start := root.Branch("start", nil,
		console.WithUsage("start <name>"),
		console.WithHandler(func(string) error { ran = true; return nil }, middleware.WithRequiredArgs(1)))

	err := start.Handler("  ")
	assert.ErrorIs(t, err, middleware.ErrUsage)
	assert.ErrorContains(t, err, "start <name>")
	assert.False(t, ran)

	require.NoError(t, start.Handler("web"))
	assert.True(t, ran)
}

func TestWithRecover(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	root := console.New("cix")
	boom := root.Branch("boom", nil, console.WithHandler(func(string) error {
		panic("kaboom")
	}, middleware.WithRecover(zap.New(core))))

	err := boom.Handler("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kaboom")
	assert.Equal(t, 1, logs.Len())

	sentinel := errors.New("plain")
	ok := root.Branch("ok", nil, console.WithHandler(func(string) error {
		return sentinel
	}, middleware.WithRecover(zap.NewNop())))
	assert.ErrorIs(t, ok.Handler(""), sentinel)
}
