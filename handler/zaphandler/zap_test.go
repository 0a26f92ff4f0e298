package zaphandler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/philipp01105/nlogfacade/core"
	"github.com/philipp01105/nlogfacade/levels"
	"github.com/philipp01105/nlogfacade/logger"
)

func TestToZap(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ToZap(core.TraceLevel))
	assert.Equal(t, zapcore.DebugLevel, ToZap(core.DebugLevel))
	assert.Equal(t, zapcore.InfoLevel, ToZap(core.InfoLevel))
	assert.Equal(t, zapcore.WarnLevel, ToZap(core.WarnLevel))
	assert.Equal(t, zapcore.ErrorLevel, ToZap(core.ErrorLevel))
	assert.Equal(t, zapcore.FatalLevel, ToZap(core.FatalLevel))
}

func TestHandler_Write(t *testing.T) {
	obs, logs := observer.New(zapcore.InfoLevel)
	log := logger.New(New(obs, Options{}))

	log.Debug("filtered by zap")
	log.Infof("hello {0}", "zap")
	log.ErrorErr("failed", errors.New("cause"))
	log.Fatal("recorded, not exited")

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	assert.Equal(t, "hello zap", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)

	assert.Equal(t, "failed", entries[1].Message)
	assert.Equal(t, "cause", entries[1].ContextMap()["error"])

	assert.Equal(t, zapcore.FatalLevel, entries[2].Level)
}

func TestHandler_Enabled(t *testing.T) {
	obs, _ := observer.New(zapcore.WarnLevel)

	h := New(obs, Options{})
	assert.False(t, h.Enabled(core.InfoLevel))
	assert.True(t, h.Enabled(core.WarnLevel))

	only := New(obs, Options{Levels: levels.New(core.FatalLevel)})
	assert.False(t, only.Enabled(core.WarnLevel))
	assert.True(t, only.Enabled(core.FatalLevel))
}

func TestNewFromLogger(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	zl := zap.New(obs).With(zap.String("service", "api"))

	h := NewFromLogger(zl, Options{ErrorKey: "err"})
	h.Write(core.WarnLevel, "w", errors.New("e"))
	require.NoError(t, h.Close())

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "api", ctx["service"])
	assert.Equal(t, "e", ctx["err"])
}

func TestHandler_TextFailure(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	var reported []error
	h := New(obs, Options{OnError: func(err error) { reported = append(reported, err) }})

	h.Write(core.InfoLevel, core.NewTemplateMessage(nil, "{2}", []any{"x"}), nil)

	require.Len(t, reported, 1)
	assert.Contains(t, logs.AllUntimed()[0].Message, "!FORMAT_ERROR(")
}
