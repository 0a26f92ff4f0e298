package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/nlogfacade/core"
	"github.com/philipp01105/nlogfacade/handler/multihandler"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "log.yaml", `
levels: warn,error
culture: de-DE
handlers:
  - type: console
    format: json
    writer: discard
    async: true
    buffer_size: 64
  - type: file
    filename: /tmp/x.log
    max_size_mb: 5
    max_backups: 2
    compress: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn,error", cfg.Levels)
	assert.Equal(t, "de-DE", cfg.Culture)
	require.Len(t, cfg.Handlers, 2)
	assert.Equal(t, HandlerConfig{
		Type: "console", Format: "json", Writer: "discard", Async: true, BufferSize: 64,
	}, cfg.Handlers[0])
	assert.Equal(t, "file", cfg.Handlers[1].Type)
	assert.Equal(t, 5, cfg.Handlers[1].MaxSizeMB)
	assert.Equal(t, 2, cfg.Handlers[1].MaxBackups)
	assert.True(t, cfg.Handlers[1].Compress)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "log.json", `{"levels":["debug","error"],"handlers":[{"type":"slog","writer":"discard"}]}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug,error", cfg.Levels)
	require.Len(t, cfg.Handlers, 1)
	assert.Equal(t, "slog", cfg.Handlers[0].Type)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("")
	assert.True(t, errors.Is(err, ErrEmptyPath))

	_, err = Load("log.toml")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeFile(t, "bad.json", `{"levels":`)
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadBytes_UnsupportedFormat(t *testing.T) {
	_, err := LoadBytes([]byte("levels: all"), Format("toml"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestLoadBytes_Empty(t *testing.T) {
	cfg, err := LoadBytes(nil, FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, cfg.Levels)
	assert.Empty(t, cfg.Handlers)
}

func TestLoadBytes_InvalidLevels(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"number", "levels: 3\n", FormatYAML},
		{"map", "levels:\n  min: info\n", FormatYAML},
		{"list with number", `{"levels":["warn",2]}`, FormatJSON},
		{"bool", `{"levels":true}`, FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadBytes([]byte(tt.data), tt.format)
			assert.Nil(t, cfg)
			assert.True(t, errors.Is(err, ErrInvalidLevels), "got %v", err)
		})
	}
}

func TestConfig_LevelSet(t *testing.T) {
	set, err := (&Config{}).LevelSet()
	require.NoError(t, err)
	assert.Equal(t, "info,warn,error,fatal", set.String())

	set, err = (&Config{Levels: "off"}).LevelSet()
	require.NoError(t, err)
	assert.Equal(t, "off", set.String())

	_, err = (&Config{Levels: "loud"}).LevelSet()
	assert.Error(t, err)
}

func TestConfig_LocaleCulture(t *testing.T) {
	c, err := (&Config{}).LocaleCulture()
	require.NoError(t, err)
	assert.Equal(t, core.Invariant, c)

	_, err = (&Config{Culture: "not a tag!"}).LocaleCulture()
	assert.Error(t, err)
}

func TestBuild_AllHandlerTypes(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		Levels: "warn+",
		Handlers: []HandlerConfig{
			{Type: "console", Writer: "discard"},
			{Type: "console", Writer: "discard", Format: "json", Async: true},
			{Type: "file", Filename: filepath.Join(dir, "app.log"), Format: "json"},
			{Type: "zap", Writer: "discard"},
			{Type: "logrus", Writer: "discard", Format: "json"},
			{Type: "zerolog", Writer: "discard"},
			{Type: "slog", Writer: "discard", Format: "json"},
		},
	}

	l, set, err := cfg.Build()
	require.NoError(t, err)

	mh, ok := l.Handler().(*multihandler.MultiHandler)
	require.True(t, ok)
	assert.Len(t, mh.Handlers(), 7)

	assert.False(t, l.IsInfoEnabled())
	assert.True(t, l.IsWarnEnabled())
	l.Warnf("disk {0} almost full", "/var")

	set.Enable(core.DebugLevel)
	assert.True(t, l.IsDebugEnabled())

	require.NoError(t, l.Close())

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"disk /var almost full"`)
}

func TestBuild_DefaultsToConsole(t *testing.T) {
	l, set, err := (&Config{Levels: "off"}).Build()
	require.NoError(t, err)
	assert.NotNil(t, l.Handler())
	assert.Equal(t, "off", set.String())
	assert.NoError(t, l.Close())
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		target error
	}{
		{"unknown handler", Config{Handlers: []HandlerConfig{{Type: "syslog"}}}, ErrUnknownHandler},
		{"unknown writer", Config{Handlers: []HandlerConfig{{Type: "console", Writer: "printer"}}}, ErrUnknownWriter},
		{"bad format", Config{Handlers: []HandlerConfig{{Type: "console", Format: "xml"}}}, nil},
		{"bad levels", Config{Levels: "loud"}, nil},
		{"no filename", Config{Handlers: []HandlerConfig{
			{Type: "console", Writer: "discard", Async: true},
			{Type: "file"},
		}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, set, err := tt.cfg.Build()
			require.Error(t, err)
			assert.Nil(t, l)
			assert.Nil(t, set)
			if tt.target != nil {
				assert.True(t, errors.Is(err, tt.target), "got %v", err)
			}
		})
	}
}
