package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"

	"github.com/philipp01105/nlogfacade/core"
	"github.com/philipp01105/nlogfacade/levels"
)

// Format is a configuration file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var (
	// ErrEmptyPath is returned when a config path is empty.
	ErrEmptyPath = errors.New("config: empty config path")

	// ErrUnsupportedFormat is returned for file extensions and formats
	// other than YAML and JSON.
	ErrUnsupportedFormat = errors.New("config: unsupported config format")

	// ErrInvalidLevels is returned when levels is neither a string nor a
	// list of strings.
	ErrInvalidLevels = errors.New("config: levels must be a string or a list of strings")

	// ErrUnknownHandler is returned by Build for an unknown handler type.
	ErrUnknownHandler = errors.New("config: unknown handler type")

	// ErrUnknownWriter is returned by Build for an unknown writer name.
	ErrUnknownWriter = errors.New("config: unknown writer")
)

// HandlerConfig describes one backend.
type HandlerConfig struct {
	// Type is console, file, zap, logrus, zerolog or slog.
	Type string `koanf:"type"`
	// Format is text or json (default: text).
	Format string `koanf:"format"`
	// Writer is stdout, stderr or discard (default: stdout). Ignored by
	// file handlers.
	Writer string `koanf:"writer"`

	Async      bool `koanf:"async"`
	BufferSize int  `koanf:"buffer_size"`

	Filename   string `koanf:"filename"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
	Compress   bool   `koanf:"compress"`
}

// Config is the logging configuration.
type Config struct {
	// Levels is the enabled level set in levels.Parse syntax. In a file
	// it may also be given as a list.
	Levels string `koanf:"-"`
	// Culture is a BCP 47 tag or "invariant".
	Culture  string          `koanf:"culture"`
	Handlers []HandlerConfig `koanf:"handlers"`
}

// Load reads the configuration file at path. The format follows the
// extension (.yaml, .yml or .json).
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", path)
	}
	cfg, err := LoadBytes(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "config: load %s", path)
	}
	return cfg, nil
}

// LoadBytes parses configuration data in the given format. Empty data
// yields an empty configuration.
func LoadBytes(data []byte, format Format) (*Config, error) {
	k := koanf.New(".")
	if len(data) > 0 {
		if err := loadData(k, data, format); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	lv, err := levelsValue(k.Get("levels"))
	if err != nil {
		return nil, err
	}
	cfg.Levels = lv
	return &cfg, nil
}

// LevelSet parses Levels. An empty value enables Info and above.
func (c *Config) LevelSet() (*levels.Set, error) {
	if strings.TrimSpace(c.Levels) == "" {
		return levels.AtLeast(core.InfoLevel), nil
	}
	set, err := levels.Parse(c.Levels)
	if err != nil {
		return nil, errors.Wrap(err, "config: levels")
	}
	return set, nil
}

// LocaleCulture parses Culture.
func (c *Config) LocaleCulture() (core.Culture, error) {
	culture, err := core.ParseCulture(c.Culture)
	if err != nil {
		return nil, errors.Wrapf(err, "config: culture %q", c.Culture)
	}
	return culture, nil
}

// levelsValue accepts "warn,error" as well as [warn, error].
func levelsValue(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case []any:
		parts := make([]string, 0, len(val))
		for i, p := range val {
			s, ok := p.(string)
			if !ok {
				return "", errors.Wrapf(ErrInvalidLevels, "levels[%d] is %T", i, p)
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ","), nil
	default:
		return "", errors.Wrapf(ErrInvalidLevels, "levels is %T", v)
	}
}

func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "extension %q", ext)
	}
}

func loadData(k *koanf.Koanf, data []byte, format Format) error {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "format %q", format)
	}

	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return errors.Wrap(err, "config: parse")
	}
	return nil
}
