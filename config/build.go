package config

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nlogfacade/formatter"
	"github.com/philipp01105/nlogfacade/handler"
	"github.com/philipp01105/nlogfacade/handler/consolehandler"
	"github.com/philipp01105/nlogfacade/handler/filehandler"
	"github.com/philipp01105/nlogfacade/handler/logrushandler"
	"github.com/philipp01105/nlogfacade/handler/multihandler"
	"github.com/philipp01105/nlogfacade/handler/sloghandler"
	"github.com/philipp01105/nlogfacade/handler/zaphandler"
	"github.com/philipp01105/nlogfacade/handler/zerologhandler"
	"github.com/philipp01105/nlogfacade/levels"
	"github.com/philipp01105/nlogfacade/logger"
)

// Build constructs a Logger from the configuration. Every handler shares
// the returned level set, so storing into it retunes the whole Logger.
// Without handlers the Logger writes text to stdout.
func (c *Config) Build() (*logger.Logger, *levels.Set, error) {
	set, err := c.LevelSet()
	if err != nil {
		return nil, nil, err
	}

	specs := c.Handlers
	if len(specs) == 0 {
		specs = []HandlerConfig{{Type: "console"}}
	}

	built := make([]handler.Handler, 0, len(specs))
	for i, spec := range specs {
		h, err := buildHandler(spec, set)
		if err != nil {
			for _, b := range built {
				err = multierr.Append(err, b.Close())
			}
			return nil, nil, errors.Wrapf(err, "config: handlers[%d]", i)
		}
		built = append(built, h)
	}

	if len(built) == 1 {
		return logger.New(built[0]), set, nil
	}
	return logger.New(multihandler.NewMultiHandler(built...)), set, nil
}

func buildHandler(spec HandlerConfig, set *levels.Set) (handler.Handler, error) {
	kind := strings.ToLower(strings.TrimSpace(spec.Type))
	format := strings.ToLower(strings.TrimSpace(spec.Format))
	if format != "" && format != "text" && format != "json" {
		return nil, errors.Errorf("config: unknown format %q", spec.Format)
	}
	jsonOut := format == "json"

	if kind == "file" {
		fh, err := filehandler.NewFileHandler(filehandler.FileConfig{
			Filename:   spec.Filename,
			Levels:     set,
			Formatter:  newFormatter(jsonOut),
			Async:      spec.Async,
			BufferSize: spec.BufferSize,
			MaxSizeMB:  spec.MaxSizeMB,
			MaxBackups: spec.MaxBackups,
			MaxAgeDays: spec.MaxAgeDays,
			Compress:   spec.Compress,
		})
		if err != nil {
			return nil, err
		}
		return fh, nil
	}

	w, err := writerFor(spec.Writer)
	if err != nil {
		return nil, err
	}

	switch kind {
	case "", "console":
		return consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Levels:     set,
			Writer:     w,
			Formatter:  newFormatter(jsonOut),
			Async:      spec.Async,
			BufferSize: spec.BufferSize,
		}), nil

	case "zap":
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc := zapcore.NewConsoleEncoder(encCfg)
		if jsonOut {
			enc = zapcore.NewJSONEncoder(encCfg)
		}
		c := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), zapcore.DebugLevel)
		return zaphandler.New(c, zaphandler.Options{Levels: set}), nil

	case "logrus":
		l := logrus.New()
		l.SetOutput(w)
		l.SetLevel(logrus.TraceLevel)
		if jsonOut {
			l.SetFormatter(&logrus.JSONFormatter{})
		} else {
			l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
		}
		return logrushandler.New(l, set), nil

	case "zerolog":
		var out io.Writer = w
		if !jsonOut {
			out = zerolog.ConsoleWriter{Out: w, NoColor: true}
		}
		l := zerolog.New(out).Level(zerolog.TraceLevel).With().Timestamp().Logger()
		return zerologhandler.New(l, set), nil

	case "slog":
		opts := &slog.HandlerOptions{Level: sloghandler.LevelTrace}
		var sh slog.Handler = slog.NewTextHandler(w, opts)
		if jsonOut {
			sh = slog.NewJSONHandler(w, opts)
		}
		return sloghandler.New(sh, sloghandler.Options{Levels: set}), nil

	default:
		return nil, errors.Wrapf(ErrUnknownHandler, "%q", spec.Type)
	}
}

func newFormatter(jsonOut bool) formatter.Formatter {
	if jsonOut {
		return formatter.NewJSONFormatter(formatter.Config{})
	}
	return formatter.NewTextFormatter(formatter.Config{})
}

func writerFor(name string) (io.Writer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	case "discard":
		return io.Discard, nil
	default:
		return nil, errors.Wrapf(ErrUnknownWriter, "%q", name)
	}
}
