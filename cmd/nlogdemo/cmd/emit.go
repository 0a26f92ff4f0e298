package cmd

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/philipp01105/nlogfacade/config"
	"github.com/philipp01105/nlogfacade/core"
	"github.com/philipp01105/nlogfacade/handler"
	"github.com/philipp01105/nlogfacade/handler/consolehandler"
	"github.com/philipp01105/nlogfacade/handler/promstats"
	"github.com/philipp01105/nlogfacade/levels"
	"github.com/philipp01105/nlogfacade/logger"
)

func (c *command) initEmitCmd() {
	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Log one sample of every level and call shape",
		Long: `Log one sample of every level and call shape.

With --watch the samples repeat every --interval for the given duration,
and level changes in the config file apply while it runs.`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			watch, err := cmd.Flags().GetDuration(optionNameWatch)
			if err != nil {
				return err
			}
			interval, err := cmd.Flags().GetDuration(optionNameInterval)
			if err != nil {
				return err
			}
			metricsAddr, err := cmd.Flags().GetString(optionNameMetricsAddr)
			if err != nil {
				return err
			}

			log, set, culture, err := c.buildLogger(cmd)
			if err != nil {
				return err
			}
			defer func() {
				err = multierr.Append(err, log.Close())
			}()

			if metricsAddr != "" {
				stop, serveErr := serveMetrics(log, metricsAddr)
				if serveErr != nil {
					return serveErr
				}
				defer func() {
					err = multierr.Append(err, stop())
				}()
			}

			if watch <= 0 {
				emitSamples(log, culture, 1)
				return nil
			}

			if c.cfgFile != "" {
				w, watchErr := config.Watch(c.cfgFile, set, config.WithOnReload(func(_ *config.Config, err error) {
					if err != nil {
						cmd.PrintErrln("reload failed:", err)
						return
					}
					cmd.PrintErrln("levels:", set)
				}))
				if watchErr != nil {
					return watchErr
				}
				defer func() {
					err = multierr.Append(err, w.Stop())
				}()
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			ctx, cancelTimeout := context.WithTimeout(ctx, watch)
			defer cancelTimeout()

			return emitLoop(ctx, log, culture, interval)
		},
	}

	cmd.Flags().Duration(optionNameWatch, 0, "keep emitting for this long and follow config changes")
	cmd.Flags().Duration(optionNameInterval, time.Second, "pause between samples with --watch")
	cmd.Flags().String(optionNameMetricsAddr, "", "serve handler counters for Prometheus on this address")

	c.root.AddCommand(cmd)
}

// buildLogger builds from --config, or falls back to a text console
// handler on the command output with Info and above enabled.
func (c *command) buildLogger(cmd *cobra.Command) (*logger.Logger, *levels.Set, core.Culture, error) {
	if c.cfgFile == "" {
		set := levels.AtLeast(core.InfoLevel)
		h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Levels: set,
			Writer: cmd.OutOrStdout(),
		})
		return logger.New(h), set, core.Invariant, nil
	}

	cfg, err := config.Load(c.cfgFile)
	if err != nil {
		return nil, nil, nil, err
	}
	culture, err := cfg.LocaleCulture()
	if err != nil {
		return nil, nil, nil, err
	}
	log, set, err := cfg.Build()
	if err != nil {
		return nil, nil, nil, err
	}
	return log, set, culture, nil
}

// emitLoop emits until the deadline passes or a signal arrives.
func emitLoop(ctx context.Context, log *logger.Logger, culture core.Culture, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for round := 1; ; round++ {
		emitSamples(log, culture, round)
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

var errSample = errors.New("sample failure")

func emitSamples(log *logger.Logger, culture core.Culture, round int) {
	log.Tracef("round {0}: trace template", round)
	log.DebugFunc(func() string { return "debug callback" })
	log.Infof("round {0}: {1} requests in {2:N1} ms", round, 1200, 15.26)
	log.InfofIn(culture, "round {0}: total {1:N2}", round, 1234567.891)
	log.Warnf("round {0}: queue at {1}%", round, 85)
	log.ErrorErr("request failed", errSample)
	log.FatalfErr(errSample, "round {0}: fatal sample, process keeps running", round)
}

// serveMetrics exposes the counters of log's handler, when it keeps any.
func serveMetrics(log *logger.Logger, addr string) (stop func() error, err error) {
	registry := prometheus.NewRegistry()
	if sp, ok := log.Handler().(handler.StatsProvider); ok {
		if err := registry.Register(promstats.NewCollector("nlogdemo", "root", sp)); err != nil {
			return nil, errors.Wrap(err, "register handler metrics")
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrap(err, "metrics listener")
	}

	errc := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return multierr.Append(srv.Shutdown(ctx), <-errc)
	}, nil
}
