package promstats

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/nlogfacade/core"
	"github.com/philipp01105/nlogfacade/handler"
	"github.com/philipp01105/nlogfacade/handler/consolehandler"
)

type fixedStats handler.Snapshot

func (f fixedStats) Stats() handler.Snapshot { return handler.Snapshot(f) }

func TestCollector_Count(t *testing.T) {
	c := NewCollector("nlog", "console", fixedStats{})
	// One dropped series per level plus blocked, processed and failed.
	assert.Equal(t, len(core.Levels())+3, testutil.CollectAndCount(c))
}

func TestCollector_Values(t *testing.T) {
	src := fixedStats{
		Dropped:   map[core.Level]uint64{core.InfoLevel: 4},
		Blocked:   1,
		Processed: 7,
		Failed:    2,
	}
	c := NewCollector("nlog", "console", src)

	expected := `
# HELP nlog_handler_processed_total Entries written by the handler.
# TYPE nlog_handler_processed_total counter
nlog_handler_processed_total{handler="console"} 7
# HELP nlog_handler_failed_total Entries whose write or message text failed.
# TYPE nlog_handler_failed_total counter
nlog_handler_failed_total{handler="console"} 2
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected),
		"nlog_handler_processed_total", "nlog_handler_failed_total"))

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))
	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != "nlog_handler_dropped_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			level := ""
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "level" {
					level = lp.GetValue()
				}
			}
			want := 0.0
			if level == "info" {
				want = 4
			}
			assert.Equal(t, want, m.GetCounter().GetValue(), "level %s", level)
		}
	}
}

func TestCollector_LiveHandler(t *testing.T) {
	var failures []error
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:  io.Discard,
		OnError: func(err error) { failures = append(failures, err) },
	})
	defer h.Close()

	c := NewCollector("app", "stdout", h.(handler.StatsProvider))
	h.Write(core.InfoLevel, "one", nil)
	h.Write(core.ErrorLevel, "two", errors.New("x"))

	expected := `
# HELP app_handler_processed_total Entries written by the handler.
# TYPE app_handler_processed_total counter
app_handler_processed_total{handler="stdout"} 2
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected), "app_handler_processed_total"))
	assert.Empty(t, failures)
}
