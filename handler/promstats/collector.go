// Package promstats exports handler statistics as Prometheus metrics.
package promstats

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/nlogfacade/core"
	"github.com/philipp01105/nlogfacade/handler"
)

// Collector is a prometheus.Collector reading a StatsProvider on every
// scrape. Counters are labelled with the handler name and, for drops,
// the level.
type Collector struct {
	src handler.StatsProvider

	dropped   *prometheus.Desc
	blocked   *prometheus.Desc
	processed *prometheus.Desc
	failed    *prometheus.Desc
}

// NewCollector returns a Collector for src. namespace prefixes every
// metric name; name becomes the "handler" label.
func NewCollector(namespace, name string, src handler.StatsProvider) *Collector {
	const subsystem = "handler"
	labels := prometheus.Labels{"handler": name}

	return &Collector{
		src: src,
		dropped: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "dropped_total"),
			"Entries dropped because the async queue was full.",
			[]string{"level"}, labels,
		),
		blocked: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "blocked_total"),
			"Entries written synchronously after a Block timeout.",
			nil, labels,
		),
		processed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "processed_total"),
			"Entries written by the handler.",
			nil, labels,
		),
		failed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "failed_total"),
			"Entries whose write or message text failed.",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.dropped
	ch <- c.blocked
	ch <- c.processed
	ch <- c.failed
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()
	for _, l := range core.Levels() {
		ch <- prometheus.MustNewConstMetric(c.dropped, prometheus.CounterValue,
			float64(s.Dropped[l]), strings.ToLower(l.String()))
	}
	ch <- prometheus.MustNewConstMetric(c.blocked, prometheus.CounterValue, float64(s.Blocked))
	ch <- prometheus.MustNewConstMetric(c.processed, prometheus.CounterValue, float64(s.Processed))
	ch <- prometheus.MustNewConstMetric(c.failed, prometheus.CounterValue, float64(s.Failed))
}
