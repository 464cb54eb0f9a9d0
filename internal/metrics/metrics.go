package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"whatis/internal/db"
)

var (
	queriesDesc = prometheus.NewDesc(
		"whatis_queries_total",
		"Total glossary queries by outcome",
		[]string{"outcome"},
		nil,
	)
	termsDesc = prometheus.NewDesc(
		"whatis_terms",
		"Number of glossary entries",
		nil,
		nil,
	)

	logAppendFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "whatis_query_log_append_failures_total",
		Help: "Query-log appends that failed (lookups still served)",
	})
)

// GlossaryCollector is a custom Prometheus collector that reads query and
// term aggregates from the database on each scrape.
type GlossaryCollector struct {
	db *db.DB
}

// Describe sends the metric descriptors to the channel.
func (c *GlossaryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- queriesDesc
	ch <- termsDesc
}

// Collect queries the database for aggregates and emits them.
func (c *GlossaryCollector) Collect(ch chan<- prometheus.Metric) {
	ctx := context.Background()

	counts, err := c.db.QueryOutcomeCounts(ctx)
	if err != nil {
		slog.Error("failed to collect query metrics", "error", err)
	} else {
		ch <- prometheus.MustNewConstMetric(queriesDesc, prometheus.CounterValue, float64(counts.Found), "found")
		ch <- prometheus.MustNewConstMetric(queriesDesc, prometheus.CounterValue, float64(counts.NotFound), "not_found")
	}

	termCount, err := c.db.CountTerms(ctx)
	if err != nil {
		slog.Error("failed to collect term count metric", "error", err)
		return
	}
	ch <- prometheus.MustNewConstMetric(termsDesc, prometheus.GaugeValue, float64(termCount))
}

var initOnce sync.Once

// Init registers the collectors. Must be called once at startup.
func Init(database *db.DB) {
	initOnce.Do(func() {
		prometheus.MustRegister(&GlossaryCollector{db: database})
		prometheus.MustRegister(logAppendFailures)
	})
}

// RecordLogAppendFailure counts a failed query-log append.
func RecordLogAppendFailure() {
	logAppendFailures.Inc()
}
