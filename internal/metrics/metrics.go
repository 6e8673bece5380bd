// Package metrics defines the Prometheus collectors for the extraction and
// materialization pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the pipeline counters. One instance is created per
// application and shared by injection; collectors are registered on the
// registry the caller supplies.
type Metrics struct {
	PagesParsed          prometheus.Counter
	PagesSkipped         prometheus.Counter
	RowsParsed           prometheus.Counter
	RowsDropped          prometheus.Counter
	DocumentsIngested    prometheus.Counter
	SessionsMaterialized prometheus.Counter
}

// New registers the pipeline collectors on reg and returns them.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PagesParsed: factory.NewCounter(prometheus.CounterOpts{
			Name: "pitwall_extraction_pages_parsed_total",
			Help: "Timetable pages successfully turned into day records.",
		}),
		PagesSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "pitwall_extraction_pages_skipped_total",
			Help: "Timetable pages skipped (no usable table or day info).",
		}),
		RowsParsed: factory.NewCounter(prometheus.CounterOpts{
			Name: "pitwall_extraction_rows_parsed_total",
			Help: "Table rows classified into event records.",
		}),
		RowsDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "pitwall_extraction_rows_dropped_total",
			Help: "Table rows discarded as noise.",
		}),
		DocumentsIngested: factory.NewCounter(prometheus.CounterOpts{
			Name: "pitwall_documents_ingested_total",
			Help: "Timetable documents extracted and stored.",
		}),
		SessionsMaterialized: factory.NewCounter(prometheus.CounterOpts{
			Name: "pitwall_sessions_materialized_total",
			Help: "Sessions produced by materialization passes.",
		}),
	}
}
