package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for the report run.
var Registry = prometheus.NewRegistry()

// factory registers metrics on the custom Registry directly.
var factory = promauto.With(Registry)

// TicketsLoaded counts rows decoded per source CSV.
var TicketsLoaded = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "report",
	Name:      "tickets_loaded_total",
	Help:      "Rows decoded from each source CSV",
}, []string{"source"})

// TimestampsCoerced counts malformed Last Modified Date cells coerced to null.
var TimestampsCoerced = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "report",
	Name:      "timestamps_coerced_total",
	Help:      "Unparseable last-modified cells coerced to null per source",
}, []string{"source"})

// ActiveTickets is the active count after normalization.
var ActiveTickets = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "report",
	Name:      "active_tickets",
	Help:      "Active tickets remaining after normalization",
})

// ClosedTickets is the closed count after normalization.
var ClosedTickets = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "report",
	Name:      "closed_tickets",
	Help:      "Closed tickets remaining after normalization",
})

// ReclassifiedTickets counts active rows moved to closed on a resolved status.
var ReclassifiedTickets = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "report",
	Name:      "reclassified_tickets",
	Help:      "Active rows reclassified as closed by their resolved status",
})

// ExcludedTickets counts rows dropped by the requester exclusion list.
var ExcludedTickets = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "report",
	Name:      "excluded_tickets",
	Help:      "Closed rows dropped by the requester exclusion list",
})

// StoreMatchedTickets counts closed rows attributed to a catalog store.
var StoreMatchedTickets = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "report",
	Name:      "store_matched_tickets",
	Help:      "Closed rows whose requester matched a catalog store",
})

// ChartsRendered counts chart artifacts written this run.
var ChartsRendered = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "report",
	Name:      "charts_rendered_total",
	Help:      "Chart artifacts rendered",
})

// ChartsSkipped counts charts skipped because their view was empty.
var ChartsSkipped = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "report",
	Name:      "charts_skipped_total",
	Help:      "Charts skipped due to an empty view",
})

// DocumentPages is the page count of the generated document.
var DocumentPages = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "report",
	Name:      "document_pages",
	Help:      "Pages in the generated report document",
})

// StageDurationSeconds tracks wall time per pipeline stage.
var StageDurationSeconds = factory.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "report",
	Name:      "stage_duration_seconds",
	Help:      "Time taken by each pipeline stage",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
}, []string{"stage"})
