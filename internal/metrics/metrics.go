package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Records written through the API
	RecordsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "records_created_total",
			Help: "Users and posts created through the API",
		},
		[]string{"entity"}, // user|post
	)
	RecordsDeleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "records_deleted_total",
			Help: "Users and posts deleted, cascades included",
		},
		[]string{"entity"},
	)

	// Seed generator
	SeedInserts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seed_inserts_total",
			Help: "Seed insert attempts by entity and outcome",
		},
		[]string{"entity", "outcome"}, // outcome: ok|error
	)

	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)

	initOnce sync.Once
)

// Handler serves /metrics.
var Handler = promhttp.Handler

// Init registers the collectors with the default registry. Safe to call more
// than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestsTotal)
		prometheus.MustRegister(RecordsCreated)
		prometheus.MustRegister(RecordsDeleted)
		prometheus.MustRegister(SeedInserts)
		prometheus.MustRegister(WorkerQueueDepth)
	})
}
