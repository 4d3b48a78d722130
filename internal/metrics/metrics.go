package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Stream Metrics
var (
	// StreamTicksTotal tracks completed stream loop ticks
	StreamTicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stream_ticks_total",
			Help: "Total completed stream loop ticks",
		},
	)

	// StreamSkippedTicksTotal tracks ticks skipped due to per-item failures
	StreamSkippedTicksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stream_skipped_ticks_total",
			Help: "Total stream ticks skipped by failure stage",
		},
		[]string{"stage"},
	)

	// StreamRunning tracks whether the generation loop is active (0 or 1)
	StreamRunning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "stream_running",
			Help: "Whether the stream generation loop is active",
		},
	)
)

// Analysis Metrics
var (
	// AnalysisFailuresTotal tracks per-item analysis failures (recovered)
	AnalysisFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analysis_failures_total",
			Help: "Total per-item analysis failures recovered with a neutral default",
		},
	)
)

// Broadcast Metrics
var (
	// ConnectedClients tracks the current number of WebSocket subscribers
	ConnectedClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "broadcast_connected_clients",
			Help: "Current number of connected WebSocket subscribers",
		},
	)

	// EventsPublishedTotal tracks published broadcast events by type
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "broadcast_events_published_total",
			Help: "Total broadcast events published by event type",
		},
		[]string{"type"},
	)

	// SlowClientsEvictedTotal tracks subscribers evicted after failed sends
	SlowClientsEvictedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "broadcast_slow_clients_evicted_total",
			Help: "Total WebSocket subscribers evicted due to failed or slow sends",
		},
	)

	// HubPanicsTotal tracks hub panic recoveries
	HubPanicsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "broadcast_hub_panics_total",
			Help: "Total broadcast hub panic recoveries",
		},
	)
)

// Job Metrics
var (
	// JobsSubmittedTotal tracks accepted bulk-ingestion jobs
	JobsSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ingest_jobs_submitted_total",
			Help: "Total accepted bulk-ingestion jobs",
		},
	)

	// JobsCompletedTotal tracks finished jobs by terminal status
	JobsCompletedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_jobs_completed_total",
			Help: "Total finished bulk-ingestion jobs by terminal status",
		},
		[]string{"status"},
	)

	// JobItemsProcessedTotal tracks individual batch items processed
	JobItemsProcessedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ingest_items_processed_total",
			Help: "Total bulk-ingestion batch items processed",
		},
	)

	// JobErrorRowsTotal tracks items recorded as error rows
	JobErrorRowsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ingest_error_rows_total",
			Help: "Total bulk-ingestion items counted as error rows",
		},
	)

	// JobQueueDepth tracks the current ingestion queue depth
	JobQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ingest_queue_depth",
			Help: "Current number of jobs waiting for a worker",
		},
	)
)

// Persistence Metrics
var (
	// RecordSavesTotal tracks record store writes by status
	RecordSavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "record_saves_total",
			Help: "Total record store writes by status",
		},
		[]string{"status"},
	)

	// CircuitBreakerState tracks the store breaker state (0=closed, 1=half-open, 2=open)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"component"},
	)

	// CircuitBreakerStateChanges tracks breaker state transitions
	CircuitBreakerStateChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_changes_total",
			Help: "Circuit breaker state transitions by component and new state",
		},
		[]string{"component", "state"},
	)
)
