// Package metrics defines the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// JobsTotal counts jobs by terminal status.
	JobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "befund_jobs_total",
		Help: "Processing jobs by terminal status.",
	}, []string{"status"})

	// StepsTotal counts pipeline step executions by outcome.
	StepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "befund_steps_total",
		Help: "Pipeline step executions by outcome.",
	}, []string{"status"})

	// QueueDepth tracks waiting jobs per lane, updated by the health scan.
	QueueDepth = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "befund_queue_depth",
		Help: "Waiting jobs per priority lane.",
	}, []string{"lane"})

	// LLMLatency observes chat completion round-trip time in seconds.
	LLMLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "befund_llm_latency_seconds",
		Help:    "Chat completion latency.",
		Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"model"})

	// LLMTokens counts tokens by direction (input or output).
	LLMTokens = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "befund_llm_tokens_total",
		Help: "LLM tokens consumed, by direction.",
	}, []string{"direction", "model"})

	// JobCost accumulates estimated spend in EUR.
	JobCost = promauto.NewCounter(prometheus.CounterOpts{
		Name: "befund_job_cost_eur_total",
		Help: "Estimated job cost in EUR.",
	})

	// MaintenanceDeletions counts rows removed by the retention sweeps.
	MaintenanceDeletions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "befund_maintenance_deletions_total",
		Help: "Rows deleted by maintenance sweeps, by kind.",
	}, []string{"kind"})

	// InjectionDetections counts prompt injection heuristics that fired.
	InjectionDetections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "befund_injection_detections_total",
		Help: "Prompt injection patterns detected in inbound documents.",
	}, []string{"severity"})
)
