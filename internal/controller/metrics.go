package controller

import "github.com/prometheus/client_golang/prometheus"

var (
	CommandDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_command_duration_ms",
		Help:    "Duration of shell commands in ms",
		Buckets: prometheus.DefBuckets,
	}, []string{"command"})

	CommandOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_command_outcomes_total",
		Help: "Number of shell commands by outcome",
	}, []string{"command", "outcome"})
)

func init() {
	prometheus.MustRegister(CommandDuration, CommandOutcomes)
}
