package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	EntrySignals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "burst_entry_signals_total",
			Help: "Total number of entry signals raised (by pair).",
		},
		[]string{"pair"},
	)

	StoplossEvaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "burst_stoploss_evaluations_total",
			Help: "Stop-loss evaluations by pair and outcome.",
		},
		[]string{"pair", "outcome"},
	)

	StoplossLevel = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "burst_stoploss_level",
			Help: "Most recent dynamic stop-loss fraction per pair.",
		},
		[]string{"pair"},
	)
)

func init() {
	prometheus.MustRegister(EntrySignals, StoplossEvaluations, StoplossLevel)
}
