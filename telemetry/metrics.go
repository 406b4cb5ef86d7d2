// Package telemetry exposes Prometheus instruments for the valve search.
//
// Metrics are registered on a caller-supplied Registerer, never the global
// default.
package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Stage labels for StageDuration.
const (
	StageReduce   = "reduce"
	StageSingle   = "single"
	StagePair     = "pair"
	StageCombine  = "combine"
	metricsPrefix = "valvenet_"
)

// Metrics groups the instruments updated by solver.Solve.
type Metrics struct {
	// SearchStates counts optimizer states explored, by search (single or pair).
	SearchStates *prometheus.CounterVec

	// MasksRecorded reports the size of the last SubsetOptimum table, by search (single or pair).
	MasksRecorded *prometheus.GaugeVec

	// PairsCompared counts mask pairs examined by the combiner.
	PairsCompared prometheus.Counter

	// ReducedNodes reports k for the last reduction.
	ReducedNodes prometheus.Gauge

	// UnreachableNodes reports reward nodes unreachable from the start.
	UnreachableNodes prometheus.Gauge

	// StageDuration measures wall time per pipeline stage.
	StageDuration *prometheus.HistogramVec
}

// New creates the instruments and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SearchStates: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricsPrefix + "search_states_total",
				Help: "Total number of optimizer search states explored",
			},
			[]string{"search"},
		),
		MasksRecorded: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: metricsPrefix + "masks_recorded",
				Help: "Activation sets recorded in the last SubsetOptimum table",
			},
			[]string{"search"},
		),
		PairsCompared: f.NewCounter(prometheus.CounterOpts{
			Name: metricsPrefix + "pairs_compared_total",
			Help: "Total number of mask pairs examined by the combiner",
		}),
		ReducedNodes: f.NewGauge(prometheus.GaugeOpts{
			Name: metricsPrefix + "reduced_nodes",
			Help: "Nodes kept by the last distance reduction, start included",
		}),
		UnreachableNodes: f.NewGauge(prometheus.GaugeOpts{
			Name: metricsPrefix + "unreachable_reward_nodes",
			Help: "Reward nodes unreachable from the start in the last reduction",
		}),
		StageDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricsPrefix + "stage_duration_seconds",
				Help:    "Duration of pipeline stages in seconds",
				Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5, 30},
			},
			[]string{"stage"},
		),
	}
}

// ObserveStage records the time elapsed since start for stage.
// It is a no-op on a nil receiver.
func (m *Metrics) ObserveStage(stage string, start time.Time) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

// WriteText gathers g and writes it in the Prometheus text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("telemetry: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("telemetry: write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
