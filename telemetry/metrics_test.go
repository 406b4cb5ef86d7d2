package telemetry_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valvenet/telemetry"
)

func TestNew_RegistersOnPrivateRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := telemetry.New(reg)

	m.SearchStates.WithLabelValues("single").Add(12)
	m.PairsCompared.Add(3)
	m.ReducedNodes.Set(7)
	m.ObserveStage(telemetry.StageReduce, time.Now())

	assert.Equal(t, 12.0, testutil.ToFloat64(m.SearchStates.WithLabelValues("single")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.PairsCompared))
	assert.Equal(t, 1, testutil.CollectAndCount(m.StageDuration))

	// a second set on a fresh registry must not collide
	require.NotPanics(t, func() { telemetry.New(prometheus.NewRegistry()) })
}

func TestObserveStage_NilReceiver(t *testing.T) {
	var m *telemetry.Metrics
	require.NotPanics(t, func() { m.ObserveStage(telemetry.StageSingle, time.Now()) })
}

func TestWriteText(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := telemetry.New(reg)
	m.ReducedNodes.Set(7)
	m.MasksRecorded.With(prometheus.Labels{"search": telemetry.StagePair}).Set(64)

	var buf bytes.Buffer
	require.NoError(t, telemetry.WriteText(&buf, reg))
	assert.Contains(t, buf.String(), "valvenet_reduced_nodes 7")
	assert.Contains(t, buf.String(), `valvenet_masks_recorded{search="pair"} 64`)
}
