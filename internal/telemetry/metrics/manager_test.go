package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_RegistersOnOwnRegistry(t *testing.T) {
	m1, reg1 := NewTestManagerAndRegistry()
	m2, _ := NewTestManagerAndRegistry()

	m1.CounterSnapshotsStored.Inc()
	m1.CounterSnapshotsStored.Inc()
	m2.CounterSnapshotsStored.Inc()
	m1.CounterRequests.WithLabelValues("GET", "200").Inc()

	families, err := reg1.Gather()
	require.NoError(t, err)

	byName := map[string]*dto.MetricFamily{}
	for _, f := range families {
		byName[f.GetName()] = f
	}

	stored, ok := byName["mooove_test_server_snapshots_stored"]
	require.True(t, ok)
	require.Len(t, stored.GetMetric(), 1)
	assert.Equal(t, float64(2), stored.GetMetric()[0].GetCounter().GetValue())

	requests, ok := byName["mooove_test_server_request"]
	require.True(t, ok)
	require.Len(t, requests.GetMetric(), 1)
	assert.Equal(t, float64(1), requests.GetMetric()[0].GetCounter().GetValue())
}

func TestSetupPrometheus(t *testing.T) {
	m := NewManager("mooove", "main", SetupPrometheus())
	require.NotNil(t, m)
	m.GaugeLifeSignal.Set(1)
}
