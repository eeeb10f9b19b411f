package metrics

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KristenSantos/swe-5-1-closures-exemplar-Kristen-Santos/internal/shared/interfaces"
	"github.com/KristenSantos/swe-5-1-closures-exemplar-Kristen-Santos/internal/shared/logger"
)

func TestRecorders(t *testing.T) {
	m := New(nil)

	m.RecordIdentifier()
	m.RecordIdentifier()
	m.RecordRosterOperation(interfaces.RosterFriends, interfaces.OperationAdd, interfaces.ResultOK)
	m.RecordRosterOperation(interfaces.RosterStudents, interfaces.OperationRemove, interfaces.ResultNotFound)
	m.RecordSumOfMultiples(interfaces.ResultInvalidFactor)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.identifiersGenerated))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.rosterOperationsTotal.WithLabelValues("friends", "add", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.rosterOperationsTotal.WithLabelValues("students", "remove", "not_found")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.sumOfMultiplesTotal.WithLabelValues("invalid_factor")))
}

func TestInstancesDoNotShareRegistries(t *testing.T) {
	first := New(nil)
	second := New(nil)

	first.RecordIdentifier()

	assert.Equal(t, float64(1), testutil.ToFloat64(first.identifiersGenerated))
	assert.Equal(t, float64(0), testutil.ToFloat64(second.identifiersGenerated))
}

func TestNewWithRegistry_RejectsDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewWithRegistry(reg, nil)

	assert.Panics(t, func() { NewWithRegistry(reg, nil) })
}

func TestSnapshot(t *testing.T) {
	m := New(nil)
	m.RecordIdentifier()
	m.RecordSumOfMultiples(interfaces.ResultOK)

	snapshot, err := m.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, float64(1), snapshot["closures_identifiers_generated_total"])
	assert.Equal(t, float64(1), snapshot[`closures_sum_of_multiples_total{result="ok"}`])
}

func TestLogSnapshot(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Environment: "production", Console: &buf})
	require.NoError(t, err)

	m := New(log)
	m.RecordIdentifier()
	m.LogSnapshot()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "raw output: %s", buf.String())
	assert.Equal(t, "Metrics snapshot", entry["msg"])
	assert.Equal(t, "metrics", entry["logger"])
	assert.Equal(t, float64(1), entry["closures_identifiers_generated_total"])
}

func TestImplementsRecorder(t *testing.T) {
	var r interfaces.Recorder = New(nil)
	assert.NotNil(t, r)
}
