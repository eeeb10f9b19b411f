package metrics

import (
	"maps"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/KristenSantos/swe-5-1-closures-exemplar-Kristen-Santos/internal/shared/interfaces"
	"github.com/KristenSantos/swe-5-1-closures-exemplar-Kristen-Santos/internal/shared/logger"
)

const namespace = "closures"

var _ interfaces.Recorder = (*Metrics)(nil)

// Metrics holds all Prometheus metrics
type Metrics struct {
	identifiersGenerated  prometheus.Counter
	rosterOperationsTotal *prometheus.CounterVec
	sumOfMultiplesTotal   *prometheus.CounterVec

	gatherer prometheus.Gatherer
	logger   *logger.Logger
}

// New creates a new metrics instance registered on a fresh registry
func New(log *logger.Logger) *Metrics {
	return NewWithRegistry(prometheus.NewRegistry(), log)
}

// NewWithRegistry registers the collectors on reg
func NewWithRegistry(reg *prometheus.Registry, log *logger.Logger) *Metrics {
	if log == nil {
		log = logger.Nop()
	}

	m := &Metrics{
		gatherer: reg,
		logger:   log.Named("metrics"),
	}

	factory := promauto.With(reg)
	m.initIdentifierMetrics(factory)
	m.initRosterMetrics(factory)
	m.initSumMetrics(factory)

	m.logger.Debug("Metrics initialized")

	return m
}

func (m *Metrics) initIdentifierMetrics(factory promauto.Factory) {
	m.identifiersGenerated = factory.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "identifiers_generated_total",
			Help:      "Total number of identifiers handed out by generators",
		},
	)
}

func (m *Metrics) initRosterMetrics(factory promauto.Factory) {
	m.rosterOperationsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "roster_operations_total",
			Help:      "Total number of add and remove operations on friend and student rosters",
		},
		[]string{"roster", "operation", "result"},
	)
}

func (m *Metrics) initSumMetrics(factory promauto.Factory) {
	m.sumOfMultiplesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sum_of_multiples_total",
			Help:      "Total number of sum of multiples computations",
		},
		[]string{"result"},
	)
}

// RecordIdentifier counts one generated identifier
func (m *Metrics) RecordIdentifier() {
	m.identifiersGenerated.Inc()
}

// RecordRosterOperation counts one roster add or remove
func (m *Metrics) RecordRosterOperation(roster, operation, result string) {
	m.rosterOperationsTotal.WithLabelValues(roster, operation, result).Inc()
}

// RecordSumOfMultiples counts one computation
func (m *Metrics) RecordSumOfMultiples(result string) {
	m.sumOfMultiplesTotal.WithLabelValues(result).Inc()
}

// Snapshot returns the current value of every counter series keyed by metric
// name and label pairs, e.g. `closures_sum_of_multiples_total{result="ok"}`.
func (m *Metrics) Snapshot() (map[string]float64, error) {
	families, err := m.gatherer.Gather()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64)
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			key := family.GetName()
			if labels := metric.GetLabel(); len(labels) > 0 {
				key += "{"
				for i, label := range labels {
					if i > 0 {
						key += ","
					}
					key += label.GetName() + "=\"" + label.GetValue() + "\""
				}
				key += "}"
			}
			out[key] = metric.GetCounter().GetValue()
		}
	}
	return out, nil
}

// LogSnapshot writes every counter series to the logger at info level
func (m *Metrics) LogSnapshot() {
	snapshot, err := m.Snapshot()
	if err != nil {
		m.logger.Warn("Failed to gather metrics", zap.Error(err))
		return
	}

	fields := make([]zap.Field, 0, len(snapshot))
	for _, key := range slices.Sorted(maps.Keys(snapshot)) {
		fields = append(fields, zap.Float64(key, snapshot[key]))
	}
	m.logger.Info("Metrics snapshot", fields...)
}
