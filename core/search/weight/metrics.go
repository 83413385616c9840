package weight

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	MetricWeightsCreatedTotal = "weight_schemes_created_total"
	MetricWeightErrorsTotal   = "weight_scheme_errors_total"
)

// Sources of a created scheme.
const (
	SourceLoad        = "load"
	SourceParameters  = "parameters"
	SourceDeserialize = "deserialize"
)

// Error kinds.
const (
	ErrorInvalidArgument = "invalid_argument"
	ErrorSerialization   = "serialization"
	ErrorUnknownScheme   = "unknown_scheme"
)

// Metrics counts schemes built through the registry and the failures
// seen doing so. A nil *Metrics records nothing.
type Metrics struct {
	created *prometheus.CounterVec
	errors  *prometheus.CounterVec
}

// NewMetrics creates the collectors. They are not registered; call
// Register to register them with a registry.
func NewMetrics() *Metrics {
	return &Metrics{
		created: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricWeightsCreatedTotal,
				Help: "Total number of weighting schemes created by scheme and source",
			},
			[]string{"scheme", "source"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricWeightErrorsTotal,
				Help: "Total number of rejected weighting scheme configurations by scheme and kind",
			},
			[]string{"scheme", "kind"},
		),
	}
}

func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.created, m.errors}
}

func (m *Metrics) IncCreated(scheme, source string) {
	if m == nil {
		return
	}
	m.created.WithLabelValues(scheme, source).Inc()
}

func (m *Metrics) IncErrors(scheme, kind string) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(scheme, kind).Inc()
}
