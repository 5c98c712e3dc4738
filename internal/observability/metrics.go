// Package observability expõe métricas Prometheus das avaliações.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/cfo-playbook-api/internal/domain"
)

//go:generate mockgen -source=metrics.go -destination=mocks/recorder.go -package=mocks

// Recorder é o que os casos de uso enxergam das métricas
type Recorder interface {
	ObserveEvaluation(kind string, duration time.Duration)
	RecordRecommendations(recommendations []domain.Recommendation)
	RecordUndefinedKPIs(kpis domain.KPISet)
	RecordScenarioReload(success bool, scenarios int)
}

type Metrics struct {
	EvaluationsTotal     *prometheus.CounterVec
	EvaluationDuration   *prometheus.HistogramVec
	RecommendationsTotal *prometheus.CounterVec
	UndefinedKPIsTotal   *prometheus.CounterVec
	ScenarioReloadsTotal *prometheus.CounterVec
	ScenariosLoaded      prometheus.Gauge
	LastSuccessfulReload prometheus.Gauge

	gatherer prometheus.Gatherer
}

// NewMetrics registra as métricas no registry informado
func NewMetrics(namespace string, registry *prometheus.Registry) *Metrics {
	if namespace == "" {
		namespace = "cfo_playbook"
	}

	factory := promauto.With(registry)

	return &Metrics{
		EvaluationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "evaluations_total",
			Help:      "Total number of evaluations by kind",
		}, []string{"kind"}),
		EvaluationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "evaluation_duration_seconds",
			Help:      "Evaluation latency in seconds",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}, []string{"kind"}),
		RecommendationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "decision",
			Name:      "recommendations_total",
			Help:      "Recommendations issued by check and polarity",
		}, []string{"check", "polarity"}),
		UndefinedKPIsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "decision",
			Name:      "undefined_kpis_total",
			Help:      "KPIs reported as undefined by key",
		}, []string{"kpi"}),
		ScenarioReloadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scenarios",
			Name:      "reloads_total",
			Help:      "Scenario catalog reloads by result",
		}, []string{"result"}),
		ScenariosLoaded: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scenarios",
			Name:      "loaded",
			Help:      "Number of scenarios currently in the catalog",
		}),
		LastSuccessfulReload: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scenarios",
			Name:      "last_successful_reload_timestamp_seconds",
			Help:      "Unix timestamp of the last successful catalog reload",
		}),
		gatherer: registry,
	}
}

func (m *Metrics) ObserveEvaluation(kind string, duration time.Duration) {
	m.EvaluationsTotal.WithLabelValues(kind).Inc()
	m.EvaluationDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

func (m *Metrics) RecordRecommendations(recommendations []domain.Recommendation) {
	for _, r := range recommendations {
		m.RecommendationsTotal.WithLabelValues(string(r.Check), string(r.Polarity)).Inc()
	}
}

func (m *Metrics) RecordUndefinedKPIs(kpis domain.KPISet) {
	for _, key := range domain.KPIKeys {
		if !kpis.Get(key).IsDefined() {
			m.UndefinedKPIsTotal.WithLabelValues(key).Inc()
		}
	}
}

func (m *Metrics) RecordScenarioReload(success bool, scenarios int) {
	if !success {
		m.ScenarioReloadsTotal.WithLabelValues("error").Inc()
		return
	}
	m.ScenarioReloadsTotal.WithLabelValues("success").Inc()
	m.ScenariosLoaded.Set(float64(scenarios))
	m.LastSuccessfulReload.SetToCurrentTime()
}

// Handler expõe o endpoint /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Nop descarta todas as métricas
type Nop struct{}

func (Nop) ObserveEvaluation(string, time.Duration) {}
func (Nop) RecordRecommendations([]domain.Recommendation) {}
func (Nop) RecordUndefinedKPIs(domain.KPISet) {}
func (Nop) RecordScenarioReload(bool, int) {}
