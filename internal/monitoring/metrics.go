package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"positionSizer/internal/domain"
)

var (
	calculationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sizer_calculations_total",
			Help: "Total number of sizing calculations",
		},
		[]string{"direction", "outcome"}, // outcome: ok | invalid_triangle | division_undefined
	)

	riskReducedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sizer_risk_reduced_total",
			Help: "Calculations whose actual risk fell short of the requested risk",
		},
		[]string{"cause"}, // leverage | rounding
	)

	rewardRatio = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sizer_reward_ratio",
			Help:    "Distribution of risk/reward ratios of valid calculations",
			Buckets: []float64{1, 2, 2.5, 3, 4, 7, 10},
		},
	)

	effectiveLeverage = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sizer_effective_leverage",
			Help:    "Distribution of effective leverage of valid calculations",
			Buckets: []float64{0.5, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	bindingErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sizer_binding_errors_total",
			Help: "Requests rejected because an input could not be parsed",
		},
	)
)

func init() {
	prometheus.MustRegister(calculationsTotal, riskReducedTotal)
	prometheus.MustRegister(rewardRatio, effectiveLeverage)
	prometheus.MustRegister(bindingErrorsTotal)
}

// Recorder implements ports.MetricsRecorder on the default registry.
type Recorder struct{}

// NewRecorder creates a new metrics recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// ObserveCalculation records one engine result.
func (Recorder) ObserveCalculation(res domain.EngineResult) {
	outcome := "ok"
	if !res.Valid {
		outcome = string(res.Reason)
	}
	calculationsTotal.WithLabelValues(string(res.Direction), outcome).Inc()
	if !res.Valid {
		return
	}

	if res.Size.RiskReduced {
		cause := "rounding"
		if res.Size.LeverageLimited {
			cause = "leverage"
		}
		riskReducedTotal.WithLabelValues(cause).Inc()
	}
	rewardRatio.Observe(res.Reward.RiskRewardRatio)
	effectiveLeverage.Observe(res.Size.EffectiveLeverage)
}

// ObserveBindingError counts a request rejected by the input binding.
func (Recorder) ObserveBindingError() {
	bindingErrorsTotal.Inc()
}

// Handler serves the Prometheus metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
