package ports

import "positionSizer/internal/domain"

// Calculator computes a full set of sizing figures from one set of inputs.
// Implementations must be safe for concurrent use and keep no state between calls.
type Calculator interface {
	Compute(p domain.TradeParameters, ts domain.TrailingStopSpec) domain.EngineResult
}

// MetricsRecorder receives one observation per calculation attempt.
type MetricsRecorder interface {
	ObserveCalculation(res domain.EngineResult)
	ObserveBindingError()
}
