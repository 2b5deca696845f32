package risk

import (
	"math"

	"positionSizer/internal/domain"
)

// CalculateTrailingStop prices a trailing stop expressed in risk multiples. The
// signed risk unit (entry - stop-loss) makes the same formula work for longs and
// shorts. Out-of-range multiples are computed as given, never rejected.
func CalculateTrailingStop(spec domain.TrailingStopSpec, entry, stopLoss, actualSize, riskUnit float64) domain.TrailingStopResult {
	signed := entry - stopLoss
	res := domain.TrailingStopResult{
		TriggerPrice: entry + spec.TriggerMultiple*signed,
		LimitPrice:   entry + spec.LockMultiple*signed,
	}
	res.LimitChangePercent = 100 * math.Abs(res.LimitPrice/entry-1)

	if spec.LockMultiple > 0 {
		res.LocksProfit = true
		res.MinProfit = actualSize * riskUnit * spec.LockMultiple
	} else {
		res.MaxLoss = math.Abs(actualSize * riskUnit * spec.LockMultiple)
	}
	return res
}
