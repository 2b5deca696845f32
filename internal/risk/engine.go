package risk

import (
	"math"

	"positionSizer/internal/domain"
)

// Compute runs the full pipeline for one set of inputs: validation, risk
// resolution, sizing, then reward and trailing stop. It never fails; an invalid
// triangle is reported through Valid and Reason, and in that case no figures
// are produced. A zero risk unit always fails the triangle first, so the
// ReasonDivisionUndefined branch is a guard that valid input never reaches.
// Every call is independent of every other call.
func Compute(p domain.TradeParameters, ts domain.TrailingStopSpec) domain.EngineResult {
	valid, dir := Validate(p.Entry, p.StopLoss, p.TakeProfit)
	res := domain.EngineResult{
		Direction:      dir,
		RiskUnit:       math.Abs(p.Entry - p.StopLoss),
		RiskUnitSigned: p.Entry - p.StopLoss,
	}
	if !valid {
		res.Reason = domain.ReasonInvalidTriangle
		return res
	}

	size, ok := CalculateSize(SizeInput{
		Risk:          ResolveRisk(p.Risk, p.Capital),
		RiskUnit:      res.RiskUnit,
		Entry:         p.Entry,
		Capital:       p.Capital,
		MaxLeverage:   p.MaxLeverage,
		DiscreteUnits: p.DiscreteUnits,
	})
	if !ok {
		res.Reason = domain.ReasonDivisionUndefined
		return res
	}

	reward := CalculateReward(size.ActualSize, p.Entry, p.TakeProfit, res.RiskUnit)
	trailing := CalculateTrailingStop(ts, p.Entry, p.StopLoss, size.ActualSize, res.RiskUnit)

	res.Valid = true
	res.Size = &size
	res.Reward = &reward
	res.Trailing = &trailing
	return res
}

// LockCeiling is the largest lock multiple the input layer should offer for a
// given risk/reward ratio: the ratio floored to one decimal.
func LockCeiling(riskRewardRatio float64) float64 {
	return math.Floor(riskRewardRatio*10) / 10
}

// Calculator exposes Compute through the ports.Calculator interface.
type Calculator struct{}

// NewCalculator creates a stateless calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Compute delegates to the package-level Compute.
func (Calculator) Compute(p domain.TradeParameters, ts domain.TrailingStopSpec) domain.EngineResult {
	return Compute(p, ts)
}
