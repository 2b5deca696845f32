package risk

import (
	"math"

	"positionSizer/internal/domain"
)

// SizeInput is everything the size calculation needs.
type SizeInput struct {
	Risk          ResolvedRisk
	RiskUnit      float64 // |entry - stop-loss|
	Entry         float64
	Capital       float64
	MaxLeverage   float64
	DiscreteUnits bool
}

// CalculateSize derives the position size from the risk amount, clamps it to the
// leverage ceiling and then, for discrete units, floors it. The clamp always
// comes first. ok is false when the risk unit is zero.
func CalculateSize(in SizeInput) (res domain.PositionSizeResult, ok bool) {
	if in.RiskUnit == 0 {
		return res, false
	}

	res.RiskAmount = in.Risk.Amount
	res.RiskPercent = in.Risk.Percent
	res.ComputedSize = in.Risk.Amount / in.RiskUnit
	res.MaxAllowedSize = in.Capital * in.MaxLeverage / in.Entry
	res.LeverageLimited = res.ComputedSize > res.MaxAllowedSize

	clamped := math.Min(res.ComputedSize, res.MaxAllowedSize)
	size := clamped
	if in.DiscreteUnits {
		size = math.Floor(clamped)
	}
	res.ActualSize = size
	res.ActualRisk = size * in.RiskUnit

	// Only a clamp or a floor reduces risk; the plain size * unit round trip can
	// drift in the last bit and must not be reported as a shortfall.
	if res.LeverageLimited || size < clamped {
		res.RiskReduced = true
		res.RiskShortfall = res.RiskAmount - res.ActualRisk
	}

	res.PositionValue = in.Entry * size
	res.EffectiveLeverage = res.PositionValue / in.Capital
	return res, true
}
