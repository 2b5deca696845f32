package domain

// PositionSizeResult is the sizing half of a calculation.
type PositionSizeResult struct {
	RiskAmount        float64 // Canonical risk in currency
	RiskPercent       float64 // Same risk as percent of capital
	ComputedSize      float64 // RiskAmount / risk unit, before any limit
	MaxAllowedSize    float64 // Capital * MaxLeverage / Entry
	LeverageLimited   bool    // ComputedSize > MaxAllowedSize
	ActualSize        float64 // Clamped, then optionally floored
	ActualRisk        float64 // ActualSize * risk unit
	RiskReduced       bool    // ActualRisk < RiskAmount (leverage clamp or rounding)
	RiskShortfall     float64 // RiskAmount - ActualRisk when RiskReduced, else 0
	PositionValue     float64 // Entry * ActualSize
	EffectiveLeverage float64 // PositionValue / Capital
}
