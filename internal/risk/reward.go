package risk

import (
	"math"

	"positionSizer/internal/domain"
)

// rewardBreakpoints are the lower bounds of each tier, most favorable first.
var rewardBreakpoints = [...]float64{10, 7, 4, 3, 2.5, 2}

// CalculateReward derives potential profit and the risk/reward ratio. The ratio
// uses the nominal risk unit, so leverage clamping and rounding never affect it.
func CalculateReward(actualSize, entry, takeProfit, riskUnit float64) domain.RewardResult {
	distance := math.Abs(takeProfit - entry)
	rr := distance / riskUnit
	return domain.RewardResult{
		PotentialProfit:         actualSize * distance,
		RiskRewardRatio:         rr,
		Tier:                    ClassifyReward(rr),
		TakeProfitChangePercent: math.Abs((takeProfit - entry) / entry * 100),
	}
}

// ClassifyReward maps a risk/reward ratio onto a tier. A ratio equal to a
// breakpoint belongs to the higher tier; NaN is unfavorable.
func ClassifyReward(rr float64) domain.RewardTier {
	for i, bp := range rewardBreakpoints {
		if rr >= bp {
			return domain.RewardTier(i)
		}
	}
	return domain.TierUnfavorable
}
