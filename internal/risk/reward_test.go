package risk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"positionSizer/internal/domain"
)

func TestClassifyReward(t *testing.T) {
	tests := []struct {
		rr   float64
		want domain.RewardTier
	}{
		{12, domain.TierExceptional},
		{10, domain.TierExceptional},
		{9.99, domain.TierExcellent},
		{7, domain.TierExcellent},
		{4, domain.TierGreat},
		{3.5, domain.TierGood},
		{3, domain.TierGood},
		{2.5, domain.TierMarginal},
		{2, domain.TierPoor},
		{1.99, domain.TierUnfavorable},
		{0, domain.TierUnfavorable},
		{math.NaN(), domain.TierUnfavorable},
		{math.Inf(1), domain.TierExceptional},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyReward(tt.rr), "rr=%v", tt.rr)
	}
}

func TestCalculateReward(t *testing.T) {
	res := CalculateReward(10, 100, 112, 4)

	assert.InDelta(t, 120, res.PotentialProfit, eps)
	assert.InDelta(t, 3, res.RiskRewardRatio, eps)
	assert.Equal(t, domain.TierGood, res.Tier)
	assert.InDelta(t, 12, res.TakeProfitChangePercent, eps)
}
