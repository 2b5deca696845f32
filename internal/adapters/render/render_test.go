package render

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"positionSizer/internal/domain"
	"positionSizer/internal/risk"
)

func sampleCalculation(mutate func(*domain.TradeParameters)) *domain.Calculation {
	p := domain.TradeParameters{
		Entry: 193.67, StopLoss: 193.94, TakeProfit: 191.29, Capital: 1000,
		Risk: domain.RiskSpec{Mode: domain.RiskModePercent}, MaxLeverage: 100,
	}
	if mutate != nil {
		mutate(&p)
	}
	ts := domain.TrailingStopSpec{TriggerMultiple: 2}
	res := risk.Compute(p, ts)
	c := &domain.Calculation{ID: "test", Params: p, Trailing: ts, Result: res, Link: "http://x/?entry=193.67"}
	if res.Valid {
		c.LockCeiling = risk.LockCeiling(res.Reward.RiskRewardRatio)
	}
	return c
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "$50.00", Money(50))
	assert.Equal(t, "-$1.50", Money(-1.5))
	assert.Equal(t, "n/a", Money(math.NaN()))
	assert.Equal(t, "n/a", Percent(math.Inf(1)))
	assert.Equal(t, "5.00%", Percent(5))
	assert.Equal(t, "$193.13", Price(193.12999999999997))
	assert.Equal(t, "185.185185", Number(185.18518518517817, 6))
	assert.Equal(t, "100", Number(100, 2))
	assert.Equal(t, 8.8, Round(8.8148, 1))
	assert.True(t, math.IsNaN(Round(math.NaN(), 1)))
}

func TestDisplayTier(t *testing.T) {
	// 9.96 displays as 10.0, so it earns the top badge even though the raw ratio
	// is in the tier below.
	assert.Equal(t, domain.TierExcellent, risk.ClassifyReward(9.96))
	assert.Equal(t, domain.TierExceptional, DisplayTier(9.96))
	assert.Equal(t, domain.TierPoor, DisplayTier(1.95))
	assert.Equal(t, domain.TierUnfavorable, DisplayTier(1.94))
	assert.Equal(t, "🚀", Emoji(DisplayTier(8.8148)))
	assert.Equal(t, "☠️", Emoji(domain.TierUnfavorable))
}

func TestHeadline(t *testing.T) {
	assert.Equal(t, "8.8R 🚀  Potential profit = $440.74", Headline(sampleCalculation(nil).Result))

	invalid := sampleCalculation(func(p *domain.TradeParameters) { p.StopLoss = p.Entry })
	assert.Equal(t, "Check your numbers", Headline(invalid.Result))
}

func TestLeverageNote(t *testing.T) {
	assert.Empty(t, LeverageNote(sampleCalculation(nil).Result))

	limited := sampleCalculation(func(p *domain.TradeParameters) { p.MaxLeverage = 1 })
	assert.Equal(t,
		"Note: Due to the max leverage limit, you are effectively risking $1.39 instead of your full risk amount of $50.00.",
		LeverageNote(limited.Result))
}

func TestTrailingExample(t *testing.T) {
	short := TrailingExample(sampleCalculation(nil))
	assert.Contains(t, short, "Lock 2R worth of profit when the price goes beyond 3R")
	assert.Contains(t, short, "minimum profit of $100.00")
	assert.Contains(t, short, "falls below $192.86")

	long := TrailingExample(sampleCalculation(func(p *domain.TradeParameters) {
		p.Entry, p.StopLoss, p.TakeProfit = 100, 95, 120
	}))
	assert.Contains(t, long, "rises above $115")
}

func TestCalculation(t *testing.T) {
	var buf bytes.Buffer
	Calculation(&buf, sampleCalculation(nil))

	out := buf.String()
	assert.Contains(t, out, "POSITION SIZING")
	assert.Contains(t, out, "POSITION SUMMARY")
	assert.Contains(t, out, "TRAILING STOP")
	assert.Contains(t, out, "SHORT")
	assert.Contains(t, out, "Max loss")
	assert.Contains(t, out, "Share: http://x/?entry=193.67")
}

func TestCalculation_Invalid(t *testing.T) {
	var buf bytes.Buffer
	Calculation(&buf, sampleCalculation(func(p *domain.TradeParameters) { p.TakeProfit = 200 }))

	out := buf.String()
	assert.Contains(t, out, "Check your numbers")
	assert.NotContains(t, out, "POSITION SUMMARY")
}
