package render

import (
	"math"

	"github.com/shopspring/decimal"

	"positionSizer/internal/domain"
	"positionSizer/internal/risk"
)

// notAvailable is shown for NaN and infinite figures.
const notAvailable = "n/a"

var tierEmoji = map[domain.RewardTier]string{
	domain.TierExceptional: "🤑",
	domain.TierExcellent:   "🚀",
	domain.TierGreat:       "🔥",
	domain.TierGood:        "🧐",
	domain.TierMarginal:    "😬",
	domain.TierPoor:        "💩",
	domain.TierUnfavorable: "☠️",
}

// Emoji returns the badge shown next to a reward tier.
func Emoji(t domain.RewardTier) string {
	if e, ok := tierEmoji[t]; ok {
		return e
	}
	return "?"
}

// DisplayTier grades the ratio as displayed, i.e. rounded to one decimal, so the
// badge always agrees with the number next to it.
func DisplayTier(rr float64) domain.RewardTier {
	return risk.ClassifyReward(Round(rr, 1))
}

// Round rounds v half away from zero. Non-finite values are returned unchanged.
func Round(v float64, places int32) float64 {
	if !finite(v) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// Fixed formats v with exactly places decimals.
func Fixed(v float64, places int32) string {
	if !finite(v) {
		return notAvailable
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

// Number formats v with at most places decimals, trailing zeros trimmed.
func Number(v float64, places int32) string {
	if !finite(v) {
		return notAvailable
	}
	return decimal.NewFromFloat(v).Round(places).String()
}

// Money formats a currency amount.
func Money(v float64) string {
	if !finite(v) {
		return notAvailable
	}
	if v < 0 {
		return "-$" + Fixed(-v, 2)
	}
	return "$" + Fixed(v, 2)
}

// Price formats a price level with up to ten decimals.
func Price(v float64) string {
	if !finite(v) {
		return notAvailable
	}
	return "$" + Number(v, 10)
}

// Percent formats a percentage with two decimals.
func Percent(v float64) string {
	if !finite(v) {
		return notAvailable
	}
	return Fixed(v, 2) + "%"
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
