package domain

// Direction is the side of a trade, inferred from where the stop-loss sits.
type Direction string

const (
	Long  Direction = "long"
	Short Direction = "short"
)

// IsShort reports whether the direction is short.
func (d Direction) IsShort() bool {
	return d == Short
}

// RiskMode is the unit the trader uses to express the risk amount.
type RiskMode string

const (
	RiskModePercent  RiskMode = "percent"  // Percent of capital
	RiskModeCurrency RiskMode = "currency" // Absolute currency amount
)

// IsValid reports whether m is one of the known risk modes.
func (m RiskMode) IsValid() bool {
	return m == RiskModePercent || m == RiskModeCurrency
}

// InvalidReason explains why a calculation produced no figures.
type InvalidReason string

const (
	ReasonNone              InvalidReason = ""
	ReasonInvalidTriangle   InvalidReason = "invalid_triangle"   // Stop-loss and take-profit don't strictly bracket entry
	ReasonDivisionUndefined InvalidReason = "division_undefined" // Entry equals stop-loss
)

// RewardTier is a qualitative grade of a risk/reward ratio, ordered from most
// to least favorable.
type RewardTier int

const (
	TierExceptional RewardTier = iota // >= 10R
	TierExcellent                     // >= 7R
	TierGreat                         // >= 4R
	TierGood                          // >= 3R
	TierMarginal                      // >= 2.5R
	TierPoor                          // >= 2R
	TierUnfavorable                   // < 2R
)

// String returns the string representation of the RewardTier.
func (t RewardTier) String() string {
	switch t {
	case TierExceptional:
		return "exceptional"
	case TierExcellent:
		return "excellent"
	case TierGreat:
		return "great"
	case TierGood:
		return "good"
	case TierMarginal:
		return "marginal"
	case TierPoor:
		return "poor"
	case TierUnfavorable:
		return "unfavorable"
	default:
		return "unknown"
	}
}
