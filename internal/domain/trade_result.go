package domain

// RewardResult is the reward half of a calculation.
type RewardResult struct {
	PotentialProfit         float64
	RiskRewardRatio         float64 // Price geometry only, independent of size
	Tier                    RewardTier
	TakeProfitChangePercent float64 // |take-profit - entry| as percent of entry
}

// TrailingStopResult holds the pre-computed trailing stop levels. Exactly one of
// MinProfit and MaxLoss is meaningful, selected by LocksProfit.
type TrailingStopResult struct {
	TriggerPrice       float64
	LimitPrice         float64
	LimitChangePercent float64
	LocksProfit        bool // LockMultiple > 0
	MinProfit          float64
	MaxLoss            float64
}

// EngineResult is the complete output of one calculation. Size, Reward and
// Trailing are nil when Valid is false.
type EngineResult struct {
	Valid          bool
	Reason         InvalidReason
	Direction      Direction
	RiskUnit       float64 // |entry - stop-loss|
	RiskUnitSigned float64 // entry - stop-loss
	Size           *PositionSizeResult
	Reward         *RewardResult
	Trailing       *TrailingStopResult
}

// Calculation bundles one engine run with the inputs that produced it.
type Calculation struct {
	ID          string
	Params      TradeParameters
	Trailing    TrailingStopSpec
	Result      EngineResult
	LockCeiling float64 // Caller-side upper bound for LockMultiple
	Link        string  // Shareable link reproducing the inputs
}
