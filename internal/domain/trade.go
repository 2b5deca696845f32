package domain

// DefaultRiskPercent is the share of capital risked when no risk amount is given.
const DefaultRiskPercent = 5.0

// RiskSpec is the trader's risk input. A nil Amount means "use the default
// percent of capital".
type RiskSpec struct {
	Mode   RiskMode
	Amount *float64
}

// PercentRisk returns a RiskSpec of pct percent of capital.
func PercentRisk(pct float64) RiskSpec {
	return RiskSpec{Mode: RiskModePercent, Amount: &pct}
}

// CurrencyRisk returns a RiskSpec of an absolute currency amount.
func CurrencyRisk(amount float64) RiskSpec {
	return RiskSpec{Mode: RiskModeCurrency, Amount: &amount}
}

// IsSet reports whether an explicit amount was supplied.
func (r RiskSpec) IsSet() bool {
	return r.Amount != nil
}

// TradeParameters holds every numeric input of a single sizing calculation.
type TradeParameters struct {
	Entry         float64 // Planned entry price
	StopLoss      float64 // Stop-loss price
	TakeProfit    float64 // Take-profit price
	Capital       float64 // Account capital in currency
	Risk          RiskSpec
	MaxLeverage   float64 // Position value / capital ceiling, >= 0
	DiscreteUnits bool    // Round the size down to whole units
}

// TrailingStopSpec places a trailing stop in multiples of the risk unit.
type TrailingStopSpec struct {
	TriggerMultiple float64 // Where the stop starts trailing
	LockMultiple    float64 // Where the stop is moved to once triggered
}

// Defaults are the values the binding layer falls back to for unset fields.
type Defaults struct {
	Entry           float64 `yaml:"entry"`
	StopLoss        float64 `yaml:"stop_loss"`
	TakeProfit      float64 `yaml:"take_profit"`
	Capital         float64 `yaml:"capital"`
	RiskPercent     float64 `yaml:"risk_percent"`
	MaxLeverage     float64 `yaml:"max_leverage"`
	TriggerMultiple float64 `yaml:"trigger_multiple"`
	LockMultiple    float64 `yaml:"lock_multiple"`
}

// SampleDefaults returns the sample trade shown when nothing has been entered.
func SampleDefaults() Defaults {
	return Defaults{
		Entry:           193.67,
		StopLoss:        193.94,
		TakeProfit:      191.29,
		Capital:         1000,
		RiskPercent:     DefaultRiskPercent,
		MaxLeverage:     100,
		TriggerMultiple: 2,
		LockMultiple:    0,
	}
}
