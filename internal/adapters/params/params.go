// Package params binds shareable-link query values to engine inputs and back.
//
// Keys follow the links the calculator has always produced:
//
//	entry, sl, tp     entry, stop-loss and take-profit prices
//	capital           account capital
//	ra, rd            risk amount; rd=true means ra is currency, else percent
//	ml                max leverage
//	discrete          round size down to whole units
//	tsprice, tslock   trailing stop trigger and lock, in risk multiples
package params

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"positionSizer/internal/domain"
	"positionSizer/internal/ports"
	"positionSizer/internal/risk"
)

const (
	KeyEntry       = "entry"
	KeyStopLoss    = "sl"
	KeyTakeProfit  = "tp"
	KeyCapital     = "capital"
	KeyRiskAmount  = "ra"
	KeyRiskDollars = "rd"
	KeyMaxLeverage = "ml"
	KeyDiscrete    = "discrete"
	KeyTrigger     = "tsprice"
	KeyLock        = "tslock"
)

// MinMultiple is the lowest trigger or lock multiple the input layer accepts.
const MinMultiple = -1.0

// LockPolicy decides what the binding layer does with a lock multiple above
// the ceiling derived from the risk/reward ratio.
type LockPolicy string

const (
	LockPolicyClamp LockPolicy = "clamp" // Clamp multiples into [MinMultiple, ceiling]
	LockPolicyOff   LockPolicy = "off"   // Pass multiples through untouched
)

// ParseLockPolicy converts a string into a LockPolicy.
func ParseLockPolicy(s string) (LockPolicy, error) {
	switch p := LockPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case LockPolicyClamp, LockPolicyOff:
		return p, nil
	default:
		return "", fmt.Errorf("unknown lock ceiling policy %q (want clamp or off)", s)
	}
}

// Input is a fully bound set of engine inputs.
type Input struct {
	Params      domain.TradeParameters
	Trailing    domain.TrailingStopSpec
	LockCeiling float64
	LockClamped    bool // The lock multiple was changed by the policy
	TriggerClamped bool // The trigger multiple was raised to MinMultiple
}

// Binder turns query values into engine inputs, filling unset fields from defaults.
type Binder struct {
	defaults domain.Defaults
	policy   LockPolicy
}

// NewBinder creates a Binder. An empty policy means LockPolicyClamp.
func NewBinder(defaults domain.Defaults, policy LockPolicy) *Binder {
	if policy == "" {
		policy = LockPolicyClamp
	}
	return &Binder{defaults: defaults, policy: policy}
}

// Decode binds q. Values that are present but not numbers (or not booleans for
// flags) are rejected with ports.ErrInvalidRequest; ranges are not checked here.
func (b *Binder) Decode(q url.Values) (Input, error) {
	var in Input
	var errs []string

	num := func(key string, def float64) float64 {
		v, set, err := parseFloat(q, key)
		if err != nil {
			errs = append(errs, err.Error())
			return def
		}
		if !set {
			return def
		}
		return v
	}
	flag := func(key string) bool {
		v, err := parseBool(q, key)
		if err != nil {
			errs = append(errs, err.Error())
		}
		return v
	}

	p := &in.Params
	p.Entry = num(KeyEntry, b.defaults.Entry)
	p.StopLoss = num(KeyStopLoss, b.defaults.StopLoss)
	p.TakeProfit = num(KeyTakeProfit, b.defaults.TakeProfit)
	p.Capital = num(KeyCapital, b.defaults.Capital)
	p.MaxLeverage = num(KeyMaxLeverage, b.defaults.MaxLeverage)
	p.DiscreteUnits = flag(KeyDiscrete)

	p.Risk.Mode = domain.RiskModePercent
	if flag(KeyRiskDollars) {
		p.Risk.Mode = domain.RiskModeCurrency
	}
	if amount, set, err := parseFloat(q, KeyRiskAmount); err != nil {
		errs = append(errs, err.Error())
	} else if set {
		p.Risk.Amount = &amount
	} else if b.defaults.RiskPercent != domain.DefaultRiskPercent {
		// The engine only knows the built-in default, so a configured one
		// is bound as an explicit amount in the current mode.
		def := domain.PercentRisk(b.defaults.RiskPercent)
		if p.Risk.Mode == domain.RiskModeCurrency {
			def = domain.CurrencyRisk(b.defaults.RiskPercent / 100 * p.Capital)
		}
		p.Risk = def
	}

	in.Trailing.TriggerMultiple = num(KeyTrigger, b.defaults.TriggerMultiple)
	in.Trailing.LockMultiple = num(KeyLock, b.defaults.LockMultiple)

	if len(errs) > 0 {
		return Input{}, fmt.Errorf("%w: %s", ports.ErrInvalidRequest, strings.Join(errs, "; "))
	}

	in.LockCeiling = risk.LockCeiling(rewardRatio(*p))
	if b.policy == LockPolicyClamp {
		in.Trailing, in.LockClamped, in.TriggerClamped = clampMultiples(in.Trailing, in.LockCeiling)
	}
	return in, nil
}

// Encode renders p and ts as query values. An unset risk amount is omitted so
// the link keeps following the default.
func Encode(p domain.TradeParameters, ts domain.TrailingStopSpec) url.Values {
	q := url.Values{}
	q.Set(KeyEntry, formatFloat(p.Entry))
	q.Set(KeyStopLoss, formatFloat(p.StopLoss))
	q.Set(KeyTakeProfit, formatFloat(p.TakeProfit))
	q.Set(KeyCapital, formatFloat(p.Capital))
	q.Set(KeyMaxLeverage, formatFloat(p.MaxLeverage))
	if p.Risk.IsSet() {
		q.Set(KeyRiskAmount, formatFloat(*p.Risk.Amount))
	}
	if p.Risk.Mode == domain.RiskModeCurrency {
		q.Set(KeyRiskDollars, "true")
	}
	if p.DiscreteUnits {
		q.Set(KeyDiscrete, "true")
	}
	q.Set(KeyTrigger, formatFloat(ts.TriggerMultiple))
	q.Set(KeyLock, formatFloat(ts.LockMultiple))
	return q
}

// Link joins base and q into a shareable URL.
func Link(base string, q url.Values) string {
	if len(q) == 0 {
		return base
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + q.Encode()
}

// SwitchRiskMode rewrites the risk keys of q for the target mode, capturing the
// currently displayed value as the new amount. All other keys are kept as given.
func (b *Binder) SwitchRiskMode(q url.Values, to domain.RiskMode) (url.Values, error) {
	in, err := b.Decode(q)
	if err != nil {
		return nil, err
	}

	// Keep an absent ra absent even when a configured default was bound.
	spec := in.Params.Risk
	if _, set, _ := parseFloat(q, KeyRiskAmount); !set {
		spec.Amount = nil
	}

	switched, err := risk.SwitchMode(spec, in.Params.Capital, to)
	if err != nil {
		return nil, err
	}

	out := make(url.Values, len(q))
	for k, v := range q {
		out[k] = append([]string(nil), v...)
	}
	if switched.IsSet() {
		out.Set(KeyRiskAmount, formatFloat(*switched.Amount))
	} else {
		out.Del(KeyRiskAmount)
	}
	if switched.Mode == domain.RiskModeCurrency {
		out.Set(KeyRiskDollars, "true")
	} else {
		out.Del(KeyRiskDollars)
	}
	return out, nil
}

func rewardRatio(p domain.TradeParameters) float64 {
	return math.Abs(p.TakeProfit-p.Entry) / math.Abs(p.Entry-p.StopLoss)
}

func clampMultiples(ts domain.TrailingStopSpec, ceiling float64) (out domain.TrailingStopSpec, lockClamped, triggerClamped bool) {
	if ts.TriggerMultiple < MinMultiple {
		ts.TriggerMultiple = MinMultiple
		triggerClamped = true
	}
	if ts.LockMultiple < MinMultiple {
		ts.LockMultiple = MinMultiple
		lockClamped = true
	}
	if !math.IsNaN(ceiling) && ts.LockMultiple > ceiling {
		ts.LockMultiple = math.Max(ceiling, MinMultiple)
		lockClamped = true
	}
	return ts, lockClamped, triggerClamped
}

func parseFloat(q url.Values, key string) (float64, bool, error) {
	s := strings.TrimSpace(q.Get(key))
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %q is not a number", key, s)
	}
	return v, true, nil
}

func parseBool(q url.Values, key string) (bool, error) {
	s := strings.TrimSpace(q.Get(key))
	if s == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%s: %q is not a boolean", key, s)
	}
	return v, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
