package risk

import (
	"fmt"

	"positionSizer/internal/domain"
	"positionSizer/internal/ports"
)

// ResolvedRisk is a risk amount in canonical form.
type ResolvedRisk struct {
	Amount  float64 // Currency
	Percent float64 // Percent of capital
}

// ResolveRisk converts a RiskSpec into a currency amount and its percent of
// capital. An unset amount falls back to DefaultRiskPercent of capital in both
// modes. Zero capital yields non-finite values, which are passed through.
func ResolveRisk(spec domain.RiskSpec, capital float64) ResolvedRisk {
	switch spec.Mode {
	case domain.RiskModeCurrency:
		amount := domain.DefaultRiskPercent / 100 * capital
		if spec.IsSet() {
			amount = *spec.Amount
		}
		return ResolvedRisk{Amount: amount, Percent: amount / capital * 100}
	default:
		pct := domain.DefaultRiskPercent
		if spec.IsSet() {
			pct = *spec.Amount
		}
		return ResolvedRisk{Amount: pct / 100 * capital, Percent: pct}
	}
}

// SwitchMode re-expresses spec in the target mode. The value currently shown to
// the trader is captured as the new explicit amount, so switching back and forth
// with nothing else changed returns the original value. An unset amount stays
// unset, since it resolves to the same default in either mode.
func SwitchMode(spec domain.RiskSpec, capital float64, to domain.RiskMode) (domain.RiskSpec, error) {
	if !to.IsValid() {
		return spec, fmt.Errorf("%w: %q", ports.ErrUnknownRiskMode, to)
	}
	from := spec.Mode
	if !from.IsValid() {
		from = domain.RiskModePercent
	}
	if from == to {
		return domain.RiskSpec{Mode: to, Amount: spec.Amount}, nil
	}
	if !spec.IsSet() {
		return domain.RiskSpec{Mode: to}, nil
	}

	resolved := ResolveRisk(spec, capital)
	if to == domain.RiskModeCurrency {
		return domain.CurrencyRisk(resolved.Amount), nil
	}
	return domain.PercentRisk(resolved.Percent), nil
}
