package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"positionSizer/internal/domain"
	"positionSizer/internal/ports"
)

// WriteCalculationToCSV writes the inputs and outputs of c as field,value rows.
// Non-finite numbers are written as NaN, +Inf or -Inf.
func WriteCalculationToCSV(c *domain.Calculation, filename string) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ports.ErrExportFailed, filename, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %v", ports.ErrExportFailed, filename, cerr)
		}
	}()

	// WriteAll flushes and reports the writer's error.
	if err := csv.NewWriter(file).WriteAll(CalculationRecords(c)); err != nil {
		return fmt.Errorf("%w: write %s: %v", ports.ErrExportFailed, filename, err)
	}
	return nil
}

// CalculationRecords flattens c into CSV records, header first.
func CalculationRecords(c *domain.Calculation) [][]string {
	p, res := c.Params, c.Result
	riskAmount := ""
	if p.Risk.IsSet() {
		riskAmount = f(*p.Risk.Amount)
	}

	records := [][]string{
		{"field", "value"},
		{"id", c.ID},
		{"entry", f(p.Entry)},
		{"stop_loss", f(p.StopLoss)},
		{"take_profit", f(p.TakeProfit)},
		{"capital", f(p.Capital)},
		{"risk_mode", string(p.Risk.Mode)},
		{"risk_input", riskAmount},
		{"max_leverage", f(p.MaxLeverage)},
		{"discrete_units", strconv.FormatBool(p.DiscreteUnits)},
		{"trigger_multiple", f(c.Trailing.TriggerMultiple)},
		{"lock_multiple", f(c.Trailing.LockMultiple)},
		{"valid", strconv.FormatBool(res.Valid)},
		{"reason", string(res.Reason)},
		{"direction", string(res.Direction)},
		{"risk_unit", f(res.RiskUnit)},
	}
	if !res.Valid {
		return records
	}

	s, rw, ts := res.Size, res.Reward, res.Trailing
	return append(records,
		[]string{"risk_amount", f(s.RiskAmount)},
		[]string{"risk_percent", f(s.RiskPercent)},
		[]string{"computed_size", f(s.ComputedSize)},
		[]string{"max_allowed_size", f(s.MaxAllowedSize)},
		[]string{"leverage_limited", strconv.FormatBool(s.LeverageLimited)},
		[]string{"actual_size", f(s.ActualSize)},
		[]string{"actual_risk", f(s.ActualRisk)},
		[]string{"risk_reduced", strconv.FormatBool(s.RiskReduced)},
		[]string{"risk_shortfall", f(s.RiskShortfall)},
		[]string{"position_value", f(s.PositionValue)},
		[]string{"effective_leverage", f(s.EffectiveLeverage)},
		[]string{"potential_profit", f(rw.PotentialProfit)},
		[]string{"risk_reward_ratio", f(rw.RiskRewardRatio)},
		[]string{"reward_tier", rw.Tier.String()},
		[]string{"take_profit_change_percent", f(rw.TakeProfitChangePercent)},
		[]string{"trigger_price", f(ts.TriggerPrice)},
		[]string{"limit_price", f(ts.LimitPrice)},
		[]string{"limit_change_percent", f(ts.LimitChangePercent)},
		[]string{"locks_profit", strconv.FormatBool(ts.LocksProfit)},
		[]string{"min_profit", f(ts.MinProfit)},
		[]string{"max_loss", f(ts.MaxLoss)},
		[]string{"lock_ceiling", f(c.LockCeiling)},
	)
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
