package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"positionSizer/internal/domain"
	"positionSizer/internal/risk"
)

// Example trailing stop used in the explanatory text.
var exampleTrailing = domain.TrailingStopSpec{TriggerMultiple: 3, LockMultiple: 2}

// Calculation writes the full console report for c.
func Calculation(w io.Writer, c *domain.Calculation) {
	inputsTable(w, c)
	fmt.Fprintln(w)
	fmt.Fprintln(w, Headline(c.Result))
	if note := LeverageNote(c.Result); note != "" {
		fmt.Fprintln(w, note)
	}
	fmt.Fprintln(w)

	if !c.Result.Valid {
		return
	}

	positionTable(w, c.Result)
	fmt.Fprintln(w)
	trailingTable(w, c)
	fmt.Fprintln(w)
	fmt.Fprintln(w, TrailingExample(c))
	if c.Link != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Share: %s\n", c.Link)
	}
}

// Headline is the one-line summary: the ratio with its badge and the profit at
// take-profit, or a prompt to fix the inputs.
func Headline(res domain.EngineResult) string {
	if !res.Valid {
		return "Check your numbers"
	}
	rr := res.Reward.RiskRewardRatio
	return fmt.Sprintf("%sR %s  Potential profit = %s",
		Number(rr, 1), Emoji(DisplayTier(rr)), Money(res.Reward.PotentialProfit))
}

// LeverageNote explains a leverage-limited size, or returns "".
func LeverageNote(res domain.EngineResult) string {
	if !res.Valid || !res.Size.LeverageLimited {
		return ""
	}
	return fmt.Sprintf("Note: Due to the max leverage limit, you are effectively risking %s instead of your full risk amount of %s.",
		Money(res.Size.ActualRisk), Money(res.Size.RiskAmount))
}

// TrailingExample describes locking 2R of profit once price moves 3R, priced
// with the current inputs.
func TrailingExample(c *domain.Calculation) string {
	res := c.Result
	if !res.Valid {
		return ""
	}
	ex := risk.CalculateTrailingStop(exampleTrailing, c.Params.Entry, c.Params.StopLoss, res.Size.ActualSize, res.RiskUnit)
	move := "rises above"
	if res.Direction.IsShort() {
		move = "falls below"
	}
	return fmt.Sprintf("Example: Lock %sR worth of profit when the price goes beyond %sR.\n"+
		"With the current settings, this would ensure a minimum profit of %s once the price %s %s.",
		Number(exampleTrailing.LockMultiple, 1), Number(exampleTrailing.TriggerMultiple, 1),
		Money(ex.MinProfit), move, Price(ex.TriggerPrice))
}

func inputsTable(w io.Writer, c *domain.Calculation) {
	p := c.Params
	res := risk.ResolveRisk(p.Risk, p.Capital)

	riskCell := fmt.Sprintf("%s (≈ %s)", Percent(res.Percent), Money(res.Amount))
	if p.Risk.Mode == domain.RiskModeCurrency {
		riskCell = fmt.Sprintf("%s (≈ %s)", Money(res.Amount), Percent(res.Percent))
	}

	tpChange := notAvailable
	if c.Result.Valid {
		tpChange = Percent(c.Result.Reward.TakeProfitChangePercent)
	}

	t := newTable(w, "POSITION SIZING")
	t.AppendRows([]table.Row{
		{"💰 Capital", Money(p.Capital)},
		{"🎲 Risk amount", riskCell},
		{"📍 Entry price", Price(p.Entry)},
		{"🛑 Stop-loss", Price(p.StopLoss)},
		{"🎯 Take profit", fmt.Sprintf("%s (price change ≈ %s)", Price(p.TakeProfit), tpChange)},
		{"⚖️ Max leverage", Number(p.MaxLeverage, 2) + "X"},
		{"🔢 Discrete units", yesNo(p.DiscreteUnits)},
	})
	t.Render()
}

func positionTable(w io.Writer, res domain.EngineResult) {
	s := res.Size
	t := newTable(w, "POSITION SUMMARY")
	t.AppendRows([]table.Row{
		{"Direction", strings.ToUpper(string(res.Direction))},
		{"Quantity", Number(s.ActualSize, 6)},
		{"Leverage", Fixed(s.EffectiveLeverage, 2) + "X"},
		{"Value", Money(s.PositionValue)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Risk amount", Money(s.RiskAmount)},
		{"Actual risk", Money(s.ActualRisk)},
		{"Risk/reward", Number(res.Reward.RiskRewardRatio, 2) + "R"},
	})
	t.Render()
}

func trailingTable(w io.Writer, c *domain.Calculation) {
	ts := c.Result.Trailing
	outcome := table.Row{"Max loss", Money(ts.MaxLoss)}
	if ts.LocksProfit {
		outcome = table.Row{"Min profit", Money(ts.MinProfit)}
	}

	t := newTable(w, "TRAILING STOP")
	t.AppendRows([]table.Row{
		{"Trigger", fmt.Sprintf("%sR = %s", Number(c.Trailing.TriggerMultiple, 2), Price(ts.TriggerPrice))},
		{"Lock profit", fmt.Sprintf("%sR = %s (max %sR)", Number(c.Trailing.LockMultiple, 2), Price(ts.LimitPrice), Number(c.LockCeiling, 1))},
		{"Change", Percent(ts.LimitChangePercent)},
		outcome,
	})
	t.Render()
}

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.SetStyle(table.StyleRounded)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 18, WidthMax: 18, Align: text.AlignLeft},
		{Number: 2, WidthMin: 25, WidthMax: 60, Align: text.AlignLeft},
	})
	return t
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
