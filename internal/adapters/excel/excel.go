package excel

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"positionSizer/internal/domain"
	"positionSizer/internal/ports"
)

const sheetName = "Calculation"

type cellKind int

const (
	kindNumber cellKind = iota
	kindCurrency
	kindPercent
	kindText
)

type row struct {
	label string
	value interface{}
	kind  cellKind
}

type styles struct {
	header, section, number, currency, percent, text int
}

// Reporter writes a calculation to an .xlsx workbook.
type Reporter struct{}

// NewReporter creates a new Excel reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// WriteCalculation saves c as a single-sheet workbook at path, creating the
// directory if needed.
func (r *Reporter) WriteCalculation(c *domain.Calculation, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: create directory %s: %v", ports.ErrExportFailed, dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	if err := fx.SetSheetName(fx.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("%w: %v", ports.ErrExportFailed, err)
	}

	st, err := createStyles(fx)
	if err != nil {
		return fmt.Errorf("%w: create styles: %v", ports.ErrExportFailed, err)
	}

	if err := writeSheet(fx, st, c); err != nil {
		return fmt.Errorf("%w: write sheet: %v", ports.ErrExportFailed, err)
	}

	if err := fx.SaveAs(path); err != nil {
		return fmt.Errorf("%w: save %s: %v", ports.ErrExportFailed, path, err)
	}
	return nil
}

func writeSheet(fx *excelize.File, st styles, c *domain.Calculation) error {
	if err := fx.SetColWidth(sheetName, "A", "A", 26); err != nil {
		return err
	}
	if err := fx.SetColWidth(sheetName, "B", "B", 22); err != nil {
		return err
	}

	line := 1
	set := func(label string, value interface{}, style int) error {
		a, _ := excelize.CoordinatesToCellName(1, line)
		b, _ := excelize.CoordinatesToCellName(2, line)
		if err := fx.SetCellValue(sheetName, a, label); err != nil {
			return err
		}
		if value != nil {
			if err := fx.SetCellValue(sheetName, b, value); err != nil {
				return err
			}
		}
		if err := fx.SetCellStyle(sheetName, b, b, style); err != nil {
			return err
		}
		line++
		return nil
	}

	if err := set("Position sizing", c.ID, st.header); err != nil {
		return err
	}
	if err := fx.SetCellStyle(sheetName, "A1", "A1", st.header); err != nil {
		return err
	}

	for _, sec := range sections(c) {
		line++
		if err := set(sec.title, nil, st.section); err != nil {
			return err
		}
		for _, rw := range sec.rows {
			value, style := cellValue(rw, st)
			if err := set(rw.label, value, style); err != nil {
				return err
			}
		}
	}
	return nil
}

type section struct {
	title string
	rows  []row
}

func sections(c *domain.Calculation) []section {
	p, res := c.Params, c.Result
	mode := "percent"
	if p.Risk.Mode == domain.RiskModeCurrency {
		mode = "currency"
	}
	riskInput := "default"
	if p.Risk.IsSet() {
		riskInput = fmt.Sprintf("%g (%s)", *p.Risk.Amount, mode)
	}

	out := []section{{
		title: "Inputs",
		rows: []row{
			{"Capital", p.Capital, kindCurrency},
			{"Risk", riskInput, kindText},
			{"Entry price", p.Entry, kindNumber},
			{"Stop-loss", p.StopLoss, kindNumber},
			{"Take profit", p.TakeProfit, kindNumber},
			{"Max leverage", p.MaxLeverage, kindNumber},
			{"Discrete units", p.DiscreteUnits, kindText},
			{"Trigger (R)", c.Trailing.TriggerMultiple, kindNumber},
			{"Lock (R)", c.Trailing.LockMultiple, kindNumber},
		},
	}}

	if !res.Valid {
		return append(out, section{title: "Result", rows: []row{
			{"Valid", false, kindText},
			{"Reason", string(res.Reason), kindText},
		}})
	}

	s, rw, ts := res.Size, res.Reward, res.Trailing
	outcome := row{"Max loss", ts.MaxLoss, kindCurrency}
	if ts.LocksProfit {
		outcome = row{"Min profit", ts.MinProfit, kindCurrency}
	}
	return append(out,
		section{title: "Position", rows: []row{
			{"Direction", string(res.Direction), kindText},
			{"Risk amount", s.RiskAmount, kindCurrency},
			{"Risk percent", s.RiskPercent / 100, kindPercent},
			{"Computed size", s.ComputedSize, kindNumber},
			{"Max allowed size", s.MaxAllowedSize, kindNumber},
			{"Leverage limited", s.LeverageLimited, kindText},
			{"Quantity", s.ActualSize, kindNumber},
			{"Actual risk", s.ActualRisk, kindCurrency},
			{"Risk shortfall", s.RiskShortfall, kindCurrency},
			{"Position value", s.PositionValue, kindCurrency},
			{"Effective leverage", s.EffectiveLeverage, kindNumber},
		}},
		section{title: "Reward", rows: []row{
			{"Potential profit", rw.PotentialProfit, kindCurrency},
			{"Risk/reward (R)", rw.RiskRewardRatio, kindNumber},
			{"Tier", rw.Tier.String(), kindText},
			{"Take-profit change", rw.TakeProfitChangePercent / 100, kindPercent},
		}},
		section{title: "Trailing stop", rows: []row{
			{"Trigger price", ts.TriggerPrice, kindNumber},
			{"Limit price", ts.LimitPrice, kindNumber},
			{"Limit change", ts.LimitChangePercent / 100, kindPercent},
			outcome,
			{"Lock ceiling (R)", c.LockCeiling, kindNumber},
		}},
	)
}

// cellValue picks the value and style for a row. Non-finite numbers become text.
func cellValue(rw row, st styles) (interface{}, int) {
	if f, ok := rw.value.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return "n/a", st.text
	}
	switch rw.kind {
	case kindCurrency:
		return rw.value, st.currency
	case kindPercent:
		return rw.value, st.percent
	case kindNumber:
		return rw.value, st.number
	default:
		return fmt.Sprint(rw.value), st.text
	}
}

func createStyles(fx *excelize.File) (styles, error) {
	var st styles
	var err error

	border := []excelize.Border{
		{Type: "left", Color: "E0E0E0", Style: 1},
		{Type: "right", Color: "E0E0E0", Style: 1},
		{Type: "bottom", Color: "E0E0E0", Style: 1},
	}

	st.header, err = fx.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF", Family: "Calibri"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"2F4F4F"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return st, err
	}

	st.section, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "2F4F4F"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E8EEF4"}, Pattern: 1},
	})
	if err != nil {
		return st, err
	}

	// Custom format keeps up to six decimals for sizes and prices.
	numFmt := "0.######"
	st.number, err = fx.NewStyle(&excelize.Style{
		CustomNumFmt: &numFmt,
		Alignment:    &excelize.Alignment{Horizontal: "right"},
		Border:       border,
	})
	if err != nil {
		return st, err
	}

	st.currency, err = fx.NewStyle(&excelize.Style{
		NumFmt:    7, // Currency format with $ symbol
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Border:    border,
	})
	if err != nil {
		return st, err
	}

	st.percent, err = fx.NewStyle(&excelize.Style{
		NumFmt:    10, // 0.00%
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Border:    border,
	})
	if err != nil {
		return st, err
	}

	st.text, err = fx.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Border:    border,
	})
	return st, err
}
