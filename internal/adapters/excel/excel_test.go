package excel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"positionSizer/internal/domain"
	"positionSizer/internal/risk"
)

func calculation(p domain.TradeParameters) *domain.Calculation {
	ts := domain.TrailingStopSpec{TriggerMultiple: 2, LockMultiple: 1}
	return &domain.Calculation{ID: "calc-1", Params: p, Trailing: ts, Result: risk.Compute(p, ts)}
}

// findValue returns column B of the first row whose column A equals label.
func findValue(t *testing.T, fx *excelize.File, label string) string {
	t.Helper()
	rows, err := fx.GetRows(sheetName, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	for _, r := range rows {
		if len(r) >= 2 && r[0] == label {
			return r[1]
		}
	}
	t.Fatalf("label %q not found", label)
	return ""
}

func TestReporter_WriteCalculation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "calc.xlsx")
	c := calculation(domain.TradeParameters{
		Entry: 100, StopLoss: 95, TakeProfit: 115, Capital: 1000,
		Risk: domain.PercentRisk(2), MaxLeverage: 10,
	})

	require.NoError(t, NewReporter().WriteCalculation(c, path))

	fx, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer fx.Close()

	assert.Equal(t, "calc-1", findValue(t, fx, "Position sizing"))
	assert.Equal(t, "long", findValue(t, fx, "Direction"))
	assert.Equal(t, "4", findValue(t, fx, "Quantity"))
	assert.Equal(t, "20", findValue(t, fx, "Min profit"))
}

func TestReporter_WriteCalculation_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.xlsx")
	c := calculation(domain.TradeParameters{Entry: 100, StopLoss: 100, TakeProfit: 110, Capital: 1000})

	require.NoError(t, NewReporter().WriteCalculation(c, path))

	fx, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer fx.Close()

	assert.Equal(t, "invalid_triangle", findValue(t, fx, "Reason"))
}
