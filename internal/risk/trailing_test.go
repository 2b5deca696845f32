package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"positionSizer/internal/domain"
)

func TestCalculateTrailingStop(t *testing.T) {
	tests := []struct {
		name        string
		spec        domain.TrailingStopSpec
		entry       float64
		stopLoss    float64
		wantTrigger float64
		wantLimit   float64
		wantChange  float64
		wantLocks   bool
		wantProfit  float64
		wantLoss    float64
	}{
		{
			name:  "long lock profit",
			spec:  domain.TrailingStopSpec{TriggerMultiple: 3, LockMultiple: 2},
			entry: 100, stopLoss: 95,
			wantTrigger: 115, wantLimit: 110, wantChange: 10,
			wantLocks: true, wantProfit: 100,
		},
		{
			name:  "short lock profit",
			spec:  domain.TrailingStopSpec{TriggerMultiple: 3, LockMultiple: 2},
			entry: 100, stopLoss: 105,
			wantTrigger: 85, wantLimit: 90, wantChange: 10,
			wantLocks: true, wantProfit: 100,
		},
		{
			name:  "break-even lock",
			spec:  domain.TrailingStopSpec{TriggerMultiple: 2, LockMultiple: 0},
			entry: 100, stopLoss: 95,
			wantTrigger: 110, wantLimit: 100, wantChange: 0,
		},
		{
			name:  "negative lock caps loss",
			spec:  domain.TrailingStopSpec{TriggerMultiple: 1, LockMultiple: -0.5},
			entry: 100, stopLoss: 95,
			wantTrigger: 105, wantLimit: 97.5, wantChange: 2.5,
			wantLoss: 25,
		},
		{
			name:  "out of range lock is still computed",
			spec:  domain.TrailingStopSpec{TriggerMultiple: 1, LockMultiple: 50},
			entry: 100, stopLoss: 99,
			wantTrigger: 101, wantLimit: 150, wantChange: 50,
			wantLocks: true, wantProfit: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const size = 10.0
			unit := tt.entry - tt.stopLoss
			if unit < 0 {
				unit = -unit
			}

			res := CalculateTrailingStop(tt.spec, tt.entry, tt.stopLoss, size, unit)

			assert.InDelta(t, tt.wantTrigger, res.TriggerPrice, eps)
			assert.InDelta(t, tt.wantLimit, res.LimitPrice, eps)
			assert.InDelta(t, tt.wantChange, res.LimitChangePercent, eps)
			assert.Equal(t, tt.wantLocks, res.LocksProfit)
			assert.InDelta(t, tt.wantProfit, res.MinProfit, eps)
			assert.InDelta(t, tt.wantLoss, res.MaxLoss, eps)
		})
	}
}
