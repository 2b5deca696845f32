package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"positionSizer/internal/domain"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		entry      float64
		stopLoss   float64
		takeProfit float64
		wantValid  bool
		wantDir    domain.Direction
	}{
		{"long bracket", 100, 95, 110, true, domain.Long},
		{"short bracket", 100, 105, 90, true, domain.Short},
		{"stop equals entry", 100, 100, 110, false, domain.Long},
		{"take-profit equals entry", 100, 95, 100, false, domain.Long},
		{"take-profit equals entry short", 100, 105, 100, false, domain.Short},
		{"both below", 100, 95, 99, false, domain.Long},
		{"both above", 100, 105, 101, false, domain.Short},
		{"inverted long", 100, 110, 120, false, domain.Short},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, dir := Validate(tt.entry, tt.stopLoss, tt.takeProfit)
			assert.Equal(t, tt.wantValid, valid)
			assert.Equal(t, tt.wantDir, dir)
		})
	}
}
