package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"positionSizer/internal/domain"
)

func TestRecorder_ObserveCalculation(t *testing.T) {
	r := NewRecorder()

	okBefore := testutil.ToFloat64(calculationsTotal.WithLabelValues("short", "ok"))
	invalidBefore := testutil.ToFloat64(calculationsTotal.WithLabelValues("long", "invalid_triangle"))
	leverageBefore := testutil.ToFloat64(riskReducedTotal.WithLabelValues("leverage"))

	r.ObserveCalculation(domain.EngineResult{
		Valid:     true,
		Direction: domain.Short,
		Size:      &domain.PositionSizeResult{LeverageLimited: true, RiskReduced: true, EffectiveLeverage: 1},
		Reward:    &domain.RewardResult{RiskRewardRatio: 8.8},
	})
	r.ObserveCalculation(domain.EngineResult{Direction: domain.Long, Reason: domain.ReasonInvalidTriangle})

	assert.Equal(t, okBefore+1, testutil.ToFloat64(calculationsTotal.WithLabelValues("short", "ok")))
	assert.Equal(t, invalidBefore+1, testutil.ToFloat64(calculationsTotal.WithLabelValues("long", "invalid_triangle")))
	assert.Equal(t, leverageBefore+1, testutil.ToFloat64(riskReducedTotal.WithLabelValues("leverage")))
}

func TestHandler(t *testing.T) {
	NewRecorder().ObserveBindingError()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sizer_binding_errors_total")
}
