package app

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"positionSizer/config"
	"positionSizer/internal/adapters/params"
	"positionSizer/internal/domain"
	"positionSizer/internal/ports"
	"positionSizer/internal/risk"
)

// SizingService binds caller inputs, runs the engine and reports the outcome.
// It keeps no state between calls and is safe for concurrent use.
type SizingService struct {
	cfg     *config.Config
	logger  ports.Logger
	calc    ports.Calculator
	metrics ports.MetricsRecorder
	binder  *params.Binder
}

// NewSizingService creates a new application service instance.
func NewSizingService(
	cfg *config.Config,
	logger ports.Logger,
	calc ports.Calculator,
	metrics ports.MetricsRecorder,
) (*SizingService, error) {
	if cfg == nil || logger == nil || calc == nil || metrics == nil {
		return nil, fmt.Errorf("missing required dependencies for SizingService")
	}

	return &SizingService{
		cfg:     cfg,
		logger:  logger,
		calc:    calc,
		metrics: metrics,
		binder:  params.NewBinder(cfg.Defaults, cfg.LockPolicy),
	}, nil
}

// Calculate binds q (shareable-link keys) and computes every figure for it.
func (s *SizingService) Calculate(ctx context.Context, q url.Values) (*domain.Calculation, error) {
	in, err := s.binder.Decode(q)
	if err != nil {
		s.metrics.ObserveBindingError()
		s.logger.Warn(ctx, "Rejected calculation inputs", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("bind inputs: %w", err)
	}
	if in.LockClamped {
		s.logger.Debug(ctx, "Lock multiple clamped to ceiling", map[string]interface{}{
			"requested": q.Get(params.KeyLock),
			"ceiling":   in.LockCeiling,
		})
	}
	if in.TriggerClamped {
		s.logger.Debug(ctx, "Trigger multiple raised to minimum", map[string]interface{}{
			"requested": q.Get(params.KeyTrigger),
			"minimum":   params.MinMultiple,
		})
	}

	calc := s.compute(ctx, in.Params, in.Trailing)
	calc.LockCeiling = in.LockCeiling
	return calc, nil
}

// Compute runs the engine on already-bound inputs. The lock ceiling is reported
// but not enforced.
func (s *SizingService) Compute(ctx context.Context, p domain.TradeParameters, ts domain.TrailingStopSpec) *domain.Calculation {
	calc := s.compute(ctx, p, ts)
	if calc.Result.Valid {
		calc.LockCeiling = risk.LockCeiling(calc.Result.Reward.RiskRewardRatio)
	}
	return calc
}

// SwitchRiskMode rewrites the risk keys of q for the target mode and returns the
// new query together with its shareable link.
func (s *SizingService) SwitchRiskMode(ctx context.Context, q url.Values, to domain.RiskMode) (url.Values, string, error) {
	out, err := s.binder.SwitchRiskMode(q, to)
	if err != nil {
		s.metrics.ObserveBindingError()
		s.logger.Warn(ctx, "Risk mode switch rejected", map[string]interface{}{"to": string(to), "error": err.Error()})
		return nil, "", fmt.Errorf("switch risk mode: %w", err)
	}
	s.logger.Debug(ctx, "Risk mode switched", map[string]interface{}{"to": string(to), "ra": out.Get(params.KeyRiskAmount)})
	return out, params.Link(s.cfg.ShareBaseURL, out), nil
}

func (s *SizingService) compute(ctx context.Context, p domain.TradeParameters, ts domain.TrailingStopSpec) *domain.Calculation {
	calc := &domain.Calculation{
		ID:       uuid.NewString(),
		Params:   p,
		Trailing: ts,
		Result:   s.calc.Compute(p, ts),
		Link:     params.Link(s.cfg.ShareBaseURL, params.Encode(p, ts)),
	}
	s.metrics.ObserveCalculation(calc.Result)

	res := calc.Result
	if !res.Valid {
		s.logger.Info(ctx, "Calculation inputs are not a valid trade", map[string]interface{}{
			"id":         calc.ID,
			"reason":     string(res.Reason),
			"entry":      p.Entry,
			"stopLoss":   p.StopLoss,
			"takeProfit": p.TakeProfit,
		})
		return calc
	}

	s.logger.Debug(ctx, "Calculation completed", map[string]interface{}{
		"id":        calc.ID,
		"direction": string(res.Direction),
		"size":      res.Size.ActualSize,
		"rr":        res.Reward.RiskRewardRatio,
	})
	if res.Size.RiskReduced {
		s.logger.Info(ctx, "Actual risk is below the requested risk", map[string]interface{}{
			"id":              calc.ID,
			"riskAmount":      res.Size.RiskAmount,
			"actualRisk":      res.Size.ActualRisk,
			"leverageLimited": res.Size.LeverageLimited,
		})
	}
	return calc
}
