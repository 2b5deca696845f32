package httpapi

import (
	"math"
	"strconv"

	"positionSizer/internal/domain"
)

// jsonFloat encodes NaN and infinities as null, which encoding/json rejects otherwise.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

type inputsDTO struct {
	Entry           jsonFloat  `json:"entry"`
	StopLoss        jsonFloat  `json:"stopLoss"`
	TakeProfit      jsonFloat  `json:"takeProfit"`
	Capital         jsonFloat  `json:"capital"`
	RiskMode        string     `json:"riskMode"`
	RiskAmount      *jsonFloat `json:"riskAmount"` // null means the default
	MaxLeverage     jsonFloat  `json:"maxLeverage"`
	DiscreteUnits   bool       `json:"discreteUnits"`
	TriggerMultiple jsonFloat  `json:"triggerMultiple"`
	LockMultiple    jsonFloat  `json:"lockMultiple"`
}

type sizeDTO struct {
	RiskAmount        jsonFloat `json:"riskAmount"`
	RiskPercent       jsonFloat `json:"riskPercent"`
	ComputedSize      jsonFloat `json:"computedSize"`
	MaxAllowedSize    jsonFloat `json:"maxAllowedSize"`
	LeverageLimited   bool      `json:"leverageLimited"`
	ActualSize        jsonFloat `json:"actualSize"`
	ActualRisk        jsonFloat `json:"actualRisk"`
	RiskReduced       bool      `json:"riskReduced"`
	RiskShortfall     jsonFloat `json:"riskShortfall"`
	PositionValue     jsonFloat `json:"positionValue"`
	EffectiveLeverage jsonFloat `json:"effectiveLeverage"`
}

type rewardDTO struct {
	PotentialProfit         jsonFloat `json:"potentialProfit"`
	RiskRewardRatio         jsonFloat `json:"riskRewardRatio"`
	Tier                    string    `json:"tier"`
	TakeProfitChangePercent jsonFloat `json:"takeProfitChangePercent"`
}

type trailingDTO struct {
	TriggerPrice       jsonFloat  `json:"triggerPrice"`
	LimitPrice         jsonFloat  `json:"limitPrice"`
	LimitChangePercent jsonFloat  `json:"limitChangePercent"`
	MinProfit          *jsonFloat `json:"minProfit,omitempty"`
	MaxLoss            *jsonFloat `json:"maxLoss,omitempty"`
}

type calculationDTO struct {
	ID          string       `json:"id"`
	Valid       bool         `json:"valid"`
	Reason      string       `json:"reason,omitempty"`
	Direction   string       `json:"direction"`
	RiskUnit    jsonFloat    `json:"riskUnit"`
	Inputs      inputsDTO    `json:"inputs"`
	Size        *sizeDTO     `json:"size,omitempty"`
	Reward      *rewardDTO   `json:"reward,omitempty"`
	Trailing    *trailingDTO `json:"trailing,omitempty"`
	LockCeiling *jsonFloat   `json:"lockCeiling,omitempty"`
	Link        string       `json:"link"`
}

type switchDTO struct {
	Mode  string `json:"mode"`
	Query string `json:"query"`
	Link  string `json:"link"`
}

type errorDTO struct {
	Error string `json:"error"`
}

func ptr(v float64) *jsonFloat {
	f := jsonFloat(v)
	return &f
}

func toDTO(c *domain.Calculation) calculationDTO {
	p, res := c.Params, c.Result
	out := calculationDTO{
		ID:        c.ID,
		Valid:     res.Valid,
		Reason:    string(res.Reason),
		Direction: string(res.Direction),
		RiskUnit:  jsonFloat(res.RiskUnit),
		Link:      c.Link,
		Inputs: inputsDTO{
			Entry:           jsonFloat(p.Entry),
			StopLoss:        jsonFloat(p.StopLoss),
			TakeProfit:      jsonFloat(p.TakeProfit),
			Capital:         jsonFloat(p.Capital),
			RiskMode:        string(p.Risk.Mode),
			MaxLeverage:     jsonFloat(p.MaxLeverage),
			DiscreteUnits:   p.DiscreteUnits,
			TriggerMultiple: jsonFloat(c.Trailing.TriggerMultiple),
			LockMultiple:    jsonFloat(c.Trailing.LockMultiple),
		},
	}
	if p.Risk.IsSet() {
		out.Inputs.RiskAmount = ptr(*p.Risk.Amount)
	}
	if !res.Valid {
		return out
	}

	s, rw, ts := res.Size, res.Reward, res.Trailing
	out.Size = &sizeDTO{
		RiskAmount:        jsonFloat(s.RiskAmount),
		RiskPercent:       jsonFloat(s.RiskPercent),
		ComputedSize:      jsonFloat(s.ComputedSize),
		MaxAllowedSize:    jsonFloat(s.MaxAllowedSize),
		LeverageLimited:   s.LeverageLimited,
		ActualSize:        jsonFloat(s.ActualSize),
		ActualRisk:        jsonFloat(s.ActualRisk),
		RiskReduced:       s.RiskReduced,
		RiskShortfall:     jsonFloat(s.RiskShortfall),
		PositionValue:     jsonFloat(s.PositionValue),
		EffectiveLeverage: jsonFloat(s.EffectiveLeverage),
	}
	out.Reward = &rewardDTO{
		PotentialProfit:         jsonFloat(rw.PotentialProfit),
		RiskRewardRatio:         jsonFloat(rw.RiskRewardRatio),
		Tier:                    rw.Tier.String(),
		TakeProfitChangePercent: jsonFloat(rw.TakeProfitChangePercent),
	}
	out.Trailing = &trailingDTO{
		TriggerPrice:       jsonFloat(ts.TriggerPrice),
		LimitPrice:         jsonFloat(ts.LimitPrice),
		LimitChangePercent: jsonFloat(ts.LimitChangePercent),
	}
	if ts.LocksProfit {
		out.Trailing.MinProfit = ptr(ts.MinProfit)
	} else {
		out.Trailing.MaxLoss = ptr(ts.MaxLoss)
	}
	out.LockCeiling = ptr(c.LockCeiling)
	return out
}
