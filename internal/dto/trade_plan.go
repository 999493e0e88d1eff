package dto

import (
	"time"

	"golang-trade-pilot/internal/entity"
)

// CreatePlanRequest carries the user editable fields merged over an evaluation.
// Zero values mean "use the evaluation or the configured default".
type CreatePlanRequest struct {
	StockCode            string   `json:"stock_code"`
	StockName            string   `json:"stock_name"`
	EntryTargetPrice     *float64 `json:"entry_target_price"`
	EntryQuantity        int64    `json:"entry_quantity"`
	EntryReason          string   `json:"entry_reason"`
	StopLossPct          *float64 `json:"stop_loss_pct"`
	TakeProfitPct        *float64 `json:"take_profit_pct"`
	StopLossConditions   []string `json:"stop_loss_conditions"`
	TakeProfitConditions []string `json:"take_profit_conditions"`
}

// ActivatePlanRequest records the actual fill of a planned entry.
type ActivatePlanRequest struct {
	EntryActualPrice float64 `json:"entry_actual_price"`
	EntryTriggeredAt string  `json:"entry_triggered_at" example:"2025-03-14T09:35:00+08:00"`
}

// ClosePlanRequest closes a plan with the given outcome (completed or cancelled).
type ClosePlanRequest struct {
	Outcome string `json:"outcome" example:"completed"`
}

// GetTradePlansParam filters plans.
type GetTradePlansParam struct {
	IDs    []uint
	Status *entity.PlanStatus
}

// CreatePlanResult echoes the stored plan together with the evaluation it was built from.
type CreatePlanResult struct {
	Plan       TradePlanResponse `json:"plan"`
	Evaluation EvaluationResult  `json:"evaluation"`
}

// TradePlanResponse is the API view of a plan with decoded condition lists.
type TradePlanResponse struct {
	ID                   uint                    `json:"id"`
	StockCode            string                  `json:"stock_code"`
	StockName            string                  `json:"stock_name"`
	Status               string                  `json:"status"`
	EntryTargetPrice     float64                 `json:"entry_target_price"`
	EntryActualPrice     *float64                `json:"entry_actual_price"`
	EntryTriggeredAt     *time.Time              `json:"entry_triggered_at"`
	EntryQuantity        int64                   `json:"entry_quantity"`
	EntryReason          string                  `json:"entry_reason"`
	EntryConditions      []entity.NamedCondition `json:"entry_conditions"`
	StopLossPct          float64                 `json:"stop_loss_pct"`
	StopLossPrice        float64                 `json:"stop_loss_price"`
	StopLossConditions   []string                `json:"stop_loss_conditions"`
	TakeProfitPct        float64                 `json:"take_profit_pct"`
	TakeProfitPrice      float64                 `json:"take_profit_price"`
	TakeProfitConditions []string                `json:"take_profit_conditions"`
	CompositeScore       float64                 `json:"composite_score"`
	ScoreLabel           string                  `json:"score_label"`
	RiskRewardRatio      *float64                `json:"risk_reward_ratio"`
	SignalSummary        []string                `json:"signal_summary"`
	ClosedAt             *time.Time              `json:"closed_at,omitempty"`
	CreatedAt            time.Time               `json:"created_at"`
	UpdatedAt            time.Time               `json:"updated_at"`
}

// NewTradePlanResponse maps an entity.TradePlan to its API view.
func NewTradePlanResponse(p *entity.TradePlan) TradePlanResponse {
	return TradePlanResponse{
		ID:                   p.ID,
		StockCode:            p.StockCode,
		StockName:            p.StockName,
		Status:               string(p.Status),
		EntryTargetPrice:     p.EntryTargetPrice,
		EntryActualPrice:     p.EntryActualPrice,
		EntryTriggeredAt:     p.EntryTriggeredAt,
		EntryQuantity:        p.EntryQuantity,
		EntryReason:          p.EntryReason,
		EntryConditions:      nonNil(p.EntryConditionList()),
		StopLossPct:          p.StopLossPct,
		StopLossPrice:        p.StopLossPrice,
		StopLossConditions:   nonNil(p.StopLossConditionNames()),
		TakeProfitPct:        p.TakeProfitPct,
		TakeProfitPrice:      p.TakeProfitPrice,
		TakeProfitConditions: nonNil(p.TakeProfitConditionNames()),
		CompositeScore:       p.CompositeScore,
		ScoreLabel:           p.ScoreLabel,
		RiskRewardRatio:      p.RiskRewardRatio,
		SignalSummary:        nonNil(p.SignalSummaryList()),
		ClosedAt:             p.ClosedAt,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
