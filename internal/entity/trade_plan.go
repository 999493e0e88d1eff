package entity

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// NamedCondition is an externally evaluated entry condition.
type NamedCondition struct {
	Name      string `json:"name"`
	Satisfied bool   `json:"satisfied"`
}

// TradePlan is a risk managed trade moving through PlanStatus.
type TradePlan struct {
	ID                   uint           `gorm:"primaryKey" json:"id"`
	StockCode            string         `gorm:"type:varchar(20);not null;index" json:"stock_code"`
	StockName            string         `gorm:"type:varchar(100)" json:"stock_name"`
	Status               PlanStatus     `gorm:"type:varchar(20);not null;default:planning;index" json:"status"`
	EntryTargetPrice     float64        `gorm:"not null" json:"entry_target_price"`
	EntryActualPrice     *float64       `json:"entry_actual_price"`
	EntryTriggeredAt     *time.Time     `json:"entry_triggered_at"`
	EntryQuantity        int64          `json:"entry_quantity"`
	EntryReason          string         `gorm:"type:text" json:"entry_reason"`
	EntryConditions      datatypes.JSON `gorm:"type:jsonb" json:"entry_conditions"`
	StopLossPct          float64        `gorm:"not null" json:"stop_loss_pct"`
	StopLossPrice        float64        `gorm:"not null" json:"stop_loss_price"`
	StopLossConditions   datatypes.JSON `gorm:"type:jsonb" json:"stop_loss_conditions"`
	TakeProfitPct        float64        `gorm:"not null" json:"take_profit_pct"`
	TakeProfitPrice      float64        `gorm:"not null" json:"take_profit_price"`
	TakeProfitConditions datatypes.JSON `gorm:"type:jsonb" json:"take_profit_conditions"`
	CompositeScore       float64        `json:"composite_score"`
	ScoreLabel           string         `gorm:"type:varchar(50)" json:"score_label"`
	RiskRewardRatio      *float64       `json:"risk_reward_ratio"`
	SignalSummary        datatypes.JSON `gorm:"type:jsonb" json:"signal_summary"`
	ClosedAt             *time.Time     `json:"closed_at,omitempty"`
	CreatedAt            time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TradePlan) TableName() string {
	return "trade_plans"
}

// EntryPrice is the denominator used for plan P&L: the fill price once active, the target before.
func (p TradePlan) EntryPrice() float64 {
	if p.EntryActualPrice != nil {
		return *p.EntryActualPrice
	}
	return p.EntryTargetPrice
}

func (p TradePlan) EntryConditionList() []NamedCondition {
	var out []NamedCondition
	decodeJSON(p.EntryConditions, &out)
	return out
}

func (p TradePlan) StopLossConditionNames() []string {
	var out []string
	decodeJSON(p.StopLossConditions, &out)
	return out
}

func (p TradePlan) TakeProfitConditionNames() []string {
	var out []string
	decodeJSON(p.TakeProfitConditions, &out)
	return out
}

func (p TradePlan) SignalSummaryList() []string {
	var out []string
	decodeJSON(p.SignalSummary, &out)
	return out
}

// ToJSON encodes v for a datatypes.JSON column. Nil slices are stored as empty arrays.
func ToJSON[T any](v []T) datatypes.JSON {
	if v == nil {
		v = []T{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}

func decodeJSON(raw datatypes.JSON, out interface{}) {
	if len(raw) == 0 {
		return
	}
	_ = json.Unmarshal(raw, out)
}
