package dto

// EvaluationResult is the proposal returned by the external plan evaluator.
// Every field is computed upstream and taken as is.
type EvaluationResult struct {
	StockCode            string           `json:"stock_code"`
	CurrentPrice         float64          `json:"current_price"`
	SupportPrice         float64          `json:"support_price"`
	PEPercentile         *float64         `json:"pe_percentile"`
	PBPercentile         *float64         `json:"pb_percentile"`
	RiskRewardRatio      *float64         `json:"risk_reward_ratio"`
	CompositeScore       float64          `json:"composite_score"`
	ScoreLabel           string           `json:"score_label"`
	EntryConditions      []EntryCondition `json:"entry_conditions"`
	StopLossConditions   []string         `json:"stop_loss_conditions"`
	TakeProfitConditions []string         `json:"take_profit_conditions"`
	Reasons              []string         `json:"reasons"`
}

type EntryCondition struct {
	Name      string `json:"name"`
	Satisfied bool   `json:"satisfied"`
}

// ConditionEvaluationRequest asks the evaluator for the current verdict of named exit conditions.
type ConditionEvaluationRequest struct {
	StockCode  string   `json:"stock_code"`
	StopLoss   []string `json:"stop_loss"`
	TakeProfit []string `json:"take_profit"`
}

// ConditionEvaluationResult maps each condition name to whether it currently fires.
type ConditionEvaluationResult struct {
	StopLoss   map[string]bool `json:"stop_loss"`
	TakeProfit map[string]bool `json:"take_profit"`
}
