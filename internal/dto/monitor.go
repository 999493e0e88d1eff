package dto

type ConditionState string

const (
	ConditionTriggered ConditionState = "triggered"
	ConditionSafe      ConditionState = "safe"
	ConditionUnknown   ConditionState = "unknown"
)

const (
	ConditionTypePriceStop   = "price_stop"
	ConditionTypePriceProfit = "price_profit"
	ConditionTypeNamed       = "named"
)

// ConditionResult is the verdict of a single exit rule.
type ConditionResult struct {
	Type  string         `json:"type"`
	Name  string         `json:"name"`
	State ConditionState `json:"state"`
}

// BranchResult is the aggregated verdict of the stop-loss or the take-profit branch.
type BranchResult struct {
	Triggered  bool              `json:"triggered"`
	PnLPct     float64           `json:"pnl_pct"`
	Conditions []ConditionResult `json:"conditions"`
}

// MonitorResult is the advisory output of monitoring one active plan.
type MonitorResult struct {
	PlanID              uint         `json:"plan_id"`
	StockCode           string       `json:"stock_code"`
	StockName           string       `json:"stock_name"`
	CurrentPrice        float64      `json:"current_price"`
	EntryPrice          float64      `json:"entry_price"`
	PnLPct              float64      `json:"pnl_pct"`
	StopLoss            BranchResult `json:"stop_loss"`
	TakeProfit          BranchResult `json:"take_profit"`
	ConditionsAvailable bool         `json:"conditions_available"`
}

// MonitorBatchItem is the per plan outcome of a batch run: a result or an error, never both.
type MonitorBatchItem struct {
	PlanID    uint           `json:"plan_id"`
	StockCode string         `json:"stock_code"`
	Result    *MonitorResult `json:"result,omitempty"`
	Error     string         `json:"error,omitempty"`
	ErrorCode string         `json:"error_code,omitempty"`
}
