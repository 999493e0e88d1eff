package service

import (
	"golang-trade-pilot/internal/dto"
	"golang-trade-pilot/internal/entity"
	"golang-trade-pilot/pkg/apperror"
)

// MonitorInput is everything needed to judge an active plan at one moment.
// Verdicts is nil when the condition evaluator could not be reached.
type MonitorInput struct {
	Plan         entity.TradePlan
	CurrentPrice float64
	Verdicts     *dto.ConditionEvaluationResult
}

// EvaluatePlan folds the price rules and the named condition verdicts of each exit branch.
// A branch triggers when its price rule or any of its named conditions triggers. The result is
// advisory; nothing here changes the plan.
func EvaluatePlan(in MonitorInput) (*dto.MonitorResult, error) {
	plan := in.Plan
	if plan.Status != entity.PlanStatusActive {
		return nil, apperror.InvalidState("trade plan %d is %s, only active plans can be monitored", plan.ID, plan.Status)
	}
	if in.CurrentPrice <= 0 {
		return nil, apperror.DataUnavailable("price for %s is unavailable", plan.StockCode)
	}
	entry := plan.EntryPrice()
	if entry <= 0 {
		return nil, apperror.InvalidState("trade plan %d has non-positive entry price %v", plan.ID, entry)
	}

	pnlPct := pctChange(entry, in.CurrentPrice)

	var stopVerdicts, profitVerdicts map[string]bool
	if in.Verdicts != nil {
		stopVerdicts = in.Verdicts.StopLoss
		profitVerdicts = in.Verdicts.TakeProfit
	}

	stopLoss := foldBranch(
		dto.ConditionResult{Type: dto.ConditionTypePriceStop, Name: "price_stop", State: priceState(in.CurrentPrice <= plan.StopLossPrice)},
		plan.StopLossConditionNames(), stopVerdicts, in.Verdicts != nil, pnlPct)
	takeProfit := foldBranch(
		dto.ConditionResult{Type: dto.ConditionTypePriceProfit, Name: "price_profit", State: priceState(in.CurrentPrice >= plan.TakeProfitPrice)},
		plan.TakeProfitConditionNames(), profitVerdicts, in.Verdicts != nil, pnlPct)

	return &dto.MonitorResult{
		PlanID:              plan.ID,
		StockCode:           plan.StockCode,
		StockName:           plan.StockName,
		CurrentPrice:        in.CurrentPrice,
		EntryPrice:          entry,
		PnLPct:              pnlPct,
		StopLoss:            stopLoss,
		TakeProfit:          takeProfit,
		ConditionsAvailable: in.Verdicts != nil,
	}, nil
}

func priceState(hit bool) dto.ConditionState {
	if hit {
		return dto.ConditionTriggered
	}
	return dto.ConditionSafe
}

func foldBranch(priceRule dto.ConditionResult, names []string, verdicts map[string]bool, available bool, pnlPct float64) dto.BranchResult {
	branch := dto.BranchResult{
		Triggered:  priceRule.State == dto.ConditionTriggered,
		PnLPct:     pnlPct,
		Conditions: make([]dto.ConditionResult, 0, len(names)+1),
	}
	branch.Conditions = append(branch.Conditions, priceRule)

	for _, name := range names {
		state := dto.ConditionUnknown
		if available {
			// a name the evaluator did not answer for stays unknown
			if hit, ok := verdicts[name]; ok {
				state = priceState(hit)
			}
		}
		if state == dto.ConditionTriggered {
			branch.Triggered = true
		}
		branch.Conditions = append(branch.Conditions, dto.ConditionResult{Type: dto.ConditionTypeNamed, Name: name, State: state})
	}
	return branch
}
