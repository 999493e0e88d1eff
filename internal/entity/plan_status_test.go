package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanStatusTransitions(t *testing.T) {
	all := []PlanStatus{PlanStatusPlanning, PlanStatusActive, PlanStatusCompleted, PlanStatusCancelled}
	allowed := map[[2]PlanStatus]bool{
		{PlanStatusPlanning, PlanStatusActive}:    true,
		{PlanStatusPlanning, PlanStatusCancelled}: true,
		{PlanStatusActive, PlanStatusCompleted}:   true,
		{PlanStatusActive, PlanStatusCancelled}:   true,
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]PlanStatus{from, to}]
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestPlanStatusTerminal(t *testing.T) {
	assert.False(t, PlanStatusPlanning.IsTerminal())
	assert.False(t, PlanStatusActive.IsTerminal())
	assert.True(t, PlanStatusCompleted.IsTerminal())
	assert.True(t, PlanStatusCancelled.IsTerminal())

	assert.True(t, PlanStatusActive.IsValid())
	assert.False(t, PlanStatus("archived").IsValid())
	assert.False(t, PlanStatus("archived").CanTransitionTo(PlanStatusActive))
}

func TestTradePlanJSONColumns(t *testing.T) {
	plan := TradePlan{
		EntryTargetPrice:   50,
		EntryConditions:    ToJSON([]NamedCondition{{Name: "golden cross", Satisfied: true}}),
		StopLossConditions: ToJSON([]string{"weekly MACD death cross", "break 20d support"}),
	}

	assert.Equal(t, []NamedCondition{{Name: "golden cross", Satisfied: true}}, plan.EntryConditionList())
	assert.Equal(t, []string{"weekly MACD death cross", "break 20d support"}, plan.StopLossConditionNames())
	assert.Nil(t, plan.TakeProfitConditionNames())
	assert.Equal(t, "[]", string(ToJSON[string](nil)))

	assert.Equal(t, 50.0, plan.EntryPrice())
	actual := 48.5
	plan.EntryActualPrice = &actual
	assert.Equal(t, 48.5, plan.EntryPrice())
}
