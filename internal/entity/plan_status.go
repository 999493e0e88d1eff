package entity

type PlanStatus string

const (
	PlanStatusPlanning  PlanStatus = "planning"
	PlanStatusActive    PlanStatus = "active"
	PlanStatusCompleted PlanStatus = "completed"
	PlanStatusCancelled PlanStatus = "cancelled"
)

// planTransitions is the complete lifecycle graph. Terminal states have no entry.
var planTransitions = map[PlanStatus]map[PlanStatus]bool{
	PlanStatusPlanning: {
		PlanStatusActive:    true,
		PlanStatusCancelled: true,
	},
	PlanStatusActive: {
		PlanStatusCompleted: true,
		PlanStatusCancelled: true,
	},
}

func (s PlanStatus) IsValid() bool {
	switch s {
	case PlanStatusPlanning, PlanStatusActive, PlanStatusCompleted, PlanStatusCancelled:
		return true
	}
	return false
}

func (s PlanStatus) IsTerminal() bool {
	return s == PlanStatusCompleted || s == PlanStatusCancelled
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s PlanStatus) CanTransitionTo(next PlanStatus) bool {
	return planTransitions[s][next]
}
