package entities

import "math"

// SessionOutcome is the terminal (or running) state of a repair session.
type SessionOutcome string

const (
	OutcomeRunning              SessionOutcome = "running"
	OutcomeConvergedNoIssues    SessionOutcome = "converged"
	OutcomeStalledNoImprovement SessionOutcome = "stalled"
	OutcomeRoundBudgetExhausted SessionOutcome = "budget-exhausted"
)

// RoundState tracks convergence across repair rounds. It lives for one
// session only; nothing persists across process invocations.
type RoundState struct {
	RoundNumber           int
	ConflictCount         int
	PreviousConflictCount int
}

// NewRoundState returns the state before round 1. The previous conflict
// count starts at +infinity so the first round can never be read as a stall.
func NewRoundState() RoundState {
	return RoundState{
		RoundNumber:           0,
		ConflictCount:         0,
		PreviousConflictCount: math.MaxInt,
	}
}

// Observe records the conflict count seen by the current round.
func (s *RoundState) Observe(conflictCount int) {
	s.ConflictCount = conflictCount
}

// Improved reports whether the current round's count is strictly lower than
// the previous round's.
func (s *RoundState) Improved() bool {
	return s.ConflictCount < s.PreviousConflictCount
}

// Advance rolls the state over to the next round.
func (s *RoundState) Advance() {
	s.PreviousConflictCount = s.ConflictCount
	s.RoundNumber++
}

// SessionSummary is the final report of a repair session.
type SessionSummary struct {
	Outcome        SessionOutcome
	RoundsExecuted int
	RoundBudget    int
	FinalConflicts int
	FinalOutput    []string // last checker output, for manual follow-up
}
