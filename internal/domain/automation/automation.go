package automation

import (
	"math"

	"github.com/mathdrill/backend/internal/domain/problem"
)

// PostAnswerCost is deducted when the walkthrough fills in the final answer.
const PostAnswerCost = 0.2

const fallbackStep = "Refer to the answer."

// costSchedules maps a walkthrough length to its per-step costs.
var costSchedules = map[int][]float64{
	2: {0.2, 0.4},
	3: {0.1, 0.2, 0.3},
	4: {0.1, 0.1, 0.2, 0.2},
	5: {0.1, 0.1, 0.1, 0.1, 0.2},
}

// StepState records how the learner got past one walkthrough step: by
// revealing it, or by typing it themselves.
type StepState struct {
	Revealed  bool    `json:"revealed"`
	UserTyped *string `json:"userTyped"`
}

func (s StepState) Done() bool {
	return s.Revealed || s.UserTyped != nil
}

// Walkthrough is the step-by-step solution offered for a problem.
type Walkthrough struct {
	Steps []string
	Costs []float64
}

// For builds the walkthrough of p: its steps, else its hint as a single step,
// else a single step pointing at the answer.
func For(p *problem.Problem) Walkthrough {
	steps := p.Steps
	switch {
	case len(steps) > 0:
	case p.Hint != "":
		steps = []string{p.Hint}
	default:
		steps = []string{fallbackStep}
	}
	return Walkthrough{Steps: steps, Costs: Costs(len(steps))}
}

// Costs returns the deduction for revealing each of n steps. Lengths without
// a fixed schedule spread 0.6 evenly, at least 0.1 per step.
func Costs(n int) []float64 {
	if c, ok := costSchedules[n]; ok {
		out := make([]float64, n)
		copy(out, c)
		return out
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Max(0.1, Round1(0.6/float64(n)))
	}
	return out
}

// Current returns the index of the next step to work on: one past the last
// completed step. It equals len(w.Steps) once the walkthrough is finished.
func (w Walkthrough) Current(states []StepState) int {
	last := -1
	for i, s := range states {
		if s.Done() {
			last = i
		}
	}
	return min(last+1, len(w.Steps))
}

// Finished reports whether every step has been revealed or typed.
func (w Walkthrough) Finished(states []StepState) bool {
	if len(states) != len(w.Steps) {
		return false
	}
	for _, s := range states {
		if !s.Done() {
			return false
		}
	}
	return true
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
