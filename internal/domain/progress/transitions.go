package progress

import (
	"slices"
	"strings"

	"github.com/mathdrill/backend/internal/domain/automation"
)

// GradeFunc grades one submission and returns a verdict per answer part.
type GradeFunc func(inputs []string) []bool

// Every transition takes a state by value and returns the next state with a
// flag saying whether anything changed. Invalid calls return the input state
// unchanged with false; they are never errors.

// Submit grades inputs and records the attempt. Inputs are fitted to
// partCount. A submission where every input is blank, or one made after the
// cycle already ended, is ignored.
func Submit(s ProblemState, inputs []string, partCount, maxRetries int, grade GradeFunc) (ProblemState, bool) {
	if s.Status.Terminal() || allBlank(inputs) {
		return s, false
	}

	answers := fit(inputs, partCount)
	results := grade(answers)
	allCorrect := !slices.Contains(results, false)

	next := s.Clone()
	next.Attempts++
	switch {
	case allCorrect:
		next.Status = Correct
	case next.CycleAttempts() >= maxRetries:
		next.Status = Revealed
	default:
		next.Status = Incorrect
	}
	next.UserAnswers = answers
	next.Results = slices.Clone(results)
	next.History = append(next.History, AttemptRecord{
		Answers: slices.Clone(answers),
		Results: slices.Clone(results),
		Correct: allCorrect,
	})
	return next, true
}

// Reset starts a new cycle. Attempts, history and the assist flags are kept;
// the retry budget counts from zero again.
func Reset(s ProblemState, partCount int) (ProblemState, bool) {
	next := s.Clone()
	next.CycleStart = next.Attempts
	next.Status = Unanswered
	next.UserAnswers = make([]string, partCount)
	next.Results = nil
	return next, true
}

// Dispute accepts part partIndex of history entry historyIndex as correct.
//
// The entry's verdict is recomputed, then the earliest correct entry in the
// whole history becomes the scoring reference: the status turns Correct and
// results, answers and attempts are taken from that entry. A dispute can
// therefore lower the attempt count, never below the attempt number of
// the earliest correct entry.
func Dispute(s ProblemState, historyIndex, partIndex int) (ProblemState, bool) {
	if historyIndex < 0 || historyIndex >= len(s.History) {
		return s, false
	}
	if partIndex < 0 || partIndex >= len(s.History[historyIndex].Results) {
		return s, false
	}

	next := s.Clone()
	entry := &next.History[historyIndex]
	entry.Results[partIndex] = true
	if len(entry.Disputed) != len(entry.Results) {
		entry.Disputed = fitBools(entry.Disputed, len(entry.Results))
	}
	entry.Disputed[partIndex] = true
	entry.Correct = !slices.Contains(entry.Results, false)

	if idx := next.EarliestCorrect(); idx >= 0 {
		earliest := next.History[idx]
		next.Status = Correct
		next.Results = slices.Clone(earliest.Results)
		next.UserAnswers = slices.Clone(earliest.Answers)
		next.Attempts = next.AttemptNumber(idx)
		next.CycleStart = min(next.CycleStart, next.Attempts)
	}
	return next, true
}

// UseHint marks the hint as used. It is a no-op once used or once the cycle
// has ended.
func UseHint(s ProblemState) (ProblemState, bool) {
	if s.HintUsed || s.Status.Terminal() {
		return s, false
	}
	next := s.Clone()
	next.HintUsed = true
	return next, true
}

// RevealStep reveals the current walkthrough step and charges its cost.
func RevealStep(s ProblemState, w automation.Walkthrough) (ProblemState, bool) {
	if s.Status.Terminal() {
		return s, false
	}
	next := s.Clone()
	next.AutomationStepStates = stepStates(next.AutomationStepStates, len(w.Steps))
	cur := w.Current(next.AutomationStepStates)
	if cur >= len(w.Steps) {
		return s, false
	}

	next.AutomationStepStates[cur] = automation.StepState{Revealed: true}
	next.AutomationDeduction = automation.Round1(next.AutomationDeduction + w.Costs[cur])
	next.AutomationUsed = true
	return next, true
}

// TypeStep records the learner's own working for the current step. It costs
// nothing; blank text is ignored.
func TypeStep(s ProblemState, w automation.Walkthrough, text string) (ProblemState, bool) {
	text = strings.TrimSpace(text)
	if text == "" || s.Status.Terminal() {
		return s, false
	}
	next := s.Clone()
	next.AutomationStepStates = stepStates(next.AutomationStepStates, len(w.Steps))
	cur := w.Current(next.AutomationStepStates)
	if cur >= len(w.Steps) {
		return s, false
	}

	next.AutomationStepStates[cur] = automation.StepState{UserTyped: &text}
	next.AutomationUsed = true
	return next, true
}

// PostAnswer charges for having the walkthrough fill in the answer. It is
// only offered once every step has been revealed or typed.
func PostAnswer(s ProblemState, w automation.Walkthrough) (ProblemState, bool) {
	if s.Status.Terminal() || !w.Finished(s.AutomationStepStates) {
		return s, false
	}
	next := s.Clone()
	next.AutomationDeduction = automation.Round1(next.AutomationDeduction + automation.PostAnswerCost)
	next.AutomationUsed = true
	return next, true
}

// stepStates keeps saved step states when they fit the walkthrough and starts
// fresh otherwise.
func stepStates(saved []automation.StepState, n int) []automation.StepState {
	if len(saved) == n {
		return saved
	}
	return make([]automation.StepState, n)
}

func allBlank(inputs []string) bool {
	for _, in := range inputs {
		if strings.TrimSpace(in) != "" {
			return false
		}
	}
	return true
}

func fitBools(in []bool, n int) []bool {
	out := make([]bool, n)
	copy(out, in)
	return out
}
