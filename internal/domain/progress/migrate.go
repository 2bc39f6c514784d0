package progress

import "slices"

// Migrate normalizes a state loaded from storage. States saved before
// history tracking have attempts but no history; they get one synthesized
// entry built from the last answers, results and status, recorded as the
// last of those attempts. UserAnswers is
// fitted to partCount and CycleStart is clamped into [0, Attempts].
//
// The input is not modified. The flag reports whether the result differs,
// so callers can decide to write it back.
func Migrate(s ProblemState, partCount int) (ProblemState, bool) {
	next := s.Clone()
	changed := false

	if next.Attempts < 0 {
		next.Attempts = 0
		changed = true
	}

	if next.Attempts > 0 && len(next.History) == 0 {
		correct := next.Status == Correct
		results := slices.Clone(next.Results)
		if results == nil {
			results = make([]bool, partCount)
			for i := range results {
				results[i] = correct
			}
		}
		next.History = []AttemptRecord{{
			Answers: fit(next.UserAnswers, partCount),
			Results: results,
			Correct: correct,
		}}
		next.UntrackedAttempts = next.Attempts - 1
		changed = true
	}
	if next.History == nil {
		next.History = []AttemptRecord{}
	}

	if partCount > 0 && len(next.UserAnswers) != partCount {
		next.UserAnswers = fit(next.UserAnswers, partCount)
		changed = true
	}

	if next.CycleStart < 0 {
		next.CycleStart = 0
		changed = true
	}
	if next.CycleStart > next.Attempts {
		next.CycleStart = next.Attempts
		changed = true
	}

	return next, changed
}
