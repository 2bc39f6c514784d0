package scoring

import (
	"math"

	"github.com/mathdrill/backend/internal/domain/progress"
)

// HintDeduction is subtracted from the score of a problem whose hint was
// used.
const HintDeduction = 0.25

// Score is the credit for a problem answered correctly on the given attempt.
// It is undefined (false) when attempts is not positive.
func Score(attempts int, policy CorrectionPolicy) (float64, bool) {
	if attempts <= 0 {
		return 0, false
	}
	if attempts == 1 {
		return 1, true
	}
	switch policy {
	case Full:
		return 1, true
	case Half:
		return 0.5, true
	case HalfToThePowerN:
		return math.Pow(0.5, float64(attempts-1)), true
	default:
		return 0, true
	}
}

// EffectiveAttempts is the attempt count used for scoring: the attempt
// number of the earliest correct history entry, or the raw attempt count when
// no entry is correct.
func EffectiveAttempts(s progress.ProblemState) int {
	if idx := s.EarliestCorrect(); idx >= 0 {
		return s.AttemptNumber(idx)
	}
	return s.Attempts
}

// ProblemScore is the credit a problem earns in reports. Correct problems
// score by effective attempts less the hint and walkthrough deductions, each
// floored at zero. Revealed problems score zero. Anything else is unscored.
func ProblemScore(s progress.ProblemState, policy CorrectionPolicy) (float64, bool) {
	switch s.Status {
	case progress.Revealed:
		return 0, true
	case progress.Correct:
	default:
		return 0, false
	}

	score, ok := Score(max(1, EffectiveAttempts(s)), policy)
	if !ok {
		return 0, false
	}
	if s.HintUsed {
		score = math.Max(0, score-HintDeduction)
	}
	if s.AutomationUsed {
		score = math.Max(0, score-s.AutomationDeduction)
	}
	return score, true
}
