package progress

import (
	"slices"

	"github.com/mathdrill/backend/internal/domain/automation"
)

// AttemptRecord is one submission in a problem's history. Only Disputed
// changes after the record is appended.
type AttemptRecord struct {
	Answers  []string `json:"answers"`
	Results  []bool   `json:"results"`
	Correct  bool     `json:"correct"`
	Disputed []bool   `json:"disputed,omitempty"`
}

// ProblemState is everything persisted about one problem for one learner.
//
// Attempts counts submissions across all cycles; CycleStart is the value of
// Attempts when the current cycle began, so Attempts-CycleStart is what the
// retry budget is measured against. Results is nil until the current cycle
// has a graded submission.
type ProblemState struct {
	Attempts    int             `json:"attempts"`
	CycleStart  int             `json:"cycleStart"`
	Status      Status          `json:"status"`
	UserAnswers []string        `json:"userAnswers"`
	Results     []bool          `json:"results"`
	History     []AttemptRecord `json:"history"`

	// UntrackedAttempts counts submissions made before history was tracked.
	// They precede History[0].
	UntrackedAttempts int `json:"untrackedAttempts,omitempty"`

	HintUsed             bool                   `json:"hintUsed,omitempty"`
	AutomationUsed       bool                   `json:"automationUsed,omitempty"`
	AutomationDeduction  float64                `json:"automationDeduction,omitempty"`
	AutomationStepStates []automation.StepState `json:"automationStepStates,omitempty"`
}

// New returns the state of a problem nobody has touched.
func New(partCount int) ProblemState {
	return ProblemState{
		UserAnswers: make([]string, partCount),
		History:     []AttemptRecord{},
	}
}

// CycleAttempts is the number of submissions since the last reset.
func (s ProblemState) CycleAttempts() int {
	return s.Attempts - s.CycleStart
}

// RetriesLeft is how many more wrong submissions the current cycle allows.
func (s ProblemState) RetriesLeft(maxRetries int) int {
	return max(0, maxRetries-s.CycleAttempts())
}

// Answered reports whether the problem counts as attempted in reports.
func (s ProblemState) Answered() bool {
	return s.Status != Unanswered
}

// AttemptNumber is the 1-based attempt that history entry i records.
func (s ProblemState) AttemptNumber(i int) int {
	return s.UntrackedAttempts + i + 1
}

// EarliestCorrect returns the index of the first history entry graded
// correct, or -1.
func (s ProblemState) EarliestCorrect() int {
	return slices.IndexFunc(s.History, func(r AttemptRecord) bool { return r.Correct })
}

// Clone returns a deep copy.
func (s ProblemState) Clone() ProblemState {
	c := s
	c.UserAnswers = slices.Clone(s.UserAnswers)
	c.Results = slices.Clone(s.Results)
	if s.History != nil {
		c.History = make([]AttemptRecord, len(s.History))
		for i, r := range s.History {
			c.History[i] = AttemptRecord{
				Answers:  slices.Clone(r.Answers),
				Results:  slices.Clone(r.Results),
				Correct:  r.Correct,
				Disputed: slices.Clone(r.Disputed),
			}
		}
	}
	if s.AutomationStepStates != nil {
		c.AutomationStepStates = make([]automation.StepState, len(s.AutomationStepStates))
		for i, st := range s.AutomationStepStates {
			c.AutomationStepStates[i] = st
			if st.UserTyped != nil {
				typed := *st.UserTyped
				c.AutomationStepStates[i].UserTyped = &typed
			}
		}
	}
	return c
}

// fit pads with blanks or truncates to exactly n entries.
func fit(in []string, n int) []string {
	out := make([]string, n)
	copy(out, in)
	return out
}
