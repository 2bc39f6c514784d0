package progress_test

import (
	"slices"
	"testing"

	"github.com/mathdrill/backend/internal/domain/automation"
	"github.com/mathdrill/backend/internal/domain/progress"
)

// gradeAll returns a GradeFunc that accepts exactly the given answers, part
// by part.
func gradeAll(want ...string) progress.GradeFunc {
	return func(inputs []string) []bool {
		results := make([]bool, len(want))
		for i := range want {
			results[i] = i < len(inputs) && inputs[i] == want[i]
		}
		return results
	}
}

func submit(t *testing.T, s progress.ProblemState, maxRetries int, inputs ...string) progress.ProblemState {
	t.Helper()
	next, changed := progress.Submit(s, inputs, 1, maxRetries, gradeAll("5"))
	if !changed {
		t.Fatalf("expected submission %v to be recorded", inputs)
	}
	return next
}

func TestSubmit_Correct(t *testing.T) {
	s := submit(t, progress.New(1), 2, "5")

	if s.Status != progress.Correct {
		t.Errorf("expected status %v, got %v", progress.Correct, s.Status)
	}
	if s.Attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", s.Attempts)
	}
	if len(s.History) != 1 || !s.History[0].Correct {
		t.Fatalf("expected one correct history entry, got %+v", s.History)
	}
	if !slices.Equal(s.Results, []bool{true}) {
		t.Errorf("expected results [true], got %v", s.Results)
	}
}

func TestSubmit_BlankIsNoop(t *testing.T) {
	s := progress.New(2)

	next, changed := progress.Submit(s, []string{"", "   "}, 2, 2, gradeAll("a", "b"))
	if changed {
		t.Error("expected blank submission to be ignored")
	}
	if next.Attempts != 0 || len(next.History) != 0 {
		t.Errorf("expected untouched state, got %+v", next)
	}
}

func TestSubmit_AfterCycleEndsIsNoop(t *testing.T) {
	s := submit(t, progress.New(1), 2, "5")

	_, changed := progress.Submit(s, []string{"5"}, 1, 2, gradeAll("5"))
	if changed {
		t.Error("expected submission on a correct problem to be ignored")
	}
}

func TestSubmit_RetryBudget(t *testing.T) {
	for n := 1; n <= 4; n++ {
		s := progress.New(1)
		for i := 1; i <= n; i++ {
			s = submit(t, s, n, "wrong")
			if i < n {
				if s.Status != progress.Incorrect {
					t.Errorf("maxRetries=%d attempt %d: expected %v, got %v", n, i, progress.Incorrect, s.Status)
				}
				if s.Attempts >= n {
					t.Errorf("maxRetries=%d attempt %d: expected attempts < %d, got %d", n, i, n, s.Attempts)
				}
			}
		}
		if s.Status != progress.Revealed {
			t.Errorf("maxRetries=%d: expected %v, got %v", n, progress.Revealed, s.Status)
		}
		if s.Attempts != n {
			t.Errorf("maxRetries=%d: expected %d attempts, got %d", n, n, s.Attempts)
		}
	}
}

func TestSubmit_FitsInputsToParts(t *testing.T) {
	s := progress.New(3)

	next, changed := progress.Submit(s, []string{"a"}, 3, 2, gradeAll("a", "b", "c"))
	if !changed {
		t.Fatal("expected submission to be recorded")
	}
	if !slices.Equal(next.UserAnswers, []string{"a", "", ""}) {
		t.Errorf("expected padded answers, got %q", next.UserAnswers)
	}
	if !slices.Equal(next.Results, []bool{true, false, false}) {
		t.Errorf("expected per-part results, got %v", next.Results)
	}
	if next.Status != progress.Incorrect {
		t.Errorf("expected %v, got %v", progress.Incorrect, next.Status)
	}
}

func TestSubmit_DoesNotMutateInput(t *testing.T) {
	s := submit(t, progress.New(1), 3, "wrong")
	before := s.Clone()

	_ = submit(t, s, 3, "5")

	if len(s.History) != len(before.History) || s.Attempts != before.Attempts {
		t.Error("expected original state to be unchanged")
	}
}

func TestReset(t *testing.T) {
	s := progress.New(1)
	s, _ = progress.UseHint(s)
	s = submit(t, s, 2, "wrong")
	s = submit(t, s, 2, "wrong")
	if s.Status != progress.Revealed {
		t.Fatalf("expected %v, got %v", progress.Revealed, s.Status)
	}

	s, changed := progress.Reset(s, 1)
	if !changed {
		t.Fatal("expected reset to change state")
	}
	if s.Status != progress.Unanswered {
		t.Errorf("expected %v, got %v", progress.Unanswered, s.Status)
	}
	if s.Attempts != 2 || s.CycleStart != 2 || len(s.History) != 2 {
		t.Errorf("expected attempts and history kept, got attempts=%d cycleStart=%d history=%d",
			s.Attempts, s.CycleStart, len(s.History))
	}
	if s.Results != nil {
		t.Errorf("expected results cleared, got %v", s.Results)
	}
	if !s.HintUsed {
		t.Error("expected hint flag to survive reset")
	}

	s = submit(t, s, 2, "wrong")
	if s.Status != progress.Incorrect {
		t.Errorf("expected fresh retry budget after reset, got %v", s.Status)
	}
	if s.RetriesLeft(2) != 1 {
		t.Errorf("expected 1 retry left, got %d", s.RetriesLeft(2))
	}
}

func TestDispute_Retroactive(t *testing.T) {
	s := progress.New(1)
	s = submit(t, s, 5, "wrong")
	s = submit(t, s, 5, "still wrong")
	s = submit(t, s, 5, "5")
	if s.Attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", s.Attempts)
	}

	s, changed := progress.Dispute(s, 1, 0)
	if !changed {
		t.Fatal("expected dispute to change state")
	}

	if s.Status != progress.Correct {
		t.Errorf("expected %v, got %v", progress.Correct, s.Status)
	}
	if s.Attempts != 2 {
		t.Errorf("expected attempts 2 after disputing entry 1, got %d", s.Attempts)
	}
	if !slices.Equal(s.UserAnswers, []string{"still wrong"}) {
		t.Errorf("expected answers of the disputed entry, got %q", s.UserAnswers)
	}
	if !slices.Equal(s.History[1].Disputed, []bool{true}) {
		t.Errorf("expected disputed flag, got %v", s.History[1].Disputed)
	}
	if len(s.History) != 3 {
		t.Errorf("expected history length kept, got %d", len(s.History))
	}
	if s.EarliestCorrect() != 1 {
		t.Errorf("expected earliest correct entry 1, got %d", s.EarliestCorrect())
	}
}

func TestDispute_NeverIncreasesAttempts(t *testing.T) {
	s := progress.New(1)
	s = submit(t, s, 5, "5")
	s, _ = progress.Reset(s, 1)
	s = submit(t, s, 5, "wrong")
	s = submit(t, s, 5, "5")

	s, _ = progress.Dispute(s, 1, 0)
	if s.Attempts != 1 {
		t.Errorf("expected earliest correct entry to win with attempts 1, got %d", s.Attempts)
	}
	if s.CycleStart > s.Attempts {
		t.Errorf("expected cycleStart <= attempts, got %d > %d", s.CycleStart, s.Attempts)
	}
}

func TestDispute_PartialPartKeepsEntryIncorrect(t *testing.T) {
	s := progress.New(2)
	s, _ = progress.Submit(s, []string{"x", "y"}, 2, 5, gradeAll("a", "b"))

	s, changed := progress.Dispute(s, 0, 1)
	if !changed {
		t.Fatal("expected dispute to record the flag")
	}
	if s.History[0].Correct {
		t.Error("expected entry to stay incorrect while another part is wrong")
	}
	if s.Status != progress.Incorrect {
		t.Errorf("expected status unchanged, got %v", s.Status)
	}
	if !slices.Equal(s.History[0].Disputed, []bool{false, true}) {
		t.Errorf("expected disputed [false true], got %v", s.History[0].Disputed)
	}

	s, _ = progress.Dispute(s, 0, 0)
	if s.Status != progress.Correct || s.Attempts != 1 {
		t.Errorf("expected correct with 1 attempt after both parts disputed, got %v / %d", s.Status, s.Attempts)
	}
}

func TestDispute_InvalidIndexIsNoop(t *testing.T) {
	s := submit(t, progress.New(1), 5, "wrong")

	cases := [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for _, c := range cases {
		next, changed := progress.Dispute(s, c[0], c[1])
		if changed {
			t.Errorf("Dispute(%d, %d): expected no-op", c[0], c[1])
		}
		if next.Status != s.Status || next.History[0].Results[0] {
			t.Errorf("Dispute(%d, %d): expected unchanged state", c[0], c[1])
		}
	}
}

func TestUseHint(t *testing.T) {
	s, changed := progress.UseHint(progress.New(1))
	if !changed || !s.HintUsed {
		t.Fatal("expected hint to be recorded")
	}
	if _, changed := progress.UseHint(s); changed {
		t.Error("expected second hint to be a no-op")
	}

	done := submit(t, progress.New(1), 2, "5")
	if _, changed := progress.UseHint(done); changed {
		t.Error("expected hint on a correct problem to be a no-op")
	}
}

func TestAutomation(t *testing.T) {
	w := automation.Walkthrough{Steps: []string{"a", "b", "c"}, Costs: automation.Costs(3)}
	s := progress.New(1)

	s, changed := progress.RevealStep(s, w)
	if !changed {
		t.Fatal("expected step 0 to be revealed")
	}
	if s.AutomationDeduction != 0.1 || !s.AutomationUsed {
		t.Errorf("expected deduction 0.1 and automation used, got %v / %v", s.AutomationDeduction, s.AutomationUsed)
	}

	if _, changed := progress.TypeStep(s, w, "   "); changed {
		t.Error("expected blank typed step to be ignored")
	}
	s, changed = progress.TypeStep(s, w, " factor out x ")
	if !changed {
		t.Fatal("expected step 1 to be typed")
	}
	if s.AutomationDeduction != 0.1 {
		t.Errorf("expected typing to be free, got deduction %v", s.AutomationDeduction)
	}
	if typed := s.AutomationStepStates[1].UserTyped; typed == nil || *typed != "factor out x" {
		t.Errorf("expected trimmed typed step, got %v", typed)
	}

	s, _ = progress.RevealStep(s, w)
	if s.AutomationDeduction != 0.4 {
		t.Errorf("expected deduction 0.4, got %v", s.AutomationDeduction)
	}
	if !w.Finished(s.AutomationStepStates) {
		t.Error("expected walkthrough finished")
	}
	if _, changed := progress.RevealStep(s, w); changed {
		t.Error("expected reveal past the last step to be a no-op")
	}

	s, _ = progress.PostAnswer(s, w)
	if s.AutomationDeduction != 0.6 {
		t.Errorf("expected deduction 0.6 after posting the answer, got %v", s.AutomationDeduction)
	}

	s, _ = progress.Reset(s, 1)
	if !s.AutomationUsed || s.AutomationDeduction != 0.6 {
		t.Error("expected automation deduction to survive reset")
	}
}

func TestAutomation_TerminalIsNoop(t *testing.T) {
	w := automation.Walkthrough{Steps: []string{"a"}, Costs: automation.Costs(1)}
	done := submit(t, progress.New(1), 2, "5")

	if _, changed := progress.RevealStep(done, w); changed {
		t.Error("expected reveal on a correct problem to be a no-op")
	}
	if _, changed := progress.TypeStep(done, w, "x"); changed {
		t.Error("expected typed step on a correct problem to be a no-op")
	}
	if _, changed := progress.PostAnswer(done, w); changed {
		t.Error("expected post on a correct problem to be a no-op")
	}
}

func TestPostAnswer_RequiresFinishedWalkthrough(t *testing.T) {
	w := automation.Walkthrough{Steps: []string{"a", "b"}, Costs: automation.Costs(2)}
	s := progress.New(1)

	if next, changed := progress.PostAnswer(s, w); changed || next.AutomationDeduction != 0 {
		t.Errorf("expected post before any step to be a no-op, got deduction %v", next.AutomationDeduction)
	}

	s, _ = progress.RevealStep(s, w)
	if _, changed := progress.PostAnswer(s, w); changed {
		t.Error("expected post with a step left to be a no-op")
	}

	s, _ = progress.TypeStep(s, w, "b")
	s, changed := progress.PostAnswer(s, w)
	if !changed || s.AutomationDeduction != 0.4 {
		t.Errorf("expected post once finished with deduction 0.4, got changed=%v deduction=%v", changed, s.AutomationDeduction)
	}
}
