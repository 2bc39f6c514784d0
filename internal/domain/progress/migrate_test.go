package progress_test

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/mathdrill/backend/internal/domain/progress"
)

func TestMigrate_SynthesizesLegacyHistory(t *testing.T) {
	legacy := progress.ProblemState{
		Attempts:    2,
		Status:      progress.Correct,
		UserAnswers: []string{"(x+2)(x+8)"},
		Results:     []bool{true},
	}

	s, changed := progress.Migrate(legacy, 1)
	if !changed {
		t.Fatal("expected migration to report a change")
	}
	if len(s.History) != 1 {
		t.Fatalf("expected 1 synthesized entry, got %d", len(s.History))
	}
	h := s.History[0]
	if !h.Correct || !slices.Equal(h.Results, []bool{true}) || !slices.Equal(h.Answers, []string{"(x+2)(x+8)"}) {
		t.Errorf("unexpected synthesized entry: %+v", h)
	}
	if s.UntrackedAttempts != 1 || s.AttemptNumber(0) != 2 {
		t.Errorf("expected the synthesized entry to record attempt 2, got untracked %d", s.UntrackedAttempts)
	}
	if legacy.History != nil {
		t.Error("expected input state to be left untouched")
	}

	again, changed := progress.Migrate(s, 1)
	if changed || again.UntrackedAttempts != 1 {
		t.Errorf("expected a second migration to be a no-op, got changed=%v untracked=%d", changed, again.UntrackedAttempts)
	}
}

func TestMigrate_FillsMissingResultsFromStatus(t *testing.T) {
	legacy := progress.ProblemState{Attempts: 1, Status: progress.Revealed, UserAnswers: []string{"1"}}

	s, _ := progress.Migrate(legacy, 2)
	if !slices.Equal(s.History[0].Results, []bool{false, false}) {
		t.Errorf("expected [false false], got %v", s.History[0].Results)
	}
	if !slices.Equal(s.UserAnswers, []string{"1", ""}) {
		t.Errorf("expected answers padded to 2 parts, got %q", s.UserAnswers)
	}
}

func TestMigrate_ClampsCycleStart(t *testing.T) {
	s, changed := progress.Migrate(progress.ProblemState{
		Attempts:    1,
		CycleStart:  4,
		UserAnswers: []string{""},
		History:     []progress.AttemptRecord{{Answers: []string{"a"}, Results: []bool{false}}},
	}, 1)
	if !changed {
		t.Fatal("expected migration to report a change")
	}
	if s.CycleStart != 1 {
		t.Errorf("expected cycleStart 1, got %d", s.CycleStart)
	}
}

func TestMigrate_CurrentStateUnchanged(t *testing.T) {
	s := progress.New(1)
	if _, changed := progress.Migrate(s, 1); changed {
		t.Error("expected a current-format state to migrate without change")
	}
}

func TestProblemState_DecodesStoredShape(t *testing.T) {
	raw := `{
		"attempts": 2,
		"cycleStart": 0,
		"status": "correct",
		"userAnswers": ["1", "0"],
		"results": [true, true],
		"history": [
			{"answers": ["1", "5"], "results": [true, false], "correct": false},
			{"answers": ["1", "0"], "results": [true, true], "correct": true}
		],
		"hintUsed": true,
		"automationUsed": true,
		"automationDeduction": 0.3,
		"automationStepStates": [{"revealed": true, "userTyped": null}, {"revealed": false, "userTyped": "x = 0"}]
	}`

	var s progress.ProblemState
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Status != progress.Correct {
		t.Errorf("expected %v, got %v", progress.Correct, s.Status)
	}
	if s.EarliestCorrect() != 1 {
		t.Errorf("expected earliest correct 1, got %d", s.EarliestCorrect())
	}
	if !s.HintUsed || s.AutomationDeduction != 0.3 {
		t.Errorf("expected assist fields decoded, got %+v", s)
	}
	if typed := s.AutomationStepStates[1].UserTyped; typed == nil || *typed != "x = 0" {
		t.Errorf("expected typed step decoded, got %v", typed)
	}
}

func TestStatus_JSON(t *testing.T) {
	out, err := json.Marshal(progress.Revealed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != `"revealed"` {
		t.Errorf("expected %q, got %s", `"revealed"`, out)
	}

	var s progress.Status
	if err := json.Unmarshal([]byte(`"bogus"`), &s); err == nil {
		t.Error("expected error for unknown status, got nil")
	}
	if _, err := json.Marshal(progress.Status(9)); err == nil {
		t.Error("expected error marshalling invalid status, got nil")
	}
}
