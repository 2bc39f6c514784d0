package automation_test

import (
	"slices"
	"testing"

	"github.com/mathdrill/backend/internal/domain/automation"
	"github.com/mathdrill/backend/internal/domain/problem"
)

func TestCosts(t *testing.T) {
	tests := []struct {
		n    int
		want []float64
	}{
		{1, []float64{0.6}},
		{2, []float64{0.2, 0.4}},
		{3, []float64{0.1, 0.2, 0.3}},
		{4, []float64{0.1, 0.1, 0.2, 0.2}},
		{5, []float64{0.1, 0.1, 0.1, 0.1, 0.2}},
		{6, []float64{0.1, 0.1, 0.1, 0.1, 0.1, 0.1}},
		{8, []float64{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1}},
	}

	for _, tt := range tests {
		if got := automation.Costs(tt.n); !slices.Equal(got, tt.want) {
			t.Errorf("Costs(%d): expected %v, got %v", tt.n, tt.want, got)
		}
	}
}

func TestCosts_ReturnsCopy(t *testing.T) {
	c := automation.Costs(2)
	c[0] = 9
	if got := automation.Costs(2); got[0] != 0.2 {
		t.Errorf("expected schedule to be unaffected, got %v", got)
	}
}

func TestFor(t *testing.T) {
	withSteps := &problem.Problem{Steps: []string{"a", "b", "c"}, Hint: "h"}
	if w := automation.For(withSteps); !slices.Equal(w.Steps, []string{"a", "b", "c"}) || len(w.Costs) != 3 {
		t.Errorf("expected problem steps, got %v / %v", w.Steps, w.Costs)
	}

	withHint := &problem.Problem{Hint: "h"}
	if w := automation.For(withHint); !slices.Equal(w.Steps, []string{"h"}) {
		t.Errorf("expected hint as single step, got %v", w.Steps)
	}

	bare := &problem.Problem{}
	if w := automation.For(bare); !slices.Equal(w.Steps, []string{"Refer to the answer."}) {
		t.Errorf("expected fallback step, got %v", w.Steps)
	}
}

func TestWalkthrough_Current(t *testing.T) {
	w := automation.Walkthrough{Steps: []string{"a", "b", "c"}, Costs: automation.Costs(3)}
	typed := "mine"

	tests := []struct {
		name   string
		states []automation.StepState
		want   int
	}{
		{"none", nil, 0},
		{"first revealed", []automation.StepState{{Revealed: true}, {}, {}}, 1},
		{"second typed", []automation.StepState{{Revealed: true}, {UserTyped: &typed}, {}}, 2},
		{"all done", []automation.StepState{{Revealed: true}, {Revealed: true}, {Revealed: true}}, 3},
	}

	for _, tt := range tests {
		if got := w.Current(tt.states); got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, got)
		}
	}

	if w.Finished([]automation.StepState{{Revealed: true}, {}, {Revealed: true}}) {
		t.Error("expected walkthrough with a pending step to be unfinished")
	}
	if !w.Finished([]automation.StepState{{Revealed: true}, {UserTyped: &typed}, {Revealed: true}}) {
		t.Error("expected walkthrough to be finished")
	}
}

func TestRound1(t *testing.T) {
	if got := automation.Round1(0.1 + 0.2); got != 0.3 {
		t.Errorf("expected 0.3, got %v", got)
	}
	if got := automation.Round1(0.6 / 7); got != 0.1 {
		t.Errorf("expected 0.1, got %v", got)
	}
}
