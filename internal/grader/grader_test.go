package grader_test

import (
	"slices"
	"testing"

	"github.com/mathdrill/backend/internal/answer"
	"github.com/mathdrill/backend/internal/grader"
)

func TestEquivalence_Grade(t *testing.T) {
	var g grader.Grader = grader.Equivalence{}

	parts := []answer.Part{{Label: "S1", Value: "$z = 4$"}, {Label: "S2", Value: "$z = 6$"}}
	if got := g.Grade([]string{"z=6", "4"}, parts, ""); !slices.Equal(got, []bool{true, true}) {
		t.Errorf("expected both parts correct, got %v", got)
	}

	single := []answer.Part{{Value: "Complete"}}
	if got := g.Grade([]string{"2x(x^2+1)"}, single, "$2x(x^2 + 1)$"); !slices.Equal(got, []bool{true}) {
		t.Errorf("expected re-typed expression accepted, got %v", got)
	}
}
