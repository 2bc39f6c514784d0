package verify_test

import (
	"testing"

	"github.com/mathdrill/backend/internal/answer"
	"github.com/mathdrill/backend/internal/domain/corpus"
	"github.com/mathdrill/backend/internal/domain/problem"
	"github.com/mathdrill/backend/internal/verify"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		parts []answer.Part
		want  []verify.Kind
	}{
		{
			name:  "clean latex answer",
			text:  "$x^2+7x+12$",
			parts: []answer.Part{{Value: `$(x+3)(x+4)$`}},
		},
		{
			name:  "fraction and root",
			parts: []answer.Part{{Value: `$\frac{1}{2}\sqrt{3}$`}},
		},
		{
			name:  "complete sentinel skipped",
			text:  "$3x+5$",
			parts: []answer.Part{{Value: "Complete"}},
		},
		{
			name:  "single with incomplete prefix",
			parts: []answer.Part{{Value: "Not complete: $3(x+2)(x-2)$"}},
			want:  []verify.Kind{verify.KindStatusPrefix},
		},
		{
			name:  "single with explanation",
			parts: []answer.Part{{Value: "Complete (cannot factor further)"}},
			want:  []verify.Kind{verify.KindExplanation},
		},
		{
			name: "multi-part with status prefix",
			parts: []answer.Part{
				{Label: "a", Value: "Complete: $x+1$"},
				{Label: "b", Value: "$x-1$"},
			},
			want: []verify.Kind{verify.KindStatusPrefix},
		},
		{
			name:  "long explanation skipped",
			parts: []answer.Part{{Value: "$899$ (Use the difference of squares: 30^2 - 1^2 = (30 - 1)(30 + 1) = 29 * 31, so the product is 899)"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &problem.Problem{Key: "t.1", Num: "1", Text: tt.text, Answer: tt.parts}
			issues := verify.Check(p)
			if len(issues) != len(tt.want) {
				t.Fatalf("expected %d issues, got %v", len(tt.want), issues)
			}
			for i, kind := range tt.want {
				if issues[i].Kind != kind {
					t.Errorf("issue %d: expected %s, got %s", i, kind, issues[i].Kind)
				}
			}
		})
	}
}

func TestRun_SampleCorpus(t *testing.T) {
	c, err := corpus.Load("../../data/chapter7.json")
	if err != nil {
		t.Fatalf("load corpus: %v", err)
	}

	if issues := verify.Run(c, 4); len(issues) != 0 {
		for _, is := range issues {
			t.Error(is)
		}
	}
}
