package answer_test

import (
	"slices"
	"testing"

	"github.com/mathdrill/backend/internal/answer"
)

func TestExtractFactors(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"2(x+4)(x+3)", []string{"2", "(x+4)", "(x+3)"}},
		{"3x(x - 2)(x + 2)", []string{"3x", "(x-2)", "(x+2)"}},
		{"-(y+1)(2y+3)", []string{"-", "(y+1)", "(2y+3)"}},
		{"((x+1)(x+2))", []string{"((x+1)(x+2))"}},
		{"(x+1)^2", []string{"(x+1)", "^2"}},
		{"(x+1", []string{"(x+1"}},
		{"x+1", []string{"x+1"}},
		{"", nil},
	}

	for _, tt := range tests {
		got := answer.ExtractFactors(tt.in)
		if !slices.Equal(got, tt.want) {
			t.Errorf("ExtractFactors(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestFactorsMatch(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"(x+8)(x+2)", "(x+2)(x+8)", true},
		{"8(x-6)(x-1)", "8(x-1)(x-6)", true},
		{"-(y+1)(2y+3)", "-(2y+3)(y+1)", true},
		{"3x(x-2)(x+2)", "3x(x+2)(x-2)", true},
		{"(6,0)and(-1,0)", "(-1,0)and(6,0)", true},
		{"2(x+1)(x+2)", "3(x+1)(x+2)", false},
		{"(x-1)(x+6)", "(x+1)(x+6)", false},
		{"(x+1)(x+2)", "(x+1)(x+2)(x+3)", false},
		{"(x+1)", "(x+1)", false},
		{"x+1", "x+1", false},
	}

	for _, tt := range tests {
		if got := answer.FactorsMatch(tt.a, tt.b); got != tt.want {
			t.Errorf("FactorsMatch(%q, %q): expected %v, got %v", tt.a, tt.b, tt.want, got)
		}
	}
}
