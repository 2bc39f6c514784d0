package answer_test

import (
	"testing"

	"github.com/mathdrill/backend/internal/answer"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"$x^2 + 14x + 49$", "x²+14x+49"},
		{`$\frac{1}{2}$`, "1/2"},
		{`$-\frac{7}{2}$`, "-7/2"},
		{`$\sqrt{2}$`, "sqrt(2)"},
		{`$2 \cdot 3$`, "2*3"},
		{`$12 \text{ cm}$`, "12"},
		{"X^4 - 16", "x^4-16"},
		{"$(x + 2)^3$", "(x+2)³"},
		{"TRINOMIAL", "trinomial"},
		{"$(-1, 0)$ and $(6, 0)$", "(-1,0)and(6,0)"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := answer.Canonicalize(tt.in); got != tt.want {
			t.Errorf("Canonicalize(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	inputs := []string{"$x^2 + 14x + 49$", `$x = -\frac{1}{2}$`, "(a+3)(a^2+1)", "Binomial"}
	for _, in := range inputs {
		once := answer.Canonicalize(in)
		if twice := answer.Canonicalize(once); twice != once {
			t.Errorf("Canonicalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestStripVariablePrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"x=5", "5"},
		{"x = 5", "5"},
		{"T = -2", "-2"},
		{"5", "5"},
		{"xy=5", "xy=5"},
		{"x==5", "=5"},
	}

	for _, tt := range tests {
		if got := answer.StripVariablePrefix(tt.in); got != tt.want {
			t.Errorf("StripVariablePrefix(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestIsCompleteSentinel(t *testing.T) {
	if !answer.IsCompleteSentinel(" Complete ") {
		t.Error("expected padded Complete to be the sentinel")
	}
	if !answer.IsCompleteSentinel("complete") {
		t.Error("expected lower-case complete to be the sentinel")
	}
	if answer.IsCompleteSentinel("Complete (cannot factor)") {
		t.Error("expected explained Complete not to be the sentinel")
	}
}

func TestHasStatusPrefix(t *testing.T) {
	for _, s := range []string{"Not complete: 3(x+2)", "incomplete: x", "Complete: 2x"} {
		if !answer.HasStatusPrefix(s) {
			t.Errorf("expected %q to carry a status prefix", s)
		}
	}
	if answer.HasStatusPrefix("Complete") {
		t.Error("expected bare Complete to carry no prefix")
	}
}

func TestTyped(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`$x = -\frac{1}{2}$`, "x = -1/2"},
		{`$\sqrt{2}$`, "sqrt(2)"},
		{`$a \cdot b$`, "a * b"},
		{`$12 \text{ cm}$`, "12"},
		{"Complete: $3x$", "3x"},
		{"$(x + 2)(x + 8)$", "(x + 2)(x + 8)"},
	}

	for _, tt := range tests {
		if got := answer.Typed(tt.in); got != tt.want {
			t.Errorf("Typed(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
