package answer

import (
	"slices"
	"strings"
	"unicode"
)

// ExtractFactors splits a product expression into its factor tokens, left to
// right. A parenthesized run (balanced, nesting tracked) is one token including
// its parentheses; any other maximal run of characters up to the next "(" is a
// coefficient token.
//
//	ExtractFactors("2(x+4)(x+3)") // ["2", "(x+4)", "(x+3)"]
//
// An unbalanced group runs to the end of the input.
func ExtractFactors(s string) []string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	var factors []string
	i := 0
	for i < len(s) {
		if s[i] == '(' {
			start := i
			depth := 0
			for i < len(s) {
				switch s[i] {
				case '(':
					depth++
				case ')':
					depth--
				}
				i++
				if depth == 0 {
					break
				}
			}
			factors = append(factors, s[start:i])
			continue
		}

		start := i
		for i < len(s) && s[i] != '(' {
			i++
		}
		if coeff := s[start:i]; coeff != "" {
			factors = append(factors, coeff)
		}
	}
	return factors
}

// FactorsMatch reports whether two product expressions have the same factors
// up to the order of their parenthesized groups. Both must decompose into at
// least two factors, and the same number of them. Coefficient tokens are
// compared in their original order and are never permuted.
func FactorsMatch(a, b string) bool {
	fa := ExtractFactors(a)
	fb := ExtractFactors(b)
	if len(fa) != len(fb) || len(fa) < 2 {
		return false
	}

	coeffA, groupsA := splitFactors(fa)
	coeffB, groupsB := splitFactors(fb)
	if coeffA != coeffB {
		return false
	}

	slices.Sort(groupsA)
	slices.Sort(groupsB)
	return slices.Equal(groupsA, groupsB)
}

// splitFactors separates coefficient tokens (joined with "*") from
// parenthesized groups.
func splitFactors(factors []string) (string, []string) {
	var coeffs, groups []string
	for _, f := range factors {
		if strings.HasPrefix(f, "(") {
			groups = append(groups, f)
		} else {
			coeffs = append(coeffs, f)
		}
	}
	return strings.Join(coeffs, "*"), groups
}
