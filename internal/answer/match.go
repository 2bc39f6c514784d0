package answer

// Part is one blank of a problem's answer: an optional label such as "Width"
// or "S1" and the canonical value.
type Part struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// AnswersMatch reports whether user is an acceptable rendering of the stored
// answer canonical. problemText is consulted only when the stored answer is
// the sentinel "Complete", in which case re-typing the problem expression is
// also accepted.
//
// The checks run as an ordered chain and the first success wins: canonical
// equality, the "Complete" sentinel, variable-prefix stripping, factor-order
// matching, the same comparisons under a lighter normalization, and finally
// numeric sampling.
func AnswersMatch(user, canonical, problemText string) bool {
	clean := stripStatusPrefix(canonical)
	normUser := Canonicalize(user)
	normCorrect := Canonicalize(clean)

	if normUser == normCorrect {
		return true
	}

	if IsCompleteSentinel(clean) && problemText != "" {
		normProblem := Canonicalize(problemText)
		if normUser == normProblem ||
			FactorsMatch(normUser, normProblem) ||
			NumericallyEquivalent(normUser, normProblem) {
			return true
		}
	}

	if prefixMatch(normUser, normCorrect) || FactorsMatch(normUser, normCorrect) {
		return true
	}

	lightUser := lightNormalize(user)
	lightCorrect := lightNormalize(clean)
	if lightUser == lightCorrect ||
		prefixMatch(lightUser, lightCorrect) ||
		FactorsMatch(lightUser, lightCorrect) {
		return true
	}

	return NumericallyEquivalent(normUser, normCorrect) ||
		NumericallyEquivalent(lightUser, lightCorrect)
}

// prefixMatch compares with the variable prefix stripped from the user side,
// the stored side, or both.
func prefixMatch(user, correct string) bool {
	strippedUser := StripVariablePrefix(user)
	strippedCorrect := StripVariablePrefix(correct)
	return strippedUser == strippedCorrect ||
		user == strippedCorrect ||
		strippedUser == correct
}

// MatchMultiPart grades every input of a problem and returns one verdict per
// part.
//
// A single-part problem is graded directly. With several parts the inputs are
// matched order-free: each input, in input order, claims the first unclaimed
// part it matches, scanning parts in their stored order. The assignment is
// greedy and never backtracks, so the scan order is part of the grading
// contract. Missing inputs grade as blank.
func MatchMultiPart(inputs []string, parts []Part, problemText string) []bool {
	results := make([]bool, len(parts))
	if len(parts) <= 1 {
		for i, part := range parts {
			results[i] = AnswersMatch(inputAt(inputs, i), part.Value, problemText)
		}
		return results
	}

	used := make([]bool, len(parts))
	for i := range parts {
		in := inputAt(inputs, i)
		for j, part := range parts {
			if used[j] || !AnswersMatch(in, part.Value, problemText) {
				continue
			}
			results[i] = true
			used[j] = true
			break
		}
	}
	return results
}

func inputAt(inputs []string, i int) string {
	if i < len(inputs) {
		return inputs[i]
	}
	return ""
}
