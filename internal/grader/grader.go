package grader

import "github.com/mathdrill/backend/internal/answer"

// Grader decides, per answer part, whether a submission is acceptable.
// Implementations may match symbolically, use heuristics, or return canned
// results (for tests).
type Grader interface {
	// Grade returns one verdict per part. inputs may be shorter than parts;
	// missing inputs grade as blank. problemText is the problem statement and
	// may be empty.
	Grade(inputs []string, parts []answer.Part, problemText string) []bool
}

// Equivalence grades with the answer equivalence engine: notation-insensitive
// comparison, factor order, variable prefixes and numeric sampling, with
// order-free assignment across multi-part answers.
type Equivalence struct{}

var _ Grader = Equivalence{}

func (Equivalence) Grade(inputs []string, parts []answer.Part, problemText string) []bool {
	return answer.MatchMultiPart(inputs, parts, problemText)
}
