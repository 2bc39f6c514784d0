// Package verify checks that a corpus is gradeable: every stored answer,
// typed the way a learner would type it, must be accepted by the grader.
package verify

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/mathdrill/backend/internal/answer"
	"github.com/mathdrill/backend/internal/domain/corpus"
	"github.com/mathdrill/backend/internal/domain/problem"
	"github.com/mathdrill/backend/internal/worker"
)

// maxTypedLen skips answers that carry long explanations.
const maxTypedLen = 80

var (
	incompletePrefixRe = regexp.MustCompile(`(?i)^(Not complete|Incomplete):`)
	explanationRe      = regexp.MustCompile(`^Complete\s*\(`)
)

type Kind string

const (
	KindStatusPrefix  Kind = "status_prefix"
	KindExplanation   Kind = "explanation"
	KindTypedRejected Kind = "typed_rejected"
)

// Issue is one failed check.
type Issue struct {
	Key    string
	Part   int
	Label  string
	Kind   Kind
	Detail string
}

func (i Issue) String() string {
	label := i.Label
	if label == "" {
		label = "answer"
	}
	return fmt.Sprintf("%s (%s): %s: %s", i.Key, label, i.Kind, i.Detail)
}

// Check runs every check against one problem.
func Check(p *problem.Problem) []Issue {
	var issues []Issue
	parts := p.Parts()

	for i, part := range parts {
		issue := func(kind Kind, detail string) Issue {
			return Issue{Key: p.Key, Part: i, Label: part.Label, Kind: kind, Detail: detail}
		}

		if len(parts) > 1 {
			if answer.HasStatusPrefix(part.Value) {
				issues = append(issues, issue(KindStatusPrefix, fmt.Sprintf("prefix in value %q", part.Value)))
			}
		} else {
			if incompletePrefixRe.MatchString(part.Value) {
				issues = append(issues, issue(KindStatusPrefix, fmt.Sprintf("problematic prefix %q", part.Value)))
			}
			if explanationRe.MatchString(part.Value) {
				issues = append(issues, issue(KindExplanation, fmt.Sprintf("parenthetical explanation %q", part.Value)))
			}
		}

		typed := answer.Typed(part.Value)
		if answer.IsCompleteSentinel(typed) || len(typed) > maxTypedLen {
			continue
		}
		if !answer.AnswersMatch(typed, part.Value, p.Text) {
			issues = append(issues, issue(KindTypedRejected, fmt.Sprintf("typed %q should match %q", typed, part.Value)))
		}
	}
	return issues
}

// Run checks every problem of c on a pool of workers. Issues are sorted by
// problem key, then part.
func Run(c *corpus.Corpus, workers int) []Issue {
	pool := worker.NewPool[[]Issue](workers, workers*2)

	go func() {
		c.Walk(func(_ *corpus.Section, _ *corpus.Group, p *problem.Problem) {
			pool.Submit(p.Key, func() []Issue { return Check(p) })
		})
		pool.Close()
	}()

	var issues []Issue
	for r := range pool.Results() {
		issues = append(issues, r.Output...)
	}

	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Key != issues[j].Key {
			return issues[i].Key < issues[j].Key
		}
		return issues[i].Part < issues[j].Part
	})
	return issues
}
