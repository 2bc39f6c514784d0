package corpus_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/mathdrill/backend/internal/domain/corpus"
	"github.com/mathdrill/backend/internal/domain/problem"
)

const sample = `{
  "chapter": {"id": "7", "title": "Factoring"},
  "sections": [
    {
      "id": "7.4",
      "title": "Zero Product Property",
      "monitoringProgress": [
        {"id": "7.4.mp1", "instruction": "Solve.", "problems": [
          {"num": 1, "text": "$x(x-1)=0$", "answer": [{"label": "S1", "value": "$x = 0$"}, {"label": "S2", "value": "$x = 1$"}]},
          {"num": 2, "text": "$(z-4)(z-6)=0$", "answer": [{"label": "S1", "value": "$z = 4$"}, {"label": "S2", "value": "$z = 6$"}]}
        ]}
      ],
      "edgeCases": [
        {"id": "7.4.ec1", "instruction": "Intercepts.", "problems": [
          {"num": "e1", "text": "$y=(x+1)(x-6)$", "answer": "$(-1, 0)$ and $(6, 0)$"}
        ]}
      ],
      "cornerCases": [
        {"id": "7.4.cc1", "instruction": "Time.", "problems": [
          {"num": 3, "text": "When does it land?", "answer": "$t = 1.5$"}
        ]}
      ]
    }
  ]
}`

func TestParse(t *testing.T) {
	c, err := corpus.Parse([]byte(sample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Chapter.Title != "Factoring" {
		t.Errorf("expected chapter title %q, got %q", "Factoring", c.Chapter.Title)
	}
	if c.Len() != 4 {
		t.Errorf("expected 4 problems, got %d", c.Len())
	}

	p, ok := c.Problem("7.4.mp1.2")
	if !ok {
		t.Fatal("expected problem 7.4.mp1.2 to exist")
	}
	if p.Key != "7.4.mp1.2" {
		t.Errorf("expected key %q, got %q", "7.4.mp1.2", p.Key)
	}
	if len(p.Parts()) != 2 {
		t.Errorf("expected 2 parts, got %d", len(p.Parts()))
	}

	if _, ok := c.Problem("7.4.ec1.e1"); !ok {
		t.Error("expected string-numbered problem 7.4.ec1.e1 to exist")
	}
}

func TestSection_Groups(t *testing.T) {
	c, err := corpus.Parse([]byte(sample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, ok := c.Section("7.4")
	if !ok {
		t.Fatal("expected section 7.4")
	}

	tests := []struct {
		edge, corner bool
		want         []string
	}{
		{false, false, []string{"7.4.mp1"}},
		{true, false, []string{"7.4.mp1", "7.4.ec1"}},
		{false, true, []string{"7.4.mp1", "7.4.cc1"}},
		{true, true, []string{"7.4.mp1", "7.4.ec1", "7.4.cc1"}},
	}

	for _, tt := range tests {
		var got []string
		for _, g := range s.Groups(tt.edge, tt.corner) {
			got = append(got, g.ID)
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("Groups(%v, %v): expected %v, got %v", tt.edge, tt.corner, tt.want, got)
		}
	}

	if s.EdgeCases[0].Category != corpus.CategoryEdge {
		t.Errorf("expected category %q, got %q", corpus.CategoryEdge, s.EdgeCases[0].Category)
	}
	if keys := s.MonitoringProgress[0].Keys(); !slices.Equal(keys, []string{"7.4.mp1.1", "7.4.mp1.2"}) {
		t.Errorf("unexpected keys: %v", keys)
	}
}

func TestParse_DuplicateKey(t *testing.T) {
	raw := `{"sections": [{"id": "1", "monitoringProgress": [
		{"id": "g", "problems": [{"num": 1, "answer": "1"}, {"num": "1", "answer": "2"}]}
	]}]}`

	_, err := corpus.Parse([]byte(raw))
	if !errors.Is(err, corpus.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestParse_InvalidProblem(t *testing.T) {
	raw := `{"sections": [{"id": "1", "monitoringProgress": [
		{"id": "g", "problems": [{"num": 1}]}
	]}]}`

	_, err := corpus.Parse([]byte(raw))
	if !errors.Is(err, problem.ErrMissingAnswer) {
		t.Errorf("expected ErrMissingAnswer, got %v", err)
	}
}

func TestParse_MissingGroupID(t *testing.T) {
	raw := `{"sections": [{"id": "1", "monitoringProgress": [{"problems": []}]}]}`

	_, err := corpus.Parse([]byte(raw))
	if !errors.Is(err, corpus.ErrMissingGroupID) {
		t.Errorf("expected ErrMissingGroupID, got %v", err)
	}
}

func TestLoad_BundledCorpus(t *testing.T) {
	c, err := corpus.Load("../../../data/chapter7.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("expected bundled corpus to contain problems")
	}

	count := 0
	c.Walk(func(_ *corpus.Section, _ *corpus.Group, p *problem.Problem) {
		count++
		if p.Key == "" {
			t.Errorf("problem %s has no key", p.Num)
		}
	})
	if count != c.Len() {
		t.Errorf("expected Walk to visit %d problems, got %d", c.Len(), count)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := corpus.Load("does-not-exist.json"); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
