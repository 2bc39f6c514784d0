package scoring

import (
	"math"

	"github.com/mathdrill/backend/internal/domain/corpus"
	"github.com/mathdrill/backend/internal/domain/problem"
	"github.com/mathdrill/backend/internal/domain/progress"
)

// Options selects what a report covers and how it scores.
type Options struct {
	Policy     CorrectionPolicy
	WithEdge   bool
	WithCorner bool
	Reviewed   map[string]bool // section id -> marked reviewed
}

type ProblemRow struct {
	Key      string          `json:"key"`
	Num      problem.Num     `json:"num"`
	Text     string          `json:"text"`
	Status   progress.Status `json:"status"`
	Attempts int             `json:"attempts"`
	Score    *float64        `json:"score"` // nil when unscored
}

// GroupStats summarize the finished problems of one group.
type GroupStats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	TotalAttempts  int `json:"total_attempts"`
	CorrectOnFirst int `json:"correct_on_first"`
	Revealed       int `json:"revealed"`
}

type GroupReport struct {
	ID          string          `json:"id"`
	Instruction string          `json:"instruction"`
	Category    corpus.Category `json:"category"`
	Rows        []ProblemRow    `json:"rows"`
	Stats       GroupStats      `json:"stats"`
}

// Totals are the counters shared by section and grand totals.
type Totals struct {
	Total        int     `json:"total"`
	Answered     int     `json:"answered"`
	Correct      int     `json:"correct"`
	Earned       float64 `json:"earned"`
	Percent      int     `json:"percent"`
	ScorePercent int     `json:"score_percent"`
}

func (t *Totals) add(o Totals) {
	t.Total += o.Total
	t.Answered += o.Answered
	t.Correct += o.Correct
	t.Earned += o.Earned
}

func (t *Totals) finish() {
	t.Percent = percent(float64(t.Correct), t.Total)
	t.ScorePercent = percent(t.Earned, t.Total)
}

type SectionReport struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Reviewed bool          `json:"reviewed"`
	Groups   []GroupReport `json:"groups,omitempty"`
	Totals
}

type Report struct {
	Policy   CorrectionPolicy `json:"correction_policy"`
	Sections []SectionReport  `json:"sections"`
	Totals
}

// Build reports on the given sections. States missing from the map count as
// unanswered.
func Build(sections []*corpus.Section, states map[string]progress.ProblemState, opts Options) Report {
	r := Report{Policy: opts.Policy, Sections: make([]SectionReport, 0, len(sections))}
	for _, s := range sections {
		sr := BuildSection(s, states, opts)
		r.Sections = append(r.Sections, sr)
		r.add(sr.Totals)
	}
	r.finish()
	return r
}

// BuildSection reports on one section, group by group.
func BuildSection(s *corpus.Section, states map[string]progress.ProblemState, opts Options) SectionReport {
	sr := SectionReport{ID: s.ID, Title: s.Title, Reviewed: opts.Reviewed[s.ID]}

	for _, g := range s.Groups(opts.WithEdge, opts.WithCorner) {
		gr := GroupReport{
			ID:          g.ID,
			Instruction: g.Instruction,
			Category:    g.Category,
			Rows:        make([]ProblemRow, 0, len(g.Problems)),
		}

		for i := range g.Problems {
			p := &g.Problems[i]
			st, ok := states[p.Key]
			if !ok {
				st = progress.New(len(p.Answer))
			}

			row := ProblemRow{
				Key:      p.Key,
				Num:      p.Num,
				Text:     p.Text,
				Status:   st.Status,
				Attempts: EffectiveAttempts(st),
			}
			if score, ok := ProblemScore(st, opts.Policy); ok {
				row.Score = &score
				sr.Earned += score
			}
			gr.Rows = append(gr.Rows, row)

			sr.Total++
			if st.Answered() {
				sr.Answered++
			}
			if st.Status == progress.Correct {
				sr.Correct++
			}

			gr.Stats.Total++
			if st.Status.Terminal() {
				gr.Stats.Completed++
				gr.Stats.TotalAttempts += st.Attempts
				if st.Status == progress.Correct && st.Attempts == 1 {
					gr.Stats.CorrectOnFirst++
				}
				if st.Status == progress.Revealed {
					gr.Stats.Revealed++
				}
			}
		}
		sr.Groups = append(sr.Groups, gr)
	}

	sr.finish()
	return sr
}

func percent(part float64, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(part / float64(total) * 100))
}
