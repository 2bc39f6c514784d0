package settings

import (
	"errors"

	"github.com/mathdrill/backend/internal/domain/scoring"
)

const DefaultMaxRetries = 2

var ErrInvalidMaxRetries = errors.New("maxRetries must be at least 1")

// Settings are the learner's grading preferences.
type Settings struct {
	MaxRetries      int                      `json:"maxRetries"`
	CorrectionScore scoring.CorrectionPolicy `json:"correctionScore"`
	ShowEdgeCases   bool                     `json:"showEdgeCases"`
	ShowCornerCases bool                     `json:"showCornerCases"`
}

// Default returns two retries, no credit for corrections and only the
// monitoring problems shown.
func Default() Settings {
	return Settings{
		MaxRetries:      DefaultMaxRetries,
		CorrectionScore: scoring.Zero,
	}
}

func (s Settings) Validate() error {
	if s.MaxRetries < 1 {
		return ErrInvalidMaxRetries
	}
	return nil
}

// ReportOptions maps the settings onto report options.
func (s Settings) ReportOptions(reviewed map[string]bool) scoring.Options {
	return scoring.Options{
		Policy:     s.CorrectionScore,
		WithEdge:   s.ShowEdgeCases,
		WithCorner: s.ShowCornerCases,
		Reviewed:   reviewed,
	}
}
