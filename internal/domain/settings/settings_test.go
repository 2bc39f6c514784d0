package settings_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/mathdrill/backend/internal/domain/scoring"
	"github.com/mathdrill/backend/internal/domain/settings"
)

func TestDefault(t *testing.T) {
	s := settings.Default()

	if s.MaxRetries != 2 {
		t.Errorf("expected maxRetries 2, got %d", s.MaxRetries)
	}
	if s.CorrectionScore != scoring.Zero {
		t.Errorf("expected policy %v, got %v", scoring.Zero, s.CorrectionScore)
	}
	if s.ShowEdgeCases || s.ShowCornerCases {
		t.Error("expected edge and corner cases hidden by default")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	s := settings.Default()
	s.MaxRetries = 0
	if err := s.Validate(); !errors.Is(err, settings.ErrInvalidMaxRetries) {
		t.Errorf("expected ErrInvalidMaxRetries, got %v", err)
	}
}

func TestJSON(t *testing.T) {
	var s settings.Settings
	raw := `{"maxRetries": 3, "correctionScore": "half_n", "showEdgeCases": true}`
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.MaxRetries != 3 || s.CorrectionScore != scoring.HalfToThePowerN || !s.ShowEdgeCases {
		t.Errorf("unexpected settings: %+v", s)
	}

	if err := json.Unmarshal([]byte(`{"correctionScore": "0.25"}`), &s); err == nil {
		t.Error("expected error for unknown policy, got nil")
	}
}

func TestReportOptions(t *testing.T) {
	s := settings.Settings{MaxRetries: 2, CorrectionScore: scoring.Half, ShowCornerCases: true}
	opts := s.ReportOptions(map[string]bool{"7.1": true})

	if opts.Policy != scoring.Half || opts.WithEdge || !opts.WithCorner || !opts.Reviewed["7.1"] {
		t.Errorf("unexpected options: %+v", opts)
	}
}
