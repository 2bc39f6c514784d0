package api

import (
	"errors"
	"net/http"

	"github.com/mathdrill/backend/internal/domain/scoring"
)

// ── Request / Response types ────────────────────────────────────────────────

type SetReviewedRequest struct {
	Reviewed *bool `json:"reviewed" example:"true"`
}

func (r *SetReviewedRequest) Validate() error {
	if r.Reviewed == nil {
		return errors.New("reviewed is required")
	}
	return nil
}

type SectionListResponse struct {
	ChapterID    string                  `json:"chapter_id" example:"7"`
	ChapterTitle string                  `json:"chapter_title" example:"Factoring"`
	Sections     []scoring.SectionReport `json:"sections"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listSections returns a summary of every section.
// @Summary      List sections
// @Tags         Sections
// @Produce      json
// @Success      200  {object}  SectionListResponse
// @Failure      500  {object}  map[string]string
// @Router       /sections [get]
func (h *Handler) listSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.svc.Sections(r.Context())
	if h.handleServiceError(w, r, err, "section") {
		return
	}
	chapter := h.svc.Corpus().Chapter
	respondJSON(w, http.StatusOK, SectionListResponse{
		ChapterID:    chapter.ID,
		ChapterTitle: chapter.Title,
		Sections:     sections,
	})
}

// getSection returns one section group by group.
// @Summary      Get section
// @Description  Returns the section's visible groups with per-problem status, attempts and score.
// @Tags         Sections
// @Produce      json
// @Param        sectionID  path      string  true  "Section id"  example(7.4)
// @Success      200        {object}  scoring.SectionReport
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /sections/{sectionID} [get]
func (h *Handler) getSection(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Section(r.Context(), r.PathValue("sectionID"))
	if h.handleServiceError(w, r, err, "section") {
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// setReviewed marks a section reviewed or not.
// @Summary      Mark section reviewed
// @Tags         Sections
// @Accept       json
// @Param        sectionID  path  string              true  "Section id"
// @Param        body       body  SetReviewedRequest  true  "Reviewed flag"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /sections/{sectionID}/reviewed [put]
func (h *Handler) setReviewed(w http.ResponseWriter, r *http.Request) {
	var req SetReviewedRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	err := h.svc.SetReviewed(r.Context(), r.PathValue("sectionID"), *req.Reviewed)
	if h.handleServiceError(w, r, err, "section") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getReport scores sections.
// @Summary      Progress report
// @Description  Scores the requested sections (all when none is given) under the current settings.
// @Tags         Sections
// @Produce      json
// @Param        section  query     []string  false  "Section ids"  collectionFormat(multi)
// @Success      200      {object}  scoring.Report
// @Failure      404      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /report [get]
func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Report(r.Context(), r.URL.Query()["section"])
	if h.handleServiceError(w, r, err, "section") {
		return
	}
	respondJSON(w, http.StatusOK, report)
}
