package api

import (
	"errors"
	"net/http"

	"github.com/mathdrill/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type SubmitRequest struct {
	Answers []string `json:"answers" example:"(x+3)(x+4)"`
}

func (r *SubmitRequest) Validate() error {
	if r.Answers == nil {
		return errors.New("answers is required")
	}
	return nil
}

type DisputeRequest struct {
	HistoryIndex *int `json:"history_index" example:"0"`
	PartIndex    *int `json:"part_index" example:"0"`
}

func (r *DisputeRequest) Validate() error {
	if r.HistoryIndex == nil {
		return errors.New("history_index is required")
	}
	if r.PartIndex == nil {
		return errors.New("part_index is required")
	}
	return nil
}

type TypeStepRequest struct {
	Text string `json:"text" example:"12 = 3 * 4 and 3 + 4 = 7"`
}

type ResetProblemsRequest struct {
	Keys      []string `json:"keys,omitempty" example:"7.4.mp1.1"`
	SectionID string   `json:"section_id,omitempty" example:"7.4"`
}

func (r *ResetProblemsRequest) Validate() error {
	if len(r.Keys) == 0 && r.SectionID == "" {
		return errors.New("keys or section_id is required")
	}
	if len(r.Keys) > 0 && r.SectionID != "" {
		return errors.New("keys and section_id are mutually exclusive")
	}
	return nil
}

type PostAnswerResponse struct {
	service.Snapshot
	TypedAnswers []string `json:"typed_answers" example:"(x+3)(x+4)"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getProblem returns the state of one problem.
// @Summary      Get problem state
// @Description  Returns the migrated progress of a problem with retries left, score and walkthrough steps.
// @Tags         Problems
// @Produce      json
// @Param        key  path      string  true  "Problem key"  example(7.4.mp1.1)
// @Success      200  {object}  service.Snapshot
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /problems/{key} [get]
func (h *Handler) getProblem(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.State(r.Context(), r.PathValue("key"))
	if h.handleServiceError(w, r, err, "problem") {
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// submitAnswers grades a submission.
// @Summary      Submit answers
// @Description  Grades one submission. Blank submissions and submissions after the cycle ended are ignored (changed=false).
// @Tags         Problems
// @Accept       json
// @Produce      json
// @Param        key   path      string         true  "Problem key"
// @Param        body  body      SubmitRequest  true  "One answer per part"
// @Success      200   {object}  service.Snapshot
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /problems/{key}/submit [post]
func (h *Handler) submitAnswers(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	snap, err := h.svc.Submit(r.Context(), r.PathValue("key"), req.Answers)
	if h.handleServiceError(w, r, err, "problem") {
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// resetProblem starts a new attempt cycle.
// @Summary      Reset problem
// @Description  Starts a new attempt cycle. Attempts and history are kept.
// @Tags         Problems
// @Produce      json
// @Param        key  path      string  true  "Problem key"
// @Success      200  {object}  service.Snapshot
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /problems/{key}/reset [post]
func (h *Handler) resetProblem(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Reset(r.Context(), r.PathValue("key"))
	if h.handleServiceError(w, r, err, "problem") {
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// disputeAnswer accepts one graded part as correct.
// @Summary      Dispute a graded part
// @Description  Marks one part of one history entry correct and rescores from the earliest correct entry.
// @Tags         Problems
// @Accept       json
// @Produce      json
// @Param        key            path      string          true  "Problem key"
// @Param        X-Admin-Token  header    string          true  "Admin token"
// @Param        body           body      DisputeRequest  true  "Entry and part to accept"
// @Success      200            {object}  service.Snapshot
// @Failure      400            {object}  map[string]string
// @Failure      401            {object}  map[string]string
// @Failure      403            {object}  map[string]string
// @Failure      404            {object}  map[string]string
// @Router       /problems/{key}/dispute [post]
func (h *Handler) disputeAnswer(w http.ResponseWriter, r *http.Request) {
	var req DisputeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	snap, err := h.svc.Dispute(r.Context(), r.PathValue("key"), *req.HistoryIndex, *req.PartIndex)
	if h.handleServiceError(w, r, err, "problem") {
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// useHint reveals the hint.
// @Summary      Use hint
// @Description  Reveals the hint. Costs 0.25 of the problem's score.
// @Tags         Assists
// @Produce      json
// @Param        key  path      string  true  "Problem key"
// @Success      200  {object}  service.Snapshot
// @Failure      404  {object}  map[string]string
// @Router       /problems/{key}/hint [post]
func (h *Handler) useHint(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.UseHint(r.Context(), r.PathValue("key"))
	if h.handleServiceError(w, r, err, "problem") {
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// revealStep reveals the current walkthrough step.
// @Summary      Reveal walkthrough step
// @Tags         Assists
// @Produce      json
// @Param        key  path      string  true  "Problem key"
// @Success      200  {object}  service.Snapshot
// @Failure      404  {object}  map[string]string
// @Router       /problems/{key}/automation/reveal [post]
func (h *Handler) revealStep(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.RevealStep(r.Context(), r.PathValue("key"))
	if h.handleServiceError(w, r, err, "problem") {
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// typeStep records the learner's own working for the current step.
// @Summary      Type walkthrough step
// @Description  Records the learner's own working for the current step at no cost. Blank text is ignored.
// @Tags         Assists
// @Accept       json
// @Produce      json
// @Param        key   path      string           true  "Problem key"
// @Param        body  body      TypeStepRequest  true  "Step text"
// @Success      200   {object}  service.Snapshot
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /problems/{key}/automation/type [post]
func (h *Handler) typeStep(w http.ResponseWriter, r *http.Request) {
	var req TypeStepRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	snap, err := h.svc.TypeStep(r.Context(), r.PathValue("key"), req.Text)
	if h.handleServiceError(w, r, err, "problem") {
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// postAnswer has the walkthrough fill in the final answer.
// @Summary      Post answer
// @Description  Charges 0.2 and returns the canonical answers in typed form.
// @Tags         Assists
// @Produce      json
// @Param        key  path      string  true  "Problem key"
// @Success      200  {object}  PostAnswerResponse
// @Failure      404  {object}  map[string]string
// @Router       /problems/{key}/automation/post [post]
func (h *Handler) postAnswer(w http.ResponseWriter, r *http.Request) {
	snap, typed, err := h.svc.PostAnswer(r.Context(), r.PathValue("key"))
	if h.handleServiceError(w, r, err, "problem") {
		return
	}
	if typed == nil {
		typed = []string{}
	}
	respondJSON(w, http.StatusOK, PostAnswerResponse{Snapshot: snap, TypedAnswers: typed})
}

// resetProblems clears problems completely.
// @Summary      Reset all
// @Description  Deletes all stored progress, history included, for the given keys or every problem of a section.
// @Tags         Problems
// @Accept       json
// @Param        body  body  ResetProblemsRequest  true  "Keys or section"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /problems/reset [post]
func (h *Handler) resetProblems(w http.ResponseWriter, r *http.Request) {
	var req ResetProblemsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var err error
	if req.SectionID != "" {
		err = h.svc.ResetSection(r.Context(), req.SectionID)
	} else {
		err = h.svc.ResetProblems(r.Context(), req.Keys)
	}
	if h.handleServiceError(w, r, err, "problem") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
