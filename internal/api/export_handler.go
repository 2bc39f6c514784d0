package api

import (
	"encoding/json"
	"net/http"

	"github.com/mathdrill/backend/internal/service"
)

// ── Handlers ────────────────────────────────────────────────────────────────

// exportProgress downloads all progress as one JSON document.
// @Summary      Export progress
// @Tags         Progress
// @Produce      json
// @Success      200  {object}  service.Export
// @Failure      500  {object}  map[string]string
// @Router       /progress/export [get]
func (h *Handler) exportProgress(w http.ResponseWriter, r *http.Request) {
	export, err := h.svc.Export(r.Context())
	if h.handleServiceError(w, r, err, "progress") {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=mathdrill-progress.json")
	json.NewEncoder(w).Encode(export)
}

// importProgress loads an exported document.
// @Summary      Import progress
// @Description  Migrates and saves every problem state of an export. Keys and sections the corpus does not know are skipped.
// @Tags         Progress
// @Accept       json
// @Produce      json
// @Param        body  body      service.Export  true  "Exported progress"
// @Success      200   {object}  service.ImportResult
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /progress/import [post]
func (h *Handler) importProgress(w http.ResponseWriter, r *http.Request) {
	var req service.Export
	if !decodeJSON(w, r, &req) {
		return
	}
	result, err := h.svc.Import(r.Context(), req)
	if h.handleServiceError(w, r, err, "progress") {
		return
	}
	respondJSON(w, http.StatusOK, result)
}
