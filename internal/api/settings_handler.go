package api

import (
	"net/http"

	"github.com/mathdrill/backend/internal/domain/settings"
)

// getSettings returns the learner's settings.
// @Summary      Get settings
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  settings.Settings
// @Failure      500  {object}  map[string]string
// @Router       /settings [get]
func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Settings(r.Context())
	if h.handleServiceError(w, r, err, "settings") {
		return
	}
	respondJSON(w, http.StatusOK, s)
}

// putSettings replaces the learner's settings.
// @Summary      Update settings
// @Description  maxRetries must be at least 1; correctionScore is one of "0", "1", "0.5", "half_n".
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        body  body      settings.Settings  true  "New settings"
// @Success      200   {object}  settings.Settings
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /settings [put]
func (h *Handler) putSettings(w http.ResponseWriter, r *http.Request) {
	var req settings.Settings
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if h.handleServiceError(w, r, h.svc.UpdateSettings(r.Context(), req), "settings") {
		return
	}
	respondJSON(w, http.StatusOK, req)
}
