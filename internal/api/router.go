// internal/api/router.go
package api

import "net/http"

// RouteOptions configure the guards around mutating routes.
type RouteOptions struct {
	AdminToken         string
	RateLimitPerMinute int
}

// RegisterRoutes wires every API route onto mux. Mutating routes are rate
// limited per client; disputes additionally require the admin token.
func RegisterRoutes(mux *http.ServeMux, h *Handler, opts RouteOptions) {
	limiter := NewRateLimiter(opts.RateLimitPerMinute)
	mutate := func(fn http.HandlerFunc) http.Handler {
		return limiter.Middleware(fn)
	}
	admin := RequireAdmin(opts.AdminToken)

	// Sections & reports
	mux.HandleFunc("GET /sections", h.listSections)
	mux.HandleFunc("GET /sections/{sectionID}", h.getSection)
	mux.Handle("PUT /sections/{sectionID}/reviewed", mutate(h.setReviewed))
	mux.HandleFunc("GET /report", h.getReport)

	// Problems
	mux.HandleFunc("GET /problems/{key}", h.getProblem)
	mux.Handle("POST /problems/{key}/submit", mutate(h.submitAnswers))
	mux.Handle("POST /problems/{key}/reset", mutate(h.resetProblem))
	mux.Handle("POST /problems/{key}/dispute", admin(mutate(h.disputeAnswer)))
	mux.Handle("POST /problems/reset", mutate(h.resetProblems))

	// Assists
	mux.Handle("POST /problems/{key}/hint", mutate(h.useHint))
	mux.Handle("POST /problems/{key}/automation/reveal", mutate(h.revealStep))
	mux.Handle("POST /problems/{key}/automation/type", mutate(h.typeStep))
	mux.Handle("POST /problems/{key}/automation/post", mutate(h.postAnswer))

	// Settings
	mux.HandleFunc("GET /settings", h.getSettings)
	mux.Handle("PUT /settings", mutate(h.putSettings))

	// Export / import
	mux.HandleFunc("GET /progress/export", h.exportProgress)
	mux.Handle("POST /progress/import", mutate(h.importProgress))
}
