// Package handler provides the HTTP request handlers for authcore.
package handler

import (
	"net/http"

	"github.com/nvieira/authcore/internal/infra/buildinfo"
)

// Root handles GET / with an empty 200, matching the legacy API.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Health handles GET /health with the legacy API's plain-text body.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK!"))
}

// Ready handles GET /ready with a JSON readiness report including build
// information.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	info := buildinfo.Get()
	h.writeJSON(w, r, http.StatusOK, map[string]string{
		"status":     "ready",
		"version":    info.Version,
		"commit":     info.Commit,
		"build_time": info.BuildTime,
	})
}
