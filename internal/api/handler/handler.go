// Package handler implements the JSON endpoints of the scraper API.
package handler

import (
	"encoding/json"
	"errors"
	"lawscraper/internal/chat"
	"lawscraper/internal/scraper"
	"lawscraper/pkg/logger"
	"lawscraper/pkg/serrors"
	"net/http"

	"go.uber.org/zap"
)

// Deps carries the services the handlers delegate to.
type Deps struct {
	// Scraper validates and runs crawl requests.
	Scraper scraper.Scraper
	// Chat answers questions about stored documents.
	Chat chat.Chat
}

// Handler holds the HTTP handlers for the API endpoints.
type Handler struct {
	deps Deps
}

// New creates a Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts the API routes on the provided mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /scrape", h.Scrape)
	mux.HandleFunc("POST /chat", h.Chat)
	mux.HandleFunc("GET /health", h.Health)
}

// writeJSON serializes v into the response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFromError maps semantic error kinds to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serrors.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, serrors.ErrTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs the error and writes its JSON envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err))
	} else {
		logger.Debug(r.Context(), "request rejected", zap.Error(err))
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}
