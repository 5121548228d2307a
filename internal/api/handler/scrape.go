package handler

import (
	"encoding/json"
	"lawscraper/pkg/serrors"
	"net/http"
)

// scrapeRequest is the payload of POST /scrape. Limit and ScrapeLinks are
// pointers so that absent fields can fall back to their defaults while
// explicit zero values still reach validation.
type scrapeRequest struct {
	URL         string `json:"url"`
	Limit       *int   `json:"limit"`
	ScrapeLinks *bool  `json:"scrape_links"`
}

// Scrape validates the request and runs the crawl. Validation failures map
// to 4xx responses; a failed root fetch is reported inside the 200 envelope
// with success=false.
func (h *Handler) Scrape(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	scrapeLinks := true
	if req.ScrapeLinks != nil {
		scrapeLinks = *req.ScrapeLinks
	}

	validated, err := h.deps.Scraper.Validate(req.URL, req.Limit, scrapeLinks)
	if err != nil {
		writeError(w, r, err)

		return
	}

	report, err := h.deps.Scraper.Crawl(r.Context(), validated)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, report)
}
