package domain

// CrawlRequest is a validated request for a bounded multi-page crawl.
type CrawlRequest struct {
	// URL is the root page to scrape. It must belong to the allowed domain.
	URL string `json:"url"`
	// Limit is the maximum number of pages (root included) to fetch.
	Limit int `json:"limit"`
	// ScrapeLinks controls whether in-domain links discovered on the root
	// page are fetched as well.
	ScrapeLinks bool `json:"scrape_links"`
}

// CrawlReport is the aggregated outcome of one crawl. It is the JSON envelope
// returned to the client: a failed root fetch still produces a report, with
// Success set to false and an explanatory Message.
type CrawlReport struct {
	// Success reports whether the root page was fetched.
	Success bool `json:"success"`
	// Message is a human-readable summary of the outcome.
	Message string `json:"message"`
	// TotalPages is len(Results).
	TotalPages int `json:"total_pages"`
	// Duration is the elapsed wall-clock time in seconds.
	Duration float64 `json:"duration"`
	// Results holds the scraped pages, root page first, then in the order
	// the links were discovered.
	Results []Page `json:"results"`
	// DocumentID references the stored document for follow-up chat, when the
	// crawl produced any content.
	DocumentID string `json:"document_id,omitempty"`
}
