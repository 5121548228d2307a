package scraper

import (
	"context"
	"lawscraper/pkg/domain"
)

// Scraper validates crawl requests and orchestrates bounded multi-page
// crawls through the external scraping provider.
//
//go:generate mockgen -package mockscraper -source=interface.go -destination=mock/mockscraper.go *
type Scraper interface {
	// Validate checks the raw request input and returns a normalized
	// CrawlRequest. A nil limit selects the configured default.
	Validate(URL string, limit *int, scrapeLinks bool) (domain.CrawlRequest, error)
	// Crawl runs a validated request: root page first, then up to limit-1
	// discovered in-domain pages. A failed root fetch is reported inside the
	// CrawlReport, not as an error.
	Crawl(ctx context.Context, req domain.CrawlRequest) (*domain.CrawlReport, error)
}
