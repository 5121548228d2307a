// Package scrapeprovider defines the capability interface used to fetch page
// content and discover links through an external scraping service. The
// service never fetches or parses pages itself; all of that is delegated to
// the provider behind this interface.
package scrapeprovider

import (
	"context"
	"lawscraper/pkg/domain"
)

// Client is the abstraction over the external scraping provider.
// Implementations must be safe for concurrent use.
//
//go:generate mockgen -package mockscrapeprovider -source=interface.go -destination=mock/mockscrapeprovider.go *
type Client interface {
	// Scrape fetches the given URL through the provider and returns its
	// content as a Page.
	Scrape(ctx context.Context, URL string) (*domain.Page, error)
	// Links asks the provider for the links found on the given page, as
	// reported by the provider's own link extraction. The returned values may
	// be relative.
	Links(ctx context.Context, URL string) ([]string, error)
}
