// Package scraper orchestrates bounded multi-page crawls. All fetching,
// rendering and link extraction is delegated to the external scraping
// provider; this package only validates requests, sequences the provider
// calls and aggregates the results.
package scraper

import (
	"context"
	"fmt"
	"lawscraper/internal/config"
	"lawscraper/internal/docstore"
	"lawscraper/pkg/domain"
	"lawscraper/pkg/logger"
	"lawscraper/pkg/scrapeprovider"
	"math"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Options configure request validation and crawl orchestration.
type Options struct {
	// AllowedDomain restricts scrape targets to this domain and its
	// subdomains.
	AllowedDomain string
	// DefaultLimit is applied when a request does not carry a limit.
	DefaultLimit int
	// MaxLimit is the ceiling for the per-request page limit.
	MaxLimit int
	// FetchConcurrency bounds the number of concurrent provider calls while
	// fetching discovered pages.
	FetchConcurrency int
	// FetchDelay is a polite pause each fetch worker takes after a page, to
	// space out provider calls.
	FetchDelay time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		AllowedDomain:    cfg.Scraper.AllowedDomain,
		DefaultLimit:     cfg.Scraper.DefaultLimit,
		MaxLimit:         cfg.Scraper.MaxLimit,
		FetchConcurrency: cfg.Scraper.FetchConcurrency,
		FetchDelay:       cfg.Scraper.FetchDelay,
	}
}

// excludedURL matches URLs that are never fetched: binary assets and site
// areas that hold no scrapeable content.
var excludedURL = regexp.MustCompile(`(?i)\.(pdf|jpe?g|png|gif)$|/admin/|/login/`)

// scraper is the concrete implementation of the Scraper interface. It holds
// no per-request state; every crawl is self-contained.
type scraper struct {
	options  Options
	provider scrapeprovider.Client
	store    *docstore.Store
}

// roundSeconds converts an elapsed duration into seconds with two decimals.
func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}

// Crawl runs a validated request. The root page is fetched first; when it
// fails the whole operation fails and the report carries success=false with
// the provider's error message. Discovered pages that fail are skipped and
// only reduce the page count.
func (s scraper) Crawl(ctx context.Context, req domain.CrawlRequest) (*domain.CrawlReport, error) {
	start := time.Now()
	ctx = logger.WithFields(ctx, zap.String("rootURL", req.URL))

	root, err := s.provider.Scrape(ctx, req.URL)
	if err != nil {
		logger.Error(ctx, "could not scrape root page", zap.Error(err))

		return &domain.CrawlReport{
			Success:  false,
			Message:  fmt.Sprintf("could not scrape root page: %s", err),
			Duration: roundSeconds(time.Since(start)),
			Results:  []domain.Page{},
		}, nil
	}

	pages := []domain.Page{*root}
	if req.ScrapeLinks && req.Limit > 1 {
		fetched := s.fetchPages(ctx, s.discoverTargets(ctx, req))
		pages = append(pages, fetched...)
	}

	docID := s.store.Put(pages)
	logger.Info(ctx, "crawl finished",
		zap.Int("pages", len(pages)),
		zap.String("documentID", docID.String()))

	return &domain.CrawlReport{
		Success:    true,
		Message:    fmt.Sprintf("Successfully scraped %d pages", len(pages)),
		TotalPages: len(pages),
		Duration:   roundSeconds(time.Since(start)),
		Results:    pages,
		DocumentID: docID.String(),
	}, nil
}

// discoverTargets asks the provider for the root page's links and selects up
// to limit-1 fetch targets: in-domain, not excluded, deduplicated against a
// visited set of normalized URLs. The root itself counts toward the limit and
// is already in the visited set. Discovery failures degrade to a root-only
// crawl.
func (s scraper) discoverTargets(ctx context.Context, req domain.CrawlRequest) []string {
	links, err := s.provider.Links(ctx, req.URL)
	if err != nil {
		logger.Warn(ctx, "could not discover links, scraping root page only", zap.Error(err))

		return nil
	}

	base, err := url.Parse(req.URL)
	if err != nil {
		return nil
	}

	visited := map[string]struct{}{req.URL: {}}
	targets := make([]string, 0, req.Limit-1)
	for _, link := range links {
		if len(targets) >= req.Limit-1 {
			break
		}

		ref, err := url.Parse(strings.TrimSpace(link))
		if err != nil {
			continue
		}
		abs := base.ResolveReference(ref)
		if !hostAllowed(strings.ToLower(abs.Hostname()), s.options.AllowedDomain) {
			continue
		}
		normalized, err := NormalizeURL(abs.String())
		if err != nil {
			continue
		}
		if excludedURL.MatchString(normalized) {
			logger.Debug(ctx, "skipping excluded URL", zap.String("url", normalized))

			continue
		}
		if _, seen := visited[normalized]; seen {
			continue
		}
		visited[normalized] = struct{}{}
		targets = append(targets, normalized)
	}

	logger.Info(ctx, "discovered internal links", zap.Int("count", len(targets)))

	return targets
}

// fetchPages scrapes the targets through a bounded worker pool. Results keep
// the targets' order; failed pages are logged, counted and skipped.
func (s scraper) fetchPages(ctx context.Context, targets []string) []domain.Page {
	if len(targets) == 0 {
		return nil
	}

	results := make([]*domain.Page, len(targets))

	concurrency := s.options.FetchConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	sem := make(chan struct{}, concurrency)

	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		sem <- struct{}{} // acquire
		go func() {
			defer func() {
				<-sem
				wg.Done()
			}()

			page, err := s.provider.Scrape(ctx, target)
			if err != nil {
				logger.Warn(ctx, "skipping page after provider failure",
					zap.String("url", target), zap.Error(err))

				return
			}
			results[i] = page

			if s.options.FetchDelay > 0 {
				select {
				case <-ctx.Done():
				case <-time.After(s.options.FetchDelay):
				}
			}
		}()
	}
	wg.Wait()

	pages := make([]domain.Page, 0, len(targets))
	failed := 0
	for _, p := range results {
		if p == nil {
			failed++

			continue
		}
		pages = append(pages, *p)
	}
	if failed > 0 {
		logger.Warn(ctx, "some pages could not be scraped", zap.Int("failed", failed))
	}

	return pages
}

// New creates a Scraper backed by the provided provider client and document
// store, configured with the given options.
func New(provider scrapeprovider.Client, store *docstore.Store, options Options) Scraper {
	return &scraper{
		options:  options,
		provider: provider,
		store:    store,
	}
}
