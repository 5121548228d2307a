package scraper

import (
	"lawscraper/pkg/domain"
	"lawscraper/pkg/serrors"
	"net/url"
	"strings"
)

// hostAllowed reports whether host is the allowed domain or one of its
// subdomains. Both values are expected in lower case.
func hostAllowed(host, allowedDomain string) bool {
	return host == allowedDomain || strings.HasSuffix(host, "."+allowedDomain)
}

// Validate checks the raw request input and returns a normalized
// CrawlRequest. It rejects URLs outside the allowed domain and limits that
// are non-positive or above the configured ceiling. A nil limit selects the
// configured default. No side effects.
func (s scraper) Validate(rawURL string, limit *int, scrapeLinks bool) (domain.CrawlRequest, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return domain.CrawlRequest{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid URL")
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return domain.CrawlRequest{}, serrors.With(serrors.ErrBadRequest, "URL scheme must be http or https")
	}
	if !hostAllowed(strings.ToLower(u.Hostname()), s.options.AllowedDomain) {
		return domain.CrawlRequest{},
			serrors.With(serrors.ErrBadRequest, "URL must be from %s domain", s.options.AllowedDomain)
	}

	l := s.options.DefaultLimit
	if limit != nil {
		l = *limit
	}
	if l <= 0 {
		return domain.CrawlRequest{}, serrors.With(serrors.ErrBadRequest, "limit must be positive")
	}
	if l > s.options.MaxLimit {
		return domain.CrawlRequest{}, serrors.With(serrors.ErrBadRequest, "limit must not exceed %d", s.options.MaxLimit)
	}

	normalized, err := NormalizeURL(u.String())
	if err != nil {
		return domain.CrawlRequest{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid URL")
	}

	return domain.CrawlRequest{
		URL:         normalized,
		Limit:       l,
		ScrapeLinks: scrapeLinks,
	}, nil
}
