package scraper

import (
	"fmt"
	"net"
	"net/url"
	"path"
	"sort"
	"strings"
)

// NormalizeURL returns a canonical representation of a URL string. The
// visited set of a crawl is keyed by normalized URLs, so two spellings of the
// same page do not get fetched twice or counted twice toward the limit.
//
// Normalization lower-cases the scheme and host, drops default ports and the
// fragment, cleans the path (dot-segments, duplicate and trailing slashes)
// and sorts query parameters for a stable ordering.
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("could not parse URL: %w", err)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Fragment = ""

	host := strings.ToLower(u.Hostname())
	switch port := u.Port(); {
	case port == "",
		u.Scheme == "http" && port == "80",
		u.Scheme == "https" && port == "443":
		u.Host = host
	default:
		u.Host = net.JoinHostPort(host, port)
	}

	// path.Clean resolves dot-segments and collapses duplicate and trailing
	// slashes in one go; the prepended slash makes an empty path the root
	u.Path = path.Clean("/" + u.Path)

	if u.RawQuery != "" {
		q := u.Query()
		for _, values := range q {
			sort.Strings(values)
		}
		// Encode sorts keys lexicographically
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}
