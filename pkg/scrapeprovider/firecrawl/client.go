// Package firecrawl provides a scrapeprovider.Client implementation backed by
// the FireCrawl REST API.
package firecrawl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"lawscraper/pkg/domain"
	"lawscraper/pkg/scrapeprovider"
	"lawscraper/pkg/serrors"
	"net/http"
	"strings"
)

// DefaultBaseURL is the public FireCrawl API endpoint.
const DefaultBaseURL = "https://api.firecrawl.dev"

// Client talks to the FireCrawl REST API and fulfills the
// scrapeprovider.Client interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to FireCrawl
	token      string       // token is the FireCrawl API key
	baseURL    string       // baseURL is the API endpoint, overridable for tests
}

// scrapeResponse is the subset of the FireCrawl scrape response the service
// consumes.
type scrapeResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Data    struct {
		Markdown string   `json:"markdown"`
		Links    []string `json:"links"`
		Metadata struct {
			Title     string `json:"title"`
			SourceURL string `json:"sourceURL"`
		} `json:"metadata"`
	} `json:"data"`
}

// scrape issues one scrape call for the given URL asking for the provided
// output formats and decodes the provider response.
func (c *Client) scrape(ctx context.Context, URL string, formats []string) (*scrapeResponse, error) {
	// https://docs.firecrawl.dev/api-reference/endpoint/scrape
	type scrapeReq struct {
		URL     string   `json:"url"`
		Formats []string `json:"formats"`
	}
	bodyBytes, err := json.Marshal(scrapeReq{URL: URL, Formats: formats})
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.baseURL+"/v1/scrape",
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serrors.With(serrors.ErrUnavailable, "scrape failed: %s", strings.TrimSpace(string(b)))
	}

	var decoded scrapeResponse
	if err := json.Unmarshal(b, &decoded); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}
	if !decoded.Success {
		return nil, serrors.With(serrors.ErrUnavailable, "provider reported failure: %s", decoded.Error)
	}

	return &decoded, nil
}

// Scrape fetches the given URL through FireCrawl and returns its markdown
// content as a Page. The provider performs the actual HTTP fetch and
// rendering.
func (c *Client) Scrape(ctx context.Context, URL string) (*domain.Page, error) {
	resp, err := c.scrape(ctx, URL, []string{"markdown"})
	if err != nil {
		return nil, err
	}

	pageURL := resp.Data.Metadata.SourceURL
	if pageURL == "" {
		pageURL = URL
	}
	page := domain.NewPage(pageURL, resp.Data.Metadata.Title, resp.Data.Markdown)

	return &page, nil
}

// Links asks FireCrawl for the links found on the given page. Values are
// returned as reported by the provider and may be relative.
func (c *Client) Links(ctx context.Context, URL string) ([]string, error) {
	resp, err := c.scrape(ctx, URL, []string{"links"})
	if err != nil {
		return nil, err
	}

	return resp.Data.Links, nil
}

// Ensure Client conforms to the scrapeprovider.Client interface at compile time.
var _ scrapeprovider.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client and API token to
// interact with the FireCrawl API. An empty baseURL selects the public
// endpoint.
func New(httpClient *http.Client, token, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		token:      token,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}
