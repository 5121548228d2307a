// Package gemini provides an llm.Client implementation backed by the Google
// Gemini generateContent REST API.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"lawscraper/pkg/llm"
	"lawscraper/pkg/serrors"
	"net/http"
	"strings"
)

// DefaultBaseURL is the public Gemini API endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// Client talks to the Gemini REST API and fulfills the llm.Client interface.
// It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the Gemini API
	token      string       // token is the Gemini API key
	model      string       // model is the model name, e.g. "gemini-2.5-flash"
	baseURL    string       // baseURL is the API endpoint, overridable for tests
}

// Complete sends the prompt to the configured model and returns the first
// candidate's text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	// https://ai.google.dev/api/generate-content
	type part struct {
		Text string `json:"text"`
	}
	type content struct {
		Parts []part `json:"parts"`
	}
	type generateReq struct {
		Contents         []content `json:"contents"`
		GenerationConfig struct {
			Temperature     float64 `json:"temperature"`
			TopP            float64 `json:"topP"`
			TopK            int     `json:"topK"`
			MaxOutputTokens int     `json:"maxOutputTokens"`
		} `json:"generationConfig"`
	}

	body := generateReq{Contents: []content{{Parts: []part{{Text: prompt}}}}}
	body.GenerationConfig.Temperature = 0.3
	body.GenerationConfig.TopP = 0.8
	body.GenerationConfig.TopK = 40
	body.GenerationConfig.MaxOutputTokens = 1000

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("could not marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(string(bodyBytes)))
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return "", serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", serrors.With(serrors.ErrUnavailable, "generate failed: %s", strings.TrimSpace(string(b)))
	}

	var decoded struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(b, &decoded); err != nil {
		return "", fmt.Errorf("could not decode response: %w", err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", serrors.With(serrors.ErrUnavailable, "model returned no candidates")
	}

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}

// Ensure Client conforms to the llm.Client interface at compile time.
var _ llm.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client, API token and
// model name to interact with the Gemini API. An empty baseURL selects the
// public endpoint.
func New(httpClient *http.Client, token, model, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		token:      token,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}
