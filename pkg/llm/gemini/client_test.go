package gemini_test

import (
	"context"
	"io"
	"lawscraper/pkg/llm/gemini"
	"net/http"
	"strings"
	"testing"

	"lawscraper/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *gemini.Client {
	return gemini.New(&http.Client{Transport: fn}, "test-key", "gemini-2.5-flash", "")
}

func TestClient_Complete_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "generativelanguage.googleapis.com", r.URL.Host)
		require.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("key"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Contains(t, string(body), `"text":"What is 2+2?"`)

		return &http.Response{
			StatusCode: http.StatusOK,
			Body: io.NopCloser(strings.NewReader(
				`{"candidates":[{"content":{"parts":[{"text":"4"}]}}]}`)),
		}, nil
	})

	out, err := c.Complete(context.Background(), "What is 2+2?")
	require.NoError(t, err)
	require.Equal(t, "4", out)
}

func TestClient_Complete_non2xx(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadRequest,
			Body:       io.NopCloser(strings.NewReader("bad key")),
		}, nil
	})

	_, err := c.Complete(context.Background(), "hello")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Contains(t, err.Error(), "bad key")
}

func TestClient_Complete_rateLimited(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Body:       io.NopCloser(strings.NewReader("quota exceeded")),
		}, nil
	})

	_, err := c.Complete(context.Background(), "hello")
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestClient_Complete_noCandidates(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"candidates":[]}`)),
		}, nil
	})

	_, err := c.Complete(context.Background(), "hello")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}
