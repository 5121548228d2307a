package scraper_test

import (
	"lawscraper/internal/docstore"
	"lawscraper/internal/scraper"
	"testing"

	"lawscraper/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) scraper.Scraper {
	t.Helper()

	// Validate never touches the provider or the store.
	return scraper.New(nil, docstore.New(docstore.Options{}), scraper.Options{
		AllowedDomain: "kenyalaw.org",
		DefaultLimit:  10,
		MaxLimit:      50,
	})
}

func intPtr(n int) *int { return &n }

func TestValidate_AcceptsAllowedDomainAndSubdomains(t *testing.T) {
	s := newValidator(t)

	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "apex domain", in: "https://kenyalaw.org", out: "https://kenyalaw.org/"},
		{name: "subdomain", in: "https://new.kenyalaw.org", out: "https://new.kenyalaw.org/"},
		{name: "mixed case host", in: "https://New.KenyaLaw.ORG/Judgments", out: "https://new.kenyalaw.org/Judgments"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := s.Validate(tc.in, intPtr(5), true)
			require.NoError(t, err)
			require.Equal(t, tc.out, req.URL)
			require.Equal(t, 5, req.Limit)
			require.True(t, req.ScrapeLinks)
		})
	}
}

func TestValidate_RejectsForeignDomains(t *testing.T) {
	s := newValidator(t)

	cases := []struct {
		name string
		in   string
	}{
		{name: "unrelated domain", in: "https://example.com"},
		{name: "allowed domain as prefix of another", in: "https://kenyalaw.org.evil.com"},
		{name: "allowed domain inside path only", in: "https://example.com/kenyalaw.org"},
		{name: "no scheme", in: "new.kenyalaw.org/judgments"},
		{name: "non-http scheme", in: "ftp://new.kenyalaw.org"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Validate(tc.in, intPtr(5), false)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}

func TestValidate_RejectsUnparsableURL(t *testing.T) {
	s := newValidator(t)

	_, err := s.Validate("http://kenya law.org", intPtr(5), false)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestValidate_LimitBounds(t *testing.T) {
	s := newValidator(t)

	cases := []struct {
		name  string
		limit *int
		want  int
		ok    bool
	}{
		{name: "absent limit takes default", limit: nil, want: 10, ok: true},
		{name: "explicit limit kept", limit: intPtr(3), want: 3, ok: true},
		{name: "ceiling is inclusive", limit: intPtr(50), want: 50, ok: true},
		{name: "zero rejected", limit: intPtr(0), ok: false},
		{name: "negative rejected", limit: intPtr(-4), ok: false},
		{name: "above ceiling rejected", limit: intPtr(51), ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := s.Validate("https://new.kenyalaw.org", tc.limit, false)
			if !tc.ok {
				require.ErrorIs(t, err, serrors.ErrBadRequest)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, req.Limit)
		})
	}
}
