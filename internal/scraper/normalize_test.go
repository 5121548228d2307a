package scraper_test

import (
	"lawscraper/internal/scraper"
	"testing"
)

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
		ok   bool
	}{
		{
			name: "lowercase scheme and host; add root path",
			in:   "HTTPS://New.KenyaLaw.ORG",
			out:  "https://new.kenyalaw.org/",
			ok:   true,
		},
		{
			name: "remove default http port",
			in:   "http://kenyalaw.org:80/judgments",
			out:  "http://kenyalaw.org/judgments",
			ok:   true,
		},
		{
			name: "remove default https port",
			in:   "https://kenyalaw.org:443/",
			out:  "https://kenyalaw.org/",
			ok:   true,
		},
		{
			name: "keep non-default port",
			in:   "http://kenyalaw.org:8080/",
			out:  "http://kenyalaw.org:8080/",
			ok:   true,
		},
		{
			name: "clean path and drop trailing slash",
			in:   "https://new.kenyalaw.org//a/./b/../c/",
			out:  "https://new.kenyalaw.org/a/c",
			ok:   true,
		},
		{
			name: "sort query keys and values",
			in:   "https://new.kenyalaw.org/search?b=2&a=2&a=1",
			out:  "https://new.kenyalaw.org/search?a=1&a=2&b=2",
			ok:   true,
		},
		{
			name: "remove fragment",
			in:   "https://new.kenyalaw.org/judgments?x=1#Section-2",
			out:  "https://new.kenyalaw.org/judgments?x=1",
			ok:   true,
		},
		{
			name: "already normalized",
			in:   "https://new.kenyalaw.org/judgments?year=2024",
			out:  "https://new.kenyalaw.org/judgments?year=2024",
			ok:   true,
		},
		{
			name: "invalid url returns error",
			in:   "http://kenya law.org",
			out:  "",
			ok:   false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := scraper.NormalizeURL(tc.in)
			if tc.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tc.out {
					t.Fatalf("expected %q, got %q", tc.out, got)
				}

				return
			}
			if err == nil {
				t.Fatalf("expected error, got %q", got)
			}
		})
	}
}
