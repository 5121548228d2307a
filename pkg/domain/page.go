package domain

import "unicode/utf8"

// Page is the scraped content of a single URL as returned by the scraping
// provider. ContentLength is derived from Content at construction time and a
// Page is treated as immutable once produced.
type Page struct {
	// URL is the address the content was scraped from.
	URL string `json:"url"`
	// Content is the page content in markdown form.
	Content string `json:"content"`
	// Title is the page title reported by the provider, if any.
	Title string `json:"title"`
	// ContentLength is the number of characters in Content, not bytes.
	ContentLength int `json:"content_length"`
}

// NewPage builds a Page and derives ContentLength from the content.
func NewPage(url, title, content string) Page {
	return Page{
		URL:           url,
		Content:       content,
		Title:         title,
		ContentLength: utf8.RuneCountInString(content),
	}
}
