package domain

import (
	"time"

	"github.com/google/uuid"
)

// DocumentID uniquely identifies a stored crawl document.
// It wraps uuid.UUID to provide type safety at the domain layer.
type DocumentID uuid.UUID

// String returns the canonical uuid form of the ID.
func (id DocumentID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical uuid form, so json emits a
// string instead of a byte array.
func (id DocumentID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText() //nolint: wrapcheck
}

// UnmarshalText decodes the canonical uuid form.
func (id *DocumentID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data) //nolint: wrapcheck
}

// ParseDocumentID parses the canonical uuid form of a document ID.
func ParseDocumentID(s string) (DocumentID, error) {
	u, err := uuid.Parse(s)

	return DocumentID(u), err //nolint: wrapcheck
}

// Document is the content of one completed crawl, retained in memory so chat
// requests can reference it. It lives only for the lifetime of the process.
type Document struct {
	// ID is the unique identifier of the document.
	ID DocumentID `json:"id"`
	// Title is the title of the root page, or "Unknown" when none was found.
	Title string `json:"title"`
	// URLs lists the scraped page addresses, in result order.
	URLs []string `json:"urls"`
	// Content holds the scraped page contents, in result order.
	Content []string `json:"content"`
	// ScrapedAt is when the crawl completed.
	ScrapedAt time.Time `json:"scrapedAt"`
}
