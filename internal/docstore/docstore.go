// Package docstore retains the content of completed crawls in memory so the
// chat endpoint can reference it. Nothing survives a process restart; the
// store is a bounded, process-lifetime cache, not persistence.
package docstore

import (
	"lawscraper/internal/config"
	"lawscraper/pkg/domain"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Options configure the document store.
type Options struct {
	// MaxDocuments caps the number of retained documents. When the cap is
	// exceeded, the oldest document is evicted. Zero or negative disables the
	// cap.
	MaxDocuments int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxDocuments: cfg.Docstore.MaxDocuments,
	}
}

// Store is a mutex-guarded in-memory document store.
type Store struct {
	options Options

	mu   sync.Mutex
	docs map[domain.DocumentID]domain.Document
	// order tracks insertion order for oldest-first eviction.
	order []domain.DocumentID
}

// New creates an empty document store.
func New(options Options) *Store {
	return &Store{
		options: options,
		docs:    make(map[domain.DocumentID]domain.Document),
	}
}

// Put stores the pages of a completed crawl as a new document and returns its
// ID. The document title is taken from the first page, matching the crawl
// result order (root page first).
func (s *Store) Put(pages []domain.Page) domain.DocumentID {
	doc := domain.Document{
		ID:        domain.DocumentID(uuid.New()),
		Title:     "Unknown",
		URLs:      make([]string, 0, len(pages)),
		Content:   make([]string, 0, len(pages)),
		ScrapedAt: time.Now(),
	}
	if len(pages) > 0 && pages[0].Title != "" {
		doc.Title = pages[0].Title
	}
	for _, p := range pages {
		doc.URLs = append(doc.URLs, p.URL)
		doc.Content = append(doc.Content, p.Content)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[doc.ID] = doc
	s.order = append(s.order, doc.ID)

	if s.options.MaxDocuments > 0 && len(s.order) > s.options.MaxDocuments {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.docs, oldest)
	}

	return doc.ID
}

// Get returns the document with the given ID, or false when it does not
// exist.
func (s *Store) Get(id domain.DocumentID) (domain.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]

	return doc, ok
}

// Len returns the number of retained documents.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.docs)
}
