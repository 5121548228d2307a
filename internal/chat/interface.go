package chat

import (
	"context"
	"lawscraper/pkg/domain"
)

// Answer is the outcome of one chat turn over a stored document.
type Answer struct {
	// Response is the model's reply.
	Response string
	// DocumentReferences lists the URLs the referenced document was built
	// from.
	DocumentReferences []string
}

// Chat answers questions about previously scraped documents.
//
//go:generate mockgen -package mockchat -source=interface.go -destination=mock/mockchat.go *
type Chat interface {
	// Ask answers the message using the document identified by docID.
	Ask(ctx context.Context, docID domain.DocumentID, message string) (*Answer, error)
}
