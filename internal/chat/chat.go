// Package chat answers questions about scraped documents through a language
// model. The document content is retrieved from the in-memory store and
// embedded into a constrained prompt.
package chat

import (
	"context"
	"fmt"
	"lawscraper/internal/docstore"
	"lawscraper/pkg/domain"
	"lawscraper/pkg/llm"
	"lawscraper/pkg/serrors"
	"strings"
)

// maxPromptContent caps how many characters of document content are embedded
// into the prompt.
const maxPromptContent = 6000

// chat is the concrete implementation of the Chat interface.
type chat struct {
	store *docstore.Store
	model llm.Client
}

// prompt builds the legal-assistant prompt over the document content.
func prompt(doc domain.Document, message string) string {
	combined := strings.Join(doc.Content, "\n\n")
	// truncate in characters, not bytes, so a multibyte rune is never split
	if runes := []rune(combined); len(runes) > maxPromptContent {
		combined = string(runes[:maxPromptContent])
	}

	return fmt.Sprintf(`You are a helpful legal AI assistant specializing in Kenya Law. You are analyzing legal documents from the Kenya Law website.

**DOCUMENT CONTENT:**
%s

**INSTRUCTIONS:**
- Answer based ONLY on the provided document content
- If information isn't available in the document, clearly state: "This information is not available in the provided document"
- For legal terms, provide brief explanations when helpful
- Be precise and cite specific sections or paragraphs when possible
- Use clear, professional language
- If asked for legal advice, remind that this is for informational purposes only

**USER QUESTION:** %s

**RESPONSE:**`, combined, message)
}

// Ask answers the message using the document identified by docID. A missing
// document yields a not-found error; a nil model means chat was not
// configured.
func (c chat) Ask(ctx context.Context, docID domain.DocumentID, message string) (*Answer, error) {
	if c.model == nil {
		return nil, serrors.With(serrors.ErrUnavailable, "chat is not configured")
	}

	doc, ok := c.store.Get(docID)
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "document not found")
	}

	response, err := c.model.Complete(ctx, prompt(doc, message))
	if err != nil {
		return nil, fmt.Errorf("could not generate response: %w", err)
	}

	return &Answer{
		Response:           response,
		DocumentReferences: doc.URLs,
	}, nil
}

// New creates a Chat backed by the provided document store and model client.
// The model may be nil when no API key is configured; Ask then fails with an
// unavailable error.
func New(store *docstore.Store, model llm.Client) Chat {
	return &chat{
		store: store,
		model: model,
	}
}
