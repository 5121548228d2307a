package handler_test

import (
	"encoding/json"
	"lawscraper/internal/chat"
	"lawscraper/pkg/domain"
	"lawscraper/pkg/serrors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChat_Success(t *testing.T) {
	_, ch, mux := newTestMux(t)

	docID := domain.DocumentID(uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	ch.EXPECT().Ask(gomock.Any(), docID, "What does the Act say about leases?").Return(&chat.Answer{
		Response:           "The Act regulates lease agreements as follows.",
		DocumentReferences: []string{"Land Act"},
	}, nil)

	rec := doJSON(t, mux, http.MethodPost, "/chat",
		`{"message":"What does the Act say about leases?","document_id":"6ba7b810-9dad-11d1-80b4-00c04fd430c8"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Response           string   `json:"response"`
		DocumentReferences []string `json:"document_references"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "The Act regulates lease agreements as follows.", resp.Response)
	require.Equal(t, []string{"Land Act"}, resp.DocumentReferences)
}

func TestChat_EmptyMessageIs400(t *testing.T) {
	_, _, mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/chat",
		`{"message":"","document_id":"6ba7b810-9dad-11d1-80b4-00c04fd430c8"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChat_InvalidDocumentIDIs404(t *testing.T) {
	_, _, mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/chat",
		`{"message":"hello","document_id":"not-a-uuid"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "document not found")
}

func TestChat_UnknownDocumentIs404(t *testing.T) {
	_, ch, mux := newTestMux(t)

	ch.EXPECT().Ask(gomock.Any(), gomock.Any(), "hello").
		Return(nil, serrors.With(serrors.ErrNotFound, "document not found"))

	rec := doJSON(t, mux, http.MethodPost, "/chat",
		`{"message":"hello","document_id":"6ba7b810-9dad-11d1-80b4-00c04fd430c8"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChat_ModelUnavailableIs500(t *testing.T) {
	_, ch, mux := newTestMux(t)

	ch.EXPECT().Ask(gomock.Any(), gomock.Any(), "hello").
		Return(nil, serrors.With(serrors.ErrUnavailable, "chat is not configured"))

	rec := doJSON(t, mux, http.MethodPost, "/chat",
		`{"message":"hello","document_id":"6ba7b810-9dad-11d1-80b4-00c04fd430c8"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
