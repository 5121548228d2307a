package handler

import (
	"encoding/json"
	"lawscraper/pkg/domain"
	"lawscraper/pkg/serrors"
	"net/http"
)

// chatRequest is the payload of POST /chat.
type chatRequest struct {
	Message    string `json:"message"`
	DocumentID string `json:"document_id"`
}

// chatResponse is the reply of POST /chat.
type chatResponse struct {
	Response           string   `json:"response"`
	DocumentReferences []string `json:"document_references"`
}

// Chat answers a question about a previously scraped document.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}
	if req.Message == "" {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "message must not be empty"))

		return
	}

	docID, err := domain.ParseDocumentID(req.DocumentID)
	if err != nil {
		writeError(w, r, serrors.With(serrors.ErrNotFound, "document not found"))

		return
	}

	answer, err := h.deps.Chat.Ask(r.Context(), docID, req.Message)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Response:           answer.Response,
		DocumentReferences: answer.DocumentReferences,
	})
}
