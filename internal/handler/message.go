package handler

import (
	"net/http"
	"strings"

	"github.com/jsandoval/travel-companion/backend/internal/domain"
)

// postMessageRequest holds the POST /groups/{groupID}/messages body.
type postMessageRequest struct {
	Message    string `json:"message"`
	SenderName string `json:"senderName"`
}

// listMessages handles GET /groups/{groupID}/messages.
func (s *Server) listMessages(w http.ResponseWriter, r *http.Request) {
	groupID, ok := pathID(r, "groupID")
	if !ok {
		writeError(w, http.StatusBadRequest, domain.CodeInvalidGroupID, "Valid group ID is required")
		return
	}

	messages, err := s.messages.ListByGroup(r.Context(), groupID)
	if err != nil {
		writeServiceError(w, err, domain.CodeGroupNotFound, "Group not found")
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

// postMessage handles POST /groups/{groupID}/messages.
func (s *Server) postMessage(w http.ResponseWriter, r *http.Request) {
	groupID, ok := pathID(r, "groupID")
	if !ok {
		writeError(w, http.StatusBadRequest, domain.CodeInvalidGroupID, "Valid group ID is required")
		return
	}

	var req postMessageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, domain.CodeInvalidMessage,
			"Message is required and cannot be empty")
		return
	}

	message, err := s.messages.Post(r.Context(), groupID, req.SenderName, req.Message)
	if err != nil {
		writeServiceError(w, err, domain.CodeGroupNotFound, "Group not found")
		return
	}
	writeJSON(w, http.StatusCreated, message)
}

// deleteMessage handles DELETE /groups/{groupID}/messages/{messageID}.
func (s *Server) deleteMessage(w http.ResponseWriter, r *http.Request) {
	groupID, ok := pathID(r, "groupID")
	if !ok {
		writeError(w, http.StatusBadRequest, domain.CodeInvalidGroupID, "Valid group ID is required")
		return
	}

	messageID, ok := pathID(r, "messageID")
	if !ok {
		writeError(w, http.StatusBadRequest, domain.CodeInvalidMessageID, "Valid message ID is required")
		return
	}

	deleted, err := s.messages.Delete(r.Context(), groupID, messageID)
	if err != nil {
		writeServiceError(w, err, domain.CodeMessageNotFound, "Message not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":        "Message deleted successfully",
		"deletedMessage": deleted,
	})
}
