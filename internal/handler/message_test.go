package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsandoval/travel-companion/backend/internal/domain"
)

// ---- GET /groups/{groupID}/messages ----------------------------------------

func TestListMessages_OK(t *testing.T) {
	ts := newTestServer()
	ts.messages.listByGroup = func(_ context.Context, groupID int64) ([]domain.Message, error) {
		require.Equal(t, int64(3), groupID)
		return []domain.Message{
			{ID: 1, GroupID: 3, SenderName: "Ana", Body: "first"},
			{ID: 2, GroupID: 3, SenderName: "Ben", Body: "second"},
		}, nil
	}

	rec := ts.do(t, http.MethodGet, "/groups/3/messages", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0]["message"], "body serializes under the \"message\" key")
	assert.Equal(t, "Ana", got[0]["senderName"])
}

func TestListMessages_InvalidGroupID(t *testing.T) {
	ts := newTestServer()

	rec := ts.do(t, http.MethodGet, "/groups/abc/messages", "")

	requireErrorEnvelope(t, rec, http.StatusBadRequest, domain.CodeInvalidGroupID,
		"Valid group ID is required")
}

func TestListMessages_GroupNotFound(t *testing.T) {
	ts := newTestServer()
	ts.messages.listByGroup = func(_ context.Context, _ int64) ([]domain.Message, error) {
		return nil, domain.ErrNotFound
	}

	rec := ts.do(t, http.MethodGet, "/groups/999/messages", "")

	requireErrorEnvelope(t, rec, http.StatusNotFound, domain.CodeGroupNotFound, "Group not found")
}

// ---- POST /groups/{groupID}/messages ---------------------------------------

func TestPostMessage_OK(t *testing.T) {
	ts := newTestServer()
	ts.messages.post = func(_ context.Context, groupID int64, senderName, body string) (domain.Message, error) {
		assert.Equal(t, int64(3), groupID)
		assert.Equal(t, "Ana", senderName)
		assert.Equal(t, "hello", body)
		return domain.Message{ID: 1, GroupID: groupID, SenderName: senderName, Body: body}, nil
	}

	rec := ts.do(t, http.MethodPost, "/groups/3/messages",
		`{"message": "hello", "senderName": "Ana"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "hello", got["message"])
}

func TestPostMessage_EmptyMessage(t *testing.T) {
	for _, body := range []string{`{}`, `{"message": ""}`, `{"message": "   "}`} {
		ts := newTestServer()
		rec := ts.do(t, http.MethodPost, "/groups/3/messages", body)
		requireErrorEnvelope(t, rec, http.StatusBadRequest, domain.CodeInvalidMessage,
			"Message is required and cannot be empty")
	}
}

// The path id is validated before the body is read for the message routes.
func TestPostMessage_InvalidGroupID(t *testing.T) {
	ts := newTestServer()

	rec := ts.do(t, http.MethodPost, "/groups/abc/messages", `{"message": ""}`)

	requireErrorEnvelope(t, rec, http.StatusBadRequest, domain.CodeInvalidGroupID,
		"Valid group ID is required")
}

func TestPostMessage_GroupNotFound(t *testing.T) {
	ts := newTestServer()
	ts.messages.post = func(_ context.Context, _ int64, _, _ string) (domain.Message, error) {
		return domain.Message{}, domain.ErrNotFound
	}

	rec := ts.do(t, http.MethodPost, "/groups/999/messages", `{"message": "hello"}`)

	requireErrorEnvelope(t, rec, http.StatusNotFound, domain.CodeGroupNotFound, "Group not found")
}

// ---- DELETE /groups/{groupID}/messages/{messageID} -------------------------

func TestDeleteMessage_OK(t *testing.T) {
	ts := newTestServer()
	ts.messages.delete = func(_ context.Context, groupID, messageID int64) (domain.Message, error) {
		assert.Equal(t, int64(3), groupID)
		assert.Equal(t, int64(7), messageID)
		return domain.Message{ID: 7, GroupID: 3, SenderName: "Ana", Body: "bye"}, nil
	}

	rec := ts.do(t, http.MethodDelete, "/groups/3/messages/7", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Message deleted successfully", got["message"])
	deleted, ok := got["deletedMessage"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 7, deleted["id"])
}

func TestDeleteMessage_InvalidIDs(t *testing.T) {
	t.Run("group id", func(t *testing.T) {
		ts := newTestServer()
		rec := ts.do(t, http.MethodDelete, "/groups/abc/messages/7", "")
		requireErrorEnvelope(t, rec, http.StatusBadRequest, domain.CodeInvalidGroupID,
			"Valid group ID is required")
	})
	t.Run("message id", func(t *testing.T) {
		ts := newTestServer()
		rec := ts.do(t, http.MethodDelete, "/groups/3/messages/abc", "")
		requireErrorEnvelope(t, rec, http.StatusBadRequest, domain.CodeInvalidMessageID,
			"Valid message ID is required")
	})
}

func TestDeleteMessage_NotFound(t *testing.T) {
	ts := newTestServer()
	ts.messages.delete = func(_ context.Context, _, _ int64) (domain.Message, error) {
		return domain.Message{}, domain.ErrNotFound
	}

	rec := ts.do(t, http.MethodDelete, "/groups/3/messages/999", "")

	requireErrorEnvelope(t, rec, http.StatusNotFound, domain.CodeMessageNotFound, "Message not found")
}

func TestDeleteMessage_WrongGroup(t *testing.T) {
	ts := newTestServer()
	ts.messages.delete = func(_ context.Context, _, _ int64) (domain.Message, error) {
		return domain.Message{}, domain.Invalid(domain.CodeMessageNotInGroup,
			"Message does not belong to this group")
	}

	rec := ts.do(t, http.MethodDelete, "/groups/3/messages/7", "")

	requireErrorEnvelope(t, rec, http.StatusBadRequest, domain.CodeMessageNotInGroup,
		"Message does not belong to this group")
}

func TestDeleteMessage_DeleteFailed(t *testing.T) {
	ts := newTestServer()
	ts.messages.delete = func(_ context.Context, _, _ int64) (domain.Message, error) {
		return domain.Message{}, domain.Internal(domain.CodeDeleteFailed, "Failed to delete message")
	}

	rec := ts.do(t, http.MethodDelete, "/groups/3/messages/7", "")

	requireErrorEnvelope(t, rec, http.StatusInternalServerError, domain.CodeDeleteFailed,
		"Failed to delete message")
}
