package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jsandoval/travel-companion/backend/internal/domain"
	"github.com/jsandoval/travel-companion/backend/internal/repo"
)

// MessageService implements business logic for group messages.
type MessageService struct {
	groups   repo.GroupRepo
	messages repo.MessageRepo
}

// NewMessageService constructs a MessageService backed by the provided repos.
func NewMessageService(groups repo.GroupRepo, messages repo.MessageRepo) *MessageService {
	return &MessageService{groups: groups, messages: messages}
}

// ListByGroup returns a group's messages in chronological order.
// Returns domain.ErrNotFound when the group does not exist.
func (s *MessageService) ListByGroup(ctx context.Context, groupID int64) ([]domain.Message, error) {
	if _, err := s.groups.GetByID(ctx, groupID); err != nil {
		return nil, fmt.Errorf("service.MessageService.ListByGroup: %w", err)
	}

	messages, err := s.messages.ListByGroupID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("service.MessageService.ListByGroup: %w", err)
	}
	return messages, nil
}

// Post verifies the group exists, then inserts a message with the trimmed
// body. An absent or empty senderName falls back to "Anonymous".
// Returns domain.ErrNotFound — and persists nothing — when the group is absent.
func (s *MessageService) Post(ctx context.Context, groupID int64, senderName, body string) (domain.Message, error) {
	if _, err := s.groups.GetByID(ctx, groupID); err != nil {
		return domain.Message{}, fmt.Errorf("service.MessageService.Post: %w", err)
	}

	if senderName == "" {
		senderName = "Anonymous"
	}

	message := domain.Message{
		GroupID:    groupID,
		SenderName: senderName,
		Body:       strings.TrimSpace(body),
	}

	result, err := s.messages.Create(ctx, message)
	if err != nil {
		return domain.Message{}, fmt.Errorf("service.MessageService.Post: %w", err)
	}
	return result, nil
}

// Delete removes a single message addressed through its group. The check
// order is part of the contract: the message must exist (not-found), then it
// must belong to the addressed group (validation), and only then is it
// deleted. A delete that removes no row after a successful lookup is a
// server fault, not a client error.
func (s *MessageService) Delete(ctx context.Context, groupID, messageID int64) (domain.Message, error) {
	message, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		return domain.Message{}, fmt.Errorf("service.MessageService.Delete: %w", err)
	}

	if message.GroupID != groupID {
		return domain.Message{}, domain.Invalid(domain.CodeMessageNotInGroup,
			"Message does not belong to this group")
	}

	deleted, err := s.messages.Delete(ctx, messageID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Message{}, domain.Internal(domain.CodeDeleteFailed, "Failed to delete message")
		}
		return domain.Message{}, fmt.Errorf("service.MessageService.Delete: %w", err)
	}
	return deleted, nil
}
