package service

import (
	"context"
	"errors"

	"lexflow-backend/models"
	"lexflow-backend/repository"

	"github.com/google/uuid"
)

var ErrEmptyMessage = errors.New("message body is empty")

// MessageService handles business logic for messages
type MessageService struct {
	messageRepo *repository.MessageRepository
}

// MessageServiceOption is a functional option for MessageService
type MessageServiceOption func(*MessageService)

// MessageWithRepository sets the message repository
func MessageWithRepository(repo *repository.MessageRepository) MessageServiceOption {
	return func(s *MessageService) {
		s.messageRepo = repo
	}
}

// NewMessageService creates a new message service
func NewMessageService(opts ...MessageServiceOption) *MessageService {
	s := &MessageService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SendMessage stores a new message
func (s *MessageService) SendMessage(ctx context.Context, msg *models.Message) (*models.Message, error) {
	if s.messageRepo == nil {
		return nil, errors.New("message repository not set")
	}
	if msg.Body == "" {
		return nil, ErrEmptyMessage
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// GetConversation retrieves the conversation between the user and the
// other party, marking the other party's messages as read
func (s *MessageService) GetConversation(ctx context.Context, userID, otherID uuid.UUID) ([]*models.Message, error) {
	if s.messageRepo == nil {
		return nil, errors.New("message repository not set")
	}

	msgs, err := s.messageRepo.ListConversation(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}

	if err := s.messageRepo.MarkRead(ctx, userID, otherID); err != nil {
		return nil, err
	}

	return msgs, nil
}

// UnreadCount counts unread messages for a user
func (s *MessageService) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	if s.messageRepo == nil {
		return 0, errors.New("message repository not set")
	}
	return s.messageRepo.CountUnread(ctx, userID)
}
