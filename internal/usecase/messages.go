package usecase

import (
	"context"
	"errors"
	"strings"

	"laborlink/internal/domain/message"
	"laborlink/internal/storage"
)

type SendMessageInput struct {
	ToUserID int64
	Content  string
}

type MessageService struct {
	store storage.Storage
}

func NewMessageService(store storage.Storage) *MessageService {
	return &MessageService{store: store}
}

// Send delivers a message from the actor to any existing user, the actor
// included; the only requirements are a recipient on file and some content.
func (s *MessageService) Send(ctx context.Context, actor Actor, in SendMessageInput) (message.Message, error) {
	if !actor.Authenticated() {
		return message.Message{}, ErrNotAuthenticated
	}
	if strings.TrimSpace(in.Content) == "" {
		return message.Message{}, ErrValidation
	}

	if _, err := s.store.GetUser(ctx, in.ToUserID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return message.Message{}, ErrNotFound
		}
		return message.Message{}, ErrInternal
	}

	m, err := s.store.CreateMessage(ctx, message.Insert{
		FromUserID: actor.UserID,
		ToUserID:   in.ToUserID,
		Content:    in.Content,
	})
	if err != nil {
		return message.Message{}, ErrInternal
	}
	return m, nil
}

// Conversations lists the actor's message threads, most recent first.
func (s *MessageService) Conversations(ctx context.Context, actor Actor) ([]storage.Conversation, error) {
	if !actor.Authenticated() {
		return nil, ErrNotAuthenticated
	}

	convs, err := s.store.UserConversations(ctx, actor.UserID)
	if err != nil {
		return nil, ErrInternal
	}
	for i := range convs {
		convs[i].OtherUser = sanitizeUser(convs[i].OtherUser)
	}
	return convs, nil
}

// Conversation returns the full thread between the actor and another user,
// chronological, and marks the actor's unread incoming messages as read.
// The other party's messages are never marked by this call.
func (s *MessageService) Conversation(ctx context.Context, actor Actor, otherUserID int64) ([]message.Message, error) {
	if !actor.Authenticated() {
		return nil, ErrNotAuthenticated
	}

	if _, err := s.store.GetUser(ctx, otherUserID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, ErrInternal
	}

	msgs, err := s.store.Conversation(ctx, actor.UserID, otherUserID)
	if err != nil {
		return nil, ErrInternal
	}

	for i, m := range msgs {
		if m.ToUserID != actor.UserID || m.Read {
			continue
		}
		if err := s.store.MarkMessageRead(ctx, m.ID); err != nil {
			return nil, ErrInternal
		}
		msgs[i].Read = true
	}
	return msgs, nil
}
