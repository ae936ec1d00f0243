package dto

import (
	"time"

	"laborlink/internal/domain/message"
	"laborlink/internal/storage"
)

type MessageResponse struct {
	ID         int64     `json:"id"`
	FromUserID int64     `json:"from_user_id"`
	ToUserID   int64     `json:"to_user_id"`
	Content    string    `json:"content"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

// ConversationResponse is one entry of the inbox: the counterpart and the
// latest message exchanged with them.
type ConversationResponse struct {
	OtherUser   UserResponse    `json:"other_user"`
	LastMessage MessageResponse `json:"last_message"`
}

func FromMessage(m message.Message) MessageResponse {
	return MessageResponse{
		ID:         m.ID,
		FromUserID: m.FromUserID,
		ToUserID:   m.ToUserID,
		Content:    m.Content,
		Read:       m.Read,
		CreatedAt:  m.CreatedAt.UTC(),
	}
}

func FromMessages(msgs []message.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, FromMessage(m))
	}
	return out
}

func FromConversations(convs []storage.Conversation) []ConversationResponse {
	out := make([]ConversationResponse, 0, len(convs))
	for _, cv := range convs {
		out = append(out, ConversationResponse{
			OtherUser:   FromUser(cv.OtherUser),
			LastMessage: FromMessage(cv.LastMessage),
		})
	}
	return out
}
