package memory

import (
	"context"
	"sort"

	"laborlink/internal/domain/message"
	"laborlink/internal/storage"
)

func (s *Store) CreateMessage(_ context.Context, in message.Insert) (message.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messageID++
	m := message.Message{
		ID:         s.messageID,
		FromUserID: in.FromUserID,
		ToUserID:   in.ToUserID,
		Content:    in.Content,
		CreatedAt:  s.now(),
	}
	s.messages[m.ID] = m
	return m, nil
}

func (s *Store) GetMessage(_ context.Context, id int64) (message.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.messages[id]
	if !ok {
		return message.Message{}, storage.ErrNotFound
	}
	return m, nil
}

func (s *Store) MarkMessageRead(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.messages[id]
	if !ok {
		return storage.ErrNotFound
	}
	m.Read = true
	s.messages[id] = m
	return nil
}

func (s *Store) UserConversations(_ context.Context, userID int64) ([]storage.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Latest message per counterpart; a later id wins an exact timestamp tie.
	latest := make(map[int64]message.Message)
	for _, m := range s.messages {
		var other int64
		switch {
		case m.FromUserID == userID:
			other = m.ToUserID
		case m.ToUserID == userID:
			other = m.FromUserID
		default:
			continue
		}

		cur, ok := latest[other]
		if !ok || oldestFirst(cur.CreatedAt, m.CreatedAt, cur.ID, m.ID) {
			latest[other] = m
		}
	}

	out := make([]storage.Conversation, 0, len(latest))
	for other, m := range latest {
		u, ok := s.users[other]
		if !ok {
			continue
		}
		out = append(out, storage.Conversation{OtherUser: cloneUser(u), LastMessage: m})
	}
	sort.Slice(out, func(i, k int) bool {
		a, b := out[i].LastMessage, out[k].LastMessage
		return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
	})
	return out, nil
}

func (s *Store) Conversation(_ context.Context, userA, userB int64) ([]message.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]message.Message, 0)
	for _, m := range s.messages {
		if (m.FromUserID == userA && m.ToUserID == userB) ||
			(m.FromUserID == userB && m.ToUserID == userA) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, k int) bool {
		return oldestFirst(out[i].CreatedAt, out[k].CreatedAt, out[i].ID, out[k].ID)
	})
	return out, nil
}
