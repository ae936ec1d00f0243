package postgres

import (
	"context"
	"sort"

	"laborlink/internal/domain/message"
	"laborlink/internal/storage"

	"github.com/jackc/pgx/v5"
)

const messageColumns = `id, from_user_id, to_user_id, content, read, created_at`

func scanMessage(row pgx.Row) (message.Message, error) {
	var m message.Message
	err := row.Scan(&m.ID, &m.FromUserID, &m.ToUserID, &m.Content, &m.Read, &m.CreatedAt)
	if err != nil {
		return message.Message{}, mapNoRows(err)
	}
	return m, nil
}

func (s *Store) CreateMessage(ctx context.Context, in message.Insert) (message.Message, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO messages (from_user_id, to_user_id, content)
		VALUES ($1, $2, $3)
		RETURNING `+messageColumns,
		in.FromUserID, in.ToUserID, in.Content,
	)
	return scanMessage(row)
}

func (s *Store) GetMessage(ctx context.Context, id int64) (message.Message, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = $1`, id)
	return scanMessage(row)
}

func (s *Store) MarkMessageRead(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `UPDATE messages SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// UserConversations folds the user's message history into one entry per
// counterpart, carrying the most recent message, newest conversation first.
func (s *Store) UserConversations(ctx context.Context, userID int64) ([]storage.Conversation, error) {
	msgs, err := s.collectMessages(ctx, `
		SELECT `+messageColumns+` FROM messages
		WHERE from_user_id = $1 OR to_user_id = $1
		ORDER BY created_at ASC, id ASC`, userID)
	if err != nil {
		return nil, err
	}

	latest := map[int64]message.Message{}
	for _, m := range msgs {
		other := m.FromUserID
		if other == userID {
			other = m.ToUserID
		}
		latest[other] = m
	}

	out := make([]storage.Conversation, 0, len(latest))
	for otherID, m := range latest {
		u, err := s.GetUser(ctx, otherID)
		if err != nil {
			return nil, err
		}
		out = append(out, storage.Conversation{OtherUser: u, LastMessage: m})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].LastMessage, out[j].LastMessage
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return out, nil
}

func (s *Store) Conversation(ctx context.Context, userA, userB int64) ([]message.Message, error) {
	return s.collectMessages(ctx, `
		SELECT `+messageColumns+` FROM messages
		WHERE (from_user_id = $1 AND to_user_id = $2)
		   OR (from_user_id = $2 AND to_user_id = $1)
		ORDER BY created_at ASC, id ASC`, userA, userB)
}

func (s *Store) collectMessages(ctx context.Context, query string, args ...any) ([]message.Message, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []message.Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
