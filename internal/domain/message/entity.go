package message

import "time"

// Message is a direct message between two users. Read flips false to true
// once, when the addressee fetches the conversation containing it.
type Message struct {
	ID         int64
	FromUserID int64
	ToUserID   int64
	Content    string
	Read       bool
	CreatedAt  time.Time
}

type Insert struct {
	FromUserID int64
	ToUserID   int64
	Content    string
}
