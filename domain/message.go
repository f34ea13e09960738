package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a chat message after moderation, ready to be stored and fanned out.
// Unconfirmed is set when the durable store rejected the write; the message is
// still delivered so clients can render it as pending.
type Message struct {
	ID          uuid.UUID
	SessionID   SessionID
	SenderID    string
	SenderName  string
	Content     string
	Language    string
	CreatedAt   time.Time
	Unconfirmed bool
}
