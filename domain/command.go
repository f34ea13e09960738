package domain

import "time"

type Command interface {
	Session() SessionID
}

type JoinCommand struct {
	SessionID   SessionID `validate:"required"`
	UserID      string    `validate:"required"`
	DisplayName string    `validate:"max=64"`
	Host        bool
	AvatarURL   string `validate:"omitempty,url"`
}

func (c JoinCommand) Session() SessionID { return c.SessionID }

type PageMoveCommand struct {
	SessionID SessionID `validate:"required"`
	UserID    string    `validate:"required"`
	Page      int       `validate:"min=1"`
}

func (c PageMoveCommand) Session() SessionID { return c.SessionID }

type ProgressCommand struct {
	SessionID SessionID `validate:"required"`
	UserID    string    `validate:"required"`
	Page      int       `validate:"min=1"`
}

func (c ProgressCommand) Session() SessionID { return c.SessionID }

type LeaderChangeCommand struct {
	SessionID   SessionID `validate:"required"`
	UserID      string    `validate:"required"`
	NewLeaderID string
}

func (c LeaderChangeCommand) Session() SessionID { return c.SessionID }

type ModeChangeCommand struct {
	SessionID SessionID   `validate:"required"`
	UserID    string      `validate:"required"`
	Mode      ReadingMode `validate:"oneof=FREE FOLLOW GATE"`
}

func (c ModeChangeCommand) Session() SessionID { return c.SessionID }

type LeaveCommand struct {
	SessionID SessionID `validate:"required"`
	UserID    string    `validate:"required"`
}

func (c LeaveCommand) Session() SessionID { return c.SessionID }

type PostMessageCommand struct {
	SessionID  SessionID `validate:"required"`
	SenderID   string    `validate:"required"`
	SenderName string    `validate:"max=64"`
	Content    string    `validate:"required"`
	CreatedAt  time.Time
}

func (c PostMessageCommand) Session() SessionID { return c.SessionID }

type GetMessageCommand struct {
	SessionID SessionID
	Cursor    *string
}

func (c GetMessageCommand) Session() SessionID { return c.SessionID }
