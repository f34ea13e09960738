package event

import (
	"time"

	"readroom/domain"

	"github.com/google/uuid"
)

type DomainEvent interface {
	Session() domain.SessionID
}

type ParticipantJoined struct {
	SessionID   domain.SessionID
	UserID      string
	DisplayName string
	Host        bool
}

func (e ParticipantJoined) Session() domain.SessionID { return e.SessionID }

type ParticipantLeft struct {
	SessionID domain.SessionID
	UserID    string
}

func (e ParticipantLeft) Session() domain.SessionID { return e.SessionID }

// PageTurned is emitted only for the leader's own page moves.
type PageTurned struct {
	SessionID domain.SessionID
	LeaderID  string
	Page      int
}

func (e PageTurned) Session() domain.SessionID { return e.SessionID }

type ProgressUpdated struct {
	SessionID domain.SessionID
	UserID    string
	Page      int
	Percent   float64
}

func (e ProgressUpdated) Session() domain.SessionID { return e.SessionID }

type LeaderChanged struct {
	SessionID domain.SessionID
	LeaderID  string
}

func (e LeaderChanged) Session() domain.SessionID { return e.SessionID }

type ModeChanged struct {
	SessionID domain.SessionID
	Mode      domain.ReadingMode
}

func (e ModeChanged) Session() domain.SessionID { return e.SessionID }

// PageAck is addressed to a single caller: it confirms how their own
// page-move was applied without broadcasting their position.
type PageAck struct {
	SessionID domain.SessionID
	UserID    string
	Page      int
	Clamped   bool
}

func (e PageAck) Session() domain.SessionID { return e.SessionID }

type ChatMessage struct {
	ID          uuid.UUID
	SessionID   domain.SessionID
	SenderID    string
	SenderName  string
	Content     string
	Language    string
	At          time.Time
	Unconfirmed bool
}

func (e ChatMessage) Session() domain.SessionID { return e.SessionID }
