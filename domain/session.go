// Package domain contains core concepts of the shared-reading system.
// No runtime, network, or UI logic should be added here.
package domain

import "time"

type SessionID string

// ReadingMode controls how a participant's page relates to the leader's page.
type ReadingMode string

const (
	// ModeFree lets every participant track their own page.
	ModeFree ReadingMode = "FREE"
	// ModeFollow mirrors the leader's page to every follower.
	ModeFollow ReadingMode = "FOLLOW"
	// ModeGate forbids advancing past the permitted page.
	ModeGate ReadingMode = "GATE"
)

// FirstPage is where a freshly created session starts.
const FirstPage = 1

// MoveResult reports how a page-move was applied.
type MoveResult struct {
	Page     int
	ByLeader bool
	// Clamped is set when GATE mode pulled the requested page back.
	Clamped bool
}

type Participant struct {
	ID          string
	DisplayName string
	Host        bool
	AvatarURL   string
	JoinedAt    time.Time
}

// ProgressPercent converts a page position into a completion ratio.
// A zero or negative total means the page count is unknown.
func ProgressPercent(page, total int) float64 {
	if total <= 0 {
		return 0
	}
	if page > total {
		page = total
	}
	if page < 0 {
		page = 0
	}
	return float64(page) / float64(total) * 100
}
