package runtime

import (
	"sync"
	"time"

	"readroom/contract"
	"readroom/domain"
)

// Session is the live state of one shared-reading group. A single mutex guards
// every mutable field so that concurrent JOIN/PAGE_MOVE/LEAVE on the same
// session are totally ordered; sessions never share a lock.
//
// Participant metadata outlives connections: disconnecting removes the sink
// only, so a rejoin with the same user id resumes the previous progress.
type Session struct {
	ID domain.SessionID

	mu           sync.Mutex
	participants map[string]domain.Participant
	syncConns    map[string]contract.EventSink
	chatConns    map[string]contract.EventSink
	leaderID     string
	currentPage  int
	progress     map[string]int
	online       map[string]bool
	mode         domain.ReadingMode
	lastActivity time.Time

	// fanmu serializes fan-outs so every connection observes broadcasts
	// for this session in the same order they were issued.
	fanmu sync.Mutex
}

func newSession(id domain.SessionID, now time.Time) *Session {
	return &Session{
		ID:           id,
		participants: make(map[string]domain.Participant),
		syncConns:    make(map[string]contract.EventSink),
		chatConns:    make(map[string]contract.EventSink),
		currentPage:  domain.FirstPage,
		progress:     make(map[string]int),
		online:       make(map[string]bool),
		mode:         domain.ModeFollow,
		lastActivity: now,
	}
}

// Channel distinguishes the two streaming surfaces a participant can bind.
// Each participant holds at most one live connection per channel.
type Channel int

const (
	SyncChannel Channel = iota
	ChatChannel
)

type sinkEntry struct {
	UserID string
	Sink   contract.EventSink
}

// Join registers the participant's metadata and its sync connection. A prior
// connection for the same user is returned so the caller can close it (one
// logical connection per participant). A host joining a leaderless session
// takes the lead.
func (s *Session) Join(p domain.Participant, sink contract.EventSink) (replaced contract.EventSink, becameLeader bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.participants[p.ID]; ok {
		// Rejoin: keep the original join time, refresh display fields.
		p.JoinedAt = prev.JoinedAt
	} else if p.JoinedAt.IsZero() {
		p.JoinedAt = time.Now().UTC()
	}
	s.participants[p.ID] = p

	replaced = s.syncConns[p.ID]
	s.syncConns[p.ID] = sink
	s.online[p.ID] = true

	if s.leaderID == "" && p.Host {
		s.leaderID = p.ID
		becameLeader = true
	}
	s.lastActivity = time.Now().UTC()
	return replaced, becameLeader
}

// BindChat registers the participant's chat connection, creating a minimal
// metadata entry when the user never joined the sync channel.
func (s *Session) BindChat(userID, displayName string, sink contract.EventSink) (replaced contract.EventSink) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.participants[userID]; !ok {
		s.participants[userID] = domain.Participant{
			ID:          userID,
			DisplayName: displayName,
			JoinedAt:    time.Now().UTC(),
		}
	}
	replaced = s.chatConns[userID]
	s.chatConns[userID] = sink
	s.lastActivity = time.Now().UTC()
	return replaced
}

// Leave drops the user's sync connection. Metadata and progress survive.
// A leaving leader vacates leadership; nobody is promoted automatically.
//
// A non-nil sink restricts the leave to that connection: the cleanup of a
// replaced stream then cannot unregister the replacement that took its
// place. left reports whether the participant actually went offline.
func (s *Session) Leave(userID string, sink contract.EventSink) (removed contract.EventSink, wasLeader, left bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, connected := s.syncConns[userID]
	if connected && sink != nil && current != sink {
		return nil, false, false
	}

	removed = current
	delete(s.syncConns, userID)
	s.online[userID] = false

	if s.leaderID == userID {
		s.leaderID = ""
		wasLeader = true
	}
	s.lastActivity = time.Now().UTC()
	return removed, wasLeader, true
}

// UnbindChat drops the user's chat connection only if sink is still the
// registered one, so a replacement bound meanwhile is left untouched.
func (s *Session) UnbindChat(userID string, sink contract.EventSink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chatConns[userID] == sink {
		delete(s.chatConns, userID)
	}
	s.lastActivity = time.Now().UTC()
}

// DropConn removes a connection after a failed delivery. The sink identity
// check makes the race with a concurrent rejoin harmless: a replacement
// registered in between stays.
func (s *Session) DropConn(ch Channel, userID string, sink contract.EventSink) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	conns := s.syncConns
	if ch == ChatChannel {
		conns = s.chatConns
	}
	if conns[userID] != sink {
		return false
	}
	delete(conns, userID)
	if ch == SyncChannel {
		s.online[userID] = false
	}
	return true
}

// MovePage applies a page-move event. Only the leader's own moves touch
// currentPage; anyone else updates their private progress entry, clamped to
// the permitted page in GATE mode.
func (s *Session) MovePage(userID string, page int) domain.MoveResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActivity = time.Now().UTC()

	if userID == s.leaderID && s.leaderID != "" {
		s.currentPage = page
		s.progress[userID] = page
		return domain.MoveResult{Page: page, ByLeader: true}
	}

	res := domain.MoveResult{Page: page}
	if s.mode == domain.ModeGate && page > s.currentPage {
		res.Page = s.currentPage
		res.Clamped = true
	}
	s.progress[userID] = res.Page
	return res
}

func (s *Session) UpdateProgress(userID string, page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress[userID] = page
	s.lastActivity = time.Now().UTC()
}

// ChangeLeader is the single leadership transition point. The empty string
// vacates leadership.
func (s *Session) ChangeLeader(newLeaderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaderID = newLeaderID
	s.lastActivity = time.Now().UTC()
}

func (s *Session) SetMode(mode domain.ReadingMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	s.lastActivity = time.Now().UTC()
}

func (s *Session) Leader() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.leaderID
}

func (s *Session) CurrentPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPage
}

func (s *Session) Mode() domain.ReadingMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Session) Participant(userID string) (domain.Participant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.participants[userID]
	return p, ok
}

func (s *Session) Progress(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress[userID]
}

func (s *Session) ConnCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.syncConns) + len(s.chatConns)
}

// sinksFor snapshots the live connections of one channel so delivery happens
// outside the state lock.
func (s *Session) sinksFor(ch Channel) []sinkEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	conns := s.syncConns
	if ch == ChatChannel {
		conns = s.chatConns
	}
	entries := make([]sinkEntry, 0, len(conns))
	for userID, sink := range conns {
		entries = append(entries, sinkEntry{UserID: userID, Sink: sink})
	}
	return entries
}

// Idle reports whether the session has no live connection and has been
// inactive for at least ttl.
func (s *Session) Idle(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.syncConns) > 0 || len(s.chatConns) > 0 {
		return false
	}
	return now.Sub(s.lastActivity) >= ttl
}

// ParticipantStatus is a read-only view of one participant for telemetry
// and the viewer CLI.
type ParticipantStatus struct {
	Participant domain.Participant
	Online      bool
	Page        int
	Leader      bool
}

// SessionSnapshot is a consistent copy of the session's observable state.
type SessionSnapshot struct {
	ID           domain.SessionID
	LeaderID     string
	CurrentPage  int
	Mode         domain.ReadingMode
	Participants []ParticipantStatus
	Connections  int
}

func (s *Session) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := SessionSnapshot{
		ID:          s.ID,
		LeaderID:    s.leaderID,
		CurrentPage: s.currentPage,
		Mode:        s.mode,
		Connections: len(s.syncConns) + len(s.chatConns),
	}
	for id, p := range s.participants {
		snap.Participants = append(snap.Participants, ParticipantStatus{
			Participant: p,
			Online:      s.online[id],
			Page:        s.progress[id],
			Leader:      id == s.leaderID,
		})
	}
	return snap
}
