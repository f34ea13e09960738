package runtime

import (
	"testing"
	"time"

	"readroom/domain"
	"readroom/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSession_HostBecomesLeader(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newSession("42", time.Now().UTC())
	hostSink := mocks.NewMockEventSink(ctrl)
	guestSink := mocks.NewMockEventSink(ctrl)

	// Given a guest joining first: nobody leads
	replaced, becameLeader := s.Join(domain.Participant{ID: "guest"}, guestSink)
	req.Nil(replaced)
	req.False(becameLeader)
	req.Empty(s.Leader())

	// When the host joins the leaderless session
	replaced, becameLeader = s.Join(domain.Participant{ID: "host", Host: true}, hostSink)

	// Then the host takes the lead
	req.Nil(replaced)
	req.True(becameLeader)
	req.Equal("host", s.Leader())
}

func TestSession_RejoinReplacesConnection(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newSession("42", time.Now().UTC())
	oldSink := mocks.NewMockEventSink(ctrl)
	newSink := mocks.NewMockEventSink(ctrl)

	_, _ = s.Join(domain.Participant{ID: "u1", DisplayName: "Alice"}, oldSink)

	// When the same participant joins again with a fresh connection
	replaced, _ := s.Join(domain.Participant{ID: "u1", DisplayName: "Alice"}, newSink)

	// Then the previous connection is handed back for closing
	req.Equal(oldSink, replaced)
	req.Equal(1, s.ConnCount())
}

func TestSession_LeaderMoveSetsCurrentPage(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newSession("42", time.Now().UTC())
	_, _ = s.Join(domain.Participant{ID: "u1", Host: true}, mocks.NewMockEventSink(ctrl))
	_, _ = s.Join(domain.Participant{ID: "u2"}, mocks.NewMockEventSink(ctrl))

	// When the leader turns to page 12
	res := s.MovePage("u1", 12)

	// Then the session page follows
	req.True(res.ByLeader)
	req.Equal(12, res.Page)
	req.Equal(12, s.CurrentPage())

	// When a follower turns a page in FOLLOW mode
	res = s.MovePage("u2", 7)

	// Then only their own progress moves
	req.False(res.ByLeader)
	req.False(res.Clamped)
	req.Equal(7, res.Page)
	req.Equal(12, s.CurrentPage())
	req.Equal(7, s.Progress("u2"))
}

func TestSession_GateModeClampsFollowers(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newSession("42", time.Now().UTC())
	_, _ = s.Join(domain.Participant{ID: "u1", Host: true}, mocks.NewMockEventSink(ctrl))
	_, _ = s.Join(domain.Participant{ID: "u2"}, mocks.NewMockEventSink(ctrl))
	s.SetMode(domain.ModeGate)
	s.MovePage("u1", 10)

	// When a follower tries to read past the gate
	res := s.MovePage("u2", 15)

	// Then the move is clamped to the permitted page
	req.True(res.Clamped)
	req.Equal(10, res.Page)
	req.Equal(10, s.Progress("u2"))

	// And moving backwards stays allowed
	res = s.MovePage("u2", 3)
	req.False(res.Clamped)
	req.Equal(3, res.Page)
}

func TestSession_LeaderLeaveVacatesLeadership(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newSession("42", time.Now().UTC())
	leaderSink := mocks.NewMockEventSink(ctrl)
	_, _ = s.Join(domain.Participant{ID: "u1", Host: true}, leaderSink)
	_, _ = s.Join(domain.Participant{ID: "u2"}, mocks.NewMockEventSink(ctrl))

	removed, wasLeader, left := s.Leave("u1", leaderSink)

	req.Equal(leaderSink, removed)
	req.True(wasLeader)
	req.True(left)
	// Nobody is promoted automatically
	req.Empty(s.Leader())

	// Participant metadata survives the disconnect
	_, ok := s.Participant("u1")
	req.True(ok)
}

func TestSession_LeaveIgnoresReplacedConnection(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newSession("42", time.Now().UTC())
	oldSink := mocks.NewMockEventSink(ctrl)
	newSink := mocks.NewMockEventSink(ctrl)

	_, _ = s.Join(domain.Participant{ID: "u1"}, oldSink)
	_, _ = s.Join(domain.Participant{ID: "u1"}, newSink)

	// When the replaced stream's cleanup fires
	removed, _, left := s.Leave("u1", oldSink)

	// Then the replacement connection stays registered
	req.Nil(removed)
	req.False(left)
	req.Equal(1, s.ConnCount())
}

func TestSession_DropConnIdentityCheck(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newSession("42", time.Now().UTC())
	oldSink := mocks.NewMockEventSink(ctrl)
	newSink := mocks.NewMockEventSink(ctrl)

	_, _ = s.Join(domain.Participant{ID: "u1"}, oldSink)
	_, _ = s.Join(domain.Participant{ID: "u1"}, newSink)

	// Pruning the stale sink must not touch its replacement
	req.False(s.DropConn(SyncChannel, "u1", oldSink))
	req.Equal(1, s.ConnCount())

	req.True(s.DropConn(SyncChannel, "u1", newSink))
	req.Equal(0, s.ConnCount())
}

func TestSession_IdleRequiresNoConnections(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	start := time.Now().UTC()
	s := newSession("42", start)
	sink := mocks.NewMockEventSink(ctrl)
	_, _ = s.Join(domain.Participant{ID: "u1"}, sink)

	// A connected session is never idle, however old
	req.False(s.Idle(start.Add(24*time.Hour), time.Minute))

	_, _, _ = s.Leave("u1", sink)
	req.False(s.Idle(time.Now().UTC(), time.Hour))
	req.True(s.Idle(time.Now().UTC().Add(2*time.Hour), time.Hour))
}
