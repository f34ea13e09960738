package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"readroom/domain"
	"readroom/domain/event"
	"readroom/errors"
	"readroom/mocks"
	"readroom/moderation"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type engineFixture struct {
	engine     *Engine
	registry   *Registry
	store      *mocks.MockIMessageRepository
	index      *mocks.MockIMessageIndex
	membership *mocks.MockIMembership
	pages      *mocks.MockIPageCounter
}

func newEngineFixture(t *testing.T, ctrl *gomock.Controller) engineFixture {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	moderator, err := moderation.NewModerator([]string{"mushroom"}, '*')
	req.NoError(err)

	registry := NewRegistry()
	store := mocks.NewMockIMessageRepository(ctrl)
	index := mocks.NewMockIMessageIndex(ctrl)
	membership := mocks.NewMockIMembership(ctrl)
	pages := mocks.NewMockIPageCounter(ctrl)

	engine := NewEngine(log, registry, NewBroadcaster(log, time.Second),
		store, index, membership, pages, moderator)
	return engineFixture{
		engine:     engine,
		registry:   registry,
		store:      store,
		index:      index,
		membership: membership,
		pages:      pages,
	}
}

// joinQuietly connects a participant with a sink that tolerates any delivery.
func (f engineFixture) joinQuietly(t *testing.T, ctrl *gomock.Controller, sessionID domain.SessionID, userID string, host bool) *mocks.MockEventSink {
	req := require.New(t)
	sink := mocks.NewMockEventSink(ctrl)
	sink.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.membership.EXPECT().IsMember(gomock.Any(), sessionID, userID).Return(true, nil).Times(1)
	err := f.engine.Join(context.Background(), domain.JoinCommand{
		SessionID: sessionID,
		UserID:    userID,
		Host:      host,
	}, sink)
	req.NoError(err)
	return sink
}

func TestEngine_JoinDeniedForNonMembers(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newEngineFixture(t, ctrl)

	sink := mocks.NewMockEventSink(ctrl)
	f.membership.EXPECT().IsMember(gomock.Any(), domain.SessionID("42"), "intruder").Return(false, nil).Times(1)

	err := f.engine.Join(context.Background(), domain.JoinCommand{SessionID: "42", UserID: "intruder"}, sink)

	req.ErrorIs(err, errors.ErrNotMember)
	// The denied join must not create the session
	req.Equal(0, f.registry.Len())
}

func TestEngine_JoinCatchesUpTheJoiner(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newEngineFixture(t, ctrl)

	f.joinQuietly(t, ctrl, "42", "host", true)
	s, ok := f.registry.Get("42")
	req.True(ok)
	s.MovePage("host", 9)

	// When a follower joins mid-session
	var caughtUp []event.DomainEvent
	sink := mocks.NewMockEventSink(ctrl)
	sink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e event.DomainEvent) error {
			caughtUp = append(caughtUp, e)
			return nil
		}).AnyTimes()
	f.membership.EXPECT().IsMember(gomock.Any(), domain.SessionID("42"), "late").Return(true, nil).Times(1)
	err := f.engine.Join(context.Background(), domain.JoinCommand{SessionID: "42", UserID: "late"}, sink)
	req.NoError(err)

	// Then their sink received the current leader and page
	var sawLeader, sawPage bool
	for _, e := range caughtUp {
		switch evt := e.(type) {
		case event.LeaderChanged:
			sawLeader = evt.LeaderID == "host"
		case event.PageTurned:
			sawPage = evt.Page == 9
		}
	}
	req.True(sawLeader)
	req.True(sawPage)
}

func TestEngine_LeaderMoveIsBroadcast(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newEngineFixture(t, ctrl)

	f.joinQuietly(t, ctrl, "42", "u1", true)

	// Given a follower watching the stream
	var pages []int
	followerSink := mocks.NewMockEventSink(ctrl)
	followerSink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e event.DomainEvent) error {
			if turned, ok := e.(event.PageTurned); ok {
				pages = append(pages, turned.Page)
			}
			return nil
		}).AnyTimes()
	f.membership.EXPECT().IsMember(gomock.Any(), domain.SessionID("42"), "u2").Return(true, nil).Times(1)
	err := f.engine.Join(context.Background(), domain.JoinCommand{SessionID: "42", UserID: "u2"}, followerSink)
	req.NoError(err)

	// When the leader turns to page 5
	res, err := f.engine.MovePage(context.Background(), domain.PageMoveCommand{SessionID: "42", UserID: "u1", Page: 5})
	req.NoError(err)
	req.True(res.ByLeader)

	// Then the follower saw the turn
	req.Contains(pages, 5)
}

func TestEngine_FollowerMoveIsNotBroadcast(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newEngineFixture(t, ctrl)

	f.joinQuietly(t, ctrl, "42", "u1", true)

	s, ok := f.registry.Get("42")
	req.True(ok)

	res, err := f.engine.MovePage(context.Background(), domain.PageMoveCommand{SessionID: "42", UserID: "u2", Page: 4})
	req.NoError(err)
	req.False(res.ByLeader)
	// The session page is untouched by a follower move
	req.Equal(domain.FirstPage, s.CurrentPage())
}

func TestEngine_ChangeLeaderRequiresAuthorization(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newEngineFixture(t, ctrl)

	f.joinQuietly(t, ctrl, "42", "u1", true)
	f.membership.EXPECT().CanLead(gomock.Any(), domain.SessionID("42"), "u2").Return(false, nil).Times(1)

	err := f.engine.ChangeLeader(context.Background(), domain.LeaderChangeCommand{
		SessionID:   "42",
		UserID:      "u1",
		NewLeaderID: "u2",
	})

	req.ErrorIs(err, errors.ErrNotAuthorized)
	s, _ := f.registry.Get("42")
	req.Equal("u1", s.Leader())
}

func TestEngine_RelayPersistsThenBroadcasts(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newEngineFixture(t, ctrl)

	f.joinQuietly(t, ctrl, "42", "u1", true)

	// Given a chat connection waiting for messages
	var received []event.ChatMessage
	chatSink := mocks.NewMockEventSink(ctrl)
	chatSink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e event.DomainEvent) error {
			if msg, ok := e.(event.ChatMessage); ok {
				received = append(received, msg)
			}
			return nil
		}).AnyTimes()
	f.engine.BindChat("42", "u1", "Alice", chatSink)

	stored := false
	f.store.EXPECT().StoreMessage(gomock.Any()).
		DoAndReturn(func(_ any) error {
			// The write must land before any delivery
			req.Empty(received)
			stored = true
			return nil
		}).Times(1)
	f.index.EXPECT().Index(gomock.Any()).Return(nil).Times(1)

	// When relaying a message containing a censored word
	msg, err := f.engine.Relay(context.Background(), domain.PostMessageCommand{
		SessionID: "42",
		SenderID:  "u1",
		Content:   "a mushroom walks in",
		CreatedAt: time.Now().UTC(),
	})

	req.NoError(err)
	req.True(stored)
	req.False(msg.Unconfirmed)
	req.Equal("a ******** walks in", msg.Content)
	req.Len(received, 1)
	req.Equal(msg.Content, received[0].Content)
}

func TestEngine_RelayDeliversUnconfirmedOnStoreFailure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newEngineFixture(t, ctrl)

	f.joinQuietly(t, ctrl, "42", "u1", true)

	var received []event.ChatMessage
	chatSink := mocks.NewMockEventSink(ctrl)
	chatSink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e event.DomainEvent) error {
			if msg, ok := e.(event.ChatMessage); ok {
				received = append(received, msg)
			}
			return nil
		}).AnyTimes()
	f.engine.BindChat("42", "u1", "Alice", chatSink)

	f.store.EXPECT().StoreMessage(gomock.Any()).Return(fmt.Errorf("disk full")).Times(1)

	// When the store rejects the write
	msg, err := f.engine.Relay(context.Background(), domain.PostMessageCommand{
		SessionID: "42",
		SenderID:  "u1",
		Content:   "hello",
		CreatedAt: time.Now().UTC(),
	})

	// Then the message still goes out, flagged as unconfirmed
	req.NoError(err)
	req.True(msg.Unconfirmed)
	req.Len(received, 1)
	req.True(received[0].Unconfirmed)
}

func TestEngine_RelayRejectsUnknownSessionAndSender(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newEngineFixture(t, ctrl)

	// Unknown session: the relay never resurrects sessions
	_, err := f.engine.Relay(context.Background(), domain.PostMessageCommand{
		SessionID: "ghost",
		SenderID:  "u1",
		Content:   "anyone here?",
	})
	req.ErrorIs(err, errors.ErrUnknownSession)
	req.Equal(0, f.registry.Len())

	// Unknown sender in a live session
	f.joinQuietly(t, ctrl, "42", "u1", true)
	_, err = f.engine.Relay(context.Background(), domain.PostMessageCommand{
		SessionID: "42",
		SenderID:  "stranger",
		Content:   "hello",
	})
	req.ErrorIs(err, errors.ErrUnknownSender)
}

func TestEngine_UpdateProgressComputesPercent(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newEngineFixture(t, ctrl)

	f.joinQuietly(t, ctrl, "42", "u1", true)

	var percents []float64
	sink := mocks.NewMockEventSink(ctrl)
	sink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e event.DomainEvent) error {
			if p, ok := e.(event.ProgressUpdated); ok {
				percents = append(percents, p.Percent)
			}
			return nil
		}).AnyTimes()
	f.membership.EXPECT().IsMember(gomock.Any(), domain.SessionID("42"), "u2").Return(true, nil).Times(1)
	err := f.engine.Join(context.Background(), domain.JoinCommand{SessionID: "42", UserID: "u2"}, sink)
	req.NoError(err)

	f.pages.EXPECT().PageCount(gomock.Any(), domain.SessionID("42")).Return(200, nil).Times(1)

	err = f.engine.UpdateProgress(context.Background(), domain.ProgressCommand{SessionID: "42", UserID: "u2", Page: 50})
	req.NoError(err)
	req.Contains(percents, 25.0)
}

func TestEngine_LeaveVacatesLeadershipAndNotifies(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newEngineFixture(t, ctrl)

	leaderSink := f.joinQuietly(t, ctrl, "42", "u1", true)
	leaderSink.EXPECT().Close().Times(1)

	var vacated bool
	sink := mocks.NewMockEventSink(ctrl)
	sink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e event.DomainEvent) error {
			if lc, ok := e.(event.LeaderChanged); ok && lc.LeaderID == "" {
				vacated = true
			}
			return nil
		}).AnyTimes()
	f.membership.EXPECT().IsMember(gomock.Any(), domain.SessionID("42"), "u2").Return(true, nil).Times(1)
	err := f.engine.Join(context.Background(), domain.JoinCommand{SessionID: "42", UserID: "u2"}, sink)
	req.NoError(err)

	f.engine.Leave(context.Background(), domain.LeaveCommand{SessionID: "42", UserID: "u1"}, nil)

	req.True(vacated)
	s, _ := f.registry.Get("42")
	req.Empty(s.Leader())
}
