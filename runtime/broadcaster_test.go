package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"readroom/domain"
	"readroom/domain/event"
	"readroom/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBroadcaster_DeliversToEveryConnection(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newSession("42", time.Now().UTC())
	evt := event.PageTurned{SessionID: "42", LeaderID: "u1", Page: 3}

	sinks := make([]*mocks.MockEventSink, 3)
	for i := range sinks {
		sinks[i] = mocks.NewMockEventSink(ctrl)
		sinks[i].EXPECT().Consume(gomock.Any(), evt).Return(nil).Times(1)
		_, _ = s.Join(domain.Participant{ID: fmt.Sprintf("u%d", i+1)}, sinks[i])
	}

	b := NewBroadcaster(log, time.Second)
	delivered := b.Broadcast(context.Background(), s, SyncChannel, evt)

	req.Equal(3, delivered)
}

func TestBroadcaster_FailedSinkIsPrunedOthersStillServed(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newSession("42", time.Now().UTC())
	evt := event.PageTurned{SessionID: "42", LeaderID: "u1", Page: 3}

	// Given one broken connection among healthy ones
	broken := mocks.NewMockEventSink(ctrl)
	broken.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(fmt.Errorf("connection reset")).Times(1)
	broken.EXPECT().Close().Times(1)
	_, _ = s.Join(domain.Participant{ID: "broken"}, broken)

	healthy := mocks.NewMockEventSink(ctrl)
	healthy.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).MinTimes(1)
	_, _ = s.Join(domain.Participant{ID: "healthy"}, healthy)

	b := NewBroadcaster(log, time.Second)

	// When broadcasting
	delivered := b.Broadcast(context.Background(), s, SyncChannel, evt)

	// Then the healthy connection was served and the broken one dropped
	req.Equal(1, delivered)
	req.Equal(1, s.ConnCount())

	// And the next broadcast skips the pruned connection entirely
	delivered = b.Broadcast(context.Background(), s, SyncChannel, evt)
	req.Equal(1, delivered)
}

func TestBroadcaster_SlowSinkTimesOut(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newSession("42", time.Now().UTC())

	slow := mocks.NewMockEventSink(ctrl)
	slow.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ event.DomainEvent) error {
			<-ctx.Done() // Waiting for the delivery timeout
			return ctx.Err()
		}).Times(1)
	slow.EXPECT().Close().Times(1)
	_, _ = s.Join(domain.Participant{ID: "slow"}, slow)

	b := NewBroadcaster(log, 20*time.Millisecond)
	delivered := b.Broadcast(context.Background(), s, SyncChannel, event.ModeChanged{SessionID: "42", Mode: domain.ModeFree})

	req.Equal(0, delivered)
	req.Equal(0, s.ConnCount())
}

func TestBroadcaster_ChannelsAreIndependent(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newSession("42", time.Now().UTC())

	syncSink := mocks.NewMockEventSink(ctrl)
	_, _ = s.Join(domain.Participant{ID: "u1"}, syncSink)

	chatSink := mocks.NewMockEventSink(ctrl)
	chatSink.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	s.BindChat("u1", "Alice", chatSink)

	b := NewBroadcaster(log, time.Second)

	// A chat broadcast never reaches sync connections
	delivered := b.Broadcast(context.Background(), s, ChatChannel, event.ChatMessage{SessionID: "42", SenderID: "u1"})
	req.Equal(1, delivered)
}
