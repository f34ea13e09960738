package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"readroom/domain"
	"readroom/mocks"
	"readroom/runtime"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestJanitorWorker_EvictsAbandonedSessions(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := runtime.NewRegistry()
	registry.GetOrCreate("abandoned")

	live := registry.GetOrCreate("live")
	sink := mocks.NewMockEventSink(ctrl)
	_, _ = live.Join(domain.Participant{ID: "u1"}, sink)

	worker := NewJanitorWorker(log, registry, 10*time.Millisecond, time.Nanosecond)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	err := worker.Run(ctx)
	req.ErrorIs(err, context.DeadlineExceeded)

	// The abandoned session is gone, the connected one survived
	req.Equal(1, registry.Len())
	_, ok := registry.Get("live")
	req.True(ok)
}

func TestJanitorWorker_DisabledWithoutTTL(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	registry := runtime.NewRegistry()
	registry.GetOrCreate("abandoned")

	worker := NewJanitorWorker(log, registry, 10*time.Millisecond, 0)

	// Run returns immediately instead of ticking forever
	err := worker.Run(context.Background())
	req.NoError(err)
	req.Equal(1, registry.Len())
}
