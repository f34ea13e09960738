package runtime

import (
	"sync"
	"testing"
	"time"

	"readroom/domain"
	"readroom/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegistry_GetOrCreateReturnsSameInstance(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	var wg sync.WaitGroup
	sessions := make([]*Session, 10)
	for i := range sessions {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sessions[i] = registry.GetOrCreate("42")
		}(i)
	}
	wg.Wait()

	// Every concurrent caller observes the same session
	for _, s := range sessions {
		req.Same(sessions[0], s)
	}
	req.Equal(1, registry.Len())
}

func TestRegistry_GetNeverCreates(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	_, ok := registry.Get("ghost")
	req.False(ok)
	req.Equal(0, registry.Len())
}

func TestRegistry_SweepEvictsOnlyIdleSessions(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	registry := NewRegistry()

	// Given one session with a live connection and one abandoned
	live := registry.GetOrCreate("live")
	_, _ = live.Join(domain.Participant{ID: "u1"}, mocks.NewMockEventSink(ctrl))
	registry.GetOrCreate("abandoned")

	// When sweeping far in the future
	evicted := registry.Sweep(time.Now().UTC().Add(48*time.Hour), time.Hour)

	// Then only the connectionless session goes away
	req.Equal(1, evicted)
	req.Equal(1, registry.Len())
	_, ok := registry.Get("live")
	req.True(ok)
}

func TestRegistry_SweepDisabledByZeroTTL(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	registry.GetOrCreate("abandoned")

	evicted := registry.Sweep(time.Now().UTC().Add(48*time.Hour), 0)

	req.Equal(0, evicted)
	req.Equal(1, registry.Len())
}
