package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"readroom/domain/event"
)

// Broadcaster delivers one event to every live connection of a session.
//
// Deliveries are attempted independently: a connection that fails or times
// out is pruned and closed without aborting the remaining ones. It provides
// no ordering across connections; per-connection order is kept by the
// session's fan-out guard together with the single pump goroutine each
// stream runs.
type Broadcaster struct {
	log     *slog.Logger
	timeout time.Duration
}

func NewBroadcaster(log *slog.Logger, timeout time.Duration) *Broadcaster {
	return &Broadcaster{log: log, timeout: timeout}
}

// Broadcast fans e out on the given channel and returns how many connections
// accepted it.
func (b *Broadcaster) Broadcast(ctx context.Context, s *Session, ch Channel, e event.DomainEvent) int {
	s.fanmu.Lock()
	defer s.fanmu.Unlock()

	delivered := 0
	for _, entry := range s.sinksFor(ch) {
		cctx, cancel := context.WithTimeout(ctx, b.timeout)
		err := entry.Sink.Consume(cctx, e)
		cancel()
		if err != nil {
			// One misbehaving connection never blocks the session:
			// prune it and move on to the next one.
			s.DropConn(ch, entry.UserID, entry.Sink)
			entry.Sink.Close()
			b.log.Warn(fmt.Sprintf("Pruning connection of %s from session %s", entry.UserID, s.ID),
				"error", err)
			continue
		}
		delivered++
	}
	return delivered
}
