package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"readroom/runtime"
)

// JanitorWorker periodically evicts idle sessions from the registry so the
// session table never grows with groups that stopped reading. Sessions with
// at least one live connection are never touched.
type JanitorWorker struct {
	log           *slog.Logger
	registry      *runtime.Registry
	sweepInterval time.Duration
	sessionTTL    time.Duration
}

func NewJanitorWorker(log *slog.Logger, registry *runtime.Registry,
	sweepInterval, sessionTTL time.Duration) *JanitorWorker {
	return &JanitorWorker{
		log:           log,
		registry:      registry,
		sweepInterval: sweepInterval,
		sessionTTL:    sessionTTL,
	}
}

func (w *JanitorWorker) Run(ctx context.Context) error {
	if w.sessionTTL <= 0 {
		w.log.Info("Session eviction disabled")
		return nil
	}

	ticker := time.NewTicker(w.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if evicted := w.registry.Sweep(time.Now().UTC(), w.sessionTTL); evicted > 0 {
				w.log.Info(fmt.Sprintf("Evicted %d idle sessions, %d remaining",
					evicted, w.registry.Len()))
			}
		}
	}
}
