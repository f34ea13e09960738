package grpc

import (
	"context"
	"sync"

	"readroom/domain/event"
	"readroom/errors"
)

// Sink bridges the engine's fan-out to one gRPC stream. Consume is called by
// the broadcaster; the stream's pump goroutine drains Events and owns every
// Send, since a gRPC stream does not tolerate concurrent senders.
type Sink struct {
	Events chan event.DomainEvent

	done chan struct{}
	once sync.Once
}

func NewGrpcSink(bufferSize int) *Sink {
	return &Sink{
		Events: make(chan event.DomainEvent, bufferSize),
		done:   make(chan struct{}),
	}
}

// Consume hands the event to the pump. A full buffer blocks until the
// broadcaster's delivery timeout fires, which flags the connection as too
// slow and gets it pruned.
func (s *Sink) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case <-s.done:
		return errors.ErrSinkClosed
	default:
	}

	select {
	case s.Events <- e:
		return nil
	case <-s.done:
		return errors.ErrSinkClosed
	case <-ctx.Done():
		return errors.ErrSinkFull
	}
}

// Close is idempotent and wakes up the pump.
func (s *Sink) Close() {
	s.once.Do(func() { close(s.done) })
}

// Done signals the pump that the sink was closed from the engine side,
// typically because a new connection replaced this one.
func (s *Sink) Done() <-chan struct{} {
	return s.done
}
