package grpc

import (
	"context"
	"testing"
	"time"

	"readroom/domain/event"
	"readroom/errors"

	"github.com/stretchr/testify/require"
)

func TestSink_ConsumeAndDrain(t *testing.T) {
	req := require.New(t)
	sink := NewGrpcSink(2)

	evt := event.PageTurned{SessionID: "42", LeaderID: "u1", Page: 3}
	req.NoError(sink.Consume(context.Background(), evt))

	received := <-sink.Events
	req.Equal(evt, received)
}

func TestSink_FullBufferTimesOut(t *testing.T) {
	req := require.New(t)
	sink := NewGrpcSink(1)

	req.NoError(sink.Consume(context.Background(), event.PageTurned{Page: 1}))

	// The buffer is full and nobody drains: the delivery timeout fires
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := sink.Consume(ctx, event.PageTurned{Page: 2})
	req.ErrorIs(err, errors.ErrSinkFull)
}

func TestSink_CloseIsIdempotentAndRejectsConsume(t *testing.T) {
	req := require.New(t)
	sink := NewGrpcSink(1)

	sink.Close()
	sink.Close()

	err := sink.Consume(context.Background(), event.PageTurned{Page: 1})
	req.ErrorIs(err, errors.ErrSinkClosed)

	select {
	case <-sink.Done():
	default:
		req.Fail("Done channel should be closed")
	}
}
