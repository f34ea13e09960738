//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"readroom/domain"
	"readroom/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes, avoiding the need
// for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is one live outbound delivery channel tied to a participant.
// Close must be idempotent; a closed sink rejects further Consume calls.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
	Close()
}

// IMembership is the authorization collaborator. The engine trusts its answers;
// actual credential checking happens upstream of this core.
type IMembership interface {
	IsMember(ctx context.Context, sessionID domain.SessionID, userID string) (bool, error)
	CanLead(ctx context.Context, sessionID domain.SessionID, userID string) (bool, error)
}

// IPageCounter resolves the total page count of the document a session reads,
// owned by the excluded persistence layer.
type IPageCounter interface {
	PageCount(ctx context.Context, sessionID domain.SessionID) (int, error)
}
