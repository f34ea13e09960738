package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrWorkerPanic     = fmt.Errorf("worker panic")
	ErrUnknownSession  = fmt.Errorf("unknown session")
	ErrUnknownSender   = fmt.Errorf("unknown sender")
	ErrNotMember       = fmt.Errorf("not a session member")
	ErrNotAuthorized   = fmt.Errorf("not authorized to lead")
	ErrSinkClosed      = fmt.Errorf("sink closed")
	ErrSinkFull        = fmt.Errorf("sink buffer full")
	ErrInvalidMessage  = fmt.Errorf("invalid message")
	ErrMissingJoin     = fmt.Errorf("first event must be a join")
	ErrUnknownAction   = fmt.Errorf("unknown action")
	ErrEmptyWords      = fmt.Errorf("no words have been found")
	ErrOnlyCensorFiles = fmt.Errorf("censored directory contains directories")
)

// MapToGRPCError translates engine errors into transport status codes.
// Unrecognized errors stay internal to avoid leaking details to clients.
func MapToGRPCError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrUnknownSession), errors.Is(err, ErrUnknownSender):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrNotMember), errors.Is(err, ErrNotAuthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, ErrInvalidMessage), errors.Is(err, ErrMissingJoin), errors.Is(err, ErrUnknownAction):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
