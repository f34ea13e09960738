package services

import (
	"context"
	"testing"

	"readroom/domain"
	"readroom/errors"

	"github.com/stretchr/testify/require"
)

func TestSyncService_Validation(t *testing.T) {
	req := require.New(t)
	// The engine is never reached when validation rejects the command
	service := NewSyncService(nil)
	ctx := context.Background()

	_, err := service.MovePage(ctx, domain.PageMoveCommand{SessionID: "42", UserID: "u1", Page: 0})
	req.ErrorIs(err, errors.ErrInvalidMessage)

	err = service.UpdateProgress(ctx, domain.ProgressCommand{SessionID: "42", Page: 3})
	req.ErrorIs(err, errors.ErrInvalidMessage)

	err = service.ChangeMode(ctx, domain.ModeChangeCommand{SessionID: "42", UserID: "u1", Mode: "SPRINT"})
	req.ErrorIs(err, errors.ErrInvalidMessage)

	err = service.ChangeLeader(ctx, domain.LeaderChangeCommand{UserID: "u1", NewLeaderID: "u2"})
	req.ErrorIs(err, errors.ErrInvalidMessage)
}
