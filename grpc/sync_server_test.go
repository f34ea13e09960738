package grpc

import (
	"context"
	"log/slog"
	"testing"

	"readroom/domain"
	"readroom/errors"
	"readroom/mocks"
	pb "readroom/proto/sync"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestSyncServer_SendMessage_PageMove(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockISyncService(ctrl)
	server := NewSyncServer(log, service, 8)

	service.EXPECT().
		MovePage(gomock.Any(), domain.PageMoveCommand{SessionID: "42", UserID: "u1", Page: 7}).
		Return(domain.MoveResult{Page: 7, ByLeader: true}, nil).
		Times(1)

	ack, err := server.SendMessage(context.Background(), &pb.SyncMessage{
		SessionId: "42",
		UserId:    "u1",
		Action:    pb.SyncAction_PAGE_MOVE,
		Payload:   &pb.PagePayload{Page: 7},
	})

	req.NoError(err)
	req.True(ack.GetSuccess())
}

func TestSyncServer_SendMessage_UnknownActionRejected(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockISyncService(ctrl)
	server := NewSyncServer(log, service, 8)

	_, err := server.SendMessage(context.Background(), &pb.SyncMessage{
		SessionId: "42",
		UserId:    "u1",
		Action:    pb.SyncAction_SYNC_ACTION_UNSPECIFIED,
	})

	req.Error(err)
	req.Equal(codes.InvalidArgument, status.Code(err))
}

func TestSyncServer_SendMessage_MapsEngineErrors(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockISyncService(ctrl)
	server := NewSyncServer(log, service, 8)

	service.EXPECT().
		ChangeLeader(gomock.Any(), gomock.Any()).
		Return(errors.ErrNotAuthorized).
		Times(1)

	_, err := server.SendMessage(context.Background(), &pb.SyncMessage{
		SessionId: "42",
		UserId:    "u1",
		Action:    pb.SyncAction_LEADER_CHANGE,
		LeaderId:  "u2",
	})

	req.Error(err)
	req.Equal(codes.PermissionDenied, status.Code(err))
}
