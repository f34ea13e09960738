package grpc

import (
	"context"
	"fmt"
	"log/slog"

	"readroom/domain"
	"readroom/domain/event"
	"readroom/errors"
	pb "readroom/proto/sync"
	"readroom/services"

	"google.golang.org/grpc"
)

type SyncServer struct {
	pb.UnimplementedReadingSyncServiceServer
	service              services.ISyncService
	connectionBufferSize int
	log                  *slog.Logger
}

func NewSyncServer(log *slog.Logger, service services.ISyncService, connectionBufferSize int) *SyncServer {
	return &SyncServer{service: service, connectionBufferSize: connectionBufferSize, log: log}
}

// Channel is the long-lived reading-sync stream. The first client message
// must be a JOIN_ROOM; it binds the connection to its session and identifies
// the caller for every later action on the same stream.
//
// Outbound delivery runs in a single pump goroutine per stream, so events and
// acks reach the wire in the order the fan-out issued them. This method
// blocks until the client disconnects or sends LEAVE; cleanup is deferred so
// a broken stream still releases its session slot.
func (s *SyncServer) Channel(stream grpc.BidiStreamingServer[pb.SyncMessage, pb.SyncMessage]) error {
	first, err := stream.Recv()
	if err != nil {
		return err
	}
	if first.GetAction() != pb.SyncAction_JOIN_ROOM {
		return errors.MapToGRPCError(errors.ErrMissingJoin)
	}

	ctx := stream.Context()
	sessionID := domain.SessionID(first.GetSessionId())
	userID := first.GetUserId()
	sink := NewGrpcSink(s.connectionBufferSize)

	err = s.service.Join(ctx, domain.JoinCommand{
		SessionID:   sessionID,
		UserID:      userID,
		DisplayName: first.GetDisplayName(),
		Host:        first.GetHost(),
		AvatarURL:   first.GetAvatarUrl(),
	}, sink)
	if err != nil {
		sink.Close()
		return errors.MapToGRPCError(err)
	}

	defer func() {
		s.service.Leave(context.WithoutCancel(ctx), domain.LeaveCommand{SessionID: sessionID, UserID: userID}, sink)
		sink.Close()
	}()

	pumpErr := make(chan error, 1)
	go s.pump(stream, sink, pumpErr)

	recvDone := make(chan struct{})
	go func() {
		defer close(recvDone)
		for {
			msg, err := stream.Recv()
			if err != nil {
				s.log.Warn(fmt.Sprintf("Client %s disconnected from session %s", userID, sessionID))
				return
			}
			s.dispatch(ctx, sessionID, userID, msg, sink)
			if msg.GetAction() == pb.SyncAction_LEAVE {
				return
			}
		}
	}()

	select {
	case err := <-pumpErr:
		return err
	case <-recvDone:
		return nil
	case <-sink.Done():
		// Replaced by a newer connection of the same participant; returning
		// tears down this stream.
		return nil
	}
}

// pump owns every Send on the stream.
func (s *SyncServer) pump(stream grpc.BidiStreamingServer[pb.SyncMessage, pb.SyncMessage], sink *Sink, pumpErr chan<- error) {
	for {
		select {
		case <-stream.Context().Done():
			pumpErr <- nil
			return
		case <-sink.Done():
			// Replaced by a newer connection of the same participant.
			pumpErr <- nil
			return
		case evt := <-sink.Events:
			out, ok := toSyncMessage(evt)
			if !ok {
				continue
			}
			if err := stream.Send(&out); err != nil {
				s.log.Error("Failed to push event to stream", "error", err)
				pumpErr <- err
				return
			}
		}
	}
}

// dispatch applies one client action. Engine errors are answered on the
// caller's own sink and never break the stream.
func (s *SyncServer) dispatch(ctx context.Context, sessionID domain.SessionID, userID string, msg *pb.SyncMessage, sink *Sink) {
	switch msg.GetAction() {
	case pb.SyncAction_PAGE_MOVE:
		res, err := s.service.MovePage(ctx, domain.PageMoveCommand{
			SessionID: sessionID,
			UserID:    userID,
			Page:      int(msg.GetPayload().GetPage()),
		})
		if err != nil {
			s.log.Warn("Page move rejected", "session_id", sessionID, "user_id", userID, "error", err)
			return
		}
		if !res.ByLeader {
			// Confirm the applied page to the caller only; follower moves
			// are not broadcast.
			s.ack(ctx, sink, event.PageAck{SessionID: sessionID, UserID: userID, Page: res.Page, Clamped: res.Clamped})
		}
	case pb.SyncAction_PROGRESS_UPDATE:
		err := s.service.UpdateProgress(ctx, domain.ProgressCommand{
			SessionID: sessionID,
			UserID:    userID,
			Page:      int(msg.GetPayload().GetPage()),
		})
		if err != nil {
			s.log.Warn("Progress update rejected", "session_id", sessionID, "user_id", userID, "error", err)
		}
	case pb.SyncAction_LEADER_CHANGE:
		err := s.service.ChangeLeader(ctx, domain.LeaderChangeCommand{
			SessionID:   sessionID,
			UserID:      userID,
			NewLeaderID: msg.GetLeaderId(),
		})
		if err != nil {
			s.log.Warn("Leader change rejected", "session_id", sessionID, "user_id", userID, "error", err)
		}
	case pb.SyncAction_MODE_CHANGE:
		err := s.service.ChangeMode(ctx, domain.ModeChangeCommand{
			SessionID: sessionID,
			UserID:    userID,
			Mode:      domain.ReadingMode(msg.GetMode()),
		})
		if err != nil {
			s.log.Warn("Mode change rejected", "session_id", sessionID, "user_id", userID, "error", err)
		}
	case pb.SyncAction_LEAVE:
		// Deferred cleanup performs the actual leave.
	default:
		s.log.Warn("Unknown action on sync stream", "session_id", sessionID, "user_id", userID, "action", msg.GetAction())
	}
}

func (s *SyncServer) ack(ctx context.Context, sink *Sink, e event.DomainEvent) {
	if err := sink.Consume(ctx, e); err != nil {
		s.log.Warn("Failed to queue ack", "error", err)
	}
}

// SendMessage is the unary escape hatch for clients that cannot hold the
// stream open, limited to fire-and-forget actions.
func (s *SyncServer) SendMessage(ctx context.Context, msg *pb.SyncMessage) (*pb.Ack, error) {
	sessionID := domain.SessionID(msg.GetSessionId())
	userID := msg.GetUserId()

	var err error
	switch msg.GetAction() {
	case pb.SyncAction_PAGE_MOVE:
		_, err = s.service.MovePage(ctx, domain.PageMoveCommand{
			SessionID: sessionID,
			UserID:    userID,
			Page:      int(msg.GetPayload().GetPage()),
		})
	case pb.SyncAction_PROGRESS_UPDATE:
		err = s.service.UpdateProgress(ctx, domain.ProgressCommand{
			SessionID: sessionID,
			UserID:    userID,
			Page:      int(msg.GetPayload().GetPage()),
		})
	case pb.SyncAction_LEADER_CHANGE:
		err = s.service.ChangeLeader(ctx, domain.LeaderChangeCommand{
			SessionID:   sessionID,
			UserID:      userID,
			NewLeaderID: msg.GetLeaderId(),
		})
	case pb.SyncAction_MODE_CHANGE:
		err = s.service.ChangeMode(ctx, domain.ModeChangeCommand{
			SessionID: sessionID,
			UserID:    userID,
			Mode:      domain.ReadingMode(msg.GetMode()),
		})
	default:
		err = errors.ErrUnknownAction
	}
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.Ack{Success: true}, nil
}

// toSyncMessage translates a domain event into its wire form. Events without
// a sync-stream representation are skipped.
func toSyncMessage(evt event.DomainEvent) (pb.SyncMessage, bool) {
	switch e := evt.(type) {
	case event.ParticipantJoined:
		return pb.SyncMessage{
			SessionId:   string(e.SessionID),
			UserId:      e.UserID,
			Action:      pb.SyncAction_JOIN_ROOM,
			DisplayName: e.DisplayName,
			Host:        e.Host,
		}, true
	case event.ParticipantLeft:
		return pb.SyncMessage{
			SessionId: string(e.SessionID),
			UserId:    e.UserID,
			Action:    pb.SyncAction_LEAVE,
		}, true
	case event.PageTurned:
		return pb.SyncMessage{
			SessionId: string(e.SessionID),
			UserId:    e.LeaderID,
			Action:    pb.SyncAction_PAGE_MOVE,
			LeaderId:  e.LeaderID,
			Payload:   &pb.PagePayload{Page: int32(e.Page)},
		}, true
	case event.PageAck:
		return pb.SyncMessage{
			SessionId: string(e.SessionID),
			UserId:    e.UserID,
			Action:    pb.SyncAction_PAGE_MOVE,
			Payload:   &pb.PagePayload{Page: int32(e.Page)},
		}, true
	case event.ProgressUpdated:
		return pb.SyncMessage{
			SessionId: string(e.SessionID),
			UserId:    e.UserID,
			Action:    pb.SyncAction_PROGRESS_UPDATE,
			Payload:   &pb.PagePayload{Page: int32(e.Page), Percent: e.Percent},
		}, true
	case event.LeaderChanged:
		return pb.SyncMessage{
			SessionId: string(e.SessionID),
			Action:    pb.SyncAction_LEADER_CHANGE,
			LeaderId:  e.LeaderID,
		}, true
	case event.ModeChanged:
		return pb.SyncMessage{
			SessionId: string(e.SessionID),
			Action:    pb.SyncAction_MODE_CHANGE,
			Mode:      string(e.Mode),
		}, true
	default:
		return pb.SyncMessage{}, false
	}
}
