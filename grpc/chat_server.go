package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"readroom/domain"
	"readroom/domain/event"
	"readroom/errors"
	pb "readroom/proto/chat"
	"readroom/services"

	"github.com/samber/lo"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type ChatServer struct {
	pb.UnimplementedChatServiceServer
	service              services.IChatService
	connectionBufferSize int
	log                  *slog.Logger
}

func NewChatServer(log *slog.Logger, service services.IChatService, connectionBufferSize int) *ChatServer {
	return &ChatServer{service: service, connectionBufferSize: connectionBufferSize, log: log}
}

// Channel is the chat stream. The first client message binds the connection
// to its session; that message, and every later one carrying content, is
// relayed to the whole session. The sender receives its own message back
// through the stream like everyone else, which keeps a single source of
// truth for ordering, censoring, and the unconfirmed flag.
func (s *ChatServer) Channel(stream grpc.BidiStreamingServer[pb.ChatMessage, pb.ChatMessage]) error {
	first, err := stream.Recv()
	if err != nil {
		return err
	}

	ctx := stream.Context()
	sessionID := domain.SessionID(first.GetSessionId())
	senderID := first.GetSenderId()
	sink := NewGrpcSink(s.connectionBufferSize)

	s.service.Bind(sessionID, senderID, first.GetSenderName(), sink)
	defer func() {
		s.service.Unbind(sessionID, senderID, sink)
		sink.Close()
	}()

	pumpErr := make(chan error, 1)
	go s.pump(stream, sink, pumpErr)

	recvDone := make(chan struct{})
	go func() {
		defer close(recvDone)
		s.post(ctx, sessionID, senderID, first)
		for {
			msg, err := stream.Recv()
			if err != nil {
				s.log.Warn(fmt.Sprintf("Chat client %s disconnected from session %s", senderID, sessionID))
				return
			}
			s.post(ctx, sessionID, senderID, msg)
		}
	}()

	select {
	case err := <-pumpErr:
		return err
	case <-recvDone:
		return nil
	case <-sink.Done():
		return nil
	}
}

func (s *ChatServer) pump(stream grpc.BidiStreamingServer[pb.ChatMessage, pb.ChatMessage], sink *Sink, pumpErr chan<- error) {
	for {
		select {
		case <-stream.Context().Done():
			pumpErr <- nil
			return
		case <-sink.Done():
			pumpErr <- nil
			return
		case evt := <-sink.Events:
			chatEvt, ok := evt.(event.ChatMessage)
			if !ok {
				continue
			}
			if err := stream.Send(lo.ToPtr(toChatMessage(chatEvt))); err != nil {
				s.log.Error("Failed to push chat message to stream", "error", err)
				pumpErr <- err
				return
			}
		}
	}
}

// post relays one inbound message. An empty content means a bind-only
// message and is skipped silently.
func (s *ChatServer) post(ctx context.Context, sessionID domain.SessionID, senderID string, msg *pb.ChatMessage) {
	if msg.GetContent() == "" {
		return
	}
	_, err := s.service.PostMessage(ctx, domain.PostMessageCommand{
		SessionID:  sessionID,
		SenderID:   senderID,
		SenderName: msg.GetSenderName(),
		Content:    msg.GetContent(),
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		s.log.Warn("Chat message rejected", "session_id", sessionID, "sender_id", senderID, "error", err)
	}
}

// GetHistory pages through persisted messages, newest first. An empty cursor
// starts from the latest message; the returned cursor resumes the scan.
func (s *ChatServer) GetHistory(_ context.Context, req *pb.GetHistoryRequest) (*pb.GetHistoryResponse, error) {
	var cursor *string
	if req.GetCursor() != "" {
		cursor = lo.ToPtr(req.GetCursor())
	}

	messages, next, err := s.service.GetMessages(domain.GetMessageCommand{
		SessionID: domain.SessionID(req.GetSessionId()),
		Cursor:    cursor,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	resp := &pb.GetHistoryResponse{
		Messages: lo.Map(messages, func(m domain.Message, _ int) *pb.ChatMessage {
			return lo.ToPtr(fromDomainMessage(m))
		}),
	}
	if next != nil {
		resp.Cursor = *next
	}
	return resp, nil
}

func (s *ChatServer) Search(ctx context.Context, req *pb.SearchRequest) (*pb.SearchResponse, error) {
	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = 20
	}
	messages, err := s.service.Search(ctx, domain.SessionID(req.GetSessionId()), req.GetTerms(), limit)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SearchResponse{
		Messages: lo.Map(messages, func(m domain.Message, _ int) *pb.ChatMessage {
			return lo.ToPtr(fromDomainMessage(m))
		}),
	}, nil
}

func toChatMessage(e event.ChatMessage) pb.ChatMessage {
	return pb.ChatMessage{
		MessageId:   e.ID.String(),
		SessionId:   string(e.SessionID),
		SenderId:    e.SenderID,
		SenderName:  e.SenderName,
		Content:     e.Content,
		CreatedAt:   timestamppb.New(e.At),
		Unconfirmed: e.Unconfirmed,
		Language:    e.Language,
	}
}

func fromDomainMessage(m domain.Message) pb.ChatMessage {
	return pb.ChatMessage{
		MessageId:   m.ID.String(),
		SessionId:   string(m.SessionID),
		SenderId:    m.SenderID,
		SenderName:  m.SenderName,
		Content:     m.Content,
		CreatedAt:   timestamppb.New(m.CreatedAt),
		Unconfirmed: m.Unconfirmed,
		Language:    m.Language,
	}
}
