//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"context"
	"unicode/utf8"

	"readroom/contract"
	"readroom/domain"
	"readroom/errors"
	"readroom/runtime"

	"github.com/go-playground/validator/v10"
)

type IChatService interface {
	PostMessage(ctx context.Context, cmd domain.PostMessageCommand) (domain.Message, error)
	GetMessages(cmd domain.GetMessageCommand) ([]domain.Message, *string, error)
	Search(ctx context.Context, sessionID domain.SessionID, terms string, limit int) ([]domain.Message, error)
	Bind(sessionID domain.SessionID, userID, displayName string, sink contract.EventSink)
	Unbind(sessionID domain.SessionID, userID string, sink contract.EventSink)
}

// ChatService validates chat commands and caps message length before the
// engine persists and relays them.
type ChatService struct {
	engine           *runtime.Engine
	validator        *validator.Validate
	maxContentLength int
}

func NewChatService(engine *runtime.Engine, maxContentLength int) *ChatService {
	return &ChatService{
		engine:           engine,
		validator:        validator.New(),
		maxContentLength: maxContentLength,
	}
}

func (s *ChatService) PostMessage(ctx context.Context, cmd domain.PostMessageCommand) (domain.Message, error) {
	if err := s.validator.Struct(cmd); err != nil {
		return domain.Message{}, errors.ErrInvalidMessage
	}
	if s.maxContentLength > 0 && utf8.RuneCountInString(cmd.Content) > s.maxContentLength {
		return domain.Message{}, errors.ErrInvalidMessage
	}
	return s.engine.Relay(ctx, cmd)
}

func (s *ChatService) GetMessages(cmd domain.GetMessageCommand) ([]domain.Message, *string, error) {
	return s.engine.History(cmd)
}

func (s *ChatService) Search(ctx context.Context, sessionID domain.SessionID, terms string, limit int) ([]domain.Message, error) {
	return s.engine.SearchMessages(ctx, sessionID, terms, limit)
}

func (s *ChatService) Bind(sessionID domain.SessionID, userID, displayName string, sink contract.EventSink) {
	s.engine.BindChat(sessionID, userID, displayName, sink)
}

func (s *ChatService) Unbind(sessionID domain.SessionID, userID string, sink contract.EventSink) {
	s.engine.UnbindChat(sessionID, userID, sink)
}
