//go:generate go run go.uber.org/mock/mockgen -source=sync_service.go -destination=../mocks/mock_sync_service.go -package=mocks
package services

import (
	"context"

	"readroom/contract"
	"readroom/domain"
	"readroom/errors"
	"readroom/runtime"

	"github.com/go-playground/validator/v10"
)

type ISyncService interface {
	Join(ctx context.Context, cmd domain.JoinCommand, sink contract.EventSink) error
	Leave(ctx context.Context, cmd domain.LeaveCommand, sink contract.EventSink)
	MovePage(ctx context.Context, cmd domain.PageMoveCommand) (domain.MoveResult, error)
	UpdateProgress(ctx context.Context, cmd domain.ProgressCommand) error
	ChangeLeader(ctx context.Context, cmd domain.LeaderChangeCommand) error
	ChangeMode(ctx context.Context, cmd domain.ModeChangeCommand) error
}

// SyncService validates reading-sync commands before they reach the engine.
type SyncService struct {
	engine    *runtime.Engine
	validator *validator.Validate
}

func NewSyncService(engine *runtime.Engine) *SyncService {
	return &SyncService{engine: engine, validator: validator.New()}
}

func (s *SyncService) Join(ctx context.Context, cmd domain.JoinCommand, sink contract.EventSink) error {
	if err := s.validator.Struct(cmd); err != nil {
		return errors.ErrInvalidMessage
	}
	return s.engine.Join(ctx, cmd, sink)
}

func (s *SyncService) Leave(ctx context.Context, cmd domain.LeaveCommand, sink contract.EventSink) {
	s.engine.Leave(ctx, cmd, sink)
}

func (s *SyncService) MovePage(ctx context.Context, cmd domain.PageMoveCommand) (domain.MoveResult, error) {
	if err := s.validator.Struct(cmd); err != nil {
		return domain.MoveResult{}, errors.ErrInvalidMessage
	}
	return s.engine.MovePage(ctx, cmd)
}

func (s *SyncService) UpdateProgress(ctx context.Context, cmd domain.ProgressCommand) error {
	if err := s.validator.Struct(cmd); err != nil {
		return errors.ErrInvalidMessage
	}
	return s.engine.UpdateProgress(ctx, cmd)
}

func (s *SyncService) ChangeLeader(ctx context.Context, cmd domain.LeaderChangeCommand) error {
	if err := s.validator.Struct(cmd); err != nil {
		return errors.ErrInvalidMessage
	}
	return s.engine.ChangeLeader(ctx, cmd)
}

func (s *SyncService) ChangeMode(ctx context.Context, cmd domain.ModeChangeCommand) error {
	if err := s.validator.Struct(cmd); err != nil {
		return errors.ErrInvalidMessage
	}
	return s.engine.ChangeMode(ctx, cmd)
}
