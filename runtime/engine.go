// Package runtime is the session synchronization engine: it owns the live
// session table and moves join/page/chat events between connections.
// Business rules about documents, groups, and accounts live upstream.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"readroom/contract"
	"readroom/domain"
	"readroom/domain/event"
	"readroom/errors"
	"readroom/moderation"
	"readroom/repositories"

	"github.com/google/uuid"
)

type Engine struct {
	log         *slog.Logger
	registry    *Registry
	broadcaster *Broadcaster
	store       repositories.IMessageRepository
	index       repositories.IMessageIndex
	membership  contract.IMembership
	pages       contract.IPageCounter
	moderator   moderation.Moderator
}

func NewEngine(log *slog.Logger, registry *Registry, broadcaster *Broadcaster,
	store repositories.IMessageRepository, index repositories.IMessageIndex,
	membership contract.IMembership, pages contract.IPageCounter,
	moderator moderation.Moderator) *Engine {
	return &Engine{
		log:         log,
		registry:    registry,
		broadcaster: broadcaster,
		store:       store,
		index:       index,
		membership:  membership,
		pages:       pages,
		moderator:   moderator,
	}
}

func (e *Engine) Registry() *Registry { return e.registry }

// Join binds the caller's sync connection to its session, creating the
// session on first use. A previous connection of the same participant is
// closed so exactly one logical connection remains. The joiner is brought
// up to date with the current leader, page, and mode through its own sink.
func (e *Engine) Join(ctx context.Context, cmd domain.JoinCommand, sink contract.EventSink) error {
	ok, err := e.membership.IsMember(ctx, cmd.SessionID, cmd.UserID)
	if err != nil {
		e.log.Error("Membership check failed", "session_id", cmd.SessionID, "user_id", cmd.UserID, "error", err)
		return errors.ErrNotMember
	}
	if !ok {
		return errors.ErrNotMember
	}

	s := e.registry.GetOrCreate(cmd.SessionID)
	replaced, becameLeader := s.Join(domain.Participant{
		ID:          cmd.UserID,
		DisplayName: cmd.DisplayName,
		Host:        cmd.Host,
		AvatarURL:   cmd.AvatarURL,
	}, sink)
	if replaced != nil {
		replaced.Close()
	}

	e.broadcaster.Broadcast(ctx, s, SyncChannel, event.ParticipantJoined{
		SessionID:   cmd.SessionID,
		UserID:      cmd.UserID,
		DisplayName: cmd.DisplayName,
		Host:        cmd.Host,
	})
	if becameLeader {
		e.broadcaster.Broadcast(ctx, s, SyncChannel, event.LeaderChanged{
			SessionID: cmd.SessionID,
			LeaderID:  cmd.UserID,
		})
	}

	// Re-anchor the joiner directly: a rejoining follower needs the
	// current page before the next leader move arrives.
	e.catchUp(ctx, s, sink)
	return nil
}

func (e *Engine) catchUp(ctx context.Context, s *Session, sink contract.EventSink) {
	snapshot := s.Snapshot()
	catchUp := []event.DomainEvent{
		event.ModeChanged{SessionID: s.ID, Mode: snapshot.Mode},
		event.LeaderChanged{SessionID: s.ID, LeaderID: snapshot.LeaderID},
		event.PageTurned{SessionID: s.ID, LeaderID: snapshot.LeaderID, Page: snapshot.CurrentPage},
	}
	for _, evt := range catchUp {
		if err := sink.Consume(ctx, evt); err != nil {
			e.log.Warn("Catch-up delivery failed", "session_id", s.ID, "error", err)
			return
		}
	}
}

// Leave drops the caller's connection. Participant metadata and progress
// survive for a later rejoin; a leaving leader vacates leadership. A non-nil
// sink makes the leave a no-op when another connection replaced it meanwhile.
func (e *Engine) Leave(ctx context.Context, cmd domain.LeaveCommand, sink contract.EventSink) {
	s, ok := e.registry.Get(cmd.SessionID)
	if !ok {
		return
	}
	removed, wasLeader, left := s.Leave(cmd.UserID, sink)
	if !left {
		return
	}
	if removed != nil {
		removed.Close()
	}

	e.broadcaster.Broadcast(ctx, s, SyncChannel, event.ParticipantLeft{
		SessionID: cmd.SessionID,
		UserID:    cmd.UserID,
	})
	if wasLeader {
		e.broadcaster.Broadcast(ctx, s, SyncChannel, event.LeaderChanged{
			SessionID: cmd.SessionID,
			LeaderID:  "",
		})
	}
}

// MovePage applies a page-move. The leader's moves become the session page
// and are fanned out; anyone else only advances their own progress entry
// and gets the applied page back in the result.
func (e *Engine) MovePage(ctx context.Context, cmd domain.PageMoveCommand) (domain.MoveResult, error) {
	s, ok := e.registry.Get(cmd.SessionID)
	if !ok {
		return domain.MoveResult{}, errors.ErrUnknownSession
	}

	res := s.MovePage(cmd.UserID, cmd.Page)
	if res.ByLeader {
		e.broadcaster.Broadcast(ctx, s, SyncChannel, event.PageTurned{
			SessionID: cmd.SessionID,
			LeaderID:  cmd.UserID,
			Page:      res.Page,
		})
	}
	return res, nil
}

// UpdateProgress records the caller's reading position regardless of
// leadership and shares it as a progress indicator.
func (e *Engine) UpdateProgress(ctx context.Context, cmd domain.ProgressCommand) error {
	s, ok := e.registry.Get(cmd.SessionID)
	if !ok {
		return errors.ErrUnknownSession
	}
	s.UpdateProgress(cmd.UserID, cmd.Page)

	percent := 0.0
	if total, err := e.pages.PageCount(ctx, cmd.SessionID); err == nil {
		percent = domain.ProgressPercent(cmd.Page, total)
	}
	e.broadcaster.Broadcast(ctx, s, SyncChannel, event.ProgressUpdated{
		SessionID: cmd.SessionID,
		UserID:    cmd.UserID,
		Page:      cmd.Page,
		Percent:   percent,
	})
	return nil
}

// ChangeLeader stores the new leader once the authorization collaborator
// approves it, then announces the transition so followers re-anchor.
func (e *Engine) ChangeLeader(ctx context.Context, cmd domain.LeaderChangeCommand) error {
	s, ok := e.registry.Get(cmd.SessionID)
	if !ok {
		return errors.ErrUnknownSession
	}

	allowed, err := e.membership.CanLead(ctx, cmd.SessionID, cmd.NewLeaderID)
	if err != nil {
		e.log.Error("Leader authorization check failed", "session_id", cmd.SessionID, "error", err)
		return errors.ErrNotAuthorized
	}
	if !allowed {
		return errors.ErrNotAuthorized
	}

	s.ChangeLeader(cmd.NewLeaderID)
	e.broadcaster.Broadcast(ctx, s, SyncChannel, event.LeaderChanged{
		SessionID: cmd.SessionID,
		LeaderID:  cmd.NewLeaderID,
	})
	return nil
}

func (e *Engine) ChangeMode(ctx context.Context, cmd domain.ModeChangeCommand) error {
	s, ok := e.registry.Get(cmd.SessionID)
	if !ok {
		return errors.ErrUnknownSession
	}
	s.SetMode(cmd.Mode)
	e.broadcaster.Broadcast(ctx, s, SyncChannel, event.ModeChanged{
		SessionID: cmd.SessionID,
		Mode:      cmd.Mode,
	})
	return nil
}

// BindChat registers a chat connection for the participant, replacing and
// closing a prior one.
func (e *Engine) BindChat(sessionID domain.SessionID, userID, displayName string, sink contract.EventSink) {
	s := e.registry.GetOrCreate(sessionID)
	if replaced := s.BindChat(userID, displayName, sink); replaced != nil {
		replaced.Close()
	}
}

func (e *Engine) UnbindChat(sessionID domain.SessionID, userID string, sink contract.EventSink) {
	if s, ok := e.registry.Get(sessionID); ok {
		s.UnbindChat(userID, sink)
	}
}

// Relay is the chat path: resolve, moderate, persist, then fan out to every
// chat connection of the session, the sender's own included.
//
// A failed store does not block delivery; the event goes out flagged as
// unconfirmed so clients can render it as pending instead of silently
// trusting a write that never happened.
func (e *Engine) Relay(ctx context.Context, cmd domain.PostMessageCommand) (domain.Message, error) {
	s, ok := e.registry.Get(cmd.SessionID)
	if !ok {
		e.log.Warn(fmt.Sprintf("Dropping chat message for unknown session %s", cmd.SessionID))
		return domain.Message{}, errors.ErrUnknownSession
	}
	sender, ok := s.Participant(cmd.SenderID)
	if !ok {
		e.log.Warn(fmt.Sprintf("Dropping chat message from unknown sender %s in session %s", cmd.SenderID, cmd.SessionID))
		return domain.Message{}, errors.ErrUnknownSender
	}

	content, censored := e.moderator.Censor(cmd.Content)
	if len(censored) > 0 {
		e.log.Info("Censored chat message", "session_id", cmd.SessionID, "sender_id", cmd.SenderID, "patterns", len(censored))
	}

	senderName := cmd.SenderName
	if senderName == "" {
		senderName = sender.DisplayName
	}
	message := domain.Message{
		ID:         uuid.New(),
		SessionID:  cmd.SessionID,
		SenderID:   cmd.SenderID,
		SenderName: senderName,
		Content:    content,
		Language:   moderation.DetectLanguage(content),
		CreatedAt:  cmd.CreatedAt,
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}

	disk := toDiskMessage(message)
	if err := e.store.StoreMessage(disk); err != nil {
		e.log.Error("Chat message not persisted, delivering unconfirmed",
			"session_id", cmd.SessionID, "message_id", message.ID, "error", err)
		message.Unconfirmed = true
	} else if err := e.index.Index(disk); err != nil {
		e.log.Warn("Chat message not indexed", "message_id", message.ID, "error", err)
	}

	e.broadcaster.Broadcast(ctx, s, ChatChannel, event.ChatMessage{
		ID:          message.ID,
		SessionID:   message.SessionID,
		SenderID:    message.SenderID,
		SenderName:  message.SenderName,
		Content:     message.Content,
		Language:    message.Language,
		At:          message.CreatedAt,
		Unconfirmed: message.Unconfirmed,
	})
	return message, nil
}

func (e *Engine) History(cmd domain.GetMessageCommand) ([]domain.Message, *string, error) {
	diskMessages, cursor, err := e.store.GetMessages(cmd.SessionID, cmd.Cursor)
	if err != nil {
		return nil, nil, err
	}
	return fromDiskMessages(diskMessages), cursor, nil
}

func (e *Engine) SearchMessages(ctx context.Context, sessionID domain.SessionID, terms string, limit int) ([]domain.Message, error) {
	hits, err := e.index.Search(ctx, sessionID, terms, limit)
	if err != nil {
		return nil, err
	}
	return fromDiskMessages(hits), nil
}

func toDiskMessage(m domain.Message) repositories.DiskMessage {
	return repositories.DiskMessage{
		ID:         m.ID,
		Session:    m.SessionID,
		Sender:     m.SenderID,
		SenderName: m.SenderName,
		Content:    m.Content,
		Language:   m.Language,
		At:         m.CreatedAt,
	}
}

func fromDiskMessages(diskMessages []repositories.DiskMessage) []domain.Message {
	messages := make([]domain.Message, 0, len(diskMessages))
	for _, dm := range diskMessages {
		messages = append(messages, domain.Message{
			ID:         dm.ID,
			SessionID:  dm.Session,
			SenderID:   dm.Sender,
			SenderName: dm.SenderName,
			Content:    dm.Content,
			Language:   dm.Language,
			CreatedAt:  dm.At,
		})
	}
	return messages
}
