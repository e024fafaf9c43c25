package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/groupchat/internal/logger"
	"github.com/groupchat/internal/model"
	"github.com/groupchat/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ChatService creates and updates chats with explicit participant sets and
// handles messages. Every participant must hold a profile in the chat's group.
type ChatService struct {
	pool     *pgxpool.Pool
	groups   *repository.GroupRepository
	profiles *repository.ProfileRepository
	chats    *repository.ChatRepository
	messages *repository.MessageRepository
}

func NewChatService(
	pool *pgxpool.Pool,
	groups *repository.GroupRepository,
	profiles *repository.ProfileRepository,
	chats *repository.ChatRepository,
	messages *repository.MessageRepository,
) *ChatService {
	return &ChatService{pool: pool, groups: groups, profiles: profiles, chats: chats, messages: messages}
}

// resolveParticipants resolves participant ids to profiles and checks they
// all belong to the group. The resolved count must match the requested count,
// so unknown ids (and duplicated ids in the request) are rejected.
func (s *ChatService) resolveParticipants(ctx context.Context, ids []string, groupID string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}
	profiles, err := s.profiles.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(profiles) != len(ids) {
		return nil, newValidationError("One or more profiles not found")
	}
	resolved := make([]string, 0, len(profiles))
	for _, p := range profiles {
		if p.GroupID != groupID {
			return nil, newValidationError("All participants must belong to the same group")
		}
		resolved = append(resolved, p.ID)
	}
	return resolved, nil
}

// CreateChat creates a chat in the group with the resolved participant set,
// atomically with the participant rows.
func (s *ChatService) CreateChat(ctx context.Context, data *ChatData, groupID string) (*model.Chat, error) {
	defer logger.DeferLogDuration("chat.CreateChat", time.Now())()
	if err := ValidateChatData(data); err != nil {
		return nil, err
	}
	if _, err := s.groups.GetByID(ctx, groupID); err != nil {
		return nil, err
	}
	participants, err := s.resolveParticipants(ctx, data.ParticipantIDs, groupID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	chat := &model.Chat{
		ID:             uuid.New().String(),
		Name:           data.Name,
		CreatedAt:      now,
		UpdatedAt:      now,
		GroupID:        groupID,
		ParticipantIDs: participants,
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("chat.CreateChat begin: %w", err)
	}
	defer tx.Rollback(ctx)

	txChats := s.chats.WithTx(tx)
	if err := txChats.Create(ctx, chat); err != nil {
		return nil, err
	}
	if len(participants) > 0 {
		if err := txChats.SetParticipants(ctx, chat.ID, participants, now); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("chat.CreateChat commit: %w", err)
	}
	return chat, nil
}

// UpdateChat replaces the chat's name and participant set. The request's
// participant list is the new complete set: anything not listed is removed.
func (s *ChatService) UpdateChat(ctx context.Context, chat *model.Chat, data *ChatData) (*model.Chat, error) {
	defer logger.DeferLogDuration("chat.UpdateChat", time.Now())()
	if err := ValidateChatData(data); err != nil {
		return nil, err
	}
	participants, err := s.resolveParticipants(ctx, data.ParticipantIDs, chat.GroupID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("chat.UpdateChat begin: %w", err)
	}
	defer tx.Rollback(ctx)

	txChats := s.chats.WithTx(tx)
	if err := txChats.Rename(ctx, chat.ID, data.Name, now); err != nil {
		return nil, err
	}
	if err := txChats.SetParticipants(ctx, chat.ID, participants, now); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("chat.UpdateChat commit: %w", err)
	}

	chat.Name = data.Name
	chat.UpdatedAt = now
	chat.ParticipantIDs = participants
	return chat, nil
}

// PostMessage appends a message to a chat. The chat and the authoring
// profile must exist.
func (s *ChatService) PostMessage(ctx context.Context, content, chatID, profileID string) (*model.Message, error) {
	defer logger.DeferLogDuration("chat.PostMessage", time.Now())()
	if content == "" {
		return nil, newValidationError("Invalid message content")
	}
	if _, err := s.chats.GetByID(ctx, chatID); err != nil {
		return nil, err
	}
	if _, err := s.profiles.GetByID(ctx, profileID); err != nil {
		return nil, err
	}
	msg := &model.Message{
		ID:        uuid.New().String(),
		Content:   content,
		CreatedAt: time.Now().UTC(),
		ChatID:    chatID,
		ProfileID: profileID,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		if repository.IsForeignKeyViolation(err) {
			// chat or profile vanished between the checks and the insert
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return msg, nil
}

// ListMessages returns the chat's messages ordered by created_at ascending.
func (s *ChatService) ListMessages(ctx context.Context, chatID string) ([]model.Message, error) {
	return s.messages.ListByChat(ctx, chatID)
}
