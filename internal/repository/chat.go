package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/groupchat/internal/logger"
	"github.com/groupchat/internal/model"
	"github.com/jackc/pgx/v5"
)

// chatCols selects the chat row together with its participant profile ids.
const chatCols = `c.id, c.name, c.created_at, c.updated_at, c.group_id,
	ARRAY(SELECT cp.profile_id FROM chat_participants cp WHERE cp.chat_id = c.id ORDER BY cp.profile_id)`

type ChatRepository struct {
	db DB
}

func NewChatRepository(db DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// WithTx returns a copy of the repository bound to the transaction.
func (r *ChatRepository) WithTx(tx pgx.Tx) *ChatRepository {
	return &ChatRepository{db: tx}
}

func scanChat(s interface{ Scan(dest ...any) error }, c *model.Chat) error {
	return s.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt, &c.GroupID, &c.ParticipantIDs)
}

func (r *ChatRepository) Create(ctx context.Context, c *model.Chat) error {
	defer logger.DeferLogDuration("chat.Create", time.Now())()
	_, err := r.db.Exec(ctx,
		`INSERT INTO chats (id, name, created_at, updated_at, group_id)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.CreatedAt, c.UpdatedAt, c.GroupID,
	)
	if err != nil {
		return fmt.Errorf("chatRepo.Create: %w", err)
	}
	return nil
}

func (r *ChatRepository) GetByID(ctx context.Context, id string) (*model.Chat, error) {
	defer logger.DeferLogDuration("chat.GetByID", time.Now())()
	c := &model.Chat{}
	row := r.db.QueryRow(ctx, `SELECT `+chatCols+` FROM chats c WHERE c.id = $1`, id)
	if err := scanChat(row, c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("chatRepo.GetByID: %w", err)
	}
	return c, nil
}

// FindGeneral returns the group's "general" chat.
func (r *ChatRepository) FindGeneral(ctx context.Context, groupID string) (*model.Chat, error) {
	defer logger.DeferLogDuration("chat.FindGeneral", time.Now())()
	c := &model.Chat{}
	row := r.db.QueryRow(ctx,
		`SELECT `+chatCols+` FROM chats c WHERE c.group_id = $1 AND c.name = $2`,
		groupID, model.GeneralChatName,
	)
	if err := scanChat(row, c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("chatRepo.FindGeneral: %w", err)
	}
	return c, nil
}

// Rename sets the chat name and refreshes updated_at.
func (r *ChatRepository) Rename(ctx context.Context, id, name string, now time.Time) error {
	defer logger.DeferLogDuration("chat.Rename", time.Now())()
	tag, err := r.db.Exec(ctx,
		`UPDATE chats SET name = $1, updated_at = $2 WHERE id = $3`,
		name, now, id,
	)
	if err != nil {
		return fmt.Errorf("chatRepo.Rename: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AddParticipant appends a profile to the chat's participant set (no-op when
// already present) and refreshes updated_at.
func (r *ChatRepository) AddParticipant(ctx context.Context, chatID, profileID string, now time.Time) error {
	defer logger.DeferLogDuration("chat.AddParticipant", time.Now())()
	_, err := r.db.Exec(ctx,
		`INSERT INTO chat_participants (chat_id, profile_id)
		 VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		chatID, profileID,
	)
	if err != nil {
		return fmt.Errorf("chatRepo.AddParticipant: %w", err)
	}
	if _, err := r.db.Exec(ctx, `UPDATE chats SET updated_at = $1 WHERE id = $2`, now, chatID); err != nil {
		return fmt.Errorf("chatRepo.AddParticipant touch: %w", err)
	}
	return nil
}

// SetParticipants replaces the chat's participant set with exactly the given
// profiles and refreshes updated_at. Participants not listed are removed.
func (r *ChatRepository) SetParticipants(ctx context.Context, chatID string, profileIDs []string, now time.Time) error {
	defer logger.DeferLogDuration("chat.SetParticipants", time.Now())()
	if _, err := r.db.Exec(ctx, `DELETE FROM chat_participants WHERE chat_id = $1`, chatID); err != nil {
		return fmt.Errorf("chatRepo.SetParticipants clear: %w", err)
	}
	for _, pid := range profileIDs {
		_, err := r.db.Exec(ctx,
			`INSERT INTO chat_participants (chat_id, profile_id)
			 VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			chatID, pid,
		)
		if err != nil {
			return fmt.Errorf("chatRepo.SetParticipants insert: %w", err)
		}
	}
	if _, err := r.db.Exec(ctx, `UPDATE chats SET updated_at = $1 WHERE id = $2`, now, chatID); err != nil {
		return fmt.Errorf("chatRepo.SetParticipants touch: %w", err)
	}
	return nil
}

// ListByGroup returns the group's chats, optionally only those that contain
// the given participant profile id.
func (r *ChatRepository) ListByGroup(ctx context.Context, groupID, participantID string) ([]model.Chat, error) {
	defer logger.DeferLogDuration("chat.ListByGroup", time.Now())()
	if participantID != "" {
		return r.list(ctx,
			`SELECT `+chatCols+` FROM chats c
			 WHERE c.group_id = $1
			   AND EXISTS (SELECT 1 FROM chat_participants cp WHERE cp.chat_id = c.id AND cp.profile_id = $2)
			 ORDER BY c.created_at`,
			groupID, participantID)
	}
	return r.list(ctx,
		`SELECT `+chatCols+` FROM chats c WHERE c.group_id = $1 ORDER BY c.created_at`,
		groupID)
}

// ListByGroupIDs returns all chats whose group_id is in the set.
func (r *ChatRepository) ListByGroupIDs(ctx context.Context, groupIDs []string) ([]model.Chat, error) {
	defer logger.DeferLogDuration("chat.ListByGroupIDs", time.Now())()
	if len(groupIDs) == 0 {
		return []model.Chat{}, nil
	}
	return r.list(ctx,
		`SELECT `+chatCols+` FROM chats c WHERE c.group_id = ANY($1) ORDER BY c.created_at`,
		groupIDs)
}

func (r *ChatRepository) list(ctx context.Context, sql string, args ...any) ([]model.Chat, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("chatRepo.list query: %w", err)
	}
	defer rows.Close()

	chats := make([]model.Chat, 0, 8)
	for rows.Next() {
		var c model.Chat
		if err := scanChat(rows, &c); err != nil {
			return nil, fmt.Errorf("chatRepo.list scan: %w", err)
		}
		chats = append(chats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("chatRepo.list rows: %w", err)
	}
	return chats, nil
}
