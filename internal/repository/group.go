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

type GroupRepository struct {
	db DB
}

func NewGroupRepository(db DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// WithTx returns a copy of the repository bound to the transaction.
func (r *GroupRepository) WithTx(tx pgx.Tx) *GroupRepository {
	return &GroupRepository{db: tx}
}

func (r *GroupRepository) Create(ctx context.Context, g *model.Group) error {
	defer logger.DeferLogDuration("group.Create", time.Now())()
	_, err := r.db.Exec(ctx,
		`INSERT INTO groups (id, name, picture, max_profiles)
		 VALUES ($1, $2, $3, $4)`,
		g.ID, g.Name, g.Picture, g.MaxProfiles,
	)
	if err != nil {
		return fmt.Errorf("groupRepo.Create: %w", err)
	}
	return nil
}

func (r *GroupRepository) GetByID(ctx context.Context, id string) (*model.Group, error) {
	defer logger.DeferLogDuration("group.GetByID", time.Now())()
	g := &model.Group{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, picture, max_profiles FROM groups WHERE id = $1`, id,
	).Scan(&g.ID, &g.Name, &g.Picture, &g.MaxProfiles)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("groupRepo.GetByID: %w", err)
	}
	return g, nil
}

func (r *GroupRepository) Update(ctx context.Context, g *model.Group) error {
	defer logger.DeferLogDuration("group.Update", time.Now())()
	tag, err := r.db.Exec(ctx,
		`UPDATE groups SET name = $1, picture = $2, max_profiles = $3 WHERE id = $4`,
		g.Name, g.Picture, g.MaxProfiles, g.ID,
	)
	if err != nil {
		return fmt.Errorf("groupRepo.Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the group. Profiles, chats, participants and messages of the
// group go with it (ON DELETE CASCADE).
func (r *GroupRepository) Delete(ctx context.Context, id string) error {
	defer logger.DeferLogDuration("group.Delete", time.Now())()
	tag, err := r.db.Exec(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("groupRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GroupRepository) ListAll(ctx context.Context) ([]model.Group, error) {
	defer logger.DeferLogDuration("group.ListAll", time.Now())()
	rows, err := r.db.Query(ctx, `SELECT id, name, picture, max_profiles FROM groups ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("groupRepo.ListAll query: %w", err)
	}
	defer rows.Close()

	groups := make([]model.Group, 0, 16)
	for rows.Next() {
		var g model.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Picture, &g.MaxProfiles); err != nil {
			return nil, fmt.Errorf("groupRepo.ListAll scan: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("groupRepo.ListAll rows: %w", err)
	}
	return groups, nil
}
