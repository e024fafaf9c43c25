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

const profileCols = `id, name, picture, bio, group_id, user_id`

type ProfileRepository struct {
	db DB
}

func NewProfileRepository(db DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// WithTx returns a copy of the repository bound to the transaction.
func (r *ProfileRepository) WithTx(tx pgx.Tx) *ProfileRepository {
	return &ProfileRepository{db: tx}
}

func scanProfile(s interface{ Scan(dest ...any) error }, p *model.Profile) error {
	return s.Scan(&p.ID, &p.Name, &p.Picture, &p.Bio, &p.GroupID, &p.UserID)
}

func (r *ProfileRepository) Create(ctx context.Context, p *model.Profile) error {
	defer logger.DeferLogDuration("profile.Create", time.Now())()
	_, err := r.db.Exec(ctx,
		`INSERT INTO profiles (id, name, picture, bio, group_id, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.Name, p.Picture, p.Bio, p.GroupID, p.UserID,
	)
	if err != nil {
		return fmt.Errorf("profileRepo.Create: %w", err)
	}
	return nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	defer logger.DeferLogDuration("profile.GetByID", time.Now())()
	p := &model.Profile{}
	row := r.db.QueryRow(ctx, `SELECT `+profileCols+` FROM profiles WHERE id = $1`, id)
	if err := scanProfile(row, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("profileRepo.GetByID: %w", err)
	}
	return p, nil
}

// GetByUserAndGroup returns the user's profile in the group, if any.
func (r *ProfileRepository) GetByUserAndGroup(ctx context.Context, userID, groupID string) (*model.Profile, error) {
	defer logger.DeferLogDuration("profile.GetByUserAndGroup", time.Now())()
	p := &model.Profile{}
	row := r.db.QueryRow(ctx,
		`SELECT `+profileCols+` FROM profiles WHERE user_id = $1 AND group_id = $2`,
		userID, groupID,
	)
	if err := scanProfile(row, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("profileRepo.GetByUserAndGroup: %w", err)
	}
	return p, nil
}

// NameTaken reports whether a profile with the name already exists in the group.
func (r *ProfileRepository) NameTaken(ctx context.Context, groupID, name string) (bool, error) {
	defer logger.DeferLogDuration("profile.NameTaken", time.Now())()
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM profiles WHERE group_id = $1 AND name = $2)`,
		groupID, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("profileRepo.NameTaken: %w", err)
	}
	return exists, nil
}

// GetByIDs resolves profile ids to profiles. Unknown ids are simply absent
// from the result; the caller compares counts.
func (r *ProfileRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Profile, error) {
	defer logger.DeferLogDuration("profile.GetByIDs", time.Now())()
	if len(ids) == 0 {
		return []model.Profile{}, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+profileCols+` FROM profiles WHERE id = ANY($1)`, ids,
	)
	if err != nil {
		return nil, fmt.Errorf("profileRepo.GetByIDs query: %w", err)
	}
	defer rows.Close()

	profiles := make([]model.Profile, 0, len(ids))
	for rows.Next() {
		var p model.Profile
		if err := scanProfile(rows, &p); err != nil {
			return nil, fmt.Errorf("profileRepo.GetByIDs scan: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("profileRepo.GetByIDs rows: %w", err)
	}
	return profiles, nil
}

func (r *ProfileRepository) ListByUser(ctx context.Context, userID string) ([]model.Profile, error) {
	defer logger.DeferLogDuration("profile.ListByUser", time.Now())()
	return r.list(ctx, `SELECT `+profileCols+` FROM profiles WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *ProfileRepository) ListByGroup(ctx context.Context, groupID string) ([]model.Profile, error) {
	defer logger.DeferLogDuration("profile.ListByGroup", time.Now())()
	return r.list(ctx, `SELECT `+profileCols+` FROM profiles WHERE group_id = $1 ORDER BY name`, groupID)
}

func (r *ProfileRepository) ListAll(ctx context.Context) ([]model.Profile, error) {
	defer logger.DeferLogDuration("profile.ListAll", time.Now())()
	return r.list(ctx, `SELECT `+profileCols+` FROM profiles ORDER BY id`)
}

func (r *ProfileRepository) list(ctx context.Context, sql string, args ...any) ([]model.Profile, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("profileRepo.list query: %w", err)
	}
	defer rows.Close()

	profiles := make([]model.Profile, 0, 8)
	for rows.Next() {
		var p model.Profile
		if err := scanProfile(rows, &p); err != nil {
			return nil, fmt.Errorf("profileRepo.list scan: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("profileRepo.list rows: %w", err)
	}
	return profiles, nil
}
