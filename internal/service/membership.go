package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/groupchat/internal/logger"
	"github.com/groupchat/internal/model"
	"github.com/groupchat/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

// User-visible duplicate messages. The same texts cover both the pre-check
// and the unique-constraint path, so a lost race reads identically.
const (
	duplicateMembershipMessage = "User already has a profile in this group"
	duplicateNameMessage       = "Profile name already exists in this group"
)

// MembershipService creates and updates groups and profiles. It owns the
// one-profile-per-user-per-group and unique-name-per-group invariants and the
// "general" chat auto-enrollment.
type MembershipService struct {
	pool     *pgxpool.Pool
	groups   *repository.GroupRepository
	profiles *repository.ProfileRepository
	chats    *repository.ChatRepository
}

func NewMembershipService(
	pool *pgxpool.Pool,
	groups *repository.GroupRepository,
	profiles *repository.ProfileRepository,
	chats *repository.ChatRepository,
) *MembershipService {
	return &MembershipService{pool: pool, groups: groups, profiles: profiles, chats: chats}
}

// CreateGroup creates a group together with its "general" chat (empty
// participant set) in one transaction: readers never observe a group without
// its general chat.
func (s *MembershipService) CreateGroup(ctx context.Context, data *GroupData) (*model.Group, error) {
	defer logger.DeferLogDuration("membership.CreateGroup", time.Now())()
	if err := ValidateGroupData(data); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	group := &model.Group{
		ID:          uuid.New().String(),
		Name:        data.Name,
		Picture:     data.Picture,
		MaxProfiles: data.MaxProfiles,
	}
	general := &model.Chat{
		ID:             uuid.New().String(),
		Name:           model.GeneralChatName,
		CreatedAt:      now,
		UpdatedAt:      now,
		GroupID:        group.ID,
		ParticipantIDs: []string{},
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("membership.CreateGroup begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.groups.WithTx(tx).Create(ctx, group); err != nil {
		return nil, err
	}
	if err := s.chats.WithTx(tx).Create(ctx, general); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("membership.CreateGroup commit: %w", err)
	}
	return group, nil
}

// UpdateGroup overwrites the group's name, picture and max_profiles. Chats
// and profiles are untouched.
func (s *MembershipService) UpdateGroup(ctx context.Context, group *model.Group, data *GroupData) (*model.Group, error) {
	defer logger.DeferLogDuration("membership.UpdateGroup", time.Now())()
	if err := ValidateGroupData(data); err != nil {
		return nil, err
	}
	group.Name = data.Name
	group.Picture = data.Picture
	group.MaxProfiles = data.MaxProfiles
	if err := s.groups.Update(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// CreateProfile creates the user's profile in a group and enrolls it into the
// group's "general" chat, all in one transaction. When the group has no
// general chat the enrollment is skipped silently.
func (s *MembershipService) CreateProfile(ctx context.Context, data *ProfileData, userID string) (*model.Profile, error) {
	defer logger.DeferLogDuration("membership.CreateProfile", time.Now())()
	if err := ValidateProfileData(data); err != nil {
		return nil, err
	}
	if _, err := s.profiles.GetByUserAndGroup(ctx, userID, data.GroupID); err == nil {
		return nil, newValidationError(duplicateMembershipMessage)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	taken, err := s.profiles.NameTaken(ctx, data.GroupID, data.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, newValidationError(duplicateNameMessage)
	}

	now := time.Now().UTC()
	profile := &model.Profile{
		ID:      uuid.New().String(),
		Name:    data.Name,
		Picture: data.Picture,
		Bio:     data.Bio,
		GroupID: data.GroupID,
		UserID:  userID,
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("membership.CreateProfile begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.profiles.WithTx(tx).Create(ctx, profile); err != nil {
		// Concurrent creates can both pass the checks above; the constraints
		// decide, and the error reads the same as the pre-check.
		switch {
		case repository.IsUniqueViolation(err, "profiles_group_user_key"):
			return nil, newValidationError(duplicateMembershipMessage)
		case repository.IsUniqueViolation(err, "profiles_group_name_key"):
			return nil, newValidationError(duplicateNameMessage)
		}
		return nil, err
	}

	txChats := s.chats.WithTx(tx)
	general, err := txChats.FindGeneral(ctx, data.GroupID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		// group without a general chat: skip enrollment
	case err != nil:
		return nil, err
	default:
		if err := txChats.AddParticipant(ctx, general.ID, profile.ID, now); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("membership.CreateProfile commit: %w", err)
	}
	return profile, nil
}

// HasProfile reports whether the user already holds a profile in the group.
func (s *MembershipService) HasProfile(ctx context.Context, userID, groupID string) (bool, error) {
	_, err := s.profiles.GetByUserAndGroup(ctx, userID, groupID)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
