package service

import (
	"context"
	"errors"
	"time"

	"github.com/groupchat/internal/logger"
	"github.com/groupchat/internal/model"
	"github.com/groupchat/internal/repository"
)

// UserInfoService builds the consolidated view of a user's profiles, groups
// and chats. Read-only.
type UserInfoService struct {
	users    *repository.UserRepository
	groups   *repository.GroupRepository
	profiles *repository.ProfileRepository
	chats    *repository.ChatRepository
}

func NewUserInfoService(
	users *repository.UserRepository,
	groups *repository.GroupRepository,
	profiles *repository.ProfileRepository,
	chats *repository.ChatRepository,
) *UserInfoService {
	return &UserInfoService{users: users, groups: groups, profiles: profiles, chats: chats}
}

// GetUserInfo gathers the user's profiles, the group behind each profile and
// every chat of those groups, including chats the user's profiles have not
// joined. Groups appear in profile fetch order; a profile whose group record
// is missing is skipped.
func (s *UserInfoService) GetUserInfo(ctx context.Context, userID string) (*model.UserInfo, error) {
	defer logger.DeferLogDuration("userinfo.GetUserInfo", time.Now())()
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profiles, err := s.profiles.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	groups := make([]model.Group, 0, len(profiles))
	groupIDs := make([]string, 0, len(profiles))
	for _, p := range profiles {
		group, err := s.groups.GetByID(ctx, p.GroupID)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		groups = append(groups, *group)
		groupIDs = append(groupIDs, group.ID)
	}

	chats, err := s.chats.ListByGroupIDs(ctx, groupIDs)
	if err != nil {
		return nil, err
	}

	return &model.UserInfo{
		ID:       user.ID,
		Email:    user.Email,
		Profiles: profiles,
		Groups:   groups,
		Chats:    chats,
	}, nil
}
