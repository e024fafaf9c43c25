package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/groupchat/internal/auth"
	"github.com/groupchat/internal/model"
	"github.com/groupchat/internal/repository"
	"github.com/groupchat/internal/testdb"
)

// testEnv wires the services against the shared test database. Each call
// starts from truncated tables, so tests must not run in parallel.
type testEnv struct {
	pool       *pgxpool.Pool
	users      *repository.UserRepository
	groups     *repository.GroupRepository
	profiles   *repository.ProfileRepository
	chats      *repository.ChatRepository
	messages   *repository.MessageRepository
	jwt        *auth.JWTManager
	accounts   *AccountService
	membership *MembershipService
	chatSvc    *ChatService
	info       *UserInfoService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	pool := testdb.Connect(t)
	testdb.Reset(t, pool)

	users := repository.NewUserRepository(pool)
	groups := repository.NewGroupRepository(pool)
	profiles := repository.NewProfileRepository(pool)
	chats := repository.NewChatRepository(pool)
	messages := repository.NewMessageRepository(pool)
	jwtMgr := auth.NewJWTManager("test-secret", time.Hour)

	return &testEnv{
		pool:       pool,
		users:      users,
		groups:     groups,
		profiles:   profiles,
		chats:      chats,
		messages:   messages,
		jwt:        jwtMgr,
		accounts:   NewAccountService(users, jwtMgr),
		membership: NewMembershipService(pool, groups, profiles, chats),
		chatSvc:    NewChatService(pool, groups, profiles, chats, messages),
		info:       NewUserInfoService(users, groups, profiles, chats),
	}
}

func (e *testEnv) createUser(t *testing.T, email string) *model.User {
	t.Helper()
	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: "x",
		CreatedAt:    time.Now().UTC(),
	}
	if err := e.users.Create(context.Background(), user); err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func (e *testEnv) createGroup(t *testing.T, name string) *model.Group {
	t.Helper()
	group, err := e.membership.CreateGroup(context.Background(), &GroupData{Name: name, MaxProfiles: 10})
	if err != nil {
		t.Fatalf("create group %s: %v", name, err)
	}
	return group
}

func (e *testEnv) createProfile(t *testing.T, userID, groupID, name string) *model.Profile {
	t.Helper()
	profile, err := e.membership.CreateProfile(context.Background(), &ProfileData{Name: name, GroupID: groupID}, userID)
	if err != nil {
		t.Fatalf("create profile %s: %v", name, err)
	}
	return profile
}

func wantValidationError(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected validation error %q, got nil", msg)
	}
	if !IsValidation(err) {
		t.Fatalf("expected validation error %q, got %v", msg, err)
	}
	if err.Error() != msg {
		t.Errorf("error message = %q, want %q", err.Error(), msg)
	}
}
