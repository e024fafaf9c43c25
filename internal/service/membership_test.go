package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/groupchat/internal/model"
	"github.com/groupchat/internal/repository"
)

func TestCreateGroupCreatesGeneralChat(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	group := env.createGroup(t, "family")

	general, err := env.chats.FindGeneral(ctx, group.ID)
	if err != nil {
		t.Fatalf("FindGeneral: %v", err)
	}
	if general.Name != model.GeneralChatName {
		t.Errorf("general chat name = %q, want %q", general.Name, model.GeneralChatName)
	}
	if general.GroupID != group.ID {
		t.Errorf("general chat group = %q, want %q", general.GroupID, group.ID)
	}
	if len(general.ParticipantIDs) != 0 {
		t.Errorf("new general chat has %d participants, want 0", len(general.ParticipantIDs))
	}
}

func TestCreateProfileAutoEnrollsIntoGeneral(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	group := env.createGroup(t, "family")
	user := env.createUser(t, "alice@example.com")
	profile := env.createProfile(t, user.ID, group.ID, "alice")

	general, err := env.chats.FindGeneral(ctx, group.ID)
	if err != nil {
		t.Fatalf("FindGeneral: %v", err)
	}
	if len(general.ParticipantIDs) != 1 || general.ParticipantIDs[0] != profile.ID {
		t.Errorf("general participants = %v, want [%s]", general.ParticipantIDs, profile.ID)
	}
}

func TestCreateProfileDuplicateMembership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	group := env.createGroup(t, "family")
	user := env.createUser(t, "alice@example.com")
	env.createProfile(t, user.ID, group.ID, "alice")

	_, err := env.membership.CreateProfile(ctx, &ProfileData{Name: "alice2", GroupID: group.ID}, user.ID)
	wantValidationError(t, err, "User already has a profile in this group")
}

func TestCreateProfileDuplicateName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	group := env.createGroup(t, "family")
	alice := env.createUser(t, "alice@example.com")
	bob := env.createUser(t, "bob@example.com")
	env.createProfile(t, alice.ID, group.ID, "buddy")

	_, err := env.membership.CreateProfile(ctx, &ProfileData{Name: "buddy", GroupID: group.ID}, bob.ID)
	wantValidationError(t, err, "Profile name already exists in this group")
}

func TestCreateProfileSameNameInDifferentGroups(t *testing.T) {
	env := newTestEnv(t)

	g1 := env.createGroup(t, "family")
	g2 := env.createGroup(t, "work")
	user := env.createUser(t, "alice@example.com")

	env.createProfile(t, user.ID, g1.ID, "alice")
	env.createProfile(t, user.ID, g2.ID, "alice")
}

func TestCreateProfileWithoutGeneralChat(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// group inserted directly, bypassing the general chat creation
	group := &model.Group{ID: uuid.New().String(), Name: "bare", MaxProfiles: 5}
	if err := env.groups.Create(ctx, group); err != nil {
		t.Fatalf("create group: %v", err)
	}
	user := env.createUser(t, "alice@example.com")

	profile, err := env.membership.CreateProfile(ctx, &ProfileData{Name: "alice", GroupID: group.ID}, user.ID)
	if err != nil {
		t.Fatalf("CreateProfile without general chat: %v", err)
	}
	if profile.GroupID != group.ID {
		t.Errorf("profile group = %q, want %q", profile.GroupID, group.ID)
	}
}

func TestCreateProfileUnknownGroup(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.createUser(t, "alice@example.com")
	_, err := env.membership.CreateProfile(ctx, &ProfileData{Name: "alice", GroupID: uuid.New().String()}, user.ID)
	if err == nil {
		t.Fatal("CreateProfile accepted an unknown group")
	}
}

func TestUpdateGroup(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	group := env.createGroup(t, "family")
	_, err := env.membership.UpdateGroup(ctx, group, &GroupData{Name: "renamed", Picture: "pic.png", MaxProfiles: 3})
	if err != nil {
		t.Fatalf("UpdateGroup: %v", err)
	}

	got, err := env.groups.GetByID(ctx, group.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "renamed" || got.Picture != "pic.png" || got.MaxProfiles != 3 {
		t.Errorf("updated group = %+v", got)
	}
}

func TestDeleteGroupCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	group := env.createGroup(t, "family")
	user := env.createUser(t, "alice@example.com")
	profile := env.createProfile(t, user.ID, group.ID, "alice")
	general, err := env.chats.FindGeneral(ctx, group.ID)
	if err != nil {
		t.Fatalf("FindGeneral: %v", err)
	}
	if _, err := env.chatSvc.PostMessage(ctx, "hi", general.ID, profile.ID); err != nil {
		t.Fatalf("PostMessage: %v", err)
	}

	if err := env.groups.Delete(ctx, group.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := env.chats.GetByID(ctx, general.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("chat survived group deletion: %v", err)
	}
	if _, err := env.profiles.GetByID(ctx, profile.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("profile survived group deletion: %v", err)
	}
}

func TestHasProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	group := env.createGroup(t, "family")
	user := env.createUser(t, "alice@example.com")

	has, err := env.membership.HasProfile(ctx, user.ID, group.ID)
	if err != nil {
		t.Fatalf("HasProfile: %v", err)
	}
	if has {
		t.Error("HasProfile true before the profile exists")
	}

	env.createProfile(t, user.ID, group.ID, "alice")
	has, err = env.membership.HasProfile(ctx, user.ID, group.ID)
	if err != nil {
		t.Fatalf("HasProfile: %v", err)
	}
	if !has {
		t.Error("HasProfile false after the profile was created")
	}
}

func TestCreateGroupSetsTimestamps(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Minute)
	group := env.createGroup(t, "family")
	general, err := env.chats.FindGeneral(ctx, group.ID)
	if err != nil {
		t.Fatalf("FindGeneral: %v", err)
	}
	if general.CreatedAt.Before(before) {
		t.Errorf("created_at %v looks unset", general.CreatedAt)
	}
	if general.UpdatedAt.Before(general.CreatedAt) {
		t.Errorf("updated_at %v before created_at %v", general.UpdatedAt, general.CreatedAt)
	}
}
