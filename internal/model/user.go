package model

import "time"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserInfo is the consolidated view of a user's memberships: every profile the
// user holds, the group each profile lives in, and all chats of those groups.
type UserInfo struct {
	ID       string    `json:"id"`
	Email    string    `json:"email"`
	Profiles []Profile `json:"profiles"`
	Groups   []Group   `json:"groups"`
	Chats    []Chat    `json:"chats"`
}
