package model

// Group is a top-level community container. MaxProfiles is the advertised
// capacity; it is not enforced against the actual profile count.
type Group struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Picture     string `json:"picture"`
	MaxProfiles int    `json:"max_profiles"`
}

// Profile is a user's identity within one group and the unit of chat
// participation. A user holds at most one profile per group, and a profile
// name is unique within its group.
type Profile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Bio     string `json:"bio"`
	GroupID string `json:"group_id"`
	UserID  string `json:"user_id"`
}
