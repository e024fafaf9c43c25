package service

// GroupData is the payload for creating or updating a group.
type GroupData struct {
	Name        string `json:"name"`
	Picture     string `json:"picture"`
	MaxProfiles int    `json:"max_profiles"`
}

// ProfileData is the payload for creating a profile.
type ProfileData struct {
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Bio     string `json:"bio"`
	GroupID string `json:"group_id"`
}

// ChatData is the payload for creating or updating a chat. ParticipantIDs is
// the complete participant set, not a delta.
type ChatData struct {
	Name           string   `json:"name"`
	ParticipantIDs []string `json:"participant_ids"`
}

// ValidateGroupData checks the shape of a group payload. Side-effect-free;
// duplicate and capacity checks do not belong here.
func ValidateGroupData(data *GroupData) error {
	if data.Name == "" {
		return newValidationError("Invalid group name")
	}
	if data.MaxProfiles <= 0 {
		return newValidationError("Invalid max_profiles")
	}
	return nil
}

// ValidateProfileData checks the shape of a profile payload. The duplicate
// membership and duplicate name checks run in MembershipService next to the
// insert, where the store can answer them.
func ValidateProfileData(data *ProfileData) error {
	if data.Name == "" {
		return newValidationError("Invalid profile name")
	}
	if data.GroupID == "" {
		return newValidationError("Invalid group_id")
	}
	return nil
}

// ValidateChatData checks the shape of a chat payload. Participant resolution
// against a group runs in ChatService.
func ValidateChatData(data *ChatData) error {
	if data.Name == "" {
		return newValidationError("Invalid chat name")
	}
	return nil
}
