package model

import "time"

// GeneralChatName is the chat created with every group and joined by every new
// profile in that group.
const GeneralChatName = "general"

type Chat struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	GroupID        string    `json:"group_id"`
	ParticipantIDs []string  `json:"participant_ids"`
}

type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	ChatID    string    `json:"chat_id"`
	ProfileID string    `json:"profile_id"`
}
