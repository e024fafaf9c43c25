package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/groupchat/internal/middleware"
	"github.com/groupchat/internal/repository"
	"github.com/groupchat/internal/service"
)

type ChatHandler struct {
	chats    *service.ChatService
	chatRepo *repository.ChatRepository
	profRepo *repository.ProfileRepository
}

func NewChatHandler(chats *service.ChatService, chatRepo *repository.ChatRepository, profRepo *repository.ProfileRepository) *ChatHandler {
	return &ChatHandler{chats: chats, chatRepo: chatRepo, profRepo: profRepo}
}

// Create makes a chat inside a group. When the caller holds a profile in that
// group, the profile joins the participant set (if not already listed) before
// the chat is persisted.
func (h *ChatHandler) Create(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")
	var data service.ChatData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := middleware.GetUserID(r.Context())
	creator, err := h.profRepo.GetByUserAndGroup(r.Context(), userID, groupID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		// caller has no profile here; nothing to enroll
	case err != nil:
		writeDomainError(w, "createChat creator lookup", err)
		return
	default:
		if !slices.Contains(data.ParticipantIDs, creator.ID) {
			data.ParticipantIDs = append(data.ParticipantIDs, creator.ID)
		}
	}

	chat, err := h.chats.CreateChat(r.Context(), &data, groupID)
	if err != nil {
		writeDomainError(w, "createChat", err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: chat.ID})
}

// List returns a group's chats, optionally only those containing the profile
// given in the profile_id query parameter.
func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")
	profileID := r.URL.Query().Get("profile_id")
	chats, err := h.chatRepo.ListByGroup(r.Context(), groupID, profileID)
	if err != nil {
		writeDomainError(w, "listChats", err)
		return
	}
	writeJSON(w, http.StatusOK, chats)
}

func (h *ChatHandler) Get(w http.ResponseWriter, r *http.Request) {
	chat, err := h.chatRepo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "getChat", err)
		return
	}
	writeJSON(w, http.StatusOK, chat)
}

func (h *ChatHandler) Update(w http.ResponseWriter, r *http.Request) {
	chat, err := h.chatRepo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "updateChat get", err)
		return
	}
	var data service.ChatData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.chats.UpdateChat(r.Context(), chat, &data)
	if err != nil {
		writeDomainError(w, "updateChat", err)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: updated.ID})
}

type postMessageRequest struct {
	Content   string `json:"content"`
	ChatID    string `json:"chat_id"`
	ProfileID string `json:"profile_id"`
}

func (h *ChatHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req postMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	msg, err := h.chats.PostMessage(r.Context(), req.Content, req.ChatID, req.ProfileID)
	if err != nil {
		writeDomainError(w, "postMessage", err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: msg.ID})
}

func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.chats.ListMessages(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "getMessages", err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}
