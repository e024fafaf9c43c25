package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/groupchat/internal/middleware"
	"github.com/groupchat/internal/repository"
	"github.com/groupchat/internal/service"
)

type ProfileHandler struct {
	membership *service.MembershipService
	profRepo   *repository.ProfileRepository
}

func NewProfileHandler(membership *service.MembershipService, profRepo *repository.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{membership: membership, profRepo: profRepo}
}

func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var data service.ProfileData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	userID := middleware.GetUserID(r.Context())
	profile, err := h.membership.CreateProfile(r.Context(), &data, userID)
	if err != nil {
		writeDomainError(w, "createProfile", err)
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

// Check reports whether the caller already holds a profile in the group. The
// reply mirrors the create-profile rejection so clients can probe first.
func (h *ProfileHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GroupID string `json:"group_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	userID := middleware.GetUserID(r.Context())
	has, err := h.membership.HasProfile(r.Context(), userID, req.GroupID)
	if err != nil {
		writeDomainError(w, "checkProfile", err)
		return
	}
	if has {
		writeError(w, http.StatusBadRequest, "User already has a profile in this group")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "No existing profile in this group"})
}

func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profRepo.ListAll(r.Context())
	if err != nil {
		writeDomainError(w, "listProfiles", err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profRepo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "getProfile", err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
