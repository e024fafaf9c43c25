package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/groupchat/internal/repository"
	"github.com/groupchat/internal/service"
)

type GroupHandler struct {
	membership *service.MembershipService
	groupRepo  *repository.GroupRepository
	profRepo   *repository.ProfileRepository
}

func NewGroupHandler(membership *service.MembershipService, groupRepo *repository.GroupRepository, profRepo *repository.ProfileRepository) *GroupHandler {
	return &GroupHandler{membership: membership, groupRepo: groupRepo, profRepo: profRepo}
}

func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var data service.GroupData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	group, err := h.membership.CreateGroup(r.Context(), &data)
	if err != nil {
		writeDomainError(w, "createGroup", err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: group.ID})
}

func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groupRepo.ListAll(r.Context())
	if err != nil {
		writeDomainError(w, "listGroups", err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func (h *GroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	group, err := h.groupRepo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "getGroup", err)
		return
	}
	writeJSON(w, http.StatusOK, group)
}

func (h *GroupHandler) Update(w http.ResponseWriter, r *http.Request) {
	group, err := h.groupRepo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "updateGroup get", err)
		return
	}
	var data service.GroupData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.membership.UpdateGroup(r.Context(), group, &data)
	if err != nil {
		writeDomainError(w, "updateGroup", err)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: updated.ID})
}

// Delete removes the group together with its profiles, chats and messages.
func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.groupRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, "deleteGroup", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GroupHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profRepo.ListByGroup(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "listGroupProfiles", err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}
