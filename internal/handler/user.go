package handler

import (
	"errors"
	"net/http"

	"github.com/groupchat/internal/middleware"
	"github.com/groupchat/internal/repository"
	"github.com/groupchat/internal/service"
)

type UserHandler struct {
	info *service.UserInfoService
}

func NewUserHandler(info *service.UserInfoService) *UserHandler {
	return &UserHandler{info: info}
}

// GetMe returns the authenticated user's consolidated view: profiles, the
// groups behind them, and all chats of those groups.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	info, err := h.info.GetUserInfo(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeDomainError(w, "getMe", err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}
