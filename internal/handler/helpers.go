package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/groupchat/internal/logger"
	"github.com/groupchat/internal/repository"
	"github.com/groupchat/internal/service"
)

type messageResponse struct {
	Message string `json:"message"`
}

type idResponse struct {
	ID string `json:"id"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Errorf("writeJSON encode: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

// writeDomainError maps domain-layer failures onto the boundary contract:
// validation failures are 400 with their own message, unresolved ids are 404,
// anything else is logged and surfaced as an opaque 500.
func writeDomainError(w http.ResponseWriter, op string, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	default:
		logger.Errorf("%s: %v", op, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
