package handlers

import (
	"ClientAdmin/internal/middleware"
	"ClientAdmin/internal/repo"
	"net/http"

	"go.uber.org/zap"
)

// InteresHandler serves the read-only interest catalogue.
type InteresHandler struct {
	Repo   repo.InteresRepository
	Logger *zap.SugaredLogger
}

func NewInteresHandler(r repo.InteresRepository, logger *zap.SugaredLogger) *InteresHandler {
	return &InteresHandler{Repo: r, Logger: logger}
}

func (h *InteresHandler) Listado(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	list, err := h.Repo.List(r.Context())
	if err != nil {
		h.Logger.Errorw("Intereses: repo error", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, list)
}
