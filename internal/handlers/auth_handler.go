package handlers

import (
	"ClientAdmin/internal/config"
	"ClientAdmin/internal/service"
	"ClientAdmin/internal/token"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const tokenValidity = 24 * time.Hour

// AuthHandler serves /api/Authenticate endpoints.
type AuthHandler struct {
	UsuarioService *service.UsuarioService
	Logger         *zap.SugaredLogger
	Config         *config.Config
}

func NewAuthHandler(s *service.UsuarioService, logger *zap.SugaredLogger, cfg *config.Config) *AuthHandler {
	return &AuthHandler{UsuarioService: s, Logger: logger, Config: cfg}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"userid"`
	Username string `json:"username"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}
	u, err := h.UsuarioService.Login(r.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, "Usuario o contraseña incorrectos")
			return
		}
		h.Logger.Errorw("Login: service error", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	t, err := token.Generate(u.ID, u.Username, h.Config.AuthSecret, tokenValidity)
	if err != nil {
		h.Logger.Errorw("Login: token generation failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: t, UserID: u.ID, Username: u.Username})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "username, email and password are required")
		return
	}
	u, err := h.UsuarioService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			writeMessage(w, http.StatusConflict, "El nombre de usuario ya existe")
			return
		}
		h.Logger.Errorw("Register: service error", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"userid": u.ID, "username": u.Username})
}
