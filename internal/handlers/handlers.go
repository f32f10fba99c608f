package handlers

import (
	"ClientAdmin/internal/config"
	"ClientAdmin/internal/middleware"
	"ClientAdmin/internal/repo"
	"ClientAdmin/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler wires the router for all backend endpoints.
func NewHandler(
	usuarioService *service.UsuarioService,
	clienteRepo repo.ClienteRepository,
	interesRepo repo.InteresRepository,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(cfg.AuthSecret))

	authHandler := NewAuthHandler(usuarioService, logger, cfg)
	clienteHandler := NewClienteHandler(clienteRepo, logger)
	interesHandler := NewInteresHandler(interesRepo, logger)

	r.Post("/api/Authenticate/login", authHandler.Login)
	r.Post("/api/Authenticate/register", authHandler.Register)

	r.Post("/api/Cliente/Listado", clienteHandler.Listado)
	r.Get("/api/Cliente/Obtener/{id}", clienteHandler.Obtener)
	r.Post("/api/Cliente/Crear", clienteHandler.Crear)
	r.Post("/api/Cliente/Actualizar", clienteHandler.Actualizar)
	r.Delete("/api/Cliente/Eliminar/{id}", clienteHandler.Eliminar)

	r.Get("/api/Intereses/Listado", interesHandler.Listado)

	return &Handler{Router: r}
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMessage sends the {"message": ...} error body the console expects.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
