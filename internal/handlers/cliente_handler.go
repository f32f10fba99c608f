package handlers

import (
	"ClientAdmin/internal/middleware"
	"ClientAdmin/internal/model"
	"ClientAdmin/internal/repo"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ClienteHandler serves /api/Cliente endpoints.
type ClienteHandler struct {
	Repo   repo.ClienteRepository
	Logger *zap.SugaredLogger
}

func NewClienteHandler(r repo.ClienteRepository, logger *zap.SugaredLogger) *ClienteHandler {
	return &ClienteHandler{Repo: r, Logger: logger}
}

type listadoRequest struct {
	Nombre         string `json:"nombre"`
	Identificacion string `json:"identificacion"`
	UsuarioID      string `json:"usuarioId"`
}

// crearRequest is the create-mode wire shape: no id, duplicated phone field
// (telefonoCelular and Celular both carry the value), calendar dates.
type crearRequest struct {
	Nombre          string `json:"nombre"`
	Apellidos       string `json:"apellidos"`
	Identificacion  string `json:"identificacion"`
	TelefonoCelular string `json:"telefonoCelular"`
	Celular         string `json:"Celular"`
	OtroTelefono    string `json:"otroTelefono"`
	Direccion       string `json:"direccion"`
	FNacimiento     string `json:"fNacimiento"`
	FAfiliacion     string `json:"fAfiliacion"`
	Sexo            string `json:"sexo"`
	ResenaPersonal  string `json:"resenaPersonal"`
	Imagen          string `json:"imagen"`
	InteresFK       string `json:"interesFK"`
	UsuarioID       string `json:"usuarioId"`
}

// actualizarRequest is the update-mode wire shape: id required, lowercase
// "celular", "resennaPersonal" (double n, historical backend spelling),
// timestamp dates.
type actualizarRequest struct {
	ID              string `json:"id"`
	Nombre          string `json:"nombre"`
	Apellidos       string `json:"apellidos"`
	Identificacion  string `json:"identificacion"`
	Celular         string `json:"celular"`
	OtroTelefono    string `json:"otroTelefono"`
	Direccion       string `json:"direccion"`
	FNacimiento     string `json:"fNacimiento"`
	FAfiliacion     string `json:"fAfiliacion"`
	Sexo            string `json:"sexo"`
	ResennaPersonal string `json:"resennaPersonal"`
	Imagen          string `json:"imagen"`
	InteresFK       string `json:"interesFK"`
	UsuarioID       string `json:"usuarioId"`
}

// parseFecha accepts both wire date encodings: calendar date (create mode)
// and RFC3339 timestamp (update mode).
func parseFecha(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func (h *ClienteHandler) Listado(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req listadoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}
	// ownership comes from the token, not from the payload
	list, err := h.Repo.List(r.Context(), repo.ClienteFilter{
		Nombre:         req.Nombre,
		Identificacion: req.Identificacion,
		UsuarioID:      uid,
	})
	if err != nil {
		h.Logger.Errorw("Listado: repo error", "user_id", uid, "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ClienteHandler) Obtener(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id := chi.URLParam(r, "id")
	c, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrClienteNotFound) {
			writeMessage(w, http.StatusNotFound, "Cliente no encontrado")
			return
		}
		h.Logger.Errorw("Obtener: repo error", "id", id, "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if c.UsuarioID != uid {
		writeMessage(w, http.StatusNotFound, "Cliente no encontrado")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ClienteHandler) Crear(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req crearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}
	celular := req.TelefonoCelular
	if celular == "" {
		celular = req.Celular
	}
	fNac, err1 := parseFecha(req.FNacimiento)
	fAfi, err2 := parseFecha(req.FAfiliacion)
	if err1 != nil || err2 != nil {
		writeMessage(w, http.StatusBadRequest, "invalid date")
		return
	}
	c := &model.Cliente{
		Nombre:          req.Nombre,
		Apellidos:       req.Apellidos,
		Identificacion:  req.Identificacion,
		TelefonoCelular: celular,
		OtroTelefono:    req.OtroTelefono,
		Direccion:       req.Direccion,
		FNacimiento:     fNac,
		FAfiliacion:     fAfi,
		Sexo:            req.Sexo,
		ResenaPersonal:  req.ResenaPersonal,
		Imagen:          req.Imagen,
		InteresesID:     req.InteresFK,
		UsuarioID:       uid,
	}
	created, err := h.Repo.Create(r.Context(), c)
	if err != nil {
		h.Logger.Errorw("Crear: repo error", "user_id", uid, "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (h *ClienteHandler) Actualizar(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req actualizarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.ID == "" {
		writeMessage(w, http.StatusBadRequest, "id is required")
		return
	}
	existing, err := h.Repo.GetByID(r.Context(), req.ID)
	if err != nil {
		if errors.Is(err, repo.ErrClienteNotFound) {
			writeMessage(w, http.StatusNotFound, "Cliente no encontrado")
			return
		}
		h.Logger.Errorw("Actualizar: repo error", "id", req.ID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if existing.UsuarioID != uid {
		writeMessage(w, http.StatusNotFound, "Cliente no encontrado")
		return
	}
	fNac, err1 := parseFecha(req.FNacimiento)
	fAfi, err2 := parseFecha(req.FAfiliacion)
	if err1 != nil || err2 != nil {
		writeMessage(w, http.StatusBadRequest, "invalid date")
		return
	}
	c := &model.Cliente{
		ID:              req.ID,
		Nombre:          req.Nombre,
		Apellidos:       req.Apellidos,
		Identificacion:  req.Identificacion,
		TelefonoCelular: req.Celular,
		OtroTelefono:    req.OtroTelefono,
		Direccion:       req.Direccion,
		FNacimiento:     fNac,
		FAfiliacion:     fAfi,
		Sexo:            req.Sexo,
		ResenaPersonal:  req.ResennaPersonal,
		Imagen:          req.Imagen,
		InteresesID:     req.InteresFK,
		UsuarioID:       uid,
	}
	updated, err := h.Repo.Update(r.Context(), c)
	if err != nil {
		h.Logger.Errorw("Actualizar: update failed", "id", req.ID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Eliminar exists for wire completeness; the console never calls it and
// removes rows only from its local roster snapshot.
func (h *ClienteHandler) Eliminar(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id := chi.URLParam(r, "id")
	c, err := h.Repo.GetByID(r.Context(), id)
	if err != nil || c.UsuarioID != uid {
		writeMessage(w, http.StatusNotFound, "Cliente no encontrado")
		return
	}
	if err := h.Repo.SoftDelete(r.Context(), id); err != nil {
		h.Logger.Errorw("Eliminar: repo error", "id", id, "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}
