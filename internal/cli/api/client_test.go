package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ClientAdmin/internal/cliente"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_ParsesResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/Authenticate/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "ana", body["username"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-1","userid":"u-1","username":"ana"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	tok, user, err := c.Login(context.Background(), "ana", "Secreto123")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)
	assert.Equal(t, "u-1", user.UserID)
	assert.Equal(t, "ana", user.Username)
}

func TestLogin_SurfacesServerMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Usuario o contraseña incorrectos"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	_, _, err := c.Login(context.Background(), "ana", "x")
	require.Error(t, err)
	var se *ErrServer
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
	assert.Equal(t, "Usuario o contraseña incorrectos", se.Message)
}

func TestErrServer_GenericWhenNoMessage(t *testing.T) {
	e := &ErrServer{StatusCode: 500}
	assert.Equal(t, "server error (500)", e.Error())
}

func TestListClientes_SendsBearerAndFilter(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/Cliente/Listado", r.URL.Path)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		var f ListadoFilter
		require.NoError(t, json.NewDecoder(r.Body).Decode(&f))
		require.Equal(t, "u-1", f.UsuarioID)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"c-1","nombre":"Ana","apellidos":"Lopez","identificacion":"001"}]`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	c.SetToken("tok-1")
	list, err := c.ListClientes(context.Background(), ListadoFilter{UsuarioID: "u-1"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana Lopez", list[0].FullName())
}

func TestCrearCliente_PostsBothPhoneFields(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/Cliente/Crear", r.URL.Path)
		var m map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&m))
		assert.Equal(t, "8888-1234", m["telefonoCelular"])
		assert.Equal(t, "8888-1234", m["Celular"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c-9"}`))
	}))
	defer ts.Close()

	fNac := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	d := cliente.Draft{TelefonoCelular: "8888-1234", FNacimiento: &fNac, FAfiliacion: &fNac}

	c := NewClient(ts.URL)
	created, err := c.CrearCliente(context.Background(), cliente.NewCreatePayload(d, "u-1"))
	require.NoError(t, err)
	assert.Equal(t, "c-9", created.ID)
}

func TestGetCliente_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Cliente no encontrado"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	_, err := c.GetCliente(context.Background(), "missing")
	var se *ErrServer
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "Cliente no encontrado", se.Message)
}

func TestListIntereses(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/Intereses/Listado", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"i-1","descripcion":"Deportes"}]`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	list, err := c.ListIntereses(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Deportes", list[0].Descripcion)
}
