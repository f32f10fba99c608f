package api

import (
	"context"
	"fmt"
	"strings"

	"ClientAdmin/internal/cliente"
	"ClientAdmin/internal/session"

	"github.com/go-resty/resty/v2"
)

// Client wraps all console→backend calls. Every request is a single attempt:
// errors bubble up to the caller, which turns them into a notification.
type Client struct {
	http *resty.Client
}

func NewClient(serverURL string) *Client {
	return &Client{
		http: resty.New().SetBaseURL(strings.TrimRight(serverURL, "/")),
	}
}

// SetToken installs the session token as the bearer credential for all
// subsequent requests.
func (c *Client) SetToken(tok string) {
	c.http.SetAuthToken(tok)
}

// serverMessage is the {"message": ...} error body the backend sends.
type serverMessage struct {
	Message string `json:"message"`
}

// ErrServer carries the backend's own message when one was provided.
type ErrServer struct {
	StatusCode int
	Message    string
}

func (e *ErrServer) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error (%d)", e.StatusCode)
}

func respError(resp *resty.Response, body *serverMessage) error {
	msg := ""
	if body != nil {
		msg = body.Message
	}
	return &ErrServer{StatusCode: resp.StatusCode(), Message: msg}
}

type loginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"userid"`
	Username string `json:"username"`
}

// Login implements session.Authenticator.
func (c *Client) Login(ctx context.Context, username, password string) (string, session.User, error) {
	var out loginResponse
	var errBody serverMessage
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string]string{"username": username, "password": password}).
		SetResult(&out).SetError(&errBody).
		Post("/api/Authenticate/login")
	if err != nil {
		return "", session.User{}, err
	}
	if resp.IsError() {
		return "", session.User{}, respError(resp, &errBody)
	}
	return out.Token, session.User{UserID: out.UserID, Username: out.Username}, nil
}

// Register implements session.Authenticator.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	var errBody serverMessage
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string]string{"username": username, "email": email, "password": password}).
		SetError(&errBody).
		Post("/api/Authenticate/register")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return respError(resp, &errBody)
	}
	return nil
}

// ListadoFilter is the server-side search body of /api/Cliente/Listado.
type ListadoFilter struct {
	Nombre         string `json:"nombre"`
	Identificacion string `json:"identificacion"`
	UsuarioID      string `json:"usuarioId"`
}

func (c *Client) ListClientes(ctx context.Context, f ListadoFilter) ([]cliente.Record, error) {
	var out []cliente.Record
	var errBody serverMessage
	resp, err := c.http.R().SetContext(ctx).
		SetBody(f).SetResult(&out).SetError(&errBody).
		Post("/api/Cliente/Listado")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, respError(resp, &errBody)
	}
	return out, nil
}

func (c *Client) GetCliente(ctx context.Context, id string) (cliente.Record, error) {
	var out cliente.Record
	var errBody serverMessage
	resp, err := c.http.R().SetContext(ctx).
		SetResult(&out).SetError(&errBody).
		Get("/api/Cliente/Obtener/" + id)
	if err != nil {
		return cliente.Record{}, err
	}
	if resp.IsError() {
		return cliente.Record{}, respError(resp, &errBody)
	}
	return out, nil
}

func (c *Client) CrearCliente(ctx context.Context, p cliente.CreatePayload) (cliente.Record, error) {
	var out cliente.Record
	var errBody serverMessage
	resp, err := c.http.R().SetContext(ctx).
		SetBody(p).SetResult(&out).SetError(&errBody).
		Post("/api/Cliente/Crear")
	if err != nil {
		return cliente.Record{}, err
	}
	if resp.IsError() {
		return cliente.Record{}, respError(resp, &errBody)
	}
	return out, nil
}

func (c *Client) ActualizarCliente(ctx context.Context, p cliente.UpdatePayload) (cliente.Record, error) {
	var out cliente.Record
	var errBody serverMessage
	resp, err := c.http.R().SetContext(ctx).
		SetBody(p).SetResult(&out).SetError(&errBody).
		Post("/api/Cliente/Actualizar")
	if err != nil {
		return cliente.Record{}, err
	}
	if resp.IsError() {
		return cliente.Record{}, respError(resp, &errBody)
	}
	return out, nil
}

func (c *Client) ListIntereses(ctx context.Context) ([]cliente.Interest, error) {
	var out []cliente.Interest
	var errBody serverMessage
	resp, err := c.http.R().SetContext(ctx).
		SetResult(&out).SetError(&errBody).
		Get("/api/Intereses/Listado")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, respError(resp, &errBody)
	}
	return out, nil
}
