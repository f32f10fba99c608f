package commands

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"ClientAdmin/internal/config"
)

func authServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/Authenticate/login":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"token":"tok-123","userid":"u-1","username":"ana"}`))
		case "/api/Authenticate/register":
			w.WriteHeader(http.StatusOK)
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestLogin_PersistsSessionAndRemembered(t *testing.T) {
	withTempConfig(t)
	ts := authServer(t)
	defer ts.Close()

	cfg := &config.Config{ServerURL: ts.URL}
	out := withStdoutCapture(t, func() {
		if err := (loginCmd{}).Run(context.Background(), cfg, []string{"-remember", "ana", "secret"}); err != nil {
			t.Fatalf("login: %v", err)
		}
	})
	if !strings.Contains(out, "Sesión iniciada como ana") {
		t.Fatalf("success banner expected, got: %s", out)
	}

	cfgDir, _ := os.UserConfigDir()
	for _, f := range []string{"token", "user", "rememberedUser"} {
		if _, err := os.Stat(filepath.Join(cfgDir, "ClientAdmin", f)); err != nil {
			t.Fatalf("%s not persisted: %v", f, err)
		}
	}
}

func TestLogin_UsesRememberedUsernameAndPipedPassword(t *testing.T) {
	withTempConfig(t)
	ts := authServer(t)
	defer ts.Close()

	cfg := &config.Config{ServerURL: ts.URL}
	if err := (loginCmd{}).Run(context.Background(), cfg, []string{"-remember", "ana", "secret"}); err != nil {
		t.Fatalf("first login: %v", err)
	}
	if err := (logoutCmd{}).Run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("logout: %v", err)
	}

	// no username argument: the remembered one fills in, the password comes
	// from piped stdin
	out := withStdoutCapture(t, func() {
		withStdin(t, "secret\n", func() {
			if err := (loginCmd{}).Run(context.Background(), cfg, nil); err != nil {
				t.Fatalf("relogin: %v", err)
			}
		})
	})
	if !strings.Contains(out, `Using remembered username "ana"`) {
		t.Fatalf("remembered prefill expected, got: %s", out)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	withTempConfig(t)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Usuario o contraseña incorrectos"}`))
	}))
	defer ts.Close()

	cfg := &config.Config{ServerURL: ts.URL}
	out := withStdoutCapture(t, func() {
		if err := (loginCmd{}).Run(context.Background(), cfg, []string{"ana", "bad"}); err == nil {
			t.Fatalf("expected error for 401")
		}
	})
	if !strings.Contains(out, "Usuario o contraseña incorrectos") {
		t.Fatalf("server message expected, got: %s", out)
	}

	cfgDir, _ := os.UserConfigDir()
	if _, err := os.Stat(filepath.Join(cfgDir, "ClientAdmin", "token")); err == nil {
		t.Fatalf("token must not be persisted after a failed login")
	}
}

func TestRegister_ValidatesBeforeNetwork(t *testing.T) {
	withTempConfig(t)
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer ts.Close()

	cfg := &config.Config{ServerURL: ts.URL}
	out := withStdoutCapture(t, func() {
		// eight chars exactly: too short
		if err := (registerCmd{}).Run(context.Background(), cfg, []string{"bob", "bob@mail.com", "Abcdef12"}); err == nil {
			t.Fatalf("expected validation error")
		}
	})
	if !strings.Contains(out, "La contraseña debe tener entre 8 y 20 caracteres") {
		t.Fatalf("password message expected, got: %s", out)
	}
	if hits.Load() != 0 {
		t.Fatalf("no request should reach the server on invalid input")
	}
}

func TestRegister_SuccessAndConflict(t *testing.T) {
	withTempConfig(t)
	ts := authServer(t)
	defer ts.Close()

	cfg := &config.Config{ServerURL: ts.URL}
	out := withStdoutCapture(t, func() {
		if err := (registerCmd{}).Run(context.Background(), cfg, []string{"bob", "bob@mail.com", "Abcdefg123"}); err != nil {
			t.Fatalf("register: %v", err)
		}
	})
	if !strings.Contains(out, "Usuario creado correctamente") {
		t.Fatalf("success banner expected, got: %s", out)
	}

	ts409 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"El nombre de usuario ya existe"}`))
	}))
	defer ts409.Close()
	cfg409 := &config.Config{ServerURL: ts409.URL}
	out = withStdoutCapture(t, func() {
		if err := (registerCmd{}).Run(context.Background(), cfg409, []string{"bob", "bob@mail.com", "Abcdefg123"}); err == nil {
			t.Fatalf("expected conflict error")
		}
	})
	if !strings.Contains(out, "El nombre de usuario ya existe") {
		t.Fatalf("conflict message expected, got: %s", out)
	}
}

func TestLogout_And_Status(t *testing.T) {
	withTempConfig(t)
	seedSession(t, "tok-123", "u-1", "ana")

	cfg := &config.Config{ServerURL: "http://localhost:1"}
	out := withStdoutCapture(t, func() {
		if err := (statusCmd{}).Run(context.Background(), cfg, nil); err != nil {
			t.Fatalf("status: %v", err)
		}
	})
	if !strings.Contains(out, "Logged in as: ana (u-1)") {
		t.Fatalf("status should name the user, got: %s", out)
	}

	if err := (logoutCmd{}).Run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("logout: %v", err)
	}
	out = withStdoutCapture(t, func() {
		if err := (statusCmd{}).Run(context.Background(), cfg, nil); err != nil {
			t.Fatalf("status after logout: %v", err)
		}
	})
	if !strings.Contains(out, "Not logged in") {
		t.Fatalf("anonymous status expected, got: %s", out)
	}
}
