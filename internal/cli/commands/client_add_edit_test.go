package commands

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"ClientAdmin/internal/config"
)

var validAddArgs = []string{
	"-nombre", "Ana", "-apellidos", "Pérez Gómez", "-identificacion", "80012345",
	"-celular", "5551234", "-otro-telefono", "5555678", "-direccion", "Calle 1 #2-3",
	"-fnac", "1990-05-17", "-fafi", "2024-01-10", "-sexo", "F",
	"-resena", "Cliente frecuente", "-interes", "int-1",
}

func TestClientAdd_Success(t *testing.T) {
	withTempConfig(t)
	seedSession(t, "tok-123", "u-1", "ana")

	var body map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/Cliente/Crear" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c-new"}`))
	}))
	defer ts.Close()

	cfg := &config.Config{ServerURL: ts.URL}
	out := withStdoutCapture(t, func() {
		if err := (clientAddCmd{}).Run(context.Background(), cfg, validAddArgs); err != nil {
			t.Fatalf("client-add: %v", err)
		}
	})

	if !strings.Contains(out, "Cliente guardado correctamente") || !strings.Contains(out, "Id: c-new") {
		t.Fatalf("success output expected, got: %s", out)
	}
	// the create contract carries the cell phone twice and calendar dates
	if body["telefonoCelular"] != "5551234" || body["Celular"] != "5551234" {
		t.Fatalf("dual cell phone fields expected: %v", body)
	}
	if body["fNacimiento"] != "1990-05-17" {
		t.Fatalf("calendar date expected: %v", body["fNacimiento"])
	}
	if _, present := body["id"]; present {
		t.Fatalf("create body must not carry an id: %v", body)
	}
	if body["usuarioId"] != "u-1" {
		t.Fatalf("session user expected as owner: %v", body["usuarioId"])
	}
}

func TestClientAdd_ValidationBlocksRequest(t *testing.T) {
	withTempConfig(t)
	seedSession(t, "tok-123", "u-1", "ana")
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer ts.Close()

	cfg := &config.Config{ServerURL: ts.URL}
	out := withStdoutCapture(t, func() {
		// missing almost everything
		if err := (clientAddCmd{}).Run(context.Background(), cfg, []string{"-nombre", "Ana"}); err == nil {
			t.Fatalf("expected validation error")
		}
	})

	if !strings.Contains(out, "apellidos: Requerido") || !strings.Contains(out, "fNacimiento: Requerido") {
		t.Fatalf("field errors expected, got: %s", out)
	}
	if strings.Contains(out, "nombre: ") {
		t.Fatalf("valid field must not be reported, got: %s", out)
	}
	if hits.Load() != 0 {
		t.Fatalf("no request may be sent for an invalid draft")
	}
}

func TestClientEdit_OverridesFetchedRecord(t *testing.T) {
	withTempConfig(t)
	seedSession(t, "tok-123", "u-1", "ana")

	var body map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/Cliente/Obtener/c-7":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id":"c-7","nombre":"Ana","apellidos":"Pérez","identificacion":"800",
				"telefonoCelular":"5551234","otroTelefono":"5555678","direccion":"Calle 1",
				"fNacimiento":"1990-05-17T00:00:00Z","fAfiliacion":"2024-01-10T00:00:00Z",
				"sexo":"F","resenaPersonal":"nota","interesesId":"int-1"}`))
		case "/api/Cliente/Actualizar":
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, &body)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"c-7"}`))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	cfg := &config.Config{ServerURL: ts.URL}
	out := withStdoutCapture(t, func() {
		if err := (clientEditCmd{}).Run(context.Background(), cfg, []string{"c-7", "-direccion", "Calle 9 #9-9"}); err != nil {
			t.Fatalf("client-edit: %v", err)
		}
	})
	if !strings.Contains(out, "Cliente actualizado correctamente") {
		t.Fatalf("success banner expected, got: %s", out)
	}

	// untouched fields survive from the fetch, the flagged one changes
	if body["direccion"] != "Calle 9 #9-9" || body["nombre"] != "Ana" {
		t.Fatalf("merge of fetched record and flags broken: %v", body)
	}
	// the update contract: id present, single lowercase celular, double-n
	// review key, timestamp dates
	if body["id"] != "c-7" || body["celular"] != "5551234" {
		t.Fatalf("update shape broken: %v", body)
	}
	if _, present := body["Celular"]; present {
		t.Fatalf("update body must not carry the create-only key: %v", body)
	}
	if body["resennaPersonal"] != "nota" {
		t.Fatalf("double-n review key expected: %v", body)
	}
	if !strings.HasPrefix(body["fNacimiento"].(string), "1990-05-17T") {
		t.Fatalf("timestamp date expected: %v", body["fNacimiento"])
	}
}

func TestClientGet_NotFoundMessage(t *testing.T) {
	withTempConfig(t)
	seedSession(t, "tok-123", "u-1", "ana")
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Cliente no encontrado"}`))
	}))
	defer ts.Close()

	cfg := &config.Config{ServerURL: ts.URL}
	out := withStdoutCapture(t, func() {
		if err := (clientGetCmd{}).Run(context.Background(), cfg, []string{"nope"}); err == nil {
			t.Fatalf("expected error for 404")
		}
	})
	if !strings.Contains(out, "Cliente no encontrado") {
		t.Fatalf("server message expected, got: %s", out)
	}
}

func TestInterests_List(t *testing.T) {
	withTempConfig(t)
	seedSession(t, "tok-123", "u-1", "ana")
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/Intereses/Listado" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"int-1","descripcion":"Deportes"},{"id":"int-2","descripcion":"Música"}]`))
	}))
	defer ts.Close()

	cfg := &config.Config{ServerURL: ts.URL}
	out := withStdoutCapture(t, func() {
		if err := (interestsCmd{}).Run(context.Background(), cfg, nil); err != nil {
			t.Fatalf("interests: %v", err)
		}
	})
	if !strings.Contains(out, "int-1\tDeportes") || !strings.Contains(out, "int-2\tMúsica") {
		t.Fatalf("interest rows expected, got: %s", out)
	}
}
