package commands

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"ClientAdmin/internal/session"
)

// withTempConfig redirects the user config directory for the duration of a
// test so session files land in temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

// withStdoutCapture swaps Out for a buffer while fn runs.
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// withStdin feeds scripted input through In while fn runs.
func withStdin(t *testing.T, input string, fn func()) {
	t.Helper()
	old := In
	In = strings.NewReader(input)
	defer func() { In = old }()
	fn()
}

// seedSession writes a persisted session so commands start authenticated.
func seedSession(t *testing.T, token, userid, username string) {
	t.Helper()
	kv := session.FSStore{}
	if err := kv.Set("token", token); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	if err := kv.Set("user", `{"userid":"`+userid+`","username":"`+username+`"}`); err != nil {
		t.Fatalf("seed user: %v", err)
	}
}
