package commands

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportreg/internal/app"
)

func startServer(t *testing.T) string {
	t.Helper()
	w, err := app.NewWire(context.Background(), app.ServerConfig{
		Addr:            "127.0.0.1:0",
		DBPath:          filepath.Join(t.TempDir(), "sportreg.db"),
		SessionTTL:      time.Hour,
		BcryptCost:      4,
		ShutdownTimeout: time.Second,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	ts := httptest.NewServer(w.Server.Handler())
	t.Cleanup(ts.Close)
	return ts.URL
}

func run(t *testing.T, server, state string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--home", state, "--server", server, "--redirect-delay", "10ms"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestCLI_Session(t *testing.T) {
	srv := startServer(t)
	state := t.TempDir()

	out, err := run(t, srv, state, "signup", "alice", "-p", "secret")
	require.NoError(t, err)
	assert.Equal(t, "[success] Registration successful\n", out)

	out, err = run(t, srv, state, "signup", "alice", "-p", "secret", "--confirm", "other")
	assert.ErrorIs(t, err, errRejected)
	assert.Equal(t, "[error] Passwords donot match!!\n", out)

	out, err = run(t, srv, state, "enroll", "-n", "Bob", "-y", "Year 1", "--sport", "Chess")
	assert.ErrorIs(t, err, errRejected)
	assert.Equal(t, "[error] Please log in to access this page.\n", out)

	out, err = run(t, srv, state, "login", "alice", "-p", "secret")
	require.NoError(t, err)
	assert.Equal(t, "[success] Login successful\n", out)

	out, err = run(t, srv, state, "enroll", "-n", "Bob", "-y", "Year 1", "--sport", "Chess")
	require.NoError(t, err)
	assert.Equal(t, "[success] Registration successful\n", out)

	out, err = run(t, srv, state, "enroll", "-n", "Bob", "-y", "Year 1", "--sport", "Chess")
	assert.ErrorIs(t, err, errRejected)
	assert.Equal(t, "[error] Name already exists!!\n", out)

	out, err = run(t, srv, state, "registrants")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Bob")
	assert.Contains(t, out, "Chess")

	out, err = run(t, srv, state, "logout")
	require.NoError(t, err)
	assert.Equal(t, "[info] You have been logged out!!\n-> /login\n", out)

	_, err = run(t, srv, state, "registrants")
	assert.ErrorContains(t, err, "Please log in to access this page.")
}

func TestCLI_HTMLOutput(t *testing.T) {
	srv := startServer(t)
	state := t.TempDir()

	_, err := run(t, srv, state, "signup", "alice", "-p", "secret")
	require.NoError(t, err)
	_, err = run(t, srv, state, "login", "alice", "-p", "secret")
	require.NoError(t, err)

	out, err := run(t, srv, state, "--html", "enroll", "-n", "<b>Bob</b>", "-y", "Year 1", "--sport", "Chess")
	require.NoError(t, err)
	assert.Equal(t, "<div class=\"flash-message success\">Registration successful</div>\n", out)

	out, err = run(t, srv, state, "--html", "enroll", "-y", "Year 1")
	assert.ErrorIs(t, err, errRejected)
	assert.Equal(t, "<div class=\"flash-message error\">No name specified</div>\n", out)
}
