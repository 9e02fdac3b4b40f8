package http

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/daybook-app/daybook/internal/config"
	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/service"
	"github.com/daybook-app/daybook/internal/store"
	"github.com/daybook-app/daybook/migrations"
)

// newTestServer wires the full stack over a throwaway SQLite database and
// seeds one account ("alice" / "secret") whose id is also the configured
// site owner.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	conn, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "handler_test.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, migrations.Migrate(conn))

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	res, err := conn.Exec(
		`INSERT INTO users (username, pwhash, created_at, updated_at) VALUES (?, ?, datetime('now'), datetime('now'))`,
		"alice", string(hash),
	)
	require.NoError(t, err)
	ownerID, err := res.LastInsertId()
	require.NoError(t, err)

	log := logger.Nop()
	db := &store.DB{DB: conn}
	services := service.NewServices(store.NewRepositories(db, log), log)
	handler := NewHandler(services, config.App{OwnerID: ownerID}, log)

	server := httptest.NewServer(handler.Init())
	t.Cleanup(server.Close)

	return server
}

// testServerHandle bundles a running test server with the session cookie of
// the seeded account.
type testServerHandle struct {
	Server *httptest.Server
	Cookie *http.Cookie
}

func newLoggedInServer(t *testing.T) *testServerHandle {
	t.Helper()

	server := newTestServer(t)
	return &testServerHandle{Server: server, Cookie: login(t, server)}
}

// login performs the login request and returns the session cookie.
func login(t *testing.T, server *httptest.Server) *http.Cookie {
	t.Helper()

	resp, err := http.Post(server.URL+"/api/login", "application/json",
		strings.NewReader(`{"username":"alice","password":"secret"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == sessionCookieName {
			require.NotEmpty(t, cookie.Value)
			return cookie
		}
	}

	t.Fatal("login response carries no session cookie")
	return nil
}

// doRequest sends a request with an optional body and session cookie.
func doRequest(t *testing.T, server *httptest.Server, method, path, body string, cookie *http.Cookie) *http.Response {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}
