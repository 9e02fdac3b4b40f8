package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler_Success(t *testing.T) {
	server := newTestServer(t)

	cookie := login(t, server)
	assert.True(t, cookie.HttpOnly)
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	server := newTestServer(t)

	resp := doRequest(t, server, http.MethodPost, "/api/login", `{"username":"alice","password":"wrong"}`, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginHandler_UnknownUser(t *testing.T) {
	server := newTestServer(t)

	resp := doRequest(t, server, http.MethodPost, "/api/login", `{"username":"mallory","password":"secret"}`, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginHandler_InvalidJSON(t *testing.T) {
	server := newTestServer(t)

	resp := doRequest(t, server, http.MethodPost, "/api/login", `{not json`, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogoutHandler_InvalidatesSession(t *testing.T) {
	server := newTestServer(t)
	cookie := login(t, server)

	resp := doRequest(t, server, http.MethodPost, "/api/logout", "", cookie)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// the destroyed session no longer authorizes mutations
	resp = doRequest(t, server, http.MethodPost, "/api/entries", `{"type":"note","title":"x"}`, cookie)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMutationsRequireSession(t *testing.T) {
	server := newTestServer(t)

	for _, tt := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/entries"},
		{http.MethodPut, "/api/entries/1"},
		{http.MethodDelete, "/api/entries/1"},
		{http.MethodPost, "/api/entries/1/images"},
		{http.MethodDelete, "/api/images/1"},
		{http.MethodPost, "/api/tags"},
		{http.MethodPost, "/api/logout"},
	} {
		resp := doRequest(t, server, tt.method, tt.path, "{}", nil)
		resp.Body.Close()
		assert.Equalf(t, http.StatusUnauthorized, resp.StatusCode, "%s %s must require a session", tt.method, tt.path)
	}
}
