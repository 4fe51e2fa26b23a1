package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_StoresTokenAndAttachesBearer(t *testing.T) {
	var sawAuthHeader string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "portfolio_auth_token", Value: "cookie-token", Path: "/"})
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]string{"token": "body-token"},
		})
	})
	mux.HandleFunc("GET /api/profile", func(w http.ResponseWriter, r *http.Request) {
		sawAuthHeader = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]string{"name": "John Doe"},
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	resp, err := c.Login(context.Background(), "admin", "password")
	require.NoError(t, err)
	assert.True(t, resp.Success)

	resp, err = c.Get(context.Background(), "/api/profile")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Bearer body-token", sawAuthHeader)

	var profile map[string]string
	require.NoError(t, json.Unmarshal(resp.Data, &profile))
	assert.Equal(t, "John Doe", profile["name"])
}

func TestDo_FailureEnvelopeIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Experience not found"})
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	resp, err := c.Get(context.Background(), "/api/experiences/999")
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Experience not found", resp.Message)
}

func TestDo_CookieCarriesSessionWithoutToken(t *testing.T) {
	var sawCookie bool
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "portfolio_auth_token", Value: "cookie-token", Path: "/"})
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})
	mux.HandleFunc("PUT /api/profile", func(w http.ResponseWriter, r *http.Request) {
		_, err := r.Cookie("portfolio_auth_token")
		sawCookie = err == nil
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	// Login response carries no body token; the jar still gets the cookie.
	_, err = c.Login(context.Background(), "admin", "password")
	require.NoError(t, err)

	_, err = c.Put(context.Background(), "/api/profile", map[string]string{"name": "x"})
	require.NoError(t, err)
	assert.True(t, sawCookie)
}
