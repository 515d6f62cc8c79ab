package oauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeGoogle(t *testing.T, userInfoStatus int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if r.Form.Get("code") != "good-code" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		assert.Equal(t, "client-id", r.Form.Get("client_id"))
		assert.Equal(t, "client-secret", r.Form.Get("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "access-123",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(userInfoStatus)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"sub":     "google-sub-1",
			"email":   "intern@example.com",
			"name":    "Intern",
			"picture": "https://lh3.googleusercontent.com/a/pic",
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestProvider(srv *httptest.Server) *GoogleProvider {
	return NewGoogleProvider(GoogleConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:8080/api/auth/google/callback",
		AuthURL:      srv.URL + "/auth",
		TokenURL:     srv.URL + "/token",
		UserInfoURL:  srv.URL + "/userinfo",
	})
}

func TestGoogleProvider_AuthCodeURL(t *testing.T) {
	srv := fakeGoogle(t, http.StatusOK)
	p := newTestProvider(srv)

	raw := p.AuthCodeURL("state-xyz")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "state-xyz", q.Get("state"))
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "openid email profile", q.Get("scope"))
}

func TestGoogleProvider_Exchange(t *testing.T) {
	srv := fakeGoogle(t, http.StatusOK)
	p := newTestProvider(srv)

	profile, err := p.Exchange(context.Background(), "good-code")
	require.NoError(t, err)

	assert.Equal(t, "google-sub-1", profile.Subject)
	assert.Equal(t, "intern@example.com", profile.Email)
	assert.Equal(t, "Intern", profile.Name)
}

func TestGoogleProvider_Exchange_BadCode(t *testing.T) {
	srv := fakeGoogle(t, http.StatusOK)
	p := newTestProvider(srv)

	_, err := p.Exchange(context.Background(), "bad-code")
	assert.Error(t, err)
}

func TestGoogleProvider_Exchange_UserInfoFailure(t *testing.T) {
	srv := fakeGoogle(t, http.StatusInternalServerError)
	p := newTestProvider(srv)

	_, err := p.Exchange(context.Background(), "good-code")
	assert.ErrorContains(t, err, "unexpected status 500")
}
