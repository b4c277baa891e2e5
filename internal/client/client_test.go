package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordan/job-tracker/internal/types"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func validPosting() *types.JobPosting {
	return &types.JobPosting{
		Title:          "Backend Engineer",
		CompanyName:    "Acme Corp",
		SourceURL:      "https://www.linkedin.com/jobs/view/123/",
		SourcePlatform: types.PlatformLinkedIn,
		ExtractedAt:    time.Now().UTC(),
	}
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestSubmitJobPosting_Success(t *testing.T) {
	var gotAuth string
	var gotBody types.JobPosting
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/job-postings", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	token := signedToken(t, time.Now().Add(time.Hour))
	c, err := New(Options{BaseURL: srv.URL, Token: token})
	require.NoError(t, err)

	err = c.SubmitJobPosting(context.Background(), validPosting())
	require.NoError(t, err)
	assert.Equal(t, "Bearer "+token, gotAuth)
	assert.Equal(t, "Backend Engineer", gotBody.Title)
	assert.Equal(t, types.PlatformLinkedIn, gotBody.SourcePlatform)
}

func TestSubmitJobPosting_NoToken(t *testing.T) {
	c, err := New(Options{BaseURL: "http://localhost:0"})
	require.NoError(t, err)

	err = c.SubmitJobPosting(context.Background(), validPosting())
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestSubmitJobPosting_ExpiredTokenRejectedLocally(t *testing.T) {
	// Server must never be reached.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should have been rejected before reaching the server")
	}))
	defer srv.Close()

	c, err := New(Options{
		BaseURL: srv.URL,
		Token:   signedToken(t, time.Now().Add(-time.Hour)),
	})
	require.NoError(t, err)

	err = c.SubmitJobPosting(context.Background(), validPosting())
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestSubmitJobPosting_MalformedTokenRejectedLocally(t *testing.T) {
	c, err := New(Options{BaseURL: "http://localhost:0", Token: "not-a-jwt"})
	require.NoError(t, err)

	err = c.SubmitJobPosting(context.Background(), validPosting())
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestSubmitJobPosting_SchemaRejectsBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("invalid payload must not be sent")
	}))
	defer srv.Close()

	c, err := New(Options{BaseURL: srv.URL, Token: signedToken(t, time.Now().Add(time.Hour))})
	require.NoError(t, err)

	// Missing source URL and platform.
	err = c.SubmitJobPosting(context.Background(), &types.JobPosting{Title: "x"})
	require.Error(t, err)

	var se *SubmitError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "extracted data is incomplete", se.Message)
}

func TestSubmitJobPosting_ServerErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrUnauthorized},
		{name: "duplicate", status: http.StatusConflict, want: ErrDuplicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c, err := New(Options{BaseURL: srv.URL, Token: signedToken(t, time.Now().Add(time.Hour))})
			require.NoError(t, err)

			err = c.SubmitJobPosting(context.Background(), validPosting())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSubmitJobPosting_ServerFailureHasShortMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "database exploded with a very long stack trace", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := New(Options{BaseURL: srv.URL, Token: signedToken(t, time.Now().Add(time.Hour))})
	require.NoError(t, err)

	err = c.SubmitJobPosting(context.Background(), validPosting())
	require.Error(t, err)
	assert.Equal(t, "tracking failed", err.Error())
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "jordan@example.com", creds["email"])
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "fresh-token"})
	}))
	defer srv.Close()

	c, err := New(Options{BaseURL: srv.URL})
	require.NoError(t, err)

	token, err := c.Login(context.Background(), "jordan@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
	assert.Equal(t, "fresh-token", c.token)
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, err := New(Options{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = c.Login(context.Background(), "jordan@example.com", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, err := New(Options{BaseURL: srv.URL})
	require.NoError(t, err)
	assert.NoError(t, c.Health(context.Background()))
}
