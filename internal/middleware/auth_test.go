package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"minigames_backend/internal/model"
	"minigames_backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func protected(t *testing.T) (http.Handler, *int) {
	t.Helper()
	var got int
	h := Auth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromContext(r.Context())
		require.True(t, ok)
		got = id
		w.WriteHeader(http.StatusOK)
	}))
	return h, &got
}

func TestAuth(t *testing.T) {
	valid, err := token.GenerateAccessToken(&model.User{ID: 42}, secret, time.Minute)
	require.NoError(t, err)
	expired, err := token.GenerateAccessToken(&model.User{ID: 42}, secret, -time.Minute)
	require.NoError(t, err)
	foreign, err := token.GenerateAccessToken(&model.User{ID: 42}, []byte("other"), time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		userID int
	}{
		{name: "valid", header: "Bearer " + valid, status: http.StatusOK, userID: 42},
		{name: "no header", header: "", status: http.StatusUnauthorized},
		{name: "no bearer prefix", header: valid, status: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + expired, status: http.StatusUnauthorized},
		{name: "wrong key", header: "Bearer " + foreign, status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, got := protected(t)
			r := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			h.ServeHTTP(w, r)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.userID, *got)
		})
	}
}
