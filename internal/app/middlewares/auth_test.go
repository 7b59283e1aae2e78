package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TonySyv/yshstob/internal/app/config"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
}

func TestInternalAuthDisabledWithoutSecret(t *testing.T) {
	previousSecret := config.Settings.SecretKey
	config.Settings.SecretKey = ""
	defer func() { config.Settings.SecretKey = previousSecret }()

	request := httptest.NewRequest(http.MethodPost, "/metadata/deploy", nil)
	recorder := httptest.NewRecorder()
	InternalAuth(okHandler()).ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestInternalAuth(t *testing.T) {
	previousSecret := config.Settings.SecretKey
	config.Settings.SecretKey = "super-secret"
	defer func() { config.Settings.SecretKey = previousSecret }()

	validToken, err := SignInternalToken()
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "valid bearer token",
			authHeader: "Bearer " + validToken,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			authHeader: "Bearer not.a.token",
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/analytics/redirect", nil)
			if tt.authHeader != "" {
				request.Header.Set("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()
			InternalAuth(okHandler()).ServeHTTP(recorder, request)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestInternalAuthRejectsTokenSignedWithAnotherKey(t *testing.T) {
	previousSecret := config.Settings.SecretKey
	config.Settings.SecretKey = "first-secret"
	foreignToken, err := SignInternalToken()
	require.NoError(t, err)

	config.Settings.SecretKey = "second-secret"
	defer func() { config.Settings.SecretKey = previousSecret }()

	request := httptest.NewRequest(http.MethodPost, "/analytics/redirect", nil)
	request.Header.Set("Authorization", "Bearer "+foreignToken)
	recorder := httptest.NewRecorder()
	InternalAuth(okHandler()).ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
