package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDGeneratesWhenMissing(t *testing.T) {
	var seenID string
	handler := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seenID = request.Header.Get(RequestIDHeaderName)
	})

	request := httptest.NewRequest(http.MethodGet, "/ping", nil)
	recorder := httptest.NewRecorder()
	RequestID(handler).ServeHTTP(recorder, request)

	require.NotEmpty(t, seenID)
	_, err := uuid.Parse(seenID)
	assert.NoError(t, err)
	assert.Equal(t, seenID, recorder.Header().Get(RequestIDHeaderName))
}

func TestRequestIDKeepsExisting(t *testing.T) {
	existing := uuid.New().String()
	request := httptest.NewRequest(http.MethodGet, "/ping", nil)
	request.Header.Set(RequestIDHeaderName, existing)
	recorder := httptest.NewRecorder()
	RequestID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(recorder, request)

	assert.Equal(t, existing, recorder.Header().Get(RequestIDHeaderName))
}
