package middlewares

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeaderName is the header carrying the per-request correlation ID.
const RequestIDHeaderName = "X-Request-Id"

// RequestID assigns a fresh UUID to every request that arrives without one
// and mirrors it on the response.
func RequestID(next http.Handler) http.Handler {
	fn := func(writer http.ResponseWriter, request *http.Request) {
		requestID := request.Header.Get(RequestIDHeaderName)
		if requestID == "" {
			requestID = uuid.New().String()
			request.Header.Set(RequestIDHeaderName, requestID)
		}
		writer.Header().Set(RequestIDHeaderName, requestID)
		next.ServeHTTP(writer, request)
	}
	return http.HandlerFunc(fn)
}
