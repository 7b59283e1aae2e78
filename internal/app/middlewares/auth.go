package middlewares

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/TonySyv/yshstob/internal/app/config"
	"github.com/TonySyv/yshstob/internal/app/logger"
)

const bearerPrefix = "Bearer "

var ErrWrongAlgorithm = errors.New("unexpected signing method")
var ErrTokenIsNotValid = errors.New("invalid token passed")

// SignInternalToken issues the HS256 bearer token the deploy pipeline and
// out-of-process event emitters present on the internal endpoints.
func SignInternalToken() (string, error) {
	issueTime := time.Now()
	expireTime := issueTime.Add(time.Hour * time.Duration(config.Settings.TokenTTLHours))
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "yshstob",
		ID:        uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(issueTime),
		ExpiresAt: jwt.NewNumericDate(expireTime),
	})
	return token.SignedString([]byte(config.Settings.SecretKey))
}

func validateInternalToken(tokenString string) error {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				logger.Log.Warnf("unexpected signing method: %v", t.Header["alg"])
				return nil, ErrWrongAlgorithm
			}
			return []byte(config.Settings.SecretKey), nil
		})
	if err != nil {
		return err
	}
	if !token.Valid {
		return ErrTokenIsNotValid
	}
	return nil
}

// InternalAuth guards the internal endpoints (analytics ingest, deploy
// metadata) with a bearer token. The guard is disabled while no secret key
// is configured so that local runs need no token plumbing.
func InternalAuth(next http.Handler) http.Handler {
	fn := func(writer http.ResponseWriter, request *http.Request) {
		if config.Settings.SecretKey == "" {
			next.ServeHTTP(writer, request)
			return
		}
		authHeader := request.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			http.Error(writer, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if err := validateInternalToken(strings.TrimPrefix(authHeader, bearerPrefix)); err != nil {
			logger.Log.Warnf("Rejecting internal request: %v", err)
			http.Error(writer, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(writer, request)
	}
	return http.HandlerFunc(fn)
}
