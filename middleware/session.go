package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Анонимные токены игровой сессии. Это не аутентификация - игра не знает
// пользователей; токен лишь привязывает браузер к его сессии, чтобы чужую
// сессию нельзя было мутировать, угадав её id.

type contextKey string

const sessionContextKey contextKey = "session_id"

const sessionTokenTTL = 7 * 24 * time.Hour

// IssueSessionToken signs a token carrying the session id.
func IssueSessionToken(secret []byte, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"iat":        time.Now().Unix(),
		"exp":        time.Now().Add(sessionTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// SessionAuth verifies the Bearer token and stores the session id in the
// request context.
func SessionAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID, err := sessionIDFromRequest(secret, r)
			if err != nil {
				http.Error(w, "invalid or missing session token", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), sessionContextKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionIDFromContext returns the session id placed by SessionAuth.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionContextKey).(string)
	return id, ok && id != ""
}

// ParseSessionToken validates a raw token string (used by the websocket
// endpoint, where the token arrives as a query parameter).
func ParseSessionToken(secret []byte, raw string) (string, error) {
	return parseToken(secret, raw)
}

func sessionIDFromRequest(secret []byte, r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", fmt.Errorf("missing bearer token")
	}
	return parseToken(secret, strings.TrimPrefix(header, "Bearer "))
}

func parseToken(secret []byte, raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid session token")
	}
	sessionID, _ := claims["session_id"].(string)
	if sessionID == "" {
		return "", fmt.Errorf("session token has no session_id claim")
	}
	return sessionID, nil
}
