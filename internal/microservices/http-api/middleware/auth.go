package middleware

import (
	"context"
	"net/http"
	"strings"

	"bloghub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthCookieName is the session cookie set by signUp and signIn.
const AuthCookieName = "auth_token"

type contextKey string

const userIDKey contextKey = "userID"

// Authenticate is a Gin middleware that resolves the caller's identity from
// the auth_token cookie, or failing that the Authorization header. Missing,
// invalid, expired and revoked tokens leave the request anonymous; resolvers
// decide whether that is acceptable.
func Authenticate(authService service.AuthService, secureCookies bool, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c.Request)

		ctx := WithSession(c.Request.Context(), NewSession(c.Writer, token, authService.TokenTTL(), secureCookies))
		if token != "" {
			userID, err := authService.Authenticate(ctx, token)
			if err != nil {
				logger.Debug("ignoring session token", zap.Error(err))
			} else {
				ctx = WithUserID(ctx, userID)
				// Set user info in context for handlers to use
				c.Set("userID", userID)
			}
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// TokenFromRequest returns the session token, cookie first.
func TokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(AuthCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	// Extract token (format: "Bearer <token>")
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// RequireUser asserts that the request is authenticated.
func RequireUser(ctx context.Context) (string, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return "", service.ErrUnauthenticated
	}
	return userID, nil
}
