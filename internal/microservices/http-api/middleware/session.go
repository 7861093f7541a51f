package middleware

import (
	"context"
	"net/http"
	"time"
)

const sessionKey contextKey = "session"

// Session lets resolvers read the presented token and set or clear the
// session cookie on the response being built.
type Session struct {
	w      http.ResponseWriter
	token  string
	ttl    time.Duration
	secure bool
}

func NewSession(w http.ResponseWriter, token string, ttl time.Duration, secure bool) *Session {
	return &Session{w: w, token: token, ttl: ttl, secure: secure}
}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromContext returns nil outside an HTTP request; the methods of a
// nil *Session do nothing.
func SessionFromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey).(*Session)
	return s
}

// Token is the token the request was made with.
func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	return s.token
}

func (s *Session) SetAuthToken(token string) {
	if s == nil {
		return
	}
	http.SetCookie(s.w, s.cookie(token, int(s.ttl.Seconds())))
}

func (s *Session) ClearAuthToken() {
	if s == nil {
		return
	}
	// MaxAge < 0 emits Max-Age=0
	http.SetCookie(s.w, s.cookie("", -1))
}

func (s *Session) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     AuthCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	}
}
