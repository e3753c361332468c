// internal/httpserver/auth.go
//
// Session-token handling.
// POST /session/new signs a short-lived JWT bound to the new session ID;
// the per-session endpoints verify it when JWT_SECRET is configured. With
// no secret configured the middleware is a pass-through, which is the
// development default.

package httpserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

const sessionTokenTTL = 24 * time.Hour

// signSessionToken issues an HS256 token whose "sid" claim binds it to one
// session.
func (s *Server) signSessionToken(sessionID string) (string, time.Time, error) {
	exp := time.Now().Add(sessionTokenTTL)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sessionID,
		"iat": time.Now().Unix(),
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte(s.secret))
	return signed, exp, err
}

// withSessionToken enforces that requests to /session/{id}/... carry the
// token issued for that session. No-op when no secret is configured.
func (s *Server) withSessionToken() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s.secret == "" {
				next.ServeHTTP(w, r)
				return
			}
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
				return
			}
			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(s.secret), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, `{"error":"invalid_token"}`, http.StatusUnauthorized)
				return
			}
			sid, _ := claims["sid"].(string)
			if sid == "" || sid != chi.URLParam(r, "id") {
				http.Error(w, `{"error":"invalid_token"}`, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the Authorization bearer token, if any.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}
