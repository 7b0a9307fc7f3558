// ABOUTME: Bearer-token middleware for the networked transports
// ABOUTME: Constant-time comparison; failures never reach the dispatcher
package mcp

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// requireBearer rejects any request whose Authorization header does not
// carry the configured server key. Runs before the MCP handler, so an
// unauthorized request never triggers a tool dispatch or upstream call.
func (s *Server) requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.ServerAPIKey)) != 1 {
			s.logger.Warn("rejected unauthenticated request",
				"remote", r.RemoteAddr, "path", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"unauthorized"}`))
			return
		}

		requestID := uuid.New().String()
		s.logger.Debug("authenticated request",
			"request_id", requestID, "remote", r.RemoteAddr, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// bearerToken extracts the token from an Authorization: Bearer header.
// Returns empty string when the header is absent or not bearer-shaped.
func bearerToken(r *http.Request) string {
	authz := r.Header.Get("Authorization")
	if len(authz) < 7 || !strings.EqualFold(authz[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(authz[7:])
}
