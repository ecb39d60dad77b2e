package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/beautyease/beautyease/internal/server/auth"
	"github.com/beautyease/beautyease/internal/shared"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// authMiddleware verifies the Bearer access token and stores the user ID in
// the request context. Guarded routes are mounted behind it; unauthenticated
// requests never reach a handler.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, shared.ErrInvalidToken)
			return
		}

		userID, err := auth.GetUserIDFromToken(strings.TrimPrefix(header, "Bearer "), s.jwtSecret)
		if err != nil {
			writeError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// logMiddleware logs one line per request with method, path, status and
// duration.
func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info(r.Context(), "request",
			"method", r.Method, "path", r.URL.Path,
			"status", ww.Status(), "duration", time.Since(start).String())
	})
}

// userIDFromContext returns the authenticated user ID, or "" when the
// request skipped authMiddleware.
func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}
