package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// AuthMiddleware authenticates requests from the auth-token cookie. A
// missing cookie, bad signature, malformed token and expired token all get
// the same 401 so the client never learns which check failed.
func (s *service) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(AuthCookieName)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			authUser, err := s.jwtManager.VerifyToken(cookie.Value)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			ctx := context.WithValue(r.Context(), "userID", authUser.ID)
			ctx = context.WithValue(ctx, "userEmail", authUser.Email)
			ctx = context.WithValue(ctx, "userName", authUser.Name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeJSONError writes an error response in JSON format
func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Status:  "error",
		Message: message,
	})
}
