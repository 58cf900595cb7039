package http

import (
	"net/http"

	"github.com/focuspoint-lab/focuspoint/pkg/usecase"
)

const sessionCookieName = "session_token"

// authMiddleware validates the session cookie for protected requests
func authMiddleware(authUC *usecase.AuthUseCase) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err != nil {
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			if err := authUC.ValidateToken(r.Context(), cookie.Value); err != nil {
				http.Error(w, "Invalid or expired session", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
