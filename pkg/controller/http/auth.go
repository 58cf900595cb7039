package http

import (
	"net/http"
	"time"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// handleLogin verifies credentials and sets the session cookie
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	token, err := s.uc.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		Expires:  token.ExpiresAt,
	})
	respondJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
}

// handleLogout discards the session and clears the cookie
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err := s.uc.Auth.Logout(r.Context(), cookie.Value); err != nil {
			respondError(r.Context(), w, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
	respondJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
}
