package handlers

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-notes/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// Credentials are read from the basic auth header and the token is returned
// in the Authorization response header.
// @Summary User login
// @Description Authenticate with HTTP basic credentials and receive a bearer token in the Authorization header
// @Tags users
// @Produce json
// @Success 200 "Authorization: Bearer <token>"
// @Failure 401 {object} models.ErrorResponse "Bad credentials"
// @Router /users/login [post]
// @Security BasicAuth
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", "Basic")
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		token, err := svc.Login(r.Context(), username, password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				writeError(w, http.StatusUnauthorized, "Bad credentials")
				return
			}
			writeInternalError(w, err)
			return
		}

		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	}
}
