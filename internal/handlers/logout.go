package handlers

//go:generate mockgen -source=logout.go -destination=logout_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, userID uuid.UUID) error
}

// NewLogoutHandler returns an HTTP handler for user logout.
// @Summary User logout
// @Description Acknowledges a logout. Tokens are stateless and stay valid until they expire.
// @Tags users
// @Produce plain
// @Success 200 {string} string "Logout successful"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /users/logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerFromRequest(w, r)
		if !ok {
			return
		}

		if err := svc.Logout(r.Context(), userID); err != nil {
			writeInternalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Logout successful"))
	}
}
