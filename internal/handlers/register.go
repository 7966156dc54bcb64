package handlers

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-notes/internal/models"
	"github.com/sbilibin2017/gw-notes/internal/passwords"
	"github.com/sbilibin2017/gw-notes/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) (*models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: alice
	Username *string `json:"username" validate:"required,max=255"`

	// Email
	// required: true
	// default: alice@example.com
	Email *string `json:"email" validate:"required,max=255,email"`

	// Password
	// required: true
	// default: secret123
	Password *string `json:"password" validate:"required,max=72"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Username and email must be unique. The password is stored as a bcrypt hash.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} models.UserResponse "User successfully registered"
// @Failure 409 {object} models.ErrorResponse "Username already exists"
// @Failure 422 {object} models.ValidationErrorResponse "Invalid request body"
// @Router /users/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if fields := decodeBody(w, r, &req); fields != nil {
			writeValidationError(w, fields)
			return
		}

		user, err := svc.Register(r.Context(), *req.Username, *req.Email, *req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, "Username already exists")
				return
			case errors.Is(err, services.ErrPasswordTooLong):
				// max=72 counts runes, bcrypt limits bytes
				writeValidationError(w, []models.FieldError{{
					Loc:  []string{"body", "password"},
					Msg:  fmt.Sprintf("String should have at most %d bytes", passwords.MaxLength),
					Type: "string_too_long",
				}})
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.NewUserResponse(user))
	}
}
