package services

import "errors"

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrNoteNotFound       = errors.New("note not found")
	ErrNoteAlreadyExists  = errors.New("note already exists")
	ErrPasswordTooLong    = errors.New("password is too long")
)
