package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-notes/internal/logger"
	"github.com/sbilibin2017/gw-notes/internal/models"
	"github.com/sbilibin2017/gw-notes/internal/passwords"
	"github.com/sbilibin2017/gw-notes/internal/repositories"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles registration, login and logout.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register registers a new user and returns it.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*models.UserDB, error) {
	hashedPassword, err := passwords.Hash(password)
	if err != nil {
		if errors.Is(err, passwords.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.UserDB{
		UserID:   uuid.New(),
		Username: username,
		Email:    email,
		Password: hashedPassword,
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			logger.Log.Infow("user already exists", "username", username, "email", email)
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	logger.Log.Infow("user registered", "user_id", user.UserID, "username", username)
	return user, nil
}

// Login authenticates a user and returns a JWT token. Unknown usernames and
// wrong passwords both yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// keep the response time close to the wrong-password path
			passwords.Verify(password, svc.dummy())
			logger.Log.Infow("login for unknown user", "username", username)
			return "", ErrInvalidCredentials
		}
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}

	if !passwords.Verify(password, user.Password) {
		logger.Log.Infow("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// Logout acknowledges a logout. Tokens are stateless, so nothing is revoked
// server side.
func (svc *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	logger.Log.Infow("user logged out", "user_id", userID)
	return nil
}

func (svc *AuthService) dummy() string {
	svc.dummyOnce.Do(func() {
		svc.dummyHash, _ = passwords.Hash(uuid.NewString())
	})
	return svc.dummyHash
}
