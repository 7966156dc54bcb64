package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-notes/internal/models"
)

// UserReadRepository handles user lookups
type UserReadRepository struct {
	base
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{base{db: db, txGetter: txGetter}}
}

// GetByUsername returns the user with the given username or ErrNotFound.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, username)
	logQuery(query, []any{username}, err)
	if err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

// GetByID returns the user with the given id or ErrNotFound.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, userID)
	logQuery(query, []any{userID}, err)
	if err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

// UserWriteRepository handles user inserts
type UserWriteRepository struct {
	base
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{base{db: db, txGetter: txGetter}}
}

// Save inserts a new user. A duplicate username or email yields ErrConflict.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (id, username, email, password)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, user.UserID, user.Username, user.Email, user.Password)
	logQuery(query, []any{user.UserID, user.Username, user.Email, "***"}, err)
	return classify(err)
}
