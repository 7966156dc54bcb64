package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Schema creates the users and notes tables when they do not exist yet.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	username VARCHAR(255) NOT NULL UNIQUE,
	email VARCHAR(255) NOT NULL UNIQUE,
	password VARCHAR(255) NOT NULL
);

CREATE TABLE IF NOT EXISTS notes (
	id UUID PRIMARY KEY,
	title VARCHAR(255) NOT NULL UNIQUE,
	content TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL,
	owner_id UUID NOT NULL REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS notes_owner_id_idx ON notes(owner_id);
`

// CreateSchema applies Schema.
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	logQuery("CREATE TABLE IF NOT EXISTS users, notes", nil, err)
	return err
}
