package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-notes/internal/models"
)

// NoteReadRepository handles note lookups
type NoteReadRepository struct {
	base
}

func NewNoteReadRepository(db *sqlx.DB, txGetter TxGetter) *NoteReadRepository {
	return &NoteReadRepository{base{db: db, txGetter: txGetter}}
}

// GetByID returns a note by id regardless of its owner.
func (r *NoteReadRepository) GetByID(ctx context.Context, noteID uuid.UUID) (*models.NoteDB, error) {
	const query = `
		SELECT id, title, content, created_at, updated_at, owner_id
		FROM notes
		WHERE id = $1
	`

	var note models.NoteDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &note, query, noteID)
	logQuery(query, []any{noteID}, err)
	if err != nil {
		return nil, classify(err)
	}
	return &note, nil
}

// ListByOwner returns the notes owned by ownerID, oldest first.
func (r *NoteReadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.NoteDB, error) {
	const query = `
		SELECT id, title, content, created_at, updated_at, owner_id
		FROM notes
		WHERE owner_id = $1
		ORDER BY created_at, id
	`

	notes := []models.NoteDB{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &notes, query, ownerID)
	logQuery(query, []any{ownerID}, err)
	if err != nil {
		return nil, classify(err)
	}
	return notes, nil
}

// NoteWriteRepository handles note writes
type NoteWriteRepository struct {
	base
}

func NewNoteWriteRepository(db *sqlx.DB, txGetter TxGetter) *NoteWriteRepository {
	return &NoteWriteRepository{base{db: db, txGetter: txGetter}}
}

// Save inserts a new note. A duplicate title yields ErrConflict, an unknown
// owner ErrReferenceNotFound.
func (r *NoteWriteRepository) Save(ctx context.Context, note *models.NoteDB) error {
	const query = `
		INSERT INTO notes (id, title, content, created_at, updated_at, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	args := []any{note.NoteID, note.Title, note.Content, note.CreatedAt, note.UpdatedAt, note.OwnerID}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)
	logQuery(query, args, err)
	return classify(err)
}

// Update rewrites title, content and updated_at of a note owned by ownerID
// and returns the stored row. ErrNotFound covers both a missing note and a
// note owned by someone else.
func (r *NoteWriteRepository) Update(
	ctx context.Context,
	ownerID, noteID uuid.UUID,
	title, content string,
	updatedAt time.Time,
) (*models.NoteDB, error) {
	const query = `
		UPDATE notes
		SET title = $1, content = $2, updated_at = $3
		WHERE id = $4 AND owner_id = $5
		RETURNING id, title, content, created_at, updated_at, owner_id
	`
	args := []any{title, content, updatedAt, noteID, ownerID}

	var note models.NoteDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &note, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return nil, classify(err)
	}
	return &note, nil
}

// Delete removes a note owned by ownerID, ErrNotFound otherwise.
func (r *NoteWriteRepository) Delete(ctx context.Context, ownerID, noteID uuid.UUID) error {
	const query = `
		DELETE FROM notes
		WHERE id = $1 AND owner_id = $2
	`
	args := []any{noteID, ownerID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return classify(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
