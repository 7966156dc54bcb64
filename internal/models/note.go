package models

import (
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the wire format of note timestamps (UTC, minute resolution).
const TimestampLayout = "2006-01-02 15:04"

// NoteDB represents a note row in the database
type NoteDB struct {
	NoteID    uuid.UUID `json:"id" db:"id"`                 // Primary key
	Title     string    `json:"title" db:"title"`           // Globally unique title
	Content   string    `json:"content" db:"content"`       // Note body
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
	OwnerID   uuid.UUID `json:"owner_id" db:"owner_id"`     // Identifier of the note's owner
}

// Now returns the current UTC time truncated to the minute.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Minute)
}

// NoteResponse represents a note returned to the client
// swagger:model NoteResponse
type NoteResponse struct {
	// Note identifier
	// example: 3fa85f64-5717-4562-b3fc-2c963f66afa6
	ID string `json:"id"`

	// Title
	// example: Groceries
	Title string `json:"title"`

	// Content
	// example: milk, eggs
	Content string `json:"content"`

	// Creation time, UTC
	// example: 2025-01-02 15:04
	CreatedAt string `json:"created_at"`

	// Last update time, UTC
	// example: 2025-01-02 15:04
	UpdatedAt string `json:"updated_at"`

	// Owner identifier
	// example: 3fa85f64-5717-4562-b3fc-2c963f66afa6
	OwnerID string `json:"owner_id"`
}

// NewNoteResponse formats a stored note for the client.
func NewNoteResponse(n *NoteDB) NoteResponse {
	return NoteResponse{
		ID:        n.NoteID.String(),
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt.UTC().Format(TimestampLayout),
		UpdatedAt: n.UpdatedAt.UTC().Format(TimestampLayout),
		OwnerID:   n.OwnerID.String(),
	}
}

// NewNoteResponses formats a list of notes; the result is never nil.
func NewNoteResponses(notes []NoteDB) []NoteResponse {
	resp := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		resp = append(resp, NewNoteResponse(&notes[i]))
	}
	return resp
}
