package models

// Note event operations
const (
	NoteCreated = "note.created"
	NoteUpdated = "note.updated"
	NoteDeleted = "note.deleted"
)

// NoteEvent describes a note lifecycle change published to the message broker.
type NoteEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier of the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix time (seconds) the change happened.
	NoteID    string `json:"note_id"`   // NoteID is the affected note.
	OwnerID   string `json:"owner_id"`  // OwnerID is the user who made the change.
	Operation string `json:"operation"` // Operation is one of note.created, note.updated, note.deleted.
}
