package services

//go:generate mockgen -source=notes.go -destination=notes_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-notes/internal/logger"
	"github.com/sbilibin2017/gw-notes/internal/models"
	"github.com/sbilibin2017/gw-notes/internal/repositories"
	"github.com/segmentio/kafka-go"
)

// UserGetter resolves the caller's user record.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// NoteReader defines note read operations.
type NoteReader interface {
	GetByID(ctx context.Context, noteID uuid.UUID) (*models.NoteDB, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.NoteDB, error)
}

// NoteWriter defines note write operations. Update and Delete are owner-scoped.
type NoteWriter interface {
	Save(ctx context.Context, note *models.NoteDB) error
	Update(ctx context.Context, ownerID, noteID uuid.UUID, title, content string, updatedAt time.Time) (*models.NoteDB, error)
	Delete(ctx context.Context, ownerID, noteID uuid.UUID) error
}

// NoteCache caches single notes.
type NoteCache interface {
	Get(ctx context.Context, noteID uuid.UUID) (*models.NoteDB, error)
	Set(ctx context.Context, note *models.NoteDB) error
	Delete(ctx context.Context, noteID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// NoteService handles note CRUD for an authenticated caller.
type NoteService struct {
	users       UserGetter
	reader      NoteReader
	writer      NoteWriter
	cache       NoteCache
	kafkaWriter KafkaWriter
}

// NewNoteService creates a new NoteService. cache and kafkaWriter may be nil.
func NewNoteService(
	users UserGetter,
	reader NoteReader,
	writer NoteWriter,
	cache NoteCache,
	kafkaWriter KafkaWriter,
) *NoteService {
	return &NoteService{
		users:       users,
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// List returns the caller and all of the caller's notes.
func (s *NoteService) List(ctx context.Context, userID uuid.UUID) (*models.UserDB, []models.NoteDB, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Log.Warnw("caller has no user record", "userID", userID)
			return nil, nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return nil, nil, err
	}

	notes, err := s.reader.ListByOwner(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list notes", "userID", userID, "error", err)
		return nil, nil, err
	}
	if notes == nil {
		notes = []models.NoteDB{}
	}

	return user, notes, nil
}

// Get returns a note by id. The lookup is not restricted to the caller's notes.
func (s *NoteService) Get(ctx context.Context, userID, noteID uuid.UUID) (*models.NoteDB, error) {
	if s.cache != nil {
		if note, err := s.cache.Get(ctx, noteID); err == nil {
			return note, nil
		} else if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Warnw("failed to read note cache", "noteID", noteID, "error", err)
		}
	}

	note, err := s.reader.GetByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		logger.Log.Errorw("failed to get note", "noteID", noteID, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, note); err != nil {
			logger.Log.Warnw("failed to cache note", "noteID", noteID, "error", err)
		}
	}

	return note, nil
}

// Create stores a new note owned by the caller.
func (s *NoteService) Create(ctx context.Context, userID uuid.UUID, title, content string) (*models.NoteDB, error) {
	now := models.Now()
	note := &models.NoteDB{
		NoteID:    uuid.New(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
		OwnerID:   userID,
	}

	if err := s.writer.Save(ctx, note); err != nil {
		switch {
		case errors.Is(err, repositories.ErrConflict):
			logger.Log.Infow("note title already taken", "title", title)
			return nil, ErrNoteAlreadyExists
		case errors.Is(err, repositories.ErrReferenceNotFound):
			logger.Log.Warnw("caller has no user record", "userID", userID)
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to save note", "userID", userID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, note, models.NoteCreated)
	return note, nil
}

// Update rewrites a note owned by the caller.
func (s *NoteService) Update(ctx context.Context, userID, noteID uuid.UUID, title, content string) (*models.NoteDB, error) {
	note, err := s.writer.Update(ctx, userID, noteID, title, content, models.Now())
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, ErrNoteNotFound
		case errors.Is(err, repositories.ErrConflict):
			logger.Log.Infow("note title already taken", "title", title)
			return nil, ErrNoteAlreadyExists
		}
		logger.Log.Errorw("failed to update note", "userID", userID, "noteID", noteID, "error", err)
		return nil, err
	}

	s.evict(ctx, noteID)
	s.publishEvent(ctx, note, models.NoteUpdated)
	return note, nil
}

// Delete removes a note owned by the caller.
func (s *NoteService) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	if err := s.writer.Delete(ctx, userID, noteID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNoteNotFound
		}
		logger.Log.Errorw("failed to delete note", "userID", userID, "noteID", noteID, "error", err)
		return err
	}

	s.evict(ctx, noteID)
	s.publishEvent(ctx, &models.NoteDB{NoteID: noteID, OwnerID: userID}, models.NoteDeleted)
	return nil
}

func (s *NoteService) evict(ctx context.Context, noteID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, noteID); err != nil {
		logger.Log.Warnw("failed to evict note from cache", "noteID", noteID, "error", err)
	}
}

// publishEvent publishes a note event to Kafka.
func (s *NoteService) publishEvent(ctx context.Context, note *models.NoteDB, operation string) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "note_id", note.NoteID)
		return
	}

	event := models.NoteEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		NoteID:    note.NoteID.String(),
		OwnerID:   note.OwnerID.String(),
		Operation: operation,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal note event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.NoteID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish note event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Note event queued for Kafka", "event_id", event.EventID, "operation", operation)
	}
}
