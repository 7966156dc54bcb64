package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-notes/internal/logger"
	"github.com/sbilibin2017/gw-notes/internal/models"
)

// ErrCacheMiss is returned when a note is not cached.
var ErrCacheMiss = errors.New("note not found in cache")

// NoteCacheRepository caches single notes in Redis
type NoteCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached notes
}

// NewNoteCacheRepository creates a new repository instance with the given TTL
func NewNoteCacheRepository(client *redis.Client, expiration time.Duration) *NoteCacheRepository {
	return &NoteCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func noteKey(noteID uuid.UUID) string {
	return fmt.Sprintf("note:%s", noteID)
}

// Get returns a cached note or ErrCacheMiss.
func (r *NoteCacheRepository) Get(ctx context.Context, noteID uuid.UUID) (*models.NoteDB, error) {
	key := noteKey(noteID)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Debugw("cache get", "key", key, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var note models.NoteDB
	if err := json.Unmarshal(val, &note); err != nil {
		logger.Log.Warnw("cache entry is corrupt", "key", key, "error", err)
		return nil, ErrCacheMiss
	}

	logger.Log.Debugw("cache hit", "key", key)
	return &note, nil
}

// Set stores a note with the repository TTL.
func (r *NoteCacheRepository) Set(ctx context.Context, note *models.NoteDB) error {
	key := noteKey(note.NoteID)

	data, err := json.Marshal(note)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Debugw("cache set", "key", key, "error", err)
	return err
}

// Delete evicts a note from the cache.
func (r *NoteCacheRepository) Delete(ctx context.Context, noteID uuid.UUID) error {
	key := noteKey(noteID)

	err := r.client.Del(ctx, key).Err()
	logger.Log.Debugw("cache delete", "key", key, "error", err)
	return err
}
