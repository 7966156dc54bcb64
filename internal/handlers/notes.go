package handlers

//go:generate mockgen -source=notes.go -destination=notes_mock.go -package=handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-notes/internal/models"
	"github.com/sbilibin2017/gw-notes/internal/services"
)

// NoteLister lists the caller's notes.
type NoteLister interface {
	List(ctx context.Context, userID uuid.UUID) (*models.UserDB, []models.NoteDB, error)
}

// NoteGetter fetches a single note.
type NoteGetter interface {
	Get(ctx context.Context, userID, noteID uuid.UUID) (*models.NoteDB, error)
}

// NoteCreator creates notes.
type NoteCreator interface {
	Create(ctx context.Context, userID uuid.UUID, title, content string) (*models.NoteDB, error)
}

// NoteUpdater updates the caller's notes.
type NoteUpdater interface {
	Update(ctx context.Context, userID, noteID uuid.UUID, title, content string) (*models.NoteDB, error)
}

// NoteDeleter deletes the caller's notes.
type NoteDeleter interface {
	Delete(ctx context.Context, userID, noteID uuid.UUID) error
}

// NoteRequest represents the JSON body for creating or updating a note
// swagger:model NoteRequest
type NoteRequest struct {
	// Title, unique across all notes
	// required: true
	// default: Groceries
	Title *string `json:"title" validate:"required,max=255"`

	// Content
	// required: true
	// default: milk, eggs
	Content *string `json:"content" validate:"required"`
}

// NoteListResponse represents the caller's notes
// swagger:model NoteListResponse
type NoteListResponse struct {
	// default: All notes from alice
	Message string                `json:"message"`
	Notes   []models.NoteResponse `json:"notes"`
}

// MessageResponse represents a plain acknowledgement
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// NewListNotesHandler returns an HTTP handler listing the caller's notes.
// @Summary List notes
// @Description Returns every note owned by the authenticated user
// @Tags notes
// @Produce json
// @Success 200 {object} handlers.NoteListResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /me/notes [get]
// @Security BearerAuth
func NewListNotesHandler(svc NoteLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerFromRequest(w, r)
		if !ok {
			return
		}

		user, notes, err := svc.List(r.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, NoteListResponse{
			Message: fmt.Sprintf("All notes from %s", user.Username),
			Notes:   models.NewNoteResponses(notes),
		})
	}
}

// NewGetNoteHandler returns an HTTP handler fetching a note by id.
// @Summary Get note
// @Description Returns a note by id
// @Tags notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} models.NoteResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Note not found"
// @Failure 422 {object} models.ValidationErrorResponse "Malformed note id"
// @Router /me/notes/{id} [get]
// @Security BearerAuth
func NewGetNoteHandler(svc NoteGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerFromRequest(w, r)
		if !ok {
			return
		}
		noteID, ok := noteIDFromRequest(w, r)
		if !ok {
			return
		}

		note, err := svc.Get(r.Context(), userID, noteID)
		if err != nil {
			writeNoteError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewNoteResponse(note))
	}
}

// NewCreateNoteHandler returns an HTTP handler creating a note.
// @Summary Create note
// @Description Creates a note owned by the authenticated user. Titles are unique across all users.
// @Tags notes
// @Accept json
// @Produce json
// @Param noteRequest body handlers.NoteRequest true "Note"
// @Success 200 {object} models.NoteResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 422 {object} models.ErrorResponse "Invalid body or note already exists"
// @Router /me/notes [post]
// @Security BearerAuth
func NewCreateNoteHandler(svc NoteCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerFromRequest(w, r)
		if !ok {
			return
		}

		var req NoteRequest
		if fields := decodeBody(w, r, &req); fields != nil {
			writeValidationError(w, fields)
			return
		}

		note, err := svc.Create(r.Context(), userID, *req.Title, *req.Content)
		if err != nil {
			writeNoteError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewNoteResponse(note))
	}
}

// NewUpdateNoteHandler returns an HTTP handler updating a note.
// @Summary Update note
// @Description Replaces title and content of a note owned by the authenticated user
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param noteRequest body handlers.NoteRequest true "Note"
// @Success 200 {object} models.NoteResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Note not found"
// @Failure 422 {object} models.ValidationErrorResponse "Invalid body"
// @Router /me/notes/{id} [put]
// @Security BearerAuth
func NewUpdateNoteHandler(svc NoteUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerFromRequest(w, r)
		if !ok {
			return
		}
		noteID, ok := noteIDFromRequest(w, r)
		if !ok {
			return
		}

		var req NoteRequest
		if fields := decodeBody(w, r, &req); fields != nil {
			writeValidationError(w, fields)
			return
		}

		note, err := svc.Update(r.Context(), userID, noteID, *req.Title, *req.Content)
		if err != nil {
			writeNoteError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewNoteResponse(note))
	}
}

// NewDeleteNoteHandler returns an HTTP handler deleting a note.
// @Summary Delete note
// @Description Deletes a note owned by the authenticated user
// @Tags notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Note not found"
// @Router /me/notes/{id} [delete]
// @Security BearerAuth
func NewDeleteNoteHandler(svc NoteDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerFromRequest(w, r)
		if !ok {
			return
		}
		noteID, ok := noteIDFromRequest(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, noteID); err != nil {
			writeNoteError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{
			Message: fmt.Sprintf("Note #%s deleted", noteID),
		})
	}
}

func writeNoteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNoteNotFound):
		writeError(w, http.StatusNotFound, "Note not found")
	case errors.Is(err, services.ErrNoteAlreadyExists):
		writeError(w, http.StatusUnprocessableEntity, "Note already exists")
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	default:
		writeInternalError(w, err)
	}
}
