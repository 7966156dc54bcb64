package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-notes/internal/logger"
	"github.com/sbilibin2017/gw-notes/internal/middlewares"
	"github.com/sbilibin2017/gw-notes/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

// writeError writes {"detail": detail}.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, models.ErrorResponse{Detail: detail})
}

func writeInternalError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "err", err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

func writeValidationError(w http.ResponseWriter, fields []models.FieldError) {
	writeJSON(w, http.StatusUnprocessableEntity, models.ValidationErrorResponse{Detail: fields})
}

// maxBodyBytes caps request bodies accepted by decodeBody.
const maxBodyBytes = 1 << 20

// decodeBody decodes a single JSON value from the request body into dst and
// validates it. A nil result means dst is valid.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) []models.FieldError {
	var fields []models.FieldError
	typeErrors := map[string]bool{}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return []models.FieldError{{
				Loc:  []string{"body"},
				Msg:  fmt.Sprintf("Request body should have at most %d bytes", maxErr.Limit),
				Type: "too_large",
			}}
		case errors.As(err, &typeErr):
			typeErrors[typeErr.Field] = true
			fields = append(fields, models.FieldError{
				Loc:  []string{"body", typeErr.Field},
				Msg:  "Input should be a valid " + typeName(typeErr.Type),
				Type: typeName(typeErr.Type) + "_type",
			})
		case errors.Is(err, io.EOF):
			return []models.FieldError{{Loc: []string{"body"}, Msg: "Field required", Type: "missing"}}
		default:
			return []models.FieldError{{Loc: []string{"body"}, Msg: "JSON decode error", Type: "json_invalid"}}
		}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return []models.FieldError{{Loc: []string{"body"}, Msg: "JSON decode error", Type: "json_invalid"}}
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return append(fields, models.FieldError{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"})
		}
		for _, fe := range verrs {
			if typeErrors[fe.Field()] {
				continue
			}
			fields = append(fields, fieldError(fe))
		}
	}

	return fields
}

func fieldError(fe validator.FieldError) models.FieldError {
	loc := []string{"body", fe.Field()}
	switch fe.Tag() {
	case "required":
		return models.FieldError{Loc: loc, Msg: "Field required", Type: "missing"}
	case "max":
		return models.FieldError{Loc: loc, Msg: fmt.Sprintf("String should have at most %s characters", fe.Param()), Type: "string_too_long"}
	case "email":
		return models.FieldError{Loc: loc, Msg: "value is not a valid email address", Type: "value_error"}
	default:
		return models.FieldError{Loc: loc, Msg: "Invalid value", Type: "value_error"}
	}
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Bool:
		return "boolean"
	default:
		return t.Kind().String()
	}
}

// noteIDFromRequest parses the {id} path parameter. On failure it writes a
// 422 response and returns false.
func noteIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	noteID, err := uuid.Parse(raw)
	if err != nil {
		writeValidationError(w, []models.FieldError{{
			Loc:  []string{"path", "note_id"},
			Msg:  "Input should be a valid UUID",
			Type: "uuid_parsing",
		}})
		return uuid.Nil, false
	}
	return noteID, true
}

// callerFromRequest returns the authenticated user id. On failure it writes a
// 401 response and returns false.
func callerFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return uuid.Nil, false
	}
	return userID, true
}
